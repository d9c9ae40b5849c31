package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/chazu/spandrel/pkg/bridge"
	"github.com/chazu/spandrel/pkg/clip/polyclip"
	"github.com/chazu/spandrel/pkg/geom"
)

type detectOptions struct {
	angle   float64
	precise bool
	svgPath string
}

// sceneRing is one polygon ring as coordinate pairs.
type sceneRing [][2]int64

// sceneRegion is one region: an outer contour plus optional holes.
type sceneRegion struct {
	Contour sceneRing   `json:"contour"`
	Holes   []sceneRing `json:"holes,omitempty"`
}

// scene is the on-disk detection input.
type scene struct {
	Spacing int64         `json:"spacing"`
	Regions []sceneRegion `json:"regions"`
	Lower   []sceneRegion `json:"lower"`
}

func toRing(r sceneRing) geom.Polygon {
	out := make(geom.Polygon, len(r))
	for i, p := range r {
		out[i] = geom.Point{X: p[0], Y: p[1]}
	}
	return out
}

func toRegions(rr []sceneRegion) geom.ExPolygons {
	out := make(geom.ExPolygons, len(rr))
	for i, r := range rr {
		out[i].Contour = toRing(r.Contour)
		for _, h := range r.Holes {
			out[i].Holes = append(out[i].Holes, toRing(h))
		}
	}
	return out
}

func loadScene(path string) (*scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	var s scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	if s.Spacing <= 0 {
		return nil, fmt.Errorf("scene %s: spacing must be positive", path)
	}
	if len(s.Regions) == 0 {
		return nil, fmt.Errorf("scene %s: no bridge regions", path)
	}
	return &s, nil
}

func runDetect(path string, opts detectOptions) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}

	detector := bridge.New(toRegions(s.Regions), toRegions(s.Lower), s.Spacing, polyclip.New())

	var ok bool
	if opts.angle >= 0 {
		ok = detector.DetectAngleAt(opts.angle)
	} else {
		ok = detector.DetectAngle()
	}

	if opts.svgPath != "" {
		f, err := os.Create(opts.svgPath)
		if err != nil {
			return fmt.Errorf("creating SVG output: %w", err)
		}
		defer f.Close()
		if err := detector.WriteSVG(f); err != nil {
			return fmt.Errorf("writing SVG output: %w", err)
		}
		log.Printf("wrote %s", opts.svgPath)
	}

	if !ok {
		return fmt.Errorf("no bridging direction covers %s", path)
	}

	angle, _ := detector.Angle()
	coverage := detector.Coverage(opts.precise)
	unsupported := detector.UnsupportedEdges()

	fmt.Printf("angle: %.4f rad (%.1f deg)\n", angle, angle*180/math.Pi)
	fmt.Printf("coverage polygons: %d\n", len(coverage))
	fmt.Printf("unsupported edges: %d\n", len(unsupported))
	return nil
}
