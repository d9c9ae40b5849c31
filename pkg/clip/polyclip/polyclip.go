// Package polyclip implements the clip.Kernel interface using the
// github.com/ctessum/polyclip-go boolean clipping library. Rings are
// converted to float contours at the library boundary and rounded back
// to scaled integer coordinates on the way out.
package polyclip

import (
	"math"

	pc "github.com/ctessum/polyclip-go"

	"github.com/chazu/spandrel/pkg/clip"
	"github.com/chazu/spandrel/pkg/geom"
)

// Compile-time interface check.
var _ clip.Kernel = (*Kernel)(nil)

// Kernel implements clip.Kernel using polyclip-go.
type Kernel struct{}

// New returns a new polyclip-backed kernel.
func New() *Kernel {
	return &Kernel{}
}

// toClip converts a ring set into one polyclip operand. The whole set is
// a single even-odd polygon, so holes travel as additional contours.
func toClip(pp geom.Polygons) pc.Polygon {
	out := make(pc.Polygon, 0, len(pp))
	for _, ring := range pp {
		if len(ring) < 3 {
			continue
		}
		c := make(pc.Contour, 0, len(ring))
		for _, pt := range ring {
			c = append(c, pc.Point{X: float64(pt.X), Y: float64(pt.Y)})
		}
		out = append(out, c)
	}
	return out
}

// fromClip rounds a polyclip result back to integer rings, drops
// degenerate contours and normalizes winding by nesting depth (even
// depth CCW, odd depth CW).
func fromClip(p pc.Polygon) geom.Polygons {
	out := make(geom.Polygons, 0, len(p))
	for _, c := range p {
		if len(c) < 3 {
			continue
		}
		ring := make(geom.Polygon, 0, len(c))
		for _, pt := range c {
			next := geom.NewPoint(pt.X, pt.Y)
			if len(ring) > 0 && next == ring[len(ring)-1] {
				continue
			}
			ring = append(ring, next)
		}
		if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		if len(ring) < 3 || math.Abs(ring.Area2()) < 1 {
			continue
		}
		out = append(out, ring)
	}
	normalizeWinding(out)
	return out
}

// normalizeWinding orients rings by containment depth.
func normalizeWinding(pp geom.Polygons) {
	for i, ring := range pp {
		depth := 0
		for j, other := range pp {
			if i == j {
				continue
			}
			if other.Contains(ring[0]) {
				depth++
			}
		}
		if (depth%2 == 0) != ring.IsCCW() {
			ring.Reverse()
		}
	}
}

// regroupEx nests a normalized ring set into regions: every CW ring is a
// hole of the smallest CCW ring containing it.
func regroupEx(pp geom.Polygons) geom.ExPolygons {
	type outer struct {
		ring geom.Polygon
		area float64
	}
	var outers []outer
	var holes geom.Polygons
	for _, ring := range pp {
		if ring.IsCCW() {
			outers = append(outers, outer{ring, ring.Area2()})
		} else {
			holes = append(holes, ring)
		}
	}
	out := make(geom.ExPolygons, len(outers))
	for i, o := range outers {
		out[i] = geom.ExPolygon{Contour: o.ring}
	}
	for _, h := range holes {
		best := -1
		for i, o := range outers {
			if !o.ring.Contains(h[0]) {
				continue
			}
			if best < 0 || o.area < outers[best].area {
				best = i
			}
		}
		if best >= 0 {
			out[best].Holes = append(out[best].Holes, h)
		}
	}
	return out
}

// Union merges a set of mutually independent positive rings by folding
// pairwise unions. The rings must not be holes of one another; the
// detector uses this for trapezoid sets, which satisfy that.
func (k *Kernel) Union(polys geom.Polygons) geom.Polygons {
	if len(polys) == 0 {
		return nil
	}
	acc := toClip(polys[:1])
	for _, ring := range polys[1:] {
		operand := toClip(geom.Polygons{ring})
		if len(operand) == 0 {
			continue
		}
		if len(acc) == 0 {
			acc = operand
			continue
		}
		acc = acc.Construct(pc.UNION, operand)
	}
	return fromClip(acc)
}

// UnionSafety unions complete regions, inflating every ring by the scaled
// epsilon first so strictly coincident edges still intersect downstream.
func (k *Kernel) UnionSafety(regions geom.ExPolygons) geom.ExPolygons {
	var acc pc.Polygon
	for _, region := range regions {
		grown := offsetRings(region.Polygons(), float64(geom.ScaledEpsilon))
		operand := toClip(grown)
		if len(operand) == 0 {
			continue
		}
		if len(acc) == 0 {
			acc = operand
			continue
		}
		acc = acc.Construct(pc.UNION, operand)
	}
	return regroupEx(fromClip(acc))
}

// Intersection returns subject AND clip.
func (k *Kernel) Intersection(subject, clipSet geom.Polygons) geom.Polygons {
	if len(subject) == 0 || len(clipSet) == 0 {
		return nil
	}
	return fromClip(toClip(subject).Construct(pc.INTERSECTION, toClip(clipSet)))
}

// IntersectionEx is Intersection with the result regrouped into regions.
func (k *Kernel) IntersectionEx(subject, clipSet geom.Polygons) geom.ExPolygons {
	return regroupEx(k.Intersection(subject, clipSet))
}

// Diff returns subject AND NOT clip.
func (k *Kernel) Diff(subject, clipSet geom.Polygons) geom.Polygons {
	if len(subject) == 0 {
		return nil
	}
	if len(clipSet) == 0 {
		out := make(geom.Polygons, len(subject))
		for i, ring := range subject {
			out[i] = ring.Clone()
		}
		return out
	}
	return fromClip(toClip(subject).Construct(pc.DIFFERENCE, toClip(clipSet)))
}
