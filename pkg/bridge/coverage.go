package bridge

import (
	"math"
	"sort"

	"github.com/chazu/spandrel/pkg/geom"
)

// Coverage returns the part of the regions considered properly bridged at
// the stored angle, or nil when no detection has succeeded yet.
func (d *Detector) Coverage(precise bool) geom.Polygons {
	if d.angle == angleUnset {
		return nil
	}
	return d.CoverageAt(d.angle, precise)
}

// CoverageAt computes the supported-area polygons for an explicit angle.
// The regions are rotated so the bridge direction runs vertically, cut
// into vertical strips, and each strip is kept when it rests on at least
// two anchor components. Precise mode walks the strips at line spacing and
// snaps kept strips onto the anchor intersections.
func (d *Detector) CoverageAt(angle float64, precise bool) geom.Polygons {
	// Work with vertical lines: rotate everything by pi/2 - angle.
	rot := math.Pi/2 - angle
	anchors := d.anchors.Polygons().Rotated(rot)

	var covered geom.Polygons
	for _, region := range d.regions {
		rotated := region.Rotated(rot)
		// Outset by half the anchor inflation so trapezoid vertices stay
		// inside the anchors rather than on their contours.
		for _, expoly := range d.kernel.OffsetEx(rotated.Polygons(), 0.5*float64(d.spacing)) {
			var traps geom.Polygons
			if precise {
				traps = d.trapezoidsSpaced(expoly)
			} else {
				traps = d.trapezoids(expoly)
			}
			for _, trap := range traps {
				var supported int
				if precise {
					components := d.kernel.Intersection(geom.Polygons{trap}, anchors)
					supported = len(components)
					if supported >= 2 {
						d.snapTrapezoid(trap, components)
					}
				} else {
					for _, seg := range d.kernel.IntersectionLN(trap.Lines(), anchors) {
						if seg.Length() >= float64(d.spacing) {
							supported++
						}
					}
				}
				if supported >= 2 {
					covered = append(covered, trap)
				}
			}
		}
	}

	// Unite before rotating back; the rotation would otherwise leave tiny
	// gaps between trapezoids instead of exact shared edges.
	covered = d.kernel.Union(covered)
	covered.Rotate(-rot)
	return covered
}

// trapezoids cuts the region into vertical strips at every distinct
// vertex x coordinate. It may return more strips than necessary when
// other parts of the region share x coordinates.
func (d *Detector) trapezoids(expoly geom.ExPolygon) geom.Polygons {
	src := expoly.Polygons()
	points := src.Points()
	if len(points) == 0 {
		return nil
	}
	bb := geom.NewBoundingBox(points)

	xs := make([]geom.Coord, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	var out geom.Polygons
	for i := 0; i+1 < len(xs); i++ {
		x, next := xs[i], xs[i+1]
		if x == next {
			continue
		}
		strip := geom.Polygon{
			{X: x, Y: bb.Min.Y},
			{X: next, Y: bb.Min.Y},
			{X: next, Y: bb.Max.Y},
			{X: x, Y: bb.Max.Y},
		}
		out = append(out, d.kernel.Intersection(geom.Polygons{strip}, src)...)
	}
	return out
}

// trapezoidsSpaced cuts the region into strips one line spacing wide,
// inset by a quarter spacing on both sides so neighbouring strips do not
// share vertical edges; snapTrapezoid undoes the inset for kept strips.
func (d *Detector) trapezoidsSpaced(expoly geom.ExPolygon) geom.Polygons {
	src := expoly.Polygons()
	points := src.Points()
	if len(points) == 0 {
		return nil
	}
	bb := geom.NewBoundingBox(points)

	xs := make([]geom.Coord, 0, (bb.Max.X-bb.Min.X)/d.spacing+2)
	for x := bb.Min.X; x < bb.Max.X-d.spacing/2; x += d.spacing {
		xs = append(xs, x)
	}
	xs = append(xs, bb.Max.X)

	var out geom.Polygons
	for i := 0; i+1 < len(xs); i++ {
		x, next := xs[i], xs[i+1]
		if x == next {
			continue
		}
		strip := geom.Polygon{
			{X: x + d.spacing/4, Y: bb.Min.Y},
			{X: next - d.spacing/4, Y: bb.Min.Y},
			{X: next - d.spacing/4, Y: bb.Max.Y},
			{X: x + d.spacing/4, Y: bb.Max.Y},
		}
		out = append(out, d.kernel.Intersection(geom.Polygons{strip}, src)...)
	}
	return out
}

// snapTrapezoid trims a kept strip onto its anchor intersections: the
// vertical extent clamps to the span of the component centers, and the
// horizontal extent re-expands by the quarter-spacing inset (plus one
// unit) so neighbouring strips rejoin after the union.
func (d *Detector) snapTrapezoid(trap geom.Polygon, components geom.Polygons) {
	first := components[0].BoundingBox().Center()
	minY, maxY := first.Y, first.Y
	for _, component := range components[1:] {
		center := component.BoundingBox().Center()
		minY = min(minY, center.Y)
		maxY = max(maxY, center.Y)
	}

	minX, maxX := trap[0].X, trap[0].X
	for _, p := range trap {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}
	minX -= d.spacing/4 + 1
	maxX += d.spacing/4 + 1
	midX := (minX + maxX) / 2

	for i := range trap {
		if trap[i].Y < minY {
			trap[i].Y = minY
		}
		if trap[i].Y > maxY {
			trap[i].Y = maxY
		}
		if trap[i].X > minX && trap[i].X < midX {
			trap[i].X = minX
		}
		if trap[i].X < maxX && trap[i].X > midX {
			trap[i].X = maxX
		}
	}
}

// UnsupportedEdges returns the boundary pieces not resting on support for
// the stored angle, or nil when no detection has succeeded yet.
func (d *Detector) UnsupportedEdges() geom.Polylines {
	if d.angle == angleUnset {
		return nil
	}
	return d.UnsupportedEdgesAt(d.angle)
}

// UnsupportedEdgesAt returns the region boundary pieces that do not rest
// on (a spacing-wide neighbourhood of) the lower slices, split into
// two-point polylines. Pieces parallel to the bridging angle are dropped:
// they cannot anchor extrusions running in that direction, so supporting
// them would not help this bridge.
func (d *Detector) UnsupportedEdgesAt(angle float64) geom.Polylines {
	grownLower := d.kernel.Offset(d.lower.Polygons(), float64(d.spacing))

	var out geom.Polylines
	for _, region := range d.regions {
		free := d.kernel.DiffPL(region.Polygons().ToPolylines(), grownLower)
		for _, line := range free.Lines() {
			if !geom.DirectionsParallelDefault(line.Direction(), angle) {
				out = append(out, geom.Polyline{line.A, line.B})
			}
		}
	}
	return out
}
