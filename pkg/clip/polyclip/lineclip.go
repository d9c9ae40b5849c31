package polyclip

import (
	"math"
	"sort"

	"github.com/chazu/spandrel/pkg/geom"
)

// paramEpsilon is the minimum parametric gap between two split points on
// a clipped segment; anything finer collapses to one point.
const paramEpsilon = 1e-9

// segmentParams returns the sorted parameters in [0, 1] at which the
// segment a-b crosses an edge of the clip set, bracketed by 0 and 1.
func segmentParams(a, b geom.Point, clipSet geom.Polygons) []float64 {
	ts := []float64{0, 1}
	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	for _, ring := range clipSet {
		n := len(ring)
		for i := 0; i < n; i++ {
			p, q := ring[i], ring[(i+1)%n]
			ex, ey := float64(q.X-p.X), float64(q.Y-p.Y)
			denom := dx*ey - dy*ex
			if math.Abs(denom) < 1e-12 {
				// Parallel or collinear: interval classification by
				// midpoint handles overlaps.
				continue
			}
			wx, wy := float64(p.X)-ax, float64(p.Y)-ay
			t := (wx*ey - wy*ex) / denom
			u := (wx*dy - wy*dx) / denom
			if t > 0 && t < 1 && u >= 0 && u <= 1 {
				ts = append(ts, t)
			}
		}
	}
	sort.Float64s(ts)
	return ts
}

// pointAt returns the point at parameter t on the segment a-b, rounded to
// scaled coordinates.
func pointAt(a, b geom.Point, t float64) geom.Point {
	return geom.NewPoint(
		float64(a.X)+t*float64(b.X-a.X),
		float64(a.Y)+t*float64(b.Y-a.Y),
	)
}

// clipSegment splits the segment at every clip-set edge crossing and keeps
// the sub-intervals whose midpoints are inside (keepInside) or outside the
// set. Adjacent kept intervals are merged before points are emitted.
func clipSegment(l geom.Line, clipSet geom.Polygons, keepInside bool) geom.Lines {
	if l.A == l.B {
		return nil
	}
	ts := segmentParams(l.A, l.B, clipSet)

	// Merge kept sub-intervals into parameter runs first, so collinear
	// grazing contacts do not fragment the output.
	type run struct{ t0, t1 float64 }
	var runs []run
	for i := 0; i+1 < len(ts); i++ {
		t0, t1 := ts[i], ts[i+1]
		if t1-t0 < paramEpsilon {
			continue
		}
		mid := pointAt(l.A, l.B, (t0+t1)/2)
		if clipSet.Contains(mid) != keepInside {
			continue
		}
		if len(runs) > 0 && runs[len(runs)-1].t1 == t0 {
			runs[len(runs)-1].t1 = t1
		} else {
			runs = append(runs, run{t0, t1})
		}
	}

	out := make(geom.Lines, 0, len(runs))
	for _, r := range runs {
		a := pointAt(l.A, l.B, r.t0)
		b := pointAt(l.A, l.B, r.t1)
		if a != b {
			out = append(out, geom.Line{A: a, B: b})
		}
	}
	return out
}

// IntersectionLN keeps the portions of the segments inside the clip set.
func (k *Kernel) IntersectionLN(lines geom.Lines, clipSet geom.Polygons) geom.Lines {
	var out geom.Lines
	for _, l := range lines {
		out = append(out, clipSegment(l, clipSet, true)...)
	}
	return out
}

// clipPolylines clips every polyline segment and stitches consecutive
// kept pieces back into polylines.
func clipPolylines(pls geom.Polylines, clipSet geom.Polygons, keepInside bool) geom.Polylines {
	var out geom.Polylines
	for _, pl := range pls {
		var current geom.Polyline
		for _, seg := range pl.Lines() {
			for _, kept := range clipSegment(seg, clipSet, keepInside) {
				if len(current) > 0 && current[len(current)-1] == kept.A {
					current = append(current, kept.B)
					continue
				}
				if len(current) >= 2 {
					out = append(out, current)
				}
				current = geom.Polyline{kept.A, kept.B}
			}
		}
		if len(current) >= 2 {
			out = append(out, current)
		}
	}
	return out
}

// IntersectionPL keeps the portions of the polylines inside the clip set.
func (k *Kernel) IntersectionPL(polylines geom.Polylines, clipSet geom.Polygons) geom.Polylines {
	return clipPolylines(polylines, clipSet, true)
}

// DiffPL keeps the portions of the polylines outside the clip set.
func (k *Kernel) DiffPL(polylines geom.Polylines, clipSet geom.Polygons) geom.Polylines {
	return clipPolylines(polylines, clipSet, false)
}
