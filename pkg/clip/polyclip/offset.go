package polyclip

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/spandrel/pkg/geom"
)

// miterLimit matches Clipper's default: miter joins sharper than this
// many deltas fall back to a bevel.
const miterLimit = 2.0

// offsetRing displaces every edge of the ring by delta along its outward
// normal and joins neighbours with a mitered corner. A ring that collapses
// (winding flips, every edge reverses, or area vanishes) returns nil.
func offsetRing(ring geom.Polygon, delta float64) geom.Polygon {
	n := len(ring)
	if n < 3 || delta == 0 {
		if n < 3 {
			return nil
		}
		return ring.Clone()
	}

	// Unit direction and outward normal per edge. For a CCW ring the
	// interior is left of each edge, so the outward normal is (dy, -dx);
	// CW hole rings get the same formula, which displaces them inward —
	// exactly what inflating the region demands.
	dirs := make([]v2.Vec, n)
	for i := 0; i < n; i++ {
		a, b := ring[i].Vec(), ring[(i+1)%n].Vec()
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			length = 1
		}
		dirs[i] = v2.Vec{X: dx / length, Y: dy / length}
	}

	out := make(geom.Polygon, 0, n)
	limitSq := miterLimit * miterLimit * delta * delta
	for i := 0; i < n; i++ {
		prev := dirs[(i+n-1)%n]
		cur := dirs[i]
		p := ring[i].Vec()
		n1 := v2.Vec{X: prev.Y * delta, Y: -prev.X * delta}
		n2 := v2.Vec{X: cur.Y * delta, Y: -cur.X * delta}
		denom := prev.X*cur.Y - prev.Y*cur.X
		if math.Abs(denom) < 1e-9 {
			// Collinear edges: a single displaced vertex.
			out = append(out, geom.NewPoint(p.X+n2.X, p.Y+n2.Y))
			continue
		}
		// Intersect the two displaced edge lines:
		// (p + n1) + t*prev  ==  (p + n2) + s*cur
		t := ((n2.X-n1.X)*cur.Y - (n2.Y-n1.Y)*cur.X) / denom
		mx := p.X + n1.X + t*prev.X
		my := p.Y + n1.Y + t*prev.Y
		dx, dy := mx-p.X, my-p.Y
		if dx*dx+dy*dy > limitSq {
			// Sharp corner: bevel with both displaced endpoints.
			out = append(out, geom.NewPoint(p.X+n1.X, p.Y+n1.Y))
			out = append(out, geom.NewPoint(p.X+n2.X, p.Y+n2.Y))
			continue
		}
		out = append(out, geom.NewPoint(mx, my))
	}

	if len(out) < 3 {
		return nil
	}
	if len(out) == n {
		// Every displaced edge running against its source edge means the
		// ring was deflated past its own width and turned inside out.
		reversed := 0
		for i := 0; i < n; i++ {
			a, b := out[i].Vec(), out[(i+1)%n].Vec()
			if (b.X-a.X)*dirs[i].X+(b.Y-a.Y)*dirs[i].Y < 0 {
				reversed++
			}
		}
		if reversed == n {
			return nil
		}
	}
	if out.IsCCW() != ring.IsCCW() || math.Abs(out.Area2()) < 1 {
		// The ring inverted or vanished under a deflating offset.
		return nil
	}
	return out
}

// offsetRings displaces every ring of the set, dropping collapsed ones.
func offsetRings(pp geom.Polygons, delta float64) geom.Polygons {
	out := make(geom.Polygons, 0, len(pp))
	for _, ring := range pp {
		if displaced := offsetRing(ring, delta); displaced != nil {
			out = append(out, displaced)
		}
	}
	return out
}

// Offset displaces every ring by delta with mitered joins. Positive delta
// inflates the region the set describes, negative deflates it.
func (k *Kernel) Offset(polys geom.Polygons, delta float64) geom.Polygons {
	return offsetRings(polys, delta)
}

// OffsetEx is Offset with the result regrouped into regions.
func (k *Kernel) OffsetEx(polys geom.Polygons, delta float64) geom.ExPolygons {
	return regroupEx(offsetRings(polys, delta))
}

// Offset2Ex applies two sequential offsets; opposite signs perform a
// morphological opening or closing.
func (k *Kernel) Offset2Ex(polys geom.Polygons, delta1, delta2 float64) geom.ExPolygons {
	return regroupEx(offsetRings(offsetRings(polys, delta1), delta2))
}
