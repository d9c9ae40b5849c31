package geom

// Polygon is a closed ring of points. The edge from the last point back to
// the first is implicit. Outer contours wind CCW, holes CW; the core never
// changes a ring's orientation.
type Polygon Points

// Polygons is a flat set of rings. Hole rings are distinguished from outer
// contours by winding; a set is interpreted with the even-odd fill rule.
type Polygons []Polygon

// Area2 returns twice the signed area of the ring (positive for CCW).
func (p Polygon) Area2() float64 {
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return sum
}

// IsCCW reports whether the ring winds counter-clockwise.
func (p Polygon) IsCCW() bool {
	return p.Area2() > 0
}

// Reverse flips the ring's winding in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Lines returns the ring's edges, including the closing edge.
func (p Polygon) Lines() Lines {
	n := len(p)
	if n < 2 {
		return nil
	}
	out := make(Lines, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Line{p[i], p[(i+1)%n]})
	}
	return out
}

// ToPolyline returns the ring as an open polyline, repeating the first
// point at the end so the closing edge is preserved.
func (p Polygon) ToPolyline() Polyline {
	if len(p) == 0 {
		return nil
	}
	out := make(Polyline, 0, len(p)+1)
	out = append(out, p...)
	out = append(out, p[0])
	return out
}

// onSegment reports whether pt lies on the segment a-b.
func onSegment(pt, a, b Point) bool {
	cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
	if cross != 0 {
		return false
	}
	if pt.X < min(a.X, b.X) || pt.X > max(a.X, b.X) {
		return false
	}
	if pt.Y < min(a.Y, b.Y) || pt.Y > max(a.Y, b.Y) {
		return false
	}
	return true
}

// crossings counts ray crossings for the even-odd test. The second return
// is true when pt lies exactly on the ring boundary.
func (p Polygon) crossings(pt Point) (int, bool) {
	n := len(p)
	count := 0
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		if onSegment(pt, a, b) {
			return 0, true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			// x coordinate of the edge at pt.Y
			x := float64(a.X) + float64(b.X-a.X)*float64(pt.Y-a.Y)/float64(b.Y-a.Y)
			if float64(pt.X) < x {
				count++
			}
		}
	}
	return count, false
}

// Contains reports whether pt is inside the ring. Boundary points count
// as inside.
func (p Polygon) Contains(pt Point) bool {
	c, on := p.crossings(pt)
	return on || c%2 == 1
}

// BoundingBox returns the ring's axis-aligned extents.
func (p Polygon) BoundingBox() BoundingBox {
	return NewBoundingBox(Points(p))
}

// Rotate rotates the ring in place by angle about the origin.
func (p Polygon) Rotate(angle float64) {
	Points(p).Rotate(angle)
}

// Rotated returns a rotated copy of the ring.
func (p Polygon) Rotated(angle float64) Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	out.Rotate(angle)
	return out
}

// Clone returns a deep copy of the ring.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Contains reports whether pt is inside the set under the even-odd rule.
// Boundary points count as inside.
func (pp Polygons) Contains(pt Point) bool {
	total := 0
	for _, p := range pp {
		c, on := p.crossings(pt)
		if on {
			return true
		}
		total += c
	}
	return total%2 == 1
}

// Rotate rotates every ring in place by angle about the origin.
func (pp Polygons) Rotate(angle float64) {
	for i := range pp {
		pp[i].Rotate(angle)
	}
}

// Rotated returns a rotated copy of the set.
func (pp Polygons) Rotated(angle float64) Polygons {
	out := make(Polygons, len(pp))
	for i := range pp {
		out[i] = pp[i].Rotated(angle)
	}
	return out
}

// Points returns all vertices of the set.
func (pp Polygons) Points() Points {
	var out Points
	for _, p := range pp {
		out = append(out, Points(p)...)
	}
	return out
}

// ToPolylines converts every ring to a closed polyline.
func (pp Polygons) ToPolylines() Polylines {
	out := make(Polylines, 0, len(pp))
	for _, p := range pp {
		if pl := p.ToPolyline(); pl != nil {
			out = append(out, pl)
		}
	}
	return out
}

// Lines returns all edges of all rings.
func (pp Polygons) Lines() Lines {
	var out Lines
	for _, p := range pp {
		out = append(out, p.Lines()...)
	}
	return out
}
