package geom

// BoundingBox is an axis-aligned box in scaled coordinates.
type BoundingBox struct {
	Min, Max Point
}

// NewBoundingBox returns the extents of the given points. An empty input
// yields an empty (inverted) box that contains nothing.
func NewBoundingBox(pts Points) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{Min: Point{1, 1}, Max: Point{-1, -1}}
	}
	bb := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bb.Min.X = min(bb.Min.X, p.X)
		bb.Min.Y = min(bb.Min.Y, p.Y)
		bb.Max.X = max(bb.Max.X, p.X)
		bb.Max.Y = max(bb.Max.Y, p.Y)
	}
	return bb
}

// Empty reports whether the box contains no points.
func (bb BoundingBox) Empty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Contains reports whether pt lies inside the box, boundary included.
func (bb BoundingBox) Contains(pt Point) bool {
	return pt.X >= bb.Min.X && pt.X <= bb.Max.X &&
		pt.Y >= bb.Min.Y && pt.Y <= bb.Max.Y
}

// Center returns the box center.
func (bb BoundingBox) Center() Point {
	return bb.Min.Mid(bb.Max)
}

// Merge grows the box to include other.
func (bb *BoundingBox) Merge(other BoundingBox) {
	if other.Empty() {
		return
	}
	if bb.Empty() {
		*bb = other
		return
	}
	bb.Min.X = min(bb.Min.X, other.Min.X)
	bb.Min.Y = min(bb.Min.Y, other.Min.Y)
	bb.Max.X = max(bb.Max.X, other.Max.X)
	bb.Max.Y = max(bb.Max.Y, other.Max.Y)
}

// RotatedExtents returns the bounding box of the set after rotating it by
// angle about the origin, without materializing the rotated rings.
func RotatedExtents(pp Polygons, angle float64) BoundingBox {
	var bb BoundingBox
	first := true
	for _, p := range pp {
		for _, pt := range p {
			r := pt.Rotated(angle)
			if first {
				bb = BoundingBox{Min: r, Max: r}
				first = false
				continue
			}
			bb.Min.X = min(bb.Min.X, r.X)
			bb.Min.Y = min(bb.Min.Y, r.Y)
			bb.Max.X = max(bb.Max.X, r.X)
			bb.Max.Y = max(bb.Max.Y, r.Y)
		}
	}
	if first {
		return NewBoundingBox(nil)
	}
	return bb
}
