package geom

// ExPolygon is a simply-connected region: one outer contour plus zero or
// more holes. The contour winds CCW, holes CW.
type ExPolygon struct {
	Contour Polygon
	Holes   Polygons
}

// ExPolygons is a set of regions.
type ExPolygons []ExPolygon

// Contains reports whether pt lies inside the region: inside the contour
// and not strictly inside any hole.
func (ex ExPolygon) Contains(pt Point) bool {
	if !ex.Contour.Contains(pt) {
		return false
	}
	for _, h := range ex.Holes {
		if c, on := h.crossings(pt); !on && c%2 == 1 {
			return false
		}
	}
	return true
}

// Polygons flattens the region into its rings, contour first.
func (ex ExPolygon) Polygons() Polygons {
	out := make(Polygons, 0, 1+len(ex.Holes))
	out = append(out, ex.Contour)
	out = append(out, ex.Holes...)
	return out
}

// Rotate rotates the region in place by angle about the origin.
func (ex *ExPolygon) Rotate(angle float64) {
	ex.Contour.Rotate(angle)
	ex.Holes.Rotate(angle)
}

// Rotated returns a rotated copy of the region.
func (ex ExPolygon) Rotated(angle float64) ExPolygon {
	out := ExPolygon{Contour: ex.Contour.Rotated(angle)}
	if len(ex.Holes) > 0 {
		out.Holes = ex.Holes.Rotated(angle)
	}
	return out
}

// Contains reports whether pt lies inside any region of the set.
func (exs ExPolygons) Contains(pt Point) bool {
	for _, ex := range exs {
		if ex.Contains(pt) {
			return true
		}
	}
	return false
}

// Polygons flattens all regions into one ring set.
func (exs ExPolygons) Polygons() Polygons {
	var out Polygons
	for _, ex := range exs {
		out = append(out, ex.Polygons()...)
	}
	return out
}

// Contours returns only the outer contours of the set.
func (exs ExPolygons) Contours() Polygons {
	out := make(Polygons, 0, len(exs))
	for _, ex := range exs {
		out = append(out, ex.Contour)
	}
	return out
}

// ToPolylines converts all rings of all regions to closed polylines.
func (exs ExPolygons) ToPolylines() Polylines {
	return exs.Polygons().ToPolylines()
}

// Lines returns all edges of all regions.
func (exs ExPolygons) Lines() Lines {
	return exs.Polygons().Lines()
}
