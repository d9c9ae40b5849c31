// Package clip defines the abstract polygon-algebra kernel interface.
// Implementations (polyclip) provide boolean operations, offsetting and
// line clipping behind this interface. The kernel abstraction allows
// swapping clipping backends without changing the rest of the system.
package clip

import "github.com/chazu/spandrel/pkg/geom"

// Kernel is the abstract polygon-algebra interface. All operations are
// pure: inputs are never mutated, empty input yields empty output, and no
// operation fails. Flat geom.Polygons arguments are interpreted with the
// even-odd fill rule (outer contours CCW, holes CW).
type Kernel interface {
	// Offset displaces every ring by delta: positive inflates the region
	// the set describes, negative deflates it. Joins are mitered.
	Offset(polys geom.Polygons, delta float64) geom.Polygons
	// OffsetEx is Offset with the result regrouped into regions.
	OffsetEx(polys geom.Polygons, delta float64) geom.ExPolygons
	// Offset2Ex applies two sequential offsets (morphological opening or
	// closing, depending on the signs).
	Offset2Ex(polys geom.Polygons, delta1, delta2 float64) geom.ExPolygons

	// Union merges a set of mutually independent positive rings.
	Union(polys geom.Polygons) geom.Polygons
	// UnionSafety unions complete regions, applying a tiny inflation first
	// so that strictly coincident edges still produce a result.
	UnionSafety(regions geom.ExPolygons) geom.ExPolygons

	// Intersection returns subject AND clip.
	Intersection(subject, clip geom.Polygons) geom.Polygons
	// IntersectionEx is Intersection with the result regrouped into regions.
	IntersectionEx(subject, clip geom.Polygons) geom.ExPolygons
	// Diff returns subject AND NOT clip.
	Diff(subject, clip geom.Polygons) geom.Polygons

	// IntersectionPL keeps the portions of the polylines inside the clip set.
	IntersectionPL(polylines geom.Polylines, clip geom.Polygons) geom.Polylines
	// IntersectionLN keeps the portions of the segments inside the clip set.
	IntersectionLN(lines geom.Lines, clip geom.Polygons) geom.Lines
	// DiffPL keeps the portions of the polylines outside the clip set.
	DiffPL(polylines geom.Polylines, clip geom.Polygons) geom.Polylines
}
