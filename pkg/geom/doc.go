// Package geom defines the planar value types the slicer core works with:
// integer-coordinate points in scaled micro-units, polygons and polylines,
// regions with holes, and the angle helpers used for direction comparison.
// The types carry only local operations (rotation, containment, extents);
// polygon-set algebra lives behind the clip.Kernel interface.
package geom
