package geom

import "math"

// Line is a directed segment from A to B.
type Line struct {
	A, B Point
}

// Lines is a set of segments.
type Lines []Line

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.A.Distance(l.B)
}

// Midpoint returns the segment midpoint.
func (l Line) Midpoint() Point {
	return l.A.Mid(l.B)
}

// Direction returns the segment direction as an angle in [0, pi).
// Lines have no orientation for bridging purposes, so opposite
// directions map to the same angle.
func (l Line) Direction() float64 {
	angle := math.Atan2(float64(l.B.Y-l.A.Y), float64(l.B.X-l.A.X))
	if angle < 0 {
		angle += math.Pi
	}
	if angle >= math.Pi {
		angle -= math.Pi
	}
	return angle
}

// Polyline is an open ordered point chain with at least two points.
type Polyline Points

// Polylines is a set of polylines.
type Polylines []Polyline

// FirstPoint returns the first point of the polyline.
func (pl Polyline) FirstPoint() Point {
	return pl[0]
}

// LastPoint returns the last point of the polyline.
func (pl Polyline) LastPoint() Point {
	return pl[len(pl)-1]
}

// Length returns the total length of the polyline.
func (pl Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(pl); i++ {
		sum += pl[i-1].Distance(pl[i])
	}
	return sum
}

// Lines splits the polyline into individual segments.
func (pl Polyline) Lines() Lines {
	if len(pl) < 2 {
		return nil
	}
	out := make(Lines, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out = append(out, Line{pl[i-1], pl[i]})
	}
	return out
}

// Lines splits every polyline in the set into segments.
func (pls Polylines) Lines() Lines {
	var out Lines
	for _, pl := range pls {
		out = append(out, pl.Lines()...)
	}
	return out
}
