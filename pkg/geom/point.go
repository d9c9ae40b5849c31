package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Coord is a linear coordinate in the slicer's scaled integer space.
// The core is agnostic to the scale factor; all distances it is handed
// (spacing, offsets) are expressed in the same space.
type Coord = int64

// ScaledEpsilon is the smallest meaningful distance in scaled space.
// Comparisons finer than this are noise from clipping arithmetic.
const ScaledEpsilon Coord = 100

// Point is a 2D point in scaled coordinates.
type Point struct {
	X, Y Coord
}

// Points is an ordered point sequence.
type Points []Point

// NewPoint rounds float coordinates into scaled space.
func NewPoint(x, y float64) Point {
	return Point{Coord(math.Round(x)), Coord(math.Round(y))}
}

// Vec returns the point as a float vector for trigonometric work.
func (p Point) Vec() v2.Vec {
	return v2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// DistanceSq returns the squared distance from p to q.
func (p Point) DistanceSq(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// Distance returns the distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// Rotated returns the point rotated by angle (radians) about the origin.
func (p Point) Rotated(angle float64) Point {
	s, c := math.Sincos(angle)
	v := p.Vec()
	return NewPoint(c*v.X-s*v.Y, s*v.X+c*v.Y)
}

// Rotate rotates the points in place by angle about the origin.
func (pts Points) Rotate(angle float64) {
	for i := range pts {
		pts[i] = pts[i].Rotated(angle)
	}
}
