package geom_test

import (
	"math"
	"testing"

	"github.com/chazu/spandrel/pkg/geom"
)

// square returns a CCW square ring with the given corners.
func square(minX, minY, maxX, maxY geom.Coord) geom.Polygon {
	return geom.Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

func TestPolygonOrientation(t *testing.T) {
	ccw := square(0, 0, 100, 100)
	if !ccw.IsCCW() {
		t.Error("CCW square reported as CW")
	}
	cw := ccw.Clone()
	cw.Reverse()
	if cw.IsCCW() {
		t.Error("reversed square still reported as CCW")
	}
	if got, want := ccw.Area2(), 2*100.0*100.0; got != want {
		t.Errorf("Area2 = %v, want %v", got, want)
	}
}

func TestPolygonContains(t *testing.T) {
	ring := square(0, 0, 100, 100)

	cases := []struct {
		name string
		pt   geom.Point
		want bool
	}{
		{"center", geom.Point{X: 50, Y: 50}, true},
		{"outside", geom.Point{X: 150, Y: 50}, false},
		{"on edge", geom.Point{X: 0, Y: 50}, true},
		{"on vertex", geom.Point{X: 0, Y: 0}, true},
		{"just outside", geom.Point{X: -1, Y: 50}, false},
	}
	for _, tc := range cases {
		if got := ring.Contains(tc.pt); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.pt, got, tc.want)
		}
	}
}

func TestExPolygonContainsHole(t *testing.T) {
	hole := square(25, 25, 75, 75)
	hole.Reverse()
	ex := geom.ExPolygon{
		Contour: square(0, 0, 100, 100),
		Holes:   geom.Polygons{hole},
	}

	if !ex.Contains(geom.Point{X: 10, Y: 10}) {
		t.Error("point in the rim should be contained")
	}
	if ex.Contains(geom.Point{X: 50, Y: 50}) {
		t.Error("point in the hole should not be contained")
	}
	if ex.Contains(geom.Point{X: 200, Y: 50}) {
		t.Error("point outside the contour should not be contained")
	}
}

func TestPolygonsEvenOdd(t *testing.T) {
	hole := square(25, 25, 75, 75)
	hole.Reverse()
	set := geom.Polygons{square(0, 0, 100, 100), hole}

	if !set.Contains(geom.Point{X: 10, Y: 50}) {
		t.Error("rim point should be inside the set")
	}
	if set.Contains(geom.Point{X: 50, Y: 50}) {
		t.Error("hole point should be outside the set")
	}
}

func TestLineDirection(t *testing.T) {
	cases := []struct {
		line geom.Line
		want float64
	}{
		{geom.Line{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 100, Y: 0}}, 0},
		{geom.Line{A: geom.Point{X: 100, Y: 0}, B: geom.Point{X: 0, Y: 0}}, 0},
		{geom.Line{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 0, Y: 100}}, math.Pi / 2},
		{geom.Line{A: geom.Point{X: 0, Y: 100}, B: geom.Point{X: 0, Y: 0}}, math.Pi / 2},
		{geom.Line{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 100, Y: 100}}, math.Pi / 4},
	}
	for _, tc := range cases {
		if got := tc.line.Direction(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Direction(%v) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestDirectionsParallel(t *testing.T) {
	res := math.Pi / 90
	if !geom.DirectionsParallel(0, math.Pi, res) {
		t.Error("0 and pi must be parallel")
	}
	if !geom.DirectionsParallel(0.1, 0.1+math.Pi-1e-9, res) {
		t.Error("angles a hair under pi apart must be parallel")
	}
	if geom.DirectionsParallel(0, math.Pi/4, res) {
		t.Error("0 and pi/4 must not be parallel at 2 degree tolerance")
	}
	if !geom.DirectionsParallelDefault(math.Pi/2, math.Pi/2) {
		t.Error("identical angles must be parallel by default")
	}
}

func TestRotatedExtents(t *testing.T) {
	set := geom.Polygons{square(0, 0, 100, 100)}

	// No rotation: extents equal the plain bounding box.
	bb := geom.RotatedExtents(set, 0)
	if bb.Min != (geom.Point{X: 0, Y: 0}) || bb.Max != (geom.Point{X: 100, Y: 100}) {
		t.Errorf("unrotated extents = %+v", bb)
	}

	// Quarter turn: x and y swap, with x negated.
	bb = geom.RotatedExtents(set, math.Pi/2)
	if bb.Min.X != -100 || bb.Max.X != 0 || bb.Min.Y != 0 || bb.Max.Y != 100 {
		t.Errorf("quarter-turn extents = %+v", bb)
	}

	// Same result as materializing the rotation.
	rotated := set.Rotated(math.Pi / 3)
	want := geom.NewBoundingBox(rotated.Points())
	got := geom.RotatedExtents(set, math.Pi/3)
	if got != want {
		t.Errorf("RotatedExtents = %+v, want %+v", got, want)
	}
}

func TestPointRotationRoundTrip(t *testing.T) {
	p := geom.Point{X: 4000, Y: 300}
	back := p.Rotated(math.Pi / 3).Rotated(-math.Pi / 3)
	if p.Distance(back) > 2 {
		t.Errorf("rotation round trip moved %v to %v", p, back)
	}
}

func TestPolylineLines(t *testing.T) {
	pl := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	lines := pl.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(lines))
	}
	if lines[0].B != pl[1] || lines[1].A != pl[1] {
		t.Error("segments do not chain through the interior point")
	}
	if pl.FirstPoint() != pl[0] || pl.LastPoint() != pl[2] {
		t.Error("endpoint accessors disagree with the chain")
	}
}

func TestPolygonToPolyline(t *testing.T) {
	ring := square(0, 0, 100, 100)
	pl := ring.ToPolyline()
	if len(pl) != len(ring)+1 {
		t.Fatalf("closed polyline should repeat the first point, got %d points", len(pl))
	}
	if pl.FirstPoint() != pl.LastPoint() {
		t.Error("closed polyline must start and end at the same point")
	}
}
