package polyclip_test

import (
	"math"
	"testing"

	"github.com/chazu/spandrel/pkg/clip/polyclip"
	"github.com/chazu/spandrel/pkg/geom"
)

func TestIntersectionLNCrossing(t *testing.T) {
	k := polyclip.New()
	clipSet := geom.Polygons{square(0, 0, 100, 100)}
	line := geom.Line{A: geom.Point{X: -50, Y: 50}, B: geom.Point{X: 150, Y: 50}}

	got := k.IntersectionLN(geom.Lines{line}, clipSet)
	if len(got) != 1 {
		t.Fatalf("expected 1 clipped segment, got %d", len(got))
	}
	if got[0].A != (geom.Point{X: 0, Y: 50}) || got[0].B != (geom.Point{X: 100, Y: 50}) {
		t.Errorf("clipped segment = %+v", got[0])
	}
}

func TestIntersectionLNThroughHole(t *testing.T) {
	k := polyclip.New()
	hole := square(40, 0, 60, 100)
	hole.Reverse()
	clipSet := geom.Polygons{square(0, 0, 100, 100), hole}
	line := geom.Line{A: geom.Point{X: -10, Y: 50}, B: geom.Point{X: 110, Y: 50}}

	got := k.IntersectionLN(geom.Lines{line}, clipSet)
	if len(got) != 2 {
		t.Fatalf("expected 2 pieces around the hole, got %d", len(got))
	}
	var total float64
	for _, seg := range got {
		total += seg.Length()
	}
	if math.Abs(total-80) > 1 {
		t.Errorf("kept length = %v, want 80", total)
	}
}

func TestIntersectionLNOutside(t *testing.T) {
	k := polyclip.New()
	clipSet := geom.Polygons{square(0, 0, 100, 100)}
	line := geom.Line{A: geom.Point{X: -50, Y: 200}, B: geom.Point{X: 150, Y: 200}}

	if got := k.IntersectionLN(geom.Lines{line}, clipSet); len(got) != 0 {
		t.Fatalf("line outside the clip set must vanish, got %d segments", len(got))
	}
}

func TestIntersectionPLStitches(t *testing.T) {
	k := polyclip.New()
	clipSet := geom.Polygons{square(0, 0, 100, 100)}
	// An L-shaped polyline whose corner sits inside the clip square.
	pl := geom.Polyline{
		{X: -50, Y: 50},
		{X: 50, Y: 50},
		{X: 50, Y: 200},
	}

	got := k.IntersectionPL(geom.Polylines{pl}, clipSet)
	if len(got) != 1 {
		t.Fatalf("expected one stitched polyline, got %d", len(got))
	}
	if got[0].FirstPoint() != (geom.Point{X: 0, Y: 50}) {
		t.Errorf("first point = %+v", got[0].FirstPoint())
	}
	if got[0].LastPoint() != (geom.Point{X: 50, Y: 100}) {
		t.Errorf("last point = %+v", got[0].LastPoint())
	}
	// The interior corner must survive as an interior point.
	if len(got[0]) != 3 {
		t.Errorf("expected 3 points, got %d", len(got[0]))
	}
}

func TestDiffPLKeepsOutside(t *testing.T) {
	k := polyclip.New()
	clipSet := geom.Polygons{square(0, 0, 100, 100)}
	pl := geom.Polyline{{X: -50, Y: 50}, {X: 150, Y: 50}}

	got := k.DiffPL(geom.Polylines{pl}, clipSet)
	if len(got) != 2 {
		t.Fatalf("expected 2 outside pieces, got %d", len(got))
	}
	var total float64
	for _, piece := range got {
		total += piece.Length()
	}
	if math.Abs(total-100) > 1 {
		t.Errorf("outside length = %v, want 100", total)
	}
}

func TestDiffPLEmptyClip(t *testing.T) {
	k := polyclip.New()
	pl := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	got := k.DiffPL(geom.Polylines{pl}, nil)
	if len(got) != 1 || got[0].Length() != 100 {
		t.Fatalf("empty clip must keep the polyline intact, got %v", got)
	}
}

func TestIntersectionLNCollinearEdge(t *testing.T) {
	k := polyclip.New()
	clipSet := geom.Polygons{square(0, 0, 100, 100)}
	// Segment riding exactly on the clip boundary counts as inside.
	line := geom.Line{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 100, Y: 0}}

	got := k.IntersectionLN(geom.Lines{line}, clipSet)
	var total float64
	for _, seg := range got {
		total += seg.Length()
	}
	if math.Abs(total-100) > 1 {
		t.Errorf("boundary segment kept length = %v, want 100", total)
	}
}
