package bridge

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/spandrel/pkg/geom"
)

// svgViewport is the pixel width of debug renderings.
const svgViewport = 800

// errWriter remembers the first write error so the svg calls can stay
// unchecked.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG renders the detection scene for inspection: lower slices in
// grey, the bridge regions in blue, anchors in green, supporting edges in
// red, and the coverage at the stored angle in translucent orange when a
// detection has succeeded.
func (d *Detector) WriteSVG(w io.Writer) error {
	bb := geom.NewBoundingBox(d.regions.Polygons().Points())
	bb.Merge(geom.NewBoundingBox(d.lower.Polygons().Points()))
	bb.Merge(geom.NewBoundingBox(d.anchors.Polygons().Points()))
	if bb.Empty() {
		bb = geom.BoundingBox{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1, Y: 1}}
	}
	width := bb.Max.X - bb.Min.X
	height := bb.Max.Y - bb.Min.Y
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	scale := float64(svgViewport) / float64(width)

	// SVG y grows downward; flip so the scene reads like the slicer plane.
	toPx := func(p geom.Point) (int, int) {
		x := float64(p.X-bb.Min.X) * scale
		y := float64(bb.Max.Y-p.Y) * scale
		return int(x), int(y)
	}
	ringPx := func(ring geom.Polygon) ([]int, []int) {
		xs := make([]int, len(ring))
		ys := make([]int, len(ring))
		for i, p := range ring {
			xs[i], ys[i] = toPx(p)
		}
		return xs, ys
	}
	drawSet := func(canvas *svg.SVG, pp geom.Polygons, style string) {
		for _, ring := range pp {
			xs, ys := ringPx(ring)
			canvas.Polygon(xs, ys, style)
		}
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(svgViewport, int(float64(height)*scale))

	drawSet(canvas, d.lower.Polygons(), "fill:#d0d0d0;stroke:#808080")
	drawSet(canvas, d.regions.Polygons(), "fill:none;stroke:#2060c0;stroke-width:2")
	drawSet(canvas, d.anchors.Polygons(), "fill:#60c060;fill-opacity:0.5;stroke:#208020")
	if d.angle != angleUnset {
		drawSet(canvas, d.Coverage(false), "fill:#f0a020;fill-opacity:0.4;stroke:none")
	}
	for _, edge := range d.edges {
		for _, line := range edge.Lines() {
			x1, y1 := toPx(line.A)
			x2, y2 := toPx(line.B)
			canvas.Line(x1, y1, x2, y2, "stroke:#c02020;stroke-width:3")
		}
	}

	canvas.End()
	return ew.err
}
