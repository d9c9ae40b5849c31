// Package bridge decides whether a horizontal region suspended over air
// can be printed as a bridge, which extrusion direction crosses the void
// best, which part of the region that direction actually supports, and
// which boundary edges remain unsupported.
package bridge

import (
	"math"
	"sort"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/chazu/spandrel/pkg/clip"
	"github.com/chazu/spandrel/pkg/geom"
)

// angleUnset marks a detector whose direction search has not succeeded.
const angleUnset = -1.0

// Detector analyses one bridging task. Build it once, run DetectAngle (or
// DetectAngleAt) at most once, then query Coverage and UnsupportedEdges as
// often as needed. A Detector is not safe for concurrent use, but distinct
// detectors are independent.
type Detector struct {
	regions geom.ExPolygons
	lower   geom.ExPolygons
	spacing geom.Coord
	kernel  clip.Kernel

	// resolution is the angular step of the uniform candidate sweep.
	resolution float64

	// edges are the portions of the inflated region boundary that rest on
	// lower-slice contours; they only seed candidate directions.
	edges geom.Polylines
	// anchors is the intersection of the inflated region with the lower
	// slices. A line whose endpoints land here is firmly attached.
	anchors     geom.ExPolygons
	anchorBoxes []geom.BoundingBox

	angle float64
}

// New builds a detector for the given bridge regions over the lower-layer
// slices. The spacing is the extrusion line spacing in scaled units; it
// also sets the anchor inflation. Anchor extraction runs immediately.
func New(regions, lower geom.ExPolygons, spacing geom.Coord, k clip.Kernel) *Detector {
	d := &Detector{
		regions:    regions,
		lower:      lower,
		spacing:    spacing,
		kernel:     k,
		resolution: math.Pi / 90, // 2 degree stepping
		angle:      angleUnset,
	}

	grown := k.Offset(regions.Polygons(), float64(spacing))

	// Detect which parts of the inflated boundary lie on lower slices by
	// clipping it against each lower contour.
	d.edges = k.IntersectionPL(grown.ToPolylines(), lower.Contours())

	// Anchors are where the inflated bridge overlaps the layer below. The
	// safety offset keeps strictly coincident edges from producing an
	// empty intersection.
	d.anchors = k.IntersectionEx(grown, k.UnionSafety(lower).Polygons())

	d.anchorBoxes = make([]geom.BoundingBox, len(d.anchors))
	for i, anchor := range d.anchors {
		d.anchorBoxes[i] = anchor.Contour.BoundingBox()
	}
	return d
}

// NewSingle builds a detector for a single bridge region.
func NewSingle(region geom.ExPolygon, lower geom.ExPolygons, spacing geom.Coord, k clip.Kernel) *Detector {
	return New(geom.ExPolygons{region}, lower, spacing, k)
}

// Angle returns the chosen bridging angle in [0, pi). The second return
// is false until a detection succeeds.
func (d *Detector) Angle() (float64, bool) {
	if d.angle == angleUnset {
		return 0, false
	}
	return d.angle, true
}

// DetectAngle searches all candidate directions for the one with the best
// anchored coverage and stores it. It returns false when the region has no
// anchors at all or no direction yields any anchored line.
func (d *Detector) DetectAngle() bool {
	if len(d.edges) == 0 || len(d.anchors) == 0 {
		// The bridging region is completely in the air.
		return false
	}
	return d.detect(d.candidates(false), false)
}

// DetectAngleAt forces the given direction as the only candidate: no
// enumeration happens and the angle is stored iff it yields any anchored
// coverage. Zero radians is a legal direction here.
func (d *Detector) DetectAngleAt(angle float64) bool {
	if len(d.edges) == 0 || len(d.anchors) == 0 {
		return false
	}
	return d.detect([]candidate{{angle: angle}}, true)
}

// detect sweeps every candidate, falls back to a looser pass when none
// produces anchored lines, scores the survivors and stores the winner.
func (d *Detector) detect(cands []candidate, override bool) bool {
	// Outset the regions by half the anchor inflation; clipping the test
	// lines against this keeps their endpoints inside the anchors rather
	// than on the contours, which would read as false negatives.
	clipArea := d.kernel.Offset(d.regions.Polygons(), 0.5*float64(d.spacing))

	haveCoverage := false
	for i := range cands {
		if d.sweepAnchored(&cands[i], clipArea) {
			haveCoverage = true
		}
	}

	if !haveCoverage {
		// No direction had a line anchored at both ends. Retry with the
		// boundary-derived directions only and accept one-ended anchoring,
		// to pick the least bad direction.
		if override {
			cands = []candidate{{angle: cands[0].angle}}
		} else {
			cands = d.candidates(true)
		}
		for i := range cands {
			if d.sweepLoose(&cands[i], clipArea) {
				haveCoverage = true
			}
		}
	}
	if !haveCoverage {
		return false
	}

	best, ok := scoreCandidates(cands)
	if !ok {
		return false
	}
	angle := best.angle
	if angle >= math.Pi {
		angle -= math.Pi
	}
	d.angle = angle
	return true
}

// sweepLines covers bbox (the extents of the target geometry rotated by
// -angle) with horizontal lines spaced by the line spacing, rotated back
// into place.
func sweepLines(angle float64, bbox geom.BoundingBox, spacing geom.Coord) geom.Lines {
	if bbox.Empty() {
		return nil
	}
	sin, cos := math.Sincos(angle)
	minX, maxX := float64(bbox.Min.X), float64(bbox.Max.X)
	lines := make(geom.Lines, 0, (bbox.Max.Y-bbox.Min.Y)/spacing+1)
	// Space the first line half the spacing from the edge.
	for y := bbox.Min.Y + spacing/2; y <= bbox.Max.Y; y += spacing {
		fy := float64(y)
		a := v2.Vec{X: cos*minX - sin*fy, Y: cos*fy + sin*minX}
		b := v2.Vec{X: cos*maxX - sin*fy, Y: cos*fy + sin*maxX}
		lines = append(lines, geom.Line{A: geom.NewPoint(a.X, a.Y), B: geom.NewPoint(b.X, b.Y)})
	}
	return lines
}

// anchorIndex returns the index of the anchor containing pt, or -1. The
// bounding-box pre-test short-circuits the polygon test.
func (d *Detector) anchorIndex(pt geom.Point) int {
	for i := range d.anchors {
		if d.anchorBoxes[i].Contains(pt) && d.anchors[i].Contains(pt) {
			return i
		}
	}
	return -1
}

// sweepAnchored runs the primary per-angle analysis: parallel lines over
// the anchor extents, clipped to the region, each classified as anchored
// (crossing a void between attachments) or free. Returns whether the
// candidate accumulated any anchored length.
func (d *Detector) sweepAnchored(c *candidate, clipArea geom.Polygons) bool {
	bbox := geom.RotatedExtents(d.anchors.Polygons(), -c.angle)
	clipped := d.kernel.IntersectionLN(sweepLines(c.angle, bbox, d.spacing), clipArea)

	var distAnchored []float64
	for _, line := range clipped {
		length := line.Length()
		ia := d.anchorIndex(line.A)
		ib := d.anchorIndex(line.B)
		good := ia >= 0 && ib >= 0
		if good && ia == ib {
			// Both ends in the same anchor: only a real bridge if the line
			// leaves the anchor over the bridged area in between. Probe
			// cheap points first, pay for a real clip only on long lines.
			good = d.leavesAnchors(line, length)
		}
		if good {
			// Anchored at both sides, crossing the void in its middle.
			c.totalLengthAnchored += length
			c.maxLengthAnchored = math.Max(c.maxLengthAnchored, length)
			c.nbLinesAnchored++
			distAnchored = append(distAnchored, length)
		} else {
			c.totalLengthFree += length
			c.maxLengthFree = math.Max(c.maxLengthFree, length)
			c.nbLinesFree++
		}
	}
	return c.finish(distAnchored)
}

// leavesAnchors reports whether a line with both endpoints in one anchor
// actually exits the anchor set somewhere along its length.
func (d *Detector) leavesAnchors(line geom.Line, length float64) bool {
	mid := line.Midpoint()
	if d.anchorIndex(mid) < 0 {
		return true
	}
	if length > 10*float64(d.spacing) {
		if d.anchorIndex(line.A.Mid(mid)) < 0 || d.anchorIndex(line.B.Mid(mid)) < 0 {
			return true
		}
	}
	if length > 40*float64(d.spacing) {
		// Rare enough to swallow the cost of a real clip: more than one
		// component means the line exits and re-enters the anchors.
		return len(d.kernel.IntersectionLN(geom.Lines{line}, d.anchors.Polygons())) > 1
	}
	return false
}

// sweepLoose is the fallback analysis: lines cover the whole clipped
// region and a single attached endpoint counts as anchored.
func (d *Detector) sweepLoose(c *candidate, clipArea geom.Polygons) bool {
	bbox := geom.RotatedExtents(clipArea, -c.angle)
	clipped := d.kernel.IntersectionLN(sweepLines(c.angle, bbox, d.spacing), clipArea)

	var distAnchored []float64
	for _, line := range clipped {
		length := line.Length()
		if d.anchorIndex(line.A) >= 0 || d.anchorIndex(line.B) >= 0 {
			c.totalLengthAnchored += length
			c.maxLengthAnchored = math.Max(c.maxLengthAnchored, length)
			c.nbLinesAnchored++
			distAnchored = append(distAnchored, length)
		} else {
			c.totalLengthFree += length
			c.maxLengthFree = math.Max(c.maxLengthFree, length)
			c.nbLinesFree++
		}
	}
	return c.finish(distAnchored)
}

// finish settles the candidate's median statistic and reports whether it
// accumulated any anchored coverage.
func (c *candidate) finish(distAnchored []float64) bool {
	if c.totalLengthAnchored == 0 || c.nbLinesAnchored == 0 {
		return false
	}
	sort.Float64s(distAnchored)
	c.medianLengthAnchor = distAnchored[len(distAnchored)/2]
	return true
}

// scoreCandidates weighs every candidate that produced anchored coverage
// and returns the winner: 70% anchored-length ratio, 15% inverted median
// anchored length, 15% inverted maximum anchored length, plus a bonus for
// directions taken from the region boundary. Ties keep the lowest angle.
func scoreCandidates(cands []candidate) (candidate, bool) {
	var medians, maxima []float64
	for i := range cands {
		if cands[i].totalLengthAnchored > 0 {
			medians = append(medians, cands[i].medianLengthAnchor)
			maxima = append(maxima, cands[i].maxLengthAnchored)
		}
	}
	if len(medians) == 0 {
		return candidate{}, false
	}
	minMedian, maxMedian := floats.Min(medians), floats.Max(medians)
	minMax, maxMax := floats.Min(maxima), floats.Max(maxima)

	best := -1
	for i := range cands {
		c := &cands[i]
		if c.totalLengthAnchored == 0 {
			continue
		}
		ratioAnchored := c.totalLengthAnchored / (c.totalLengthAnchored + c.totalLengthFree)
		ratioMedian := 1 - (c.medianLengthAnchor-minMedian)/math.Max(1, maxMedian-minMedian)
		ratioMax := 1 - (c.maxLengthAnchored-minMax)/math.Max(1, maxMax-minMax)
		c.coverage = 70*ratioAnchored + 15*ratioMedian + 15*ratioMax
		if c.alongPerimeterLength > 0 {
			c.coverage += 5
		}
		if best < 0 || c.coverage > cands[best].coverage {
			best = i
		}
	}
	return cands[best], true
}
