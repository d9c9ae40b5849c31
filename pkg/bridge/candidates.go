package bridge

import (
	"math"
	"sort"

	"github.com/chazu/spandrel/pkg/geom"
)

// maxCandidates caps the direction search; beyond it the parallel-merge
// tolerance doubles until the list fits.
const maxCandidates = 200

// candidate is a bridging direction under evaluation, with the sweep
// statistics accumulated against it.
type candidate struct {
	angle float64
	// alongPerimeterLength is the squared length of the boundary edge that
	// produced this direction; 0 for uniformly sampled directions.
	alongPerimeterLength float64

	totalLengthAnchored float64
	totalLengthFree     float64
	maxLengthAnchored   float64
	maxLengthFree       float64
	medianLengthAnchor  float64
	nbLinesAnchored     int
	nbLinesFree         int
	coverage            float64
}

// candidates enumerates bridging directions: a uniform angular sweep
// (unless onlyFromPolygon), one direction per boundary edge of the
// regions, and one per open supporting edge. The list is sorted and
// deduplicated, preferring perimeter-derived directions, and capped.
func (d *Detector) candidates(onlyFromPolygon bool) []candidate {
	var angles []candidate
	if !onlyFromPolygon {
		steps := int(math.Round(math.Pi / d.resolution))
		for i := 0; i <= steps; i++ {
			angles = append(angles, candidate{angle: float64(i) * d.resolution})
		}
	}

	// Directions of the region boundary edges. With many edges, keep only
	// those longer than the mean of the first 200; tiny segments are noise.
	lines := d.regions.Lines()
	if len(lines) > maxCandidates {
		var meanSq float64
		for i := 0; i < maxCandidates; i++ {
			meanSq += lines[i].A.DistanceSq(lines[i].B)
		}
		meanSq /= maxCandidates
		for _, l := range lines {
			if distSq := l.A.DistanceSq(l.B); distSq > meanSq {
				angles = append(angles, candidate{angle: l.Direction(), alongPerimeterLength: distSq})
			}
		}
	} else {
		for _, l := range lines {
			angles = append(angles, candidate{angle: l.Direction(), alongPerimeterLength: l.A.DistanceSq(l.B)})
		}
	}

	// Directions of open supporting edges; this finds the optimal angle
	// for C-shaped supports.
	for _, edge := range d.edges {
		if first, last := edge.FirstPoint(), edge.LastPoint(); first != last {
			angles = append(angles, candidate{angle: geom.Line{A: first, B: last}.Direction()})
		}
	}

	sort.SliceStable(angles, func(i, j int) bool { return angles[i].angle < angles[j].angle })

	// Drop sampled directions that sit next to a perimeter-derived one.
	for i := 1; i < len(angles); i++ {
		if angles[i-1].alongPerimeterLength > 0 && angles[i].alongPerimeterLength == 0 &&
			geom.DirectionsParallel(angles[i].angle, angles[i-1].angle, d.resolution) {
			angles = append(angles[:i], angles[i+1:]...)
			i--
			continue
		}
		if angles[i].alongPerimeterLength > 0 && angles[i-1].alongPerimeterLength == 0 &&
			geom.DirectionsParallel(angles[i].angle, angles[i-1].angle, d.resolution) {
			angles = append(angles[:i-1], angles[i:]...)
			i--
			continue
		}
	}

	// Merge near-parallel neighbours, keeping the longer originating edge.
	minResolution := d.resolution / 8
	angles = mergeParallel(angles, minResolution)
	for len(angles) > maxCandidates {
		minResolution *= 2
		angles = mergeParallel(angles, minResolution)
	}

	// 0 and pi are the same direction; drop the greater one.
	if len(angles) > 1 && geom.DirectionsParallel(angles[0].angle, angles[len(angles)-1].angle, minResolution) {
		angles = angles[:len(angles)-1]
	}
	return angles
}

// mergeParallel collapses adjacent candidates closer than tol, keeping
// the one with the longer originating edge.
func mergeParallel(angles []candidate, tol float64) []candidate {
	for i := 1; i < len(angles); i++ {
		if !geom.DirectionsParallel(angles[i].angle, angles[i-1].angle, tol) {
			continue
		}
		if angles[i].alongPerimeterLength < angles[i-1].alongPerimeterLength {
			angles = append(angles[:i], angles[i+1:]...)
		} else {
			angles = append(angles[:i-1], angles[i:]...)
		}
		i--
	}
	return angles
}
