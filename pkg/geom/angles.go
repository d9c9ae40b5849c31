package geom

import "math"

// angleEpsilon guards exact-parallel comparisons against float noise.
const angleEpsilon = 1e-4

// DirectionsParallel reports whether two direction angles are parallel
// modulo pi, within maxDiff radians.
func DirectionsParallel(a, b, maxDiff float64) bool {
	diff := math.Abs(a - b)
	maxDiff += angleEpsilon
	return diff < maxDiff || math.Abs(diff-math.Pi) < maxDiff
}

// DirectionsParallelDefault is DirectionsParallel with the default
// epsilon-only tolerance.
func DirectionsParallelDefault(a, b float64) bool {
	return DirectionsParallel(a, b, 0)
}
