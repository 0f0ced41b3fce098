package conic

import "math"

// Tolerance tiers. Every comparison against zero or a convergence threshold
// uses the tier matching its unit: distances, squared distances, or angles.
const (
	// Tolerance is the absolute tolerance for distances and radii.
	Tolerance = 1e-10
	// ToleranceSquared is the tolerance for squared distances.
	ToleranceSquared = Tolerance * Tolerance
	// ToleranceAngle is the tolerance for angles, in radians.
	ToleranceAngle = 1e-8
	// toleranceStrict is for quantities close to machine epsilon, such as
	// pivots in linear systems.
	toleranceStrict = 1.5e-15
)

// normAngle reduces an angle to the range [0, 2π).
func normAngle(a float64) float64 {
	m := math.Mod(a, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}

func rad2deg(a float64) float64 {
	return a * (180 / math.Pi)
}

// angleDiff returns the angular distance traversed from a1 to a2 in the
// direction indicated by reversed, reduced to [0, 2π).
func angleDiff(a1, a2 float64, reversed bool) float64 {
	if reversed {
		a1, a2 = a2, a1
	}
	return normAngle(a2 - a1)
}

// isAngleBetween reports whether a lies on the arc from a1 to a2, traversed
// in the direction indicated by reversed. Coincident limits are treated as a
// whole turn, not an empty one.
func isAngleBetween(a, a1, a2 float64, reversed bool) bool {
	if reversed {
		a1, a2 = a2, a1
	}
	span := normAngle(a2 - a1)
	if span < ToleranceAngle {
		return true
	}
	return normAngle(a-a1) <= span+ToleranceAngle
}

// isSameDirection reports whether two angles point the same way, modulo full
// turns.
func isSameDirection(a1, a2, tol float64) bool {
	return math.Abs(math.Remainder(a1-a2, 2*math.Pi)) < tol
}

// periodsCount returns the number of whole periods separating a1 and a2 in
// traversal order. Non-zero for angle pairs such as (0, 2π) whose reduced
// difference is zero even though they describe a full loop.
func periodsCount(a1, a2 float64, reversed bool) int {
	if reversed {
		a1, a2 = a2, a1
	}
	return int(math.Round((a2 - a1) / (2 * math.Pi)))
}
