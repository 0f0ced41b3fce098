package conic

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// completeEllipticE returns the complete elliptic integral of the second kind
// E(k), with k the elliptic modulus (the eccentricity for an ellipse,
// k = sqrt(1 − ratio²)).
func completeEllipticE(k float64) float64 {
	return mathext.CompleteE(k * k)
}

// incompleteEllipticE is the arc-length primitive of an ellipse at the
// parametric angle phi in [0, π], up to an additive constant: differences of
// this function give exact arc lengths within a half-period.
//
// The Legendre amplitude counts from the minor axis while the parametric
// angle counts from the major axis, so phi is first shifted by a quarter
// turn; the shift also keeps the amplitude within the evaluator's [0, π/2]
// domain.
func incompleteEllipticE(k, phi float64) float64 {
	a := math.Remainder(phi-math.Pi/2, math.Pi)
	m := k * k
	if a > 0 {
		return mathext.EllipticE(a, m)
	}
	return -mathext.EllipticE(-a, m)
}
