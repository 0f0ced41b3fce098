package conic

import "math"

// Quadratic is a general conic section in implicit form,
//
//	m0 x² + m1 xy + m2 y² + m3 x + m4 y + m5 = 0
//
// A degenerate value may also hold a linear form m3 x + m4 y + m5 = 0, in
// which case [Quadratic.IsQuadratic] reports false.
type Quadratic struct {
	m         [6]float64
	quadratic bool
}

// NewQuadratic returns the conic with the given implicit coefficients.
func NewQuadratic(m [6]float64) Quadratic {
	quadratic := math.Abs(m[0]) > toleranceStrict ||
		math.Abs(m[1]) > toleranceStrict ||
		math.Abs(m[2]) > toleranceStrict
	return Quadratic{m: m, quadratic: quadratic}
}

// NewLinearForm returns the degenerate conic d x + e y + f = 0.
func NewLinearForm(d, e, f float64) Quadratic {
	return Quadratic{m: [6]float64{0, 0, 0, d, e, f}}
}

// IsQuadratic reports whether the form has any second-order terms.
func (q Quadratic) IsQuadratic() bool {
	return q.quadratic
}

// Coefficients returns the six implicit coefficients.
func (q Quadratic) Coefficients() [6]float64 {
	return q.m
}

// Quad returns the second-order coefficients (a, c, b) of
// a x² + c xy + b y².
func (q Quadratic) Quad() (a, c, b float64) {
	return q.m[0], q.m[1], q.m[2]
}

// Linear returns the first-order coefficients (d, e) of d x + e y.
func (q Quadratic) Linear() (d, e float64) {
	return q.m[3], q.m[4]
}

// ConstTerm returns the constant term.
func (q Quadratic) ConstTerm() float64 {
	return q.m[5]
}

// Transform returns the conic mapped by aff: a point lies on the result iff
// its preimage under aff lies on q.
func (q Quadratic) Transform(aff Affine) Quadratic {
	return q.substitute(aff.Invert())
}

// Move translates the conic by v.
func (q Quadratic) Move(v Vec2) Quadratic {
	return q.substitute(Translate(v.Negate()))
}

// Rotate rotates the conic by th radians about the origin.
func (q Quadratic) Rotate(th float64) Quadratic {
	return q.substitute(Rotate(-th))
}

// Shear maps the conic under (x, y) → (x + k·y, y).
func (q Quadratic) Shear(k float64) Quadratic {
	return q.substitute(Skew(-k, 0))
}

// substitute replaces (x, y) with aff(x, y) in the implicit equation. Mapping
// the curve itself by a transform therefore substitutes the inverse.
func (q Quadratic) substitute(aff Affine) Quadratic {
	a, c, b := q.m[0], q.m[1], q.m[2]
	d, e, f := q.m[3], q.m[4], q.m[5]
	p, s, qq, t, r, u := aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5
	return Quadratic{
		m: [6]float64{
			a*p*p + c*p*s + b*s*s,
			2*a*p*qq + c*(p*t+qq*s) + 2*b*s*t,
			a*qq*qq + c*qq*t + b*t*t,
			2*a*p*r + c*(p*u+r*s) + 2*b*s*u + d*p + e*s,
			2*a*qq*r + c*(qq*u+r*t) + 2*b*t*u + d*qq + e*t,
			a*r*r + c*r*u + b*u*u + d*r + e*u + f,
		},
		quadratic: q.quadratic,
	}
}
