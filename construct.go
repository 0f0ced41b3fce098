package conic

import "math"

// NewEllipseFrom4Points returns the axis-aligned ellipse through the four
// given points, found by solving the linear system
// c0·x² + c1·x + c2·y² + c3·y = 1. ok is false when the points do not
// determine an ellipse (singular system, or a degenerate/non-elliptic
// solution).
func NewEllipseFrom4Points(points [4]Point) (*Ellipse, bool) {
	mt := make([][]float64, 4)
	for i, p := range points {
		mt[i] = []float64{p.X * p.X, p.X, p.Y * p.Y, p.Y, 1}
	}
	dn, ok := solveLinear(mt)
	if !ok {
		return nil, false
	}
	d := 1 + 0.25*(dn[1]*dn[1]/dn[0]+dn[3]*dn[3]/dn[2])
	if math.Abs(dn[0]) < toleranceStrict ||
		math.Abs(dn[2]) < toleranceStrict ||
		d/dn[0] < toleranceStrict ||
		d/dn[2] < toleranceStrict {
		return nil, false
	}
	center := Pt(-0.5*dn[1]/dn[0], -0.5*dn[3]/dn[2])
	e := NewEllipse(center, Vec(math.Sqrt(d/dn[0]), 0), math.Sqrt(dn[0]/dn[2]))
	if e.Ratio > 1 {
		// canonical form names the longer axis as major
		e.SwitchMajorMinor()
	}
	return e, true
}

// NewEllipseFromCenter3Points returns the ellipse with the given center
// passing through the given points. Three points determine a general
// (rotated) ellipse; when the last two coincide the duplicate is dropped and
// the two remaining points determine an axis-aligned one. ok is false when
// the points do not determine an ellipse.
func NewEllipseFromCenter3Points(center Point, points []Point) (*Ellipse, bool) {
	if len(points) < 2 {
		return nil, false
	}
	n := len(points)
	if n >= 2 && points[n-1].DistanceSquared(points[n-2]) < toleranceStrict {
		n--
	}
	switch n {
	case 2:
		mt := make([][]float64, 2)
		for i := 0; i < 2; i++ {
			vp := points[i].Sub(center)
			mt[i] = []float64{vp.X * vp.X, vp.Y * vp.Y, 1}
		}
		dn, ok := solveLinear(mt)
		if !ok {
			return nil, false
		}
		if dn[0] < toleranceStrict || dn[1] < toleranceStrict {
			return nil, false
		}
		return NewEllipse(center, Vec(1/math.Sqrt(dn[0]), 0), math.Sqrt(dn[0]/dn[1])), true
	case 3:
		mt := make([][]float64, 3)
		for i := 0; i < 3; i++ {
			vp := points[i].Sub(center)
			mt[i] = []float64{vp.X * vp.X, vp.X * vp.Y, vp.Y * vp.Y, 1}
		}
		dn, ok := solveLinear(mt)
		if !ok {
			return nil, false
		}
		e := &Ellipse{Center: center}
		if !e.setFromQuadCoeffs([3]float64{dn[0], dn[1], dn[2]}) {
			return nil, false
		}
		e.Update()
		return e, true
	default:
		return nil, false
	}
}

// setFromQuadCoeffs sets the axes from the centered quadratic form
// dn[0]·x² + dn[1]·xy + dn[2]·y² = 1, leaving the center untouched and
// producing a whole ellipse. The major axis is the eigenvector of the
// smaller eigenvalue of the form's matrix. It reports false when an
// eigenvalue is not positive, i.e. the conic is not an ellipse. The caller
// must invoke Update afterwards.
func (e *Ellipse) setFromQuadCoeffs(dn [3]float64) bool {
	a := dn[0]
	c := dn[1]
	b := dn[2]
	d := a - b
	s := math.Hypot(d, c)
	if s >= a+b {
		return false
	}
	scale := 1 / math.Sqrt(0.5*(a+b-s))
	if a >= b {
		e.MajorP = VecFromAngle(math.Atan2(d+s, -c)).Mul(scale)
	} else {
		e.MajorP = VecFromAngle(math.Atan2(-c, s-d)).Mul(scale)
	}
	e.Ratio = math.Sqrt((a + b - s) / (a + b + s))
	e.Angle1 = 0
	e.Angle2 = 0
	e.Reversed = false
	return true
}

// NewEllipseFromQuadratic returns the whole ellipse described by the
// implicit conic q. ok is false when q is not a quadratic, or describes a
// non-elliptic or degenerate conic.
func NewEllipseFromQuadratic(q Quadratic) (*Ellipse, bool) {
	if !q.IsQuadratic() {
		return nil, false
	}
	a, c, b := q.Quad()
	d, f := q.Linear()
	determinant := c*c - 4*a*b
	// the negated comparison also rejects NaN from singular transforms
	if !(determinant < -dblEpsilon) {
		return nil, false
	}
	// the stationary point of the form, from 2Ax + Cy = D, Cx + 2By = E
	center := Pt((2*b*d-f*c)/determinant, (2*a*f-d*c)/determinant)
	centered := q.Move(Vec2(center).Negate())
	if !(centered.ConstTerm() < -dblEpsilon) {
		return nil, false
	}
	factor := -1 / centered.ConstTerm()
	ca, cc, cb := centered.Quad()
	e := &Ellipse{}
	if !e.setFromQuadCoeffs([3]float64{ca * factor, cc * factor, cb * factor}) {
		return nil, false
	}
	e.Center = center
	e.Update()
	return e, true
}

const dblEpsilon = 2.220446049250313e-16

// quadrilateralVertices orders the four given infinite lines into a closed
// simple quadrilateral and returns its vertices in cyclic order, vertex i
// being the crossing of edge i and edge i+1. Of the three ways to pair the
// lines into opposite sides only one yields a convex polygon; parallel
// lines must end up as opposite sides since they never cross.
func quadrilateralVertices(lines [4]Line) ([4]Point, bool) {
	orders := [3][4]int{{0, 1, 2, 3}, {0, 2, 1, 3}, {0, 1, 3, 2}}
	for _, ord := range orders {
		var v [4]Point
		ok := true
		for i := 0; i < 4; i++ {
			p, has := lines[ord[i]].CrossingPoint(lines[ord[(i+1)%4]])
			if !has {
				ok = false
				break
			}
			v[i] = p
		}
		if ok && isConvexQuad(v) {
			return v, true
		}
	}
	return [4]Point{}, false
}

func isConvexQuad(v [4]Point) bool {
	sign := 0.0
	for i := 0; i < 4; i++ {
		e1 := v[(i+1)%4].Sub(v[i])
		e2 := v[(i+2)%4].Sub(v[(i+1)%4])
		cross := e1.Cross(e2)
		if math.Abs(cross) < toleranceStrict {
			return false
		}
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			return false
		}
	}
	return true
}

// NewEllipseInscribedInQuad returns the ellipse inscribed in the
// quadrilateral bounded by the four given lines, touching all four sides.
//
// The tangent points are located through the projective center (the crossing
// of the diagonals); the generic case then solves a quadratic form through
// three of them. A quadrilateral with exactly one pair of parallel sides
// admits an inscribed ellipse only when it is an isosceles trapezoid, solved
// in closed form; a parallelogram leaves just two independent tangency
// constraints and is handled by normalizing the major direction first. ok is
// false for quadrilaterals with no inscribed ellipse.
func NewEllipseInscribedInQuad(lines [4]Line) (*Ellipse, bool) {
	vertices, ok := quadrilateralVertices(lines)
	if !ok {
		return nil, false
	}
	var quad [4]Line
	for i := 0; i < 4; i++ {
		quad[i] = Line{P0: vertices[i], P1: vertices[(i+1)%4]}
	}

	// crossing of the diagonals
	diag0 := Line{P0: quad[0].P0, P1: quad[1].P1}
	diag1 := Line{P0: quad[1].P0, P1: quad[2].P1}
	centerProjection, ok := diag0.CrossingPoint(diag1)
	if !ok {
		return nil, false
	}

	var tangent []Point
	parallel := 0
	parallelIndex := 0
	for i := 0; i <= 1; i++ {
		var direction Vec2
		if cross, has := quad[i].CrossingPoint(quad[(i+2)%4]); has {
			direction = cross.Sub(centerProjection)
		} else {
			direction = quad[i].P1.Sub(quad[i].P0)
			parallel++
			parallelIndex = i
		}
		l := Line{P0: centerProjection, P1: centerProjection.Translate(direction)}
		for k := 1; k <= 3; k += 2 {
			if p, has := l.CrossingPoint(quad[(i+k)%4]); has {
				tangent = append(tangent, p)
			}
		}
	}
	if len(tangent) < 3 {
		return nil, false
	}

	// center by projection from opposite vertices through tangent midpoints
	cl0 := Line{P0: quad[1].P1, P1: tangent[0].Midpoint(tangent[2])}
	cl1 := Line{P0: quad[2].P1, P1: tangent[1].Midpoint(tangent[2])}
	ellipseCenter, ok := cl0.CrossingPoint(cl1)
	if !ok {
		return nil, false
	}

	if parallel == 1 {
		return inscribedInTrapezoid(quad[parallelIndex], quad[(parallelIndex+2)%4])
	}

	for i := range tangent {
		tangent[i] = Point(tangent[i].Sub(ellipseCenter))
	}

	// rows of the quadratic-form system; tangent points symmetric about
	// the center contribute identical rows and must be removed
	var mt [][]float64
	const symTolerance = 20 * Tolerance
	for _, vp := range tangent {
		row := []float64{vp.X * vp.X, vp.X * vp.Y, vp.Y * vp.Y}
		l := math.Hypot(math.Hypot(row[0], row[1]), row[2])
		addRow := true
		for _, v := range mt {
			dv := math.Hypot(math.Hypot(v[0]-row[0], v[1]-row[1]), v[2]-row[2])
			if dv < symTolerance*l {
				addRow = false
				break
			}
		}
		if addRow {
			mt = append(mt, append(row, 1))
		}
	}

	var dn []float64
	var angleVector Vec2
	rotateBack := false
	switch len(mt) {
	case 2:
		// parallelogram: normalize the direction of the first tangent
		// point, solve the axis-aligned sheared form, rotate back
		majorP := Vec2(tangent[0])
		dx := majorP.Hypot()
		if dx < ToleranceSquared {
			return nil, false
		}
		angleVector = Vec(majorP.X/dx, -majorP.Y/dx)
		for i := range tangent {
			tangent[i] = Point(Vec2(tangent[i]).RotateBy(angleVector))
		}
		minorP := Vec2(tangent[2])
		if math.Abs(minorP.Y) < Tolerance || minorP.Hypot2() < ToleranceSquared {
			return nil, false
		}
		ia2 := 1 / (dx * dx)
		ib2 := 1 / (minorP.Y * minorP.Y)
		dn = []float64{ia2, -2 * ia2 * minorP.X / minorP.Y, ib2*ia2*minorP.X*minorP.X + ib2}
		rotateBack = true
	case 4:
		mt = mt[:3]
		var ok bool
		dn, ok = solveLinear(mt)
		if !ok {
			return nil, false
		}
	default:
		return nil, false
	}

	e := &Ellipse{}
	if !e.setFromQuadCoeffs([3]float64{dn[0], dn[1], dn[2]}) {
		return nil, false
	}
	e.Center = ellipseCenter
	e.Update()
	if rotateBack {
		angleVector.Y = -angleVector.Y
		e.RotateAroundBy(ellipseCenter, angleVector)
	}
	return e, true
}

// inscribedInTrapezoid solves the closed-form inscribed ellipse of an
// isosceles trapezoid with parallel sides l0 and l1.
func inscribedInTrapezoid(l0, l1 Line) (*Ellipse, bool) {
	centerPoint := l0.Midpoint().Midpoint(l1.Midpoint())
	// an asymmetric trapezoid has no inscribed ellipse
	if math.Abs(centerPoint.Distance(l0.P0)-centerPoint.Distance(l0.P1)) > Tolerance {
		return nil, false
	}
	d := l0.DistanceToPoint(centerPoint)
	l := (l0.Length() + l1.Length()) * 0.25
	k := 4 * d / math.Abs(l0.Length()-l1.Length())
	theta := d / (l * k)
	if theta >= 1 || d < Tolerance {
		return nil, false
	}
	theta = math.Asin(theta)

	a := d / (k * math.Tan(theta))
	e := NewEllipse(Point{}, Vec(a, 0), d/a)
	e.Rotate(l0.Angle())
	e.Center = centerPoint
	e.Update()
	return e, true
}
