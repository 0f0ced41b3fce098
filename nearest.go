package conic

import "math"

// NearestEndpoint returns the arc endpoint closest to coord with its
// distance. ok is false for a whole ellipse, which has no endpoints.
func (e *Ellipse) NearestEndpoint(coord Point) (Point, float64, bool) {
	if !e.isArc {
		return Point{}, 0, false
	}
	start := e.PointAt(e.Angle1)
	end := e.PointAt(e.Angle2)
	d1 := start.DistanceSquared(coord)
	d2 := end.DistanceSquared(coord)
	if d2 < d1 {
		return end, math.Sqrt(d2), true
	}
	return start, math.Sqrt(d1), true
}

// NearestCenter returns whichever of the center and the two foci lies closest
// to coord, with its distance.
func (e *Ellipse) NearestCenter(coord Point) (Point, float64) {
	nearest := e.Center
	dist := coord.Distance(e.Center)
	for _, focus := range e.Foci() {
		if d := coord.Distance(focus); d < dist {
			nearest = focus
			dist = d
		}
	}
	return nearest, dist
}

// closestCosine finds the cosine of the parametric angle minimizing the
// distance from pt to the ellipse (a·cosθ, b·sinθ) by Newton-Raphson on the
// derivative of the squared distance. It is used for near-circular shapes
// and for points near the center, where the quartic is ill-conditioned. The
// second candidate covers the case where the iteration lands on the maximum
// instead of the minimum.
func closestCosine(a, b float64, pt Vec2) [2]float64 {
	c2 := b*b - a*a
	ax2 := 2 * a * pt.X
	by2 := 2 * b * pt.Y
	theta := math.Atan2(pt.Y, pt.X)
	for i := 0; i < 16; i++ {
		d1 := c2*math.Sin(2*theta) + ax2*math.Sin(theta) - by2*math.Cos(theta)
		d2 := 2*c2*math.Cos(2*theta) + ax2*math.Cos(theta) + by2*math.Sin(theta)
		if math.Abs(d2) < Tolerance || math.Abs(d1) < Tolerance {
			break
		}
		theta -= d1 / d2
	}
	cos := math.Cos(theta)
	return [2]float64{cos, -cos}
}

// NearestPoint returns the point on the ellipse closest to coord and its
// distance. With onEntity set, the foot must lie on the arc's angular range;
// when it does not, the nearest endpoint is returned instead.
//
// The foot of the perpendicular satisfies a quartic in the cosine of its
// parametric angle, solved in closed form. Circles and queries at the center
// degenerate the quartic and fall back to a Newton-Raphson search. ok is
// false only when no candidate root survives, in which case coord itself is
// returned.
func (e *Ellipse) NearestPoint(coord Point, onEntity bool) (Point, float64, bool) {
	rel := coord.Sub(e.Center).Rotate(-e.Rotation())
	a := e.MajorRadius()
	b := a * e.Ratio

	twoa2b2 := 2 * (a*a - b*b)
	twoax := 2 * a * rel.X
	twoby := 2 * b * rel.Y
	a0 := twoa2b2 * twoa2b2

	var cosines []float64
	if a0 > Tolerance && math.Abs(e.Ratio-1) > Tolerance && rel.Hypot2() > ToleranceSquared {
		// cosine of the foot angle, monic quartic
		ce0 := -2 * twoax / twoa2b2
		ce1 := (twoax*twoax+twoby*twoby)/a0 - 1
		ce2 := -ce0
		ce3 := -twoax * twoax / a0
		roots, n := SolveQuartic(ce3, ce2, ce1, ce0, 1)
		cosines = roots[:n]
	} else {
		nr := closestCosine(a, b, rel)
		cosines = nr[:]
	}
	if len(cosines) == 0 {
		return coord, math.MaxFloat64, false
	}

	var foot Vec2
	found := false
	best := math.MaxFloat64
	for _, cos := range cosines {
		var sin float64
		if den := twoax - twoa2b2*cos; math.Abs(den) > Tolerance {
			sin = twoby * cos / den
		} else {
			// foot on the minor axis, recover the sine from the curve
			sin = math.Copysign(math.Sqrt(math.Max(0, 1-cos*cos)), twoby)
		}
		// second derivative of the squared distance; negative means a
		// maximum, not the nearest
		d2 := twoa2b2 + (twoax-2*cos*twoa2b2)*cos + twoby*sin
		if d2 < 0 {
			continue
		}
		vp := Vec(a*cos, b*sin)
		if d := vp.Sub(rel).Hypot2(); !found || d < best {
			foot = vp
			best = d
			found = true
		}
	}
	if !found {
		return coord, math.MaxFloat64, false
	}

	dist := math.Sqrt(best)
	ret := e.Center.Translate(foot.Rotate(e.Rotation()))
	if onEntity && !isAngleBetween(e.AngleOf(ret), e.Angle1, e.Angle2, e.Reversed) {
		return e.NearestEndpoint(coord)
	}
	return ret, dist, true
}

// IsPointOn reports whether coord lies on the ellipse or arc, within the
// given tolerance on the squared normalized radius. Degenerate ellipses with
// a negligible radius are treated as segments along the surviving axis.
func (e *Ellipse) IsPointOn(coord Point, tolerance float64) bool {
	t := math.Abs(tolerance)
	a := e.MajorRadius()
	b := a * e.Ratio
	vp := coord.Sub(e.Center).Rotate(-e.Rotation())
	if a < Tolerance {
		return math.Abs(vp.X) < Tolerance && math.Abs(vp.Y) < b
	}
	if b < Tolerance {
		return math.Abs(vp.Y) < Tolerance && math.Abs(vp.X) < a
	}
	vp = vp.ScaleXY(Vec(1/a, 1/b))
	if math.Abs(vp.Hypot2()-1) > t {
		return false
	}
	return isAngleBetween(vp.Angle(), e.Angle1, e.Angle2, e.Reversed)
}

// nearestDistEnd finds the new end point of the arc after its length changed
// by trimAmount, picking the end to move by whichever endpoint lies closer
// to coord. The receiver must be normalized. The target angle is found by
// Halley iteration on the arc-length function, whose first two derivatives
// are analytic.
func (e Ellipse) nearestDistEnd(trimAmount float64, coord Point) Point {
	x1 := e.Angle1
	ra := e.MajorRadius()
	k2 := 1 - e.Ratio*e.Ratio
	k2ra := k2 * ra

	wholeLength := e.arcLength(0, 0)
	trimmed := e.length + trimAmount

	start := e.PointAt(e.Angle1)
	end := e.PointAt(e.Angle2)
	trimEnd := coord.DistanceSquared(start) <= coord.DistanceSquared(end)
	if trimEnd {
		if trimAmount > 0 {
			trimmed = wholeLength - trimAmount
		} else {
			trimmed = -trimAmount
		}
	}

	f := func(z float64) (float64, float64, float64) {
		cz := math.Cos(z)
		sz := math.Sin(z)
		d := math.Sqrt(1 - k2*sz*sz)
		return e.arcLength(x1, z) - trimmed, ra * d, k2ra * sz * cz / d
	}
	sol := halleyIterate(f, x1+math.Pi, x1, x1+2*math.Pi-ToleranceAngle, Tolerance)
	return e.PointAt(sol)
}

// NearestDist returns the point on the arc at the given arc-length distance
// from one of its endpoints, choosing the endpoint nearest to coord, along
// with the distance from the result to coord. ok is false for whole
// ellipses, for negligible sizes and when distance exceeds the arc length.
func (e *Ellipse) NearestDist(distance float64, coord Point) (Point, float64, bool) {
	if !e.isArc {
		// no endpoints to measure from
		return Point{}, 0, false
	}
	n := e.normalized()
	if n.MajorRadius() < Tolerance {
		return Point{}, 0, false
	}
	if e.Ratio < Tolerance {
		// degenerate, treat as a segment between the extreme points
		line := Line{P0: e.bbox.Min(), P1: e.bbox.Max()}
		pt, d := line.PointAtDist(distance, coord)
		return pt, d, true
	}
	x1 := n.Angle1
	x2 := n.Angle2
	if x2 < x1+ToleranceAngle {
		x2 += 2 * math.Pi
	}
	l0 := n.arcLength(x1, x2)
	if distance > l0+Tolerance {
		// cannot trim more than the current length
		return Point{}, 0, false
	}
	if distance > l0-Tolerance {
		return e.NearestEndpoint(coord)
	}
	// length after trimming changed by distance
	pt := n.nearestDistEnd(distance, coord)
	return pt, pt.Distance(coord), true
}

// MiddlePoint returns the middle point of the arc, or ok false for a whole
// ellipse. The middle is angular, not an exact arc-length bisection.
func (e *Ellipse) MiddlePoint() (Point, bool) {
	pt, _, ok := e.NearestMiddle(e.Center, 1)
	return pt, ok
}

// NearestMiddle returns the equidistant division point closest to coord,
// dividing the arc into middlePoints+1 parts by the polar angle seen from
// the center. The endpoints themselves are never returned. ok is false for
// a whole ellipse.
func (e *Ellipse) NearestMiddle(coord Point, middlePoints int) (Point, float64, bool) {
	if !e.isArc {
		return Point{}, 0, false
	}
	ra := e.MajorRadius()
	rb := e.Ratio * ra
	if ra < Tolerance || rb < Tolerance {
		return e.Center, e.Center.Distance(coord), true
	}
	start := e.PointAt(e.Angle1)
	end := e.PointAt(e.Angle2)
	amin := start.Sub(e.Center).Angle()
	amax := end.Sub(e.Center).Angle()
	if e.Reversed {
		amin, amax = amax, amin
	}
	da := math.Mod(amax-amin+2*math.Pi, 2*math.Pi)
	if da < Tolerance {
		da = 2 * math.Pi
	}
	vp, _, _ := e.NearestPoint(coord, true)
	a := vp.Sub(e.Center).Angle()
	counts := middlePoints + 1
	i := int(math.Mod(a-amin+2*math.Pi, 2*math.Pi)/da*float64(counts) + 0.5)
	i = max(i, 1)
	i = min(i, counts-1)
	// polar direction of the division point, then projected back onto
	// the ellipse
	a = amin + da*(float64(i)/float64(counts)) - e.Rotation()
	dir := VecFromAngle(a)
	scaled := dir.ScaleXY(Vec(1/ra, 1/rb))
	foot := dir.Mul(1 / scaled.Hypot()).Rotate(e.Rotation())
	ret := e.Center.Translate(foot)
	return ret, ret.Distance(coord), true
}

// NearestOrthTangent returns the point on the ellipse whose tangent is
// orthogonal to the direction of normal. With onEntity set the point must
// lie on the arc's angular range. When the range admits both antipodal
// candidates, the one on coord's side of the center wins. ok is false when
// the direction is degenerate or no candidate lies on the arc.
func (e *Ellipse) NearestOrthTangent(coord Point, normal Line, onEntity bool) (Point, bool) {
	direction := normal.P1.Sub(normal.P0)
	if direction.Hypot2() < toleranceStrict {
		return Point{}, false
	}
	direction = direction.Rotate(-e.Rotation())
	angle := direction.ScaleXY(Vec(1, e.Ratio)).Angle()
	ra := e.MajorRadius()

	base := Vec(ra*math.Cos(angle), e.Ratio*ra*math.Sin(angle))
	var sol []Vec2
	for i := 0; i < 2; i++ {
		if !onEntity || isAngleBetween(angle, e.Angle1, e.Angle2, e.Reversed) {
			if i == 0 {
				sol = append(sol, base)
			} else {
				sol = append(sol, base.Negate())
			}
		}
		angle = normAngle(angle + math.Pi)
	}
	if len(sol) == 0 {
		return Point{}, false
	}
	for i := range sol {
		sol[i] = sol[i].Rotate(e.Rotation())
	}
	vp := sol[0]
	if len(sol) == 2 && sol[1].Dot(coord.Sub(e.Center)) > 0 {
		vp = sol[1]
	}
	return e.Center.Translate(vp), true
}
