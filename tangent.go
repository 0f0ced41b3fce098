package conic

import "math"

// TangentPoints returns the points on the ellipse whose tangent lines pass
// through the given external point: two for a point outside, one for a point
// on the curve, none for a point inside or a degenerate ellipse.
//
// The ellipse is mapped onto its auxiliary circle by undoing the rotation
// and stretching the minor axis; tangency is preserved by affine maps, so
// the circle's tangent points map back to the answer.
func (e *Ellipse) TangentPoints(point Point) []Point {
	a := e.MajorRadius()
	if a < Tolerance || e.Ratio < Tolerance {
		return nil
	}
	p := point.Sub(e.Center).Rotate(-e.Rotation())
	p.Y /= e.Ratio
	sol := Circle{Radius: a}.TangentPoints(Point(p))
	ret := make([]Point, 0, len(sol))
	for _, s := range sol {
		v := Vec2(s).ScaleXY(Vec(1, e.Ratio)).Rotate(e.Rotation())
		ret = append(ret, e.Center.Translate(v))
	}
	return ret
}

// TangentDirection returns the tangent vector at the point on the ellipse
// nearest to the ray through point, honoring the traversal direction of
// reversed arcs. The zero vector is returned for degenerate ellipses.
func (e *Ellipse) TangentDirection(point Point) Vec2 {
	a := e.MajorRadius()
	if a < Tolerance || e.Ratio < Tolerance {
		return Vec2{}
	}
	vp := point.Sub(e.Center).Rotate(-e.Rotation())
	vp.Y /= e.Ratio
	direction := Circle{Radius: a}.TangentDirection(Point(vp))
	direction.Y *= e.Ratio
	direction = direction.Rotate(e.Rotation())
	if e.Reversed {
		return direction.Negate()
	}
	return direction
}

// LineTangentPoint returns the point where the line u·x + v·y + 1 = 0, given
// in dual coordinates line=(u, v), touches the ellipse. Of the two antipodal
// candidates the one satisfying the line equation more closely is returned.
func (e *Ellipse) LineTangentPoint(line Vec2) Point {
	// rotating coordinates by -a rotates duals by +a
	uv := line.Rotate(-e.Rotation())
	ra := e.MajorRadius()
	// parametric angle where the tangent slope matches the line
	t := math.Atan2(e.Ratio*uv.Y, uv.X)
	vp := Vec(ra*math.Cos(t), ra*e.Ratio*math.Sin(t)).Rotate(e.Rotation())

	vp0 := e.Center.Translate(vp)
	vp1 := e.Center.Translate(vp.Negate())
	residual := func(p Point) float64 {
		return math.Abs(line.Dot(Vec2(p)) + 1)
	}
	if residual(vp0) < residual(vp1) {
		return vp0
	}
	return vp1
}
