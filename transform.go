package conic

import "math"

// Move translates the ellipse by offset.
func (e *Ellipse) Move(offset Vec2) {
	e.Center = e.Center.Translate(offset)
	e.Update()
}

// Rotate rotates the ellipse around the origin.
func (e *Ellipse) Rotate(angle float64) {
	e.RotateAroundBy(Point{}, VecFromAngle(angle))
}

// RotateAround rotates the ellipse around pivot.
func (e *Ellipse) RotateAround(pivot Point, angle float64) {
	e.RotateAroundBy(pivot, VecFromAngle(angle))
}

// RotateAroundBy rotates the ellipse around pivot by the direction vector
// dir, which must be unit length.
func (e *Ellipse) RotateAroundBy(pivot Point, dir Vec2) {
	e.Center = pivot.Translate(e.Center.Sub(pivot).RotateBy(dir))
	e.MajorP = e.MajorP.RotateBy(dir)
	e.Update()
}

// RevertDirection swaps the traversal direction of the arc, keeping the same
// point set. Whole ellipses are unaffected.
func (e *Ellipse) RevertDirection() {
	if !e.isArc {
		return
	}
	e.Angle1, e.Angle2 = e.Angle2, e.Angle1
	e.Reversed = !e.Reversed
	e.Update()
}

// Scale scales the ellipse around pivot by the per-axis factors, allowing
// anisotropic factors that change the axes and rotation.
//
// The scaled shape is still an ellipse; its axes are recovered from the
// eigen system of the squared-radius extremes. A negative factor mirrors and
// flips the traversal direction. Arcs carry their endpoints through the
// scaling and re-derive the angles from them.
func (e *Ellipse) Scale(pivot Point, factor Vec2) {
	var vpStart, vpEnd Point
	if e.isArc {
		vpStart = e.PointAt(e.Angle1).ScaleAround(pivot, factor)
		vpEnd = e.PointAt(e.Angle2).ScaleAround(pivot, factor)
	}
	e.Center = e.Center.ScaleAround(pivot, factor)
	vp1 := e.MajorP
	a := vp1.Hypot()
	if a < Tolerance {
		return
	}
	vp1 = vp1.Mul(1 / a)
	ct := vp1.X
	ct2 := ct * ct
	st := vp1.Y
	st2 := 1 - ct2
	kx2 := factor.X * factor.X
	ky2 := factor.Y * factor.Y
	b := e.Ratio * a
	cA := 0.5 * a * a * (kx2*ct2 + ky2*st2)
	cB := 0.5 * b * b * (kx2*st2 + ky2*ct2)
	cC := a * b * ct * st * (ky2 - kx2)
	if factor.X < 0 {
		e.Reversed = !e.Reversed
	}
	if factor.Y < 0 {
		e.Reversed = !e.Reversed
	}
	vp := Vec(cA-cB, cC)
	half := 0.5 * vp.Angle()
	e.MajorP = Vec(a*math.Cos(half), b*math.Sin(half)).RotateBy(Vec(ct, st)).ScaleXY(factor)
	sum := cA + cB
	mag := vp.Hypot()
	e.Ratio = math.Sqrt((sum - mag) / (sum + mag))
	if e.isArc {
		e.Angle1 = e.AngleOf(vpStart)
		e.Angle2 = e.AngleOf(vpEnd)
		e.correctAngles()
	}
	e.Update()
}

// Mirror reflects the ellipse across the axis through p1 and p2. The
// traversal direction flips, so arcs keep their point set.
func (e *Ellipse) Mirror(p1, p2 Point) {
	refl := Reflect(p1, p2.Sub(p1))
	var start, end Point
	if e.isArc {
		start = e.PointAt(e.Angle1)
		end = e.PointAt(e.Angle2)
	}
	center := e.Center.Transform(refl)
	majorPoint := e.MajorPoint().Transform(refl)
	e.Center = center
	e.Reversed = !e.Reversed
	e.MajorP = majorPoint.Sub(center)
	if e.isArc {
		e.Angle1 = e.AngleOf(start.Transform(refl))
		e.Angle2 = e.AngleOf(end.Transform(refl))
		e.correctAngles()
	}
	e.Update()
}

// Shear applies the horizontal shear x → x + k·y, routing the shape through
// its implicit conic and carrying arc endpoints through the map. It reports
// false when the sheared conic fails to reconstruct, leaving the ellipse
// untouched.
func (e *Ellipse) Shear(k float64) bool {
	return e.applyConic(e.Quadratic().Shear(k), Skew(k, 0))
}

// Transform applies an arbitrary invertible affine map. Maps with a negative
// determinant reverse orientation and flip the traversal direction. It
// reports false when the transformed conic fails to reconstruct (a singular
// map), leaving the ellipse untouched.
func (e *Ellipse) Transform(aff Affine) bool {
	return e.applyConic(e.Quadratic().Transform(aff), aff)
}

// applyConic rebuilds the ellipse from a transformed implicit conic and maps
// the arc endpoints through the same affine.
func (e *Ellipse) applyConic(q Quadratic, aff Affine) bool {
	e1, ok := NewEllipseFromQuadratic(q)
	if !ok {
		return false
	}
	e1.Reversed = e.Reversed
	if aff.Determinant() < 0 {
		e1.Reversed = !e1.Reversed
	}
	if e.isArc {
		start := e.PointAt(e.Angle1).Transform(aff)
		end := e.PointAt(e.Angle2).Transform(aff)
		e1.MoveStart(start)
		e1.MoveEnd(end)
	}
	*e = *e1
	return true
}
