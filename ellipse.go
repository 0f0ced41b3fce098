package conic

import (
	"fmt"
	"math"
)

// Ellipse is a full ellipse or an elliptic arc in canonical form.
//
// Start, end and every other angle exposed by this type are parametric
// angles: the parameter θ of (majorRadius·cosθ, minorRadius·sinθ) before
// rotation and translation, which is not the polar angle of the resulting
// point unless the ellipse is a circle.
//
// The exported fields may be set directly, but every direct mutation must be
// followed by a call to [Ellipse.Update] before any derived quantity
// (bounding box, arc length, degree fields) is queried. The mutating methods
// of this package do that themselves.
type Ellipse struct {
	// Center of the ellipse.
	Center Point
	// MajorP points from the center to one endpoint of the major axis. Its
	// magnitude is the major radius and its angle the ellipse's rotation.
	MajorP Vec2
	// Ratio is the minor/major radius ratio. It is never negative; values
	// above 1 are legal and mean the named axes are swapped.
	Ratio float64
	// Angle1 and Angle2 are the start and end parametric angles of the
	// arc. Both being exactly zero denotes a whole ellipse.
	Angle1 float64
	Angle2 float64
	// Reversed arcs are traversed from Angle2 to Angle1.
	Reversed bool

	// Derived state, valid only immediately after Update.
	isArc            bool
	angleDeg         float64
	startAngleDeg    float64
	otherAngleDeg    float64
	angularLengthDeg float64
	bbox             Rect
	length           float64
}

// NewEllipse returns a whole ellipse with the given center, major axis vector
// and minor/major radius ratio.
func NewEllipse(center Point, majorP Vec2, ratio float64) *Ellipse {
	return NewEllipseArc(center, majorP, ratio, 0, 0, false)
}

// NewEllipseArc returns an elliptic arc between the parametric angles angle1
// and angle2, traversed from angle2 to angle1 when reversed is set. Both
// angles being (negligibly close to) zero produces a whole ellipse.
func NewEllipseArc(center Point, majorP Vec2, ratio float64, angle1, angle2 float64, reversed bool) *Ellipse {
	e := &Ellipse{
		Center:   center,
		MajorP:   majorP,
		Ratio:    ratio,
		Angle1:   angle1,
		Angle2:   angle2,
		Reversed: reversed,
	}
	e.Update()
	return e
}

// Update recomputes all derived state from the primary fields. It is the
// single recomputation entry point: every mutating operation ends here.
func (e *Ellipse) Update() {
	if math.Abs(e.Angle1) < ToleranceAngle && math.Abs(e.Angle2) < ToleranceAngle {
		e.Angle1 = 0
		e.Angle2 = 0
	}
	e.isArc = e.Angle1 != 0 || e.Angle2 != 0

	e.bbox = e.bounds()

	e.angleDeg = rad2deg(e.Rotation())
	if e.Reversed {
		e.startAngleDeg = rad2deg(e.Angle2)
		e.otherAngleDeg = rad2deg(e.Angle1)
	} else {
		e.startAngleDeg = rad2deg(e.Angle1)
		e.otherAngleDeg = rad2deg(e.Angle2)
	}
	e.angularLengthDeg = rad2deg(angleDiff(e.Angle1, e.Angle2, e.Reversed))
	if math.Abs(e.angularLengthDeg) < rad2deg(ToleranceAngle) &&
		periodsCount(e.Angle1, e.Angle2, e.Reversed) != 0 {
		e.angularLengthDeg = 360
	}

	n := e.normalized()
	e.length = n.arcLength(n.Angle1, n.Angle2)
}

// bounds returns the tightest axis-aligned box containing the arc or whole
// ellipse. It is a pure function of the primary fields and isArc; it never
// triggers recomputation.
func (e *Ellipse) bounds() Rect {
	var box Rect
	var has bool
	merge := func(pt Point) {
		if !has {
			box = NewRectFromPoints(pt, pt)
			has = true
		} else {
			box = box.UnionPoint(pt)
		}
	}
	if e.isArc {
		merge(e.PointAt(e.Angle1))
		merge(e.PointAt(e.Angle2))
	}
	// The parametric angles of the x- and y-extremes are the polar angles
	// of these two directions and their opposites.
	dirs := [2]Vec2{
		{X: e.MajorP.X, Y: -e.Ratio * e.MajorP.Y},
		{X: e.MajorP.Y, Y: e.Ratio * e.MajorP.X},
	}
	for _, dir := range dirs {
		a := dir.Angle()
		for _, th := range [2]float64{a, a + math.Pi} {
			if isAngleBetween(th, e.Angle1, e.Angle2, e.Reversed) {
				merge(e.PointAt(th))
			}
		}
	}
	return box
}

// IsArc reports whether the value describes an arc rather than a whole
// ellipse.
func (e *Ellipse) IsArc() bool {
	return e.isArc
}

// Rotation returns the rotation of the major axis, in radians.
func (e *Ellipse) Rotation() float64 {
	return e.MajorP.Angle()
}

// MajorRadius returns the magnitude of the major axis vector.
func (e *Ellipse) MajorRadius() float64 {
	return e.MajorP.Hypot()
}

// MinorRadius returns the minor radius.
func (e *Ellipse) MinorRadius() float64 {
	return e.MajorP.Hypot() * e.Ratio
}

// MajorPoint returns the endpoint of the major axis the MajorP vector points
// at.
func (e *Ellipse) MajorPoint() Point {
	return e.Center.Translate(e.MajorP)
}

// MinorPoint returns the endpoint of the minor axis at +π/2 from MajorP.
func (e *Ellipse) MinorPoint() Point {
	return e.Center.Translate(e.MajorP.Orthogonal().Mul(e.Ratio))
}

// PointAt maps a parametric angle to a coordinate. It is the single source of
// truth for that mapping; every other query goes through it.
func (e *Ellipse) PointAt(a float64) Point {
	ra := e.MajorRadius()
	p := VecFromAngle(a).ScaleXY(Vec(ra, ra*e.Ratio)).Rotate(e.Rotation())
	return e.Center.Translate(p)
}

// AngleOf is the inverse of [Ellipse.PointAt]: it returns the parametric
// angle of a coordinate (which need not lie on the curve; the angle of its
// ray from the center in the scaled frame is returned).
func (e *Ellipse) AngleOf(pos Point) float64 {
	m := pos.Sub(e.Center).Rotate(-e.Rotation())
	m.X *= e.Ratio
	return m.Angle()
}

// Start returns the start point of the arc. ok is false for a whole ellipse,
// which has no defined start.
func (e *Ellipse) Start() (Point, bool) {
	if !e.isArc {
		return Point{}, false
	}
	return e.PointAt(e.Angle1), true
}

// End returns the end point of the arc. ok is false for a whole ellipse.
func (e *Ellipse) End() (Point, bool) {
	if !e.isArc {
		return Point{}, false
	}
	return e.PointAt(e.Angle2), true
}

// Foci returns the two focal points.
func (e *Ellipse) Foci() [2]Point {
	n := *e
	if n.Ratio > 1 {
		n, _ = n.switched()
	}
	vp := n.MajorP.Mul(math.Sqrt(1 - n.Ratio*n.Ratio))
	return [2]Point{
		e.Center.Translate(vp),
		e.Center.Translate(vp.Negate()),
	}
}

// RefPoints returns the control handles of the entity: start and end point
// (arcs only), center, foci, major and minor points.
func (e *Ellipse) RefPoints() []Point {
	var pts []Point
	if start, ok := e.Start(); ok {
		end, _ := e.End()
		pts = append(pts, start, end)
	}
	pts = append(pts, e.Center)
	foci := e.Foci()
	pts = append(pts, foci[0], foci[1])
	return append(pts, e.MajorPoint(), e.MinorPoint())
}

// AngularLength returns the angle swept by the arc, in (0, 2π]. Coincident
// start and end angles describe a full loop, not an empty arc.
func (e *Ellipse) AngularLength() float64 {
	ret := angleDiff(e.Angle1, e.Angle2, e.Reversed)
	if math.Abs(math.Remainder(ret, 2*math.Pi)) < ToleranceAngle {
		ret = 2 * math.Pi
	}
	return ret
}

// AngleDegrees returns the cached rotation of the major axis in degrees.
func (e *Ellipse) AngleDegrees() float64 { return e.angleDeg }

// StartAngleDegrees returns the cached traversal start angle in degrees,
// honoring direction reversal.
func (e *Ellipse) StartAngleDegrees() float64 { return e.startAngleDeg }

// OtherAngleDegrees returns the cached traversal end angle in degrees,
// honoring direction reversal.
func (e *Ellipse) OtherAngleDegrees() float64 { return e.otherAngleDeg }

// AngularLengthDegrees returns the cached angular length in degrees.
func (e *Ellipse) AngularLengthDegrees() float64 { return e.angularLengthDeg }

// BoundingBox returns the cached tight axis-aligned bounding box of the
// ellipse or arc.
func (e *Ellipse) BoundingBox() Rect {
	return e.bbox
}

// Length returns the cached arc length of the arc, or the perimeter of a
// whole ellipse.
func (e *Ellipse) Length() float64 {
	return e.length
}

// Area returns the area of the whole ellipse.
func (e *Ellipse) Area() float64 {
	return math.Pi * e.MajorRadius() * e.MinorRadius()
}

// AreaLineIntegral returns the line integral ∮ x dy along the entity, the
// per-entity contribution to a contour area computed by Green's theorem.
func (e *Ellipse) AreaLineIntegral() float64 {
	a := e.MajorRadius()
	b := e.MinorRadius()
	if !e.isArc {
		return math.Pi * a * b
	}
	ab := a * b
	r2 := a*a + b*b
	cx := e.Center.X
	aE := e.Rotation()
	start, _ := e.Start()
	end, _ := e.End()
	at := func(y, th float64) float64 {
		cos := math.Cos(th)
		sinAE := math.Sin(aE)
		return cx*y + 0.25*r2*math.Sin(2*aE)*cos*cos -
			0.25*ab*(2*sinAE*sinAE*math.Sin(2*th)-math.Sin(2*th))
	}
	f := at(end.Y, e.Angle2) - at(start.Y, e.Angle1)
	if e.Reversed {
		return f - 0.5*ab*e.AngularLength()
	}
	return f + 0.5*ab*e.AngularLength()
}

// arcLength returns the arc length between the parametric angles x1 and x2.
//
// The receiver must be normalized: Ratio ≤ 1 and not reversed. Use
// [Ellipse.normalized] first. The angular span is decomposed into whole
// half-periods, measured by the complete integral, plus a residual measured
// by the incomplete one; this sidesteps the incomplete integral's domain
// restriction and handles arcs spanning several half-turns.
func (e Ellipse) arcLength(x1, x2 float64) float64 {
	a := e.MajorRadius()
	k := math.Sqrt(1 - e.Ratio*e.Ratio)
	x1 = normAngle(x1)
	x2 = normAngle(x2)
	if x2 < x1+ToleranceAngle {
		x2 += 2 * math.Pi
	}
	ret := 0.0
	if x2 >= math.Pi {
		halves := int((x2+ToleranceAngle)/math.Pi) - int((x1+ToleranceAngle)/math.Pi)
		ret = float64(2*halves) * completeEllipticE(k)
	}
	x1 = math.Mod(x1, math.Pi)
	x2 = math.Mod(x2, math.Pi)
	if math.Abs(x2-x1) > ToleranceAngle {
		ret += incompleteEllipticE(k, x2) - incompleteEllipticE(k, x1)
	}
	return a * ret
}

// ArcLength returns the arc length between two parametric angles, measured
// along the increasing-angle direction. The value itself may have any ratio
// or traversal direction; normalization happens on a copy.
func (e *Ellipse) ArcLength(x1, x2 float64) float64 {
	n := e.normalized()
	if n.Ratio != e.Ratio {
		// The axes were swapped; parametric angles shift by π/2.
		x1 -= math.Pi / 2
		x2 -= math.Pi / 2
	}
	return n.arcLength(x1, x2)
}

// normalized returns a value copy with Ratio ≤ 1 and non-reversed traversal,
// as required by arcLength. Derived fields of the copy other than isArc are
// not maintained.
func (e Ellipse) normalized() Ellipse {
	n := e
	if n.Ratio > 1 {
		n, _ = n.switched()
	}
	if n.Reversed {
		n.Angle1, n.Angle2 = n.Angle2, n.Angle1
		n.Reversed = false
	}
	return n
}

// switched returns a copy with the major/minor axis naming exchanged. It
// reports false when the ratio is too small to invert.
func (e Ellipse) switched() (Ellipse, bool) {
	if math.Abs(e.Ratio) < Tolerance {
		return e, false
	}
	var start, end Point
	if e.isArc {
		start = e.PointAt(e.Angle1)
		end = e.PointAt(e.Angle2)
	}
	// Direction π/2 relative to the old major axis.
	e.MajorP = Vec2{X: -e.Ratio * e.MajorP.Y, Y: e.Ratio * e.MajorP.X}
	e.Ratio = 1 / e.Ratio
	if e.isArc {
		e.Angle1 = e.AngleOf(start)
		e.Angle2 = e.AngleOf(end)
	}
	return e, true
}

// SwitchMajorMinor exchanges the major/minor axis naming in place, keeping
// the same point set. It reports false (and leaves the value untouched) when
// the ratio is negligible.
func (e *Ellipse) SwitchMajorMinor() bool {
	n, ok := e.switched()
	if !ok {
		return false
	}
	*e = n
	e.Update()
	return true
}

// StartTangentAngle returns the direction of the tangent pointing out of the
// arc at its start point.
func (e *Ellipse) StartTangentAngle() float64 {
	var vp Vec2
	if e.Reversed {
		vp = Vec(math.Sin(e.Angle1), -e.Ratio*math.Cos(e.Angle1))
	} else {
		vp = Vec(-math.Sin(e.Angle1), e.Ratio*math.Cos(e.Angle1))
	}
	return vp.Angle() + e.Rotation()
}

// EndTangentAngle returns the direction of the tangent pointing out of the
// arc at its end point.
func (e *Ellipse) EndTangentAngle() float64 {
	var vp Vec2
	if e.Reversed {
		vp = Vec(-math.Sin(e.Angle2), e.Ratio*math.Cos(e.Angle2))
	} else {
		vp = Vec(math.Sin(e.Angle2), -e.Ratio*math.Cos(e.Angle2))
	}
	return vp.Angle() + e.Rotation()
}

// Bulge returns the bulge (the tangent of a quarter of the angular length)
// of the arc, negative for reversed traversal.
func (e *Ellipse) Bulge() float64 {
	bulge := math.Tan(math.Abs(e.AngularLength()) / 4)
	if e.Reversed {
		return -bulge
	}
	return bulge
}

// Quadratic returns the implicit conic form of the full ellipse. The result
// is the zero Quadratic when either radius is negligible.
func (e *Ellipse) Quadratic() Quadratic {
	a2 := e.MajorP.Hypot2()
	b2 := e.Ratio * e.Ratio * a2
	if a2 < ToleranceSquared || b2 < ToleranceSquared {
		return Quadratic{}
	}
	q := NewQuadratic([6]float64{1 / a2, 0, 1 / b2, 0, 0, -1})
	q = q.Rotate(e.Rotation())
	return q.Move(Vec2(e.Center))
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("Ellipse(%v %v %g %g,%g)", e.Center, e.MajorP, e.Ratio, e.Angle1, e.Angle2)
}
