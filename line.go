package conic

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Angle returns the direction angle from start to end point.
func (l Line) Angle() float64 {
	return l.P1.Sub(l.P0).Angle()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Midpoint returns the middle point of the segment.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if math.Abs(pcd) < toleranceStrict {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Nearest returns the squared distance from pt to the segment, and the
// parameter of the nearest point on it.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// DistanceToPoint returns the distance from pt to the infinite line through
// P0 and P1.
func (l Line) DistanceToPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	length := d.Hypot()
	if length < Tolerance {
		return l.P0.Distance(pt)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / length
}

// PointAtDist returns the point on the segment at the given distance from one
// of its endpoints, choosing the endpoint that puts the result nearer to
// coord. The second return value is the distance from the result to coord.
func (l Line) PointAtDist(distance float64, coord Point) (Point, float64) {
	dv := l.P1.Sub(l.P0).Normalize().Mul(distance)
	c1 := l.P0.Translate(dv)
	c2 := l.P1.Translate(dv.Negate())
	d1 := c1.Distance(coord)
	d2 := c2.Distance(coord)
	if d2 < d1 {
		return c2, d2
	}
	return c1, d1
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}
