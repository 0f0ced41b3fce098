package conic

import "math"

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// TangentPoints returns the points on the circle whose tangent lines pass
// through pt. There are two for a point outside the circle, one for a point
// on it, and none for a point inside.
func (c Circle) TangentPoints(pt Point) []Point {
	vp := pt.Sub(c.Center)
	d := vp.Hypot()
	r := math.Abs(c.Radius)
	if d < r-Tolerance {
		return nil
	}
	if math.Abs(d-r) <= Tolerance {
		return []Point{pt}
	}
	// The tangent point, the center and pt form a right triangle with the
	// right angle at the tangent point.
	th := math.Acos(r / d)
	dir := vp.Normalize()
	return []Point{
		c.Center.Translate(dir.Rotate(th).Mul(r)),
		c.Center.Translate(dir.Rotate(-th).Mul(r)),
	}
}

// TangentDirection returns the tangent direction of the circle at the point
// on it nearest to pt, oriented counter-clockwise.
func (c Circle) TangentDirection(pt Point) Vec2 {
	vp := pt.Sub(c.Center)
	if vp.Hypot2() < ToleranceSquared {
		return Vec2{}
	}
	return vp.Orthogonal().Normalize().Mul(math.Abs(c.Radius))
}
