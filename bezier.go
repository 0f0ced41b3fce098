package conic

import (
	"iter"
	"math"
)

// Cubic is a cubic Bézier segment given by its four control points.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Eval returns the position at parameter t in [0, 1].
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	v := Vec2(c.P0).Mul(mt * mt * mt)
	v = v.Add(Vec2(c.P1).Mul(3 * mt * mt * t))
	v = v.Add(Vec2(c.P2).Mul(3 * mt * t * t))
	v = v.Add(Vec2(c.P3).Mul(t * t * t))
	return Point(v)
}

// Cubics approximates the ellipse or arc by a sequence of cubic Bézier
// segments whose maximum deviation stays within tolerance, traversed in the
// arc's own direction. Whole ellipses are rendered as a closed full turn
// starting at the major point.
func (e *Ellipse) Cubics(tolerance float64) iter.Seq[Cubic] {
	startAngle := e.Angle1
	sweepAngle := 2 * math.Pi
	if e.isArc {
		sweepAngle = e.AngularLength()
	}
	if e.Reversed {
		sweepAngle = -sweepAngle
	}
	ra := e.MajorRadius()
	radii := Vec(ra, ra*e.Ratio)
	rotation := e.Rotation()

	return func(yield func(Cubic) bool) {
		scaledError := max(radii.X, radii.Y) / tolerance
		// subdivisions per full turn for the error bound; may slightly
		// underestimate the error for quadrants
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(sweepAngle) * (1.0 / (2.0 * math.Pi)))
		if n < 1 {
			n = 1
		}
		angleStep := sweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweepAngle)
		angle0 := startAngle
		p0 := sampleEllipse(radii, rotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(radii, rotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(radii, rotation, angle1)
			p2 := p3.Sub(sampleEllipse(radii, rotation, angle1+math.Pi/2).Mul(armLen))

			seg := Cubic{
				P0: e.Center.Translate(p0),
				P1: e.Center.Translate(p1),
				P2: e.Center.Translate(p2),
				P3: e.Center.Translate(p3),
			}
			angle0 = angle1
			p0 = p3

			if !yield(seg) {
				break
			}
		}
	}
}

// sampleEllipse returns the point at the given parametric angle of an
// origin-centered ellipse with the given radii and rotation.
func sampleEllipse(radii Vec2, rotation, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec(radii.X*cos, radii.Y*sin).Rotate(rotation)
}
