package conic

import (
	"math"
	"testing"
)

func TestMove(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 0.5, 0, math.Pi, false)
	e.Move(Vec(3, -1))
	if !approxPoint(e.Center, Pt(3, -1), 1e-12) {
		t.Errorf("center %v, want (3,-1)", e.Center)
	}
	start, ok := e.Start()
	if !ok {
		t.Fatal("no start point")
	}
	if !approxPoint(start, Pt(5, -1), 1e-12) {
		t.Errorf("start %v, want (5,-1)", start)
	}
}

func TestRotate(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	e.Rotate(math.Pi / 2)
	if !approxPoint(Point(e.MajorP), Pt(0, 2), 1e-12) {
		t.Errorf("majorP %v, want (0,2)", e.MajorP)
	}

	e = NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	e.RotateAround(Pt(1, 0), math.Pi)
	if !approxPoint(e.Center, Pt(2, 0), 1e-12) {
		t.Errorf("center %v, want (2,0)", e.Center)
	}
}

func TestRevertDirection(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 0.5, 0, math.Pi, false)
	start, _ := e.Start()
	end, _ := e.End()
	e.RevertDirection()
	if !e.Reversed {
		t.Error("direction not reversed")
	}
	s2, _ := e.Start()
	e2, _ := e.End()
	if !approxPoint(s2, end, 1e-12) || !approxPoint(e2, start, 1e-12) {
		t.Errorf("endpoints not swapped: start %v end %v", s2, e2)
	}

	whole := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	whole.RevertDirection()
	if whole.Reversed {
		t.Error("whole ellipse reversed")
	}
}

func TestScaleIsotropic(t *testing.T) {
	e := NewEllipse(Pt(1, 1), Vec(2, 0), 0.5)
	e.Scale(Pt(0, 0), Vec(2, 2))
	if !approxPoint(e.Center, Pt(2, 2), 1e-9) {
		t.Errorf("center %v, want (2,2)", e.Center)
	}
	diffApprox(t, 4.0, e.MajorRadius(), 1e-9)
	diffApprox(t, 0.5, e.Ratio, 1e-9)
}

func TestScaleAnisotropic(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	src := *e
	e.Scale(Pt(0, 0), Vec(1, 3))
	// the y semi-axis grows past the x one, so the axes trade places
	diffApprox(t, 3.0, e.MajorRadius(), 1e-9)
	diffApprox(t, 2.0/3, e.Ratio, 1e-9)
	if !approxEqual(math.Abs(e.MajorP.X), 0, 1e-9) {
		t.Errorf("majorP %v, want the y axis", e.MajorP)
	}
	for _, tp := range []float64{0, 1, 2.5, 4} {
		p := src.PointAt(tp)
		if !e.IsPointOn(Pt(p.X, 3*p.Y), 1e-7) {
			t.Errorf("scaled sample of t=%v not on the result", tp)
		}
	}
}

func TestScaleArcEndpoints(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 0.5, 0.5, 2.5, false)
	start, _ := e.Start()
	end, _ := e.End()
	e.Scale(Pt(0, 0), Vec(2, 3))
	s2, _ := e.Start()
	e2, _ := e.End()
	if !approxPoint(s2, Pt(2*start.X, 3*start.Y), 1e-7) {
		t.Errorf("start %v, want the scaled original", s2)
	}
	if !approxPoint(e2, Pt(2*end.X, 3*end.Y), 1e-7) {
		t.Errorf("end %v, want the scaled original", e2)
	}
}

func TestScaleNegativeFactor(t *testing.T) {
	e := NewEllipseArc(Pt(1, 0), Vec(2, 0), 0.5, 0, math.Pi, false)
	e.Scale(Pt(0, 0), Vec(-1, 1))
	if !e.Reversed {
		t.Error("mirroring scale did not flip the direction")
	}
	if !approxPoint(e.Center, Pt(-1, 0), 1e-9) {
		t.Errorf("center %v, want (-1,0)", e.Center)
	}
}

func TestMirror(t *testing.T) {
	e := NewEllipseArc(Pt(3, 0), Vec(2, 0), 0.5, 0, math.Pi/2, false)
	start, _ := e.Start()
	end, _ := e.End()
	e.Mirror(Pt(0, 0), Pt(0, 1))
	if !approxPoint(e.Center, Pt(-3, 0), 1e-9) {
		t.Errorf("center %v, want (-3,0)", e.Center)
	}
	if !e.Reversed {
		t.Error("mirror did not flip the direction")
	}
	s2, _ := e.Start()
	e2, _ := e.End()
	if !approxPoint(s2, Pt(-start.X, start.Y), 1e-7) {
		t.Errorf("start %v, want the mirrored original start", s2)
	}
	if !approxPoint(e2, Pt(-end.X, end.Y), 1e-7) {
		t.Errorf("end %v, want the mirrored original end", e2)
	}
}

func TestShearCircle(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(1, 0), 1)
	if !e.Shear(1) {
		t.Fatal("shear failed")
	}
	// singular values of the unit shear give the golden ratio axes
	phi := (1 + math.Sqrt(5)) / 2
	diffApprox(t, phi, e.MajorRadius(), 1e-9)
	diffApprox(t, 1/(phi*phi), e.Ratio, 1e-9)
	for _, tp := range []float64{0, 0.8, 2.1, 3.9, 5.5} {
		s, c := math.Sincos(tp)
		if !e.IsPointOn(Pt(c+s, s), 1e-7) {
			t.Errorf("sheared circle point at t=%v not on the result", tp)
		}
	}
}

func TestTransformAffine(t *testing.T) {
	e := NewEllipseArc(Pt(1, -1), Vec(3, 0), 0.5, 0.3, 2.0, false)
	src := *e
	aff := Translate(Vec(1, 2)).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	if !e.Transform(aff) {
		t.Fatal("transform failed")
	}
	for _, tp := range []float64{0.3, 1.0, 2.0} {
		if !e.IsPointOn(src.PointAt(tp).Transform(aff), 1e-7) {
			t.Errorf("mapped sample at t=%v not on the result", tp)
		}
	}
	start, _ := e.Start()
	if !approxPoint(start, src.PointAt(0.3).Transform(aff), 1e-7) {
		t.Errorf("start %v, want the mapped original start", start)
	}
	if e.Reversed {
		t.Error("orientation flipped under a positive determinant")
	}
}

func TestTransformReflection(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 0.5, 0, math.Pi/2, false)
	if !e.Transform(Scale(-1, 1)) {
		t.Fatal("transform failed")
	}
	if !e.Reversed {
		t.Error("reflection did not flip the direction")
	}
}

func TestTransformSingular(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	before := *e
	if e.Transform(Scale(1, 0)) {
		t.Error("singular map accepted")
	}
	if e.Center != before.Center || e.MajorP != before.MajorP || e.Ratio != before.Ratio {
		t.Errorf("ellipse modified on failure: %v", e)
	}
}
