package conic

import (
	"math"
	"testing"
)

func TestMoveStartEnd(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 1, 0, math.Pi, false)
	e.MoveEnd(Pt(0, -2))
	end, _ := e.End()
	if !approxPoint(end, Pt(0, -2), 1e-9) {
		t.Errorf("end %v, want (0,-2)", end)
	}
	diffApprox(t, 1.5*math.Pi, e.AngularLength(), 1e-9)

	e.MoveStart(Pt(-2, 0))
	start, _ := e.Start()
	if !approxPoint(start, Pt(-2, 0), 1e-9) {
		t.Errorf("start %v, want (-2,0)", start)
	}
	diffApprox(t, 0.5*math.Pi, e.AngularLength(), 1e-9)
}

func TestTrimEnding(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 1, 0, math.Pi, false)
	if got := e.TrimEnding(e.PointAt(math.Pi / 4)); got != EndingStart {
		t.Errorf("click near the start: got %v, want EndingStart", got)
	}
	if got := e.TrimEnding(e.PointAt(3 * math.Pi / 4)); got != EndingEnd {
		t.Errorf("click near the end: got %v, want EndingEnd", got)
	}
}

func TestPrepareTrimWholeEllipse(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 1)
	cuts := []Point{e.PointAt(math.Pi / 2), e.PointAt(3 * math.Pi / 2)}
	_, ok := e.PrepareTrim(e.PointAt(0), cuts)
	if !ok {
		t.Fatal("trim failed")
	}
	if !e.IsArc() {
		t.Fatal("whole ellipse not cut into an arc")
	}
	// the surviving arc runs between the cuts and contains the click
	diffApprox(t, math.Pi, e.AngularLength(), 1e-9)
	if !isAngleBetween(0, e.Angle1, e.Angle2, e.Reversed) {
		t.Errorf("clicked angle left outside [%v, %v]", e.Angle1, e.Angle2)
	}
	start, _ := e.Start()
	if !approxPoint(start, Pt(0, -2), 1e-9) {
		t.Errorf("start %v, want the cut (0,-2)", start)
	}
}

func TestPrepareTrimArc(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 1, 0, math.Pi, false)
	cuts := []Point{e.PointAt(math.Pi / 2), e.PointAt(3 * math.Pi / 4)}
	cut, ok := e.PrepareTrim(e.PointAt(math.Pi/4), cuts)
	if !ok {
		t.Fatal("trim failed")
	}
	// the clicked quarter survives, bounded by the nearest cut
	diffApprox(t, 0.0, e.Angle1, 1e-9)
	diffApprox(t, math.Pi/2, e.Angle2, 1e-9)
	if !approxPoint(cut, e.PointAt(math.Pi/2), 1e-9) {
		t.Errorf("cut %v, want the half-axis point", cut)
	}
}

func TestPrepareTrimSingleCut(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 1, 0, math.Pi, false)
	before := *e
	cut, ok := e.PrepareTrim(e.PointAt(0.3), []Point{e.PointAt(1.0)})
	if !ok {
		t.Fatal("trim failed")
	}
	if !approxPoint(cut, e.PointAt(1.0), 1e-12) {
		t.Errorf("cut %v, want the only candidate", cut)
	}
	// a single candidate leaves the range for the caller to adjust
	diff(t, before.Angle1, e.Angle1)
	diff(t, before.Angle2, e.Angle2)

	if _, ok := e.PrepareTrim(e.PointAt(0.3), nil); ok {
		t.Error("empty candidate list accepted")
	}
}

func TestMoveRefEndpoint(t *testing.T) {
	e := NewEllipseArc(Pt(0, 0), Vec(2, 0), 1, 0, math.Pi/2, false)
	e.MoveRef(Pt(2, 0), Vec(-4, 0))
	start, _ := e.Start()
	if !approxPoint(start, Pt(-2, 0), 1e-9) {
		t.Errorf("start %v, want (-2,0)", start)
	}
	end, _ := e.End()
	if !approxPoint(end, Pt(0, 2), 1e-9) {
		t.Errorf("end %v, want the unmoved (0,2)", end)
	}
}

func TestMoveRefCenter(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	e.MoveRef(Pt(0, 0), Vec(1, 1))
	if !approxPoint(e.Center, Pt(1, 1), 1e-12) {
		t.Errorf("center %v, want (1,1)", e.Center)
	}
}

func TestMoveRefMajorPoint(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	e.MoveRef(Pt(2, 0), Vec(1, 0))
	diffApprox(t, 3.0, e.MajorRadius(), 1e-9)
	// the minor radius stays put while the major one stretches
	diffApprox(t, 1.0, e.MinorRadius(), 1e-9)
}

func TestMoveRefMinorPoint(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	e.MoveRef(Pt(0, 1), Vec(0, 1))
	diffApprox(t, 1.0, e.Ratio, 1e-9)
	diffApprox(t, 2.0, e.MajorRadius(), 1e-9)

	// dragging past the major radius renames the axes
	e = NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	e.MoveRef(Pt(0, 1), Vec(0, 2))
	diffApprox(t, 3.0, e.MajorRadius(), 1e-9)
	diffApprox(t, 2.0/3, e.Ratio, 1e-9)
}

func TestMoveRefFocus(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(5, 0), 0.6)
	e.MoveRef(Pt(4, 0), Vec(1, 0))
	foci := e.Foci()
	if !approxPoint(foci[0], Pt(5, 0), 1e-9) {
		t.Errorf("dragged focus %v, want (5,0)", foci[0])
	}
	if !approxPoint(foci[1], Pt(-4, 0), 1e-9) {
		t.Errorf("opposite focus %v, want it unmoved at (-4,0)", foci[1])
	}
	// the major length is preserved
	diffApprox(t, 5.0, e.MajorRadius(), 1e-9)
}

func TestMoveRefNoMatch(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 0), 0.5)
	before := *e
	e.MoveRef(Pt(10, 10), Vec(1, 1))
	if e.Center != before.Center || e.MajorP != before.MajorP || e.Ratio != before.Ratio {
		t.Errorf("unmatched reference modified the ellipse: %v", e)
	}
}
