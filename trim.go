package conic

import (
	"math"
	"sort"
)

// Ending identifies which end of an arc a trim operation removes.
type Ending int

const (
	EndingNone Ending = iota
	EndingStart
	EndingEnd
)

// correctAngles renormalizes the angles so the angular length never exceeds
// a full turn, preserving the full-turn case for actual arcs.
func (e *Ellipse) correctAngles() {
	pa1, pa2 := &e.Angle1, &e.Angle2
	if e.Reversed {
		pa1, pa2 = pa2, pa1
	}
	*pa2 = *pa1 + normAngle(*pa2-*pa1)
	if math.Abs(e.Angle1-e.Angle2) < ToleranceAngle && math.Abs(e.Angle1) > ToleranceAngle {
		// coincident non-zero angles describe a full loop; collapsing
		// them would turn the arc into a whole ellipse
		*pa2 += 2 * math.Pi
	}
}

// MoveStart moves the start of the arc to the parametric angle of pos.
func (e *Ellipse) MoveStart(pos Point) {
	e.Angle1 = e.AngleOf(pos)
	e.correctAngles()
	e.Update()
}

// MoveEnd moves the end of the arc to the parametric angle of pos.
func (e *Ellipse) MoveEnd(pos Point) {
	e.Angle2 = e.AngleOf(pos)
	e.correctAngles()
	e.Update()
}

// TrimEnding reports which end of the arc a trim at trimCoord removes: the
// end whose angular distance from the click is larger survives.
func (e *Ellipse) TrimEnding(trimCoord Point) Ending {
	angM := e.AngleOf(trimCoord)
	if angleDiff(angM, e.Angle1, e.Reversed) > angleDiff(e.Angle2, angM, e.Reversed) {
		return EndingStart
	}
	return EndingEnd
}

// PrepareTrim adjusts the arc's angular range for a trim at trimCoord given
// the candidate intersection points trimSol, and returns the intersection
// chosen as the new endpoint.
//
// The candidate angularly closest to the click becomes the primary cut; its
// angular neighbor bounding the clicked segment becomes the secondary one.
// A whole ellipse is cut into the arc between them that contains the click.
// For an arc, whichever of the cuts and the existing endpoints is angularly
// closer to the click decides between shrinking one end and cutting out the
// clicked segment. ok is false when no candidate is given.
func (e *Ellipse) PrepareTrim(trimCoord Point, trimSol []Point) (Point, bool) {
	if len(trimSol) == 0 {
		return Point{}, false
	}
	if len(trimSol) == 1 {
		return trimSol[0], true
	}
	am := e.AngleOf(trimCoord)

	// cut angularly closest to the click
	n := len(trimSol)
	ias := make([]float64, n)
	var ia float64
	var is Point
	for i, vp := range trimSol {
		ias[i] = e.AngleOf(vp)
		if i == 0 || math.Abs(math.Remainder(ias[i]-am, 2*math.Pi)) < math.Abs(math.Remainder(ia-am, 2*math.Pi)) {
			ia = ias[i]
			is = vp
		}
	}
	sort.Float64s(ias)

	// the neighbor cut bounding the segment which contains the click
	var ia2 float64
	for i := 0; i < n; i++ {
		if !isSameDirection(ia, ias[i], Tolerance) {
			continue
		}
		if isAngleBetween(am, ias[(i+n-1)%n], ia, false) {
			ia2 = ias[(i+n-1)%n]
		} else {
			ia2 = ias[(i+1)%n]
		}
		break
	}
	var is2 Point
	for _, vp := range trimSol {
		if isSameDirection(ia2, e.AngleOf(vp), Tolerance) {
			is2 = vp
			break
		}
	}

	if isSameDirection(e.Angle1, e.Angle2, ToleranceAngle) || isSameDirection(ia2, ia, Tolerance) {
		// whole ellipse; cut out the segment containing the click
		if !isAngleBetween(am, ia, ia2, e.Reversed) {
			ia, ia2 = ia2, ia
			is, is2 = is2, is
		}
		e.Angle1 = ia
		e.Angle2 = ia2
		da1 := math.Abs(math.Remainder(e.Angle1-am, 2*math.Pi))
		da2 := math.Abs(math.Remainder(e.Angle2-am, 2*math.Pi))
		if da2 < da1 {
			is, is2 = is2, is
		}
	} else {
		dia := math.Abs(math.Remainder(ia-am, 2*math.Pi))
		dia2 := math.Abs(math.Remainder(ia2-am, 2*math.Pi))
		aiMin := math.Min(dia, dia2)
		da1 := math.Abs(math.Remainder(e.Angle1-am, 2*math.Pi))
		da2 := math.Abs(math.Remainder(e.Angle2-am, 2*math.Pi))
		daMin := math.Min(da1, da2)
		if daMin < aiMin {
			// the click is closer to an existing endpoint than to any
			// cut: the cuts bracket the surviving segment
			irev := isAngleBetween(am, ia2, ia, e.Reversed)
			if isAngleBetween(ia, e.Angle1, e.Angle2, e.Reversed) &&
				isAngleBetween(ia2, e.Angle1, e.Angle2, e.Reversed) {
				if irev {
					e.Angle2 = ia
					e.Angle1 = ia2
				} else {
					e.Angle1 = ia
					e.Angle2 = ia2
				}
				da1 = math.Abs(math.Remainder(e.Angle1-am, 2*math.Pi))
				da2 = math.Abs(math.Remainder(e.Angle2-am, 2*math.Pi))
			}
			if (da1 < da2 && isAngleBetween(ia2, ia, e.Angle1, e.Reversed)) ||
				(da1 > da2 && isAngleBetween(ia2, e.Angle2, ia, e.Reversed)) {
				is, is2 = is2, is
			}
		} else {
			// shrink one end to the nearest cut
			if dia > dia2 {
				is, is2 = is2, is
				ia, ia2 = ia2, ia
			}
			if isAngleBetween(ia, e.Angle1, e.Angle2, e.Reversed) {
				if math.Abs(ia-e.Angle1) > ToleranceAngle &&
					isAngleBetween(am, e.Angle1, ia, e.Reversed) {
					e.Angle2 = ia
				} else {
					e.Angle1 = ia
				}
			}
		}
	}
	e.Update()
	return is, true
}

// MoveRef drags the reference point ref by offset: endpoints move along the
// curve, the center translates the whole shape, a focus stretches the shape
// around the opposite focus, and the axis endpoints resize their axis.
// References matching no handle leave the ellipse untouched.
func (e *Ellipse) MoveRef(ref Point, offset Vec2) {
	if e.isArc {
		start := e.PointAt(e.Angle1)
		end := e.PointAt(e.Angle2)
		if ref.Sub(start).Hypot2() < ToleranceAngle {
			e.MoveStart(start.Translate(offset))
			return
		}
		if ref.Sub(end).Hypot2() < ToleranceAngle {
			e.MoveEnd(end.Translate(offset))
			return
		}
	}
	if ref.Sub(e.Center).Hypot2() < ToleranceAngle {
		e.Center = e.Center.Translate(offset)
		e.Update()
		return
	}

	if e.Ratio > 1 {
		e.SwitchMajorMinor()
	}
	foci := e.Foci()
	for i := 0; i < 2; i++ {
		if ref.Sub(foci[i]).Hypot2() >= ToleranceAngle {
			continue
		}
		focusNew := foci[i].Translate(offset)
		center := e.Center.Translate(offset.Mul(0.5))
		var majorP Vec2
		if e.MajorP.Dot(foci[i].Sub(e.Center)) >= 0 {
			majorP = focusNew.Sub(center)
		} else {
			majorP = center.Sub(focusNew)
		}
		d := e.MajorP.Hypot()
		c := 0.5 * focusNew.Distance(foci[1-i])
		k := majorP.Hypot()
		if k < ToleranceSquared || d < Tolerance || c >= d-Tolerance {
			return
		}
		e.Center = center
		e.MajorP = majorP.Mul(d / k)
		e.Ratio = math.Sqrt(d*d-c*c) / d
		e.correctAngles()
		if e.Ratio > 1 {
			e.SwitchMajorMinor()
		} else {
			e.Update()
		}
		return
	}

	if ref.Sub(e.MajorPoint()).Hypot2() < ToleranceAngle {
		majorP := e.MajorP.Add(offset)
		r := majorP.Hypot()
		if r < Tolerance {
			return
		}
		ratio := e.Ratio * e.MajorRadius() / r
		e.MajorP = majorP
		e.Ratio = ratio
		if e.Ratio > 1 {
			e.SwitchMajorMinor()
		} else {
			e.Update()
		}
		return
	}
	if ref.Sub(e.MinorPoint()).Hypot2() < ToleranceAngle {
		minorP := e.MinorPoint().Translate(offset)
		r2 := e.MajorP.Hypot2()
		if r2 < ToleranceSquared {
			return
		}
		projected := e.Center.Translate(e.MajorP.Mul(e.MajorP.Dot(minorP.Sub(e.Center)) / r2))
		r := minorP.Sub(projected).Hypot()
		if r < Tolerance {
			return
		}
		e.Ratio = e.Ratio * r / e.MinorRadius()
		if e.Ratio > 1 {
			e.SwitchMajorMinor()
		} else {
			e.Update()
		}
		return
	}
}
