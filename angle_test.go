package conic

import (
	"math"
	"testing"
)

func TestNormAngle(t *testing.T) {
	diffApprox(t, 1.5*math.Pi, normAngle(-0.5*math.Pi), 1e-12)
	diffApprox(t, math.Pi, normAngle(7*math.Pi), 1e-12)
	diff(t, 0.0, normAngle(0))
	diffApprox(t, 0.5, normAngle(0.5+4*math.Pi), 1e-12)
}

func TestAngleDiff(t *testing.T) {
	diffApprox(t, 0.5*math.Pi, angleDiff(0, 0.5*math.Pi, false), 1e-12)
	// reversed traversal measures the other way around
	diffApprox(t, 1.5*math.Pi, angleDiff(0, 0.5*math.Pi, true), 1e-12)
	diffApprox(t, math.Pi, angleDiff(1.5*math.Pi, 0.5*math.Pi, false), 1e-12)
}

func TestIsAngleBetween(t *testing.T) {
	if !isAngleBetween(0.5, 0, 1, false) {
		t.Error("0.5 should lie on [0,1]")
	}
	if isAngleBetween(2, 0, 1, false) {
		t.Error("2 lies outside [0,1]")
	}
	// the reversed arc covers the complement
	if !isAngleBetween(2, 0, 1, true) {
		t.Error("2 should lie on the reversed arc")
	}
	// wrap across zero
	if !isAngleBetween(0.1, 1.5*math.Pi, 0.5*math.Pi, false) {
		t.Error("0.1 should lie on the arc through zero")
	}
	// coincident limits span the whole turn
	if !isAngleBetween(3, 1, 1, false) {
		t.Error("coincident limits should contain everything")
	}
}

func TestIsSameDirection(t *testing.T) {
	if !isSameDirection(0, 2*math.Pi, ToleranceAngle) {
		t.Error("0 and 2π point the same way")
	}
	if !isSameDirection(-math.Pi, math.Pi, ToleranceAngle) {
		t.Error("-π and π point the same way")
	}
	if isSameDirection(0, math.Pi, ToleranceAngle) {
		t.Error("0 and π point opposite ways")
	}
}

func TestPeriodsCount(t *testing.T) {
	diff(t, 1, periodsCount(0, 2*math.Pi, false))
	diff(t, 2, periodsCount(1, 1+4*math.Pi, false))
	diff(t, 0, periodsCount(0, 3, false))
	// reversed traversal counts from the other end
	diff(t, 1, periodsCount(2*math.Pi, 0, true))
}
