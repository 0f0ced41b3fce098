package conic

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("got %d roots %v, want %d %v", len(got), got, len(want), want)
	}
	sort.Float64s(got)
	sort.Float64s(want)
	for i := range want {
		if !approxEqual(want[i], got[i], tol) {
			t.Errorf("root %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	// (x-1)(x-3)
	roots, n := SolveQuadratic(3, -4, 1)
	checkRoots(t, []float64{1, 3}, roots[:n], 1e-12)

	// linear when the leading coefficient vanishes
	roots, n = SolveQuadratic(-6, 2, 0)
	checkRoots(t, []float64{3}, roots[:n], 1e-12)

	// no real roots
	_, n = SolveQuadratic(1, 0, 1)
	if n != 0 {
		t.Errorf("got %d roots for x²+1", n)
	}
}

func TestSolveCubic(t *testing.T) {
	// (x-1)(x-2)(x-3)
	roots, n := SolveCubic(-6, 11, -6, 1)
	checkRoots(t, []float64{1, 2, 3}, roots[:n], 1e-9)

	// single real root of x³ - 1
	roots, n = SolveCubic(-1, 0, 0, 1)
	checkRoots(t, []float64{1}, roots[:n], 1e-12)
}

func TestSolveQuartic(t *testing.T) {
	// (x²-1)(x²-4)
	roots, n := SolveQuartic(4, 0, -5, 0, 1)
	checkRoots(t, []float64{-2, -1, 1, 2}, roots[:n], 1e-9)

	// zero constant term factors out a zero root:
	// x(x-1)(x+2)(x-3) = x⁴ - 2x³ - 5x² + 6x
	roots, n = SolveQuartic(0, 6, -5, -2, 1)
	checkRoots(t, []float64{-2, 0, 1, 3}, roots[:n], 1e-9)

	// no real roots
	_, n = SolveQuartic(1, 0, 2, 0, 1)
	if n != 0 {
		t.Errorf("got %d roots for a positive quartic", n)
	}
}

func TestHalleyIterate(t *testing.T) {
	f := func(x float64) (float64, float64, float64) {
		return math.Sin(x), math.Cos(x), -math.Sin(x)
	}
	x := halleyIterate(f, 3, 2.5, 3.5, 1e-12)
	diffApprox(t, math.Pi, x, 1e-9)

	// the bracket is never escaped
	x = halleyIterate(f, 2.6, 2.5, 2.8, 1e-12)
	if x < 2.5 || x > 2.8 {
		t.Errorf("iterate %v left the bracket", x)
	}
}

func TestSolveLinear(t *testing.T) {
	sol, ok := solveLinear([][]float64{
		{2, 1, 5},
		{1, -1, 1},
	})
	if !ok {
		t.Fatal("solve failed")
	}
	diffApprox(t, 2.0, sol[0], 1e-12)
	diffApprox(t, 1.0, sol[1], 1e-12)

	if _, ok := solveLinear([][]float64{
		{1, 1, 2},
		{2, 2, 4},
	}); ok {
		t.Error("singular system accepted")
	}
}
