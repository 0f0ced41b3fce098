package conic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y, tol float64) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d < tol
}

func approxPoint(p, q Point, tol float64) bool {
	return approxEqual(p.X, q.X, tol) && approxEqual(p.Y, q.Y, tol)
}

func diffApprox(t *testing.T, want, got, tol float64) {
	t.Helper()
	if !approxEqual(want, got, tol) {
		t.Errorf("got %v, want %v", got, want)
	}
}
