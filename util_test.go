package spiral

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and therefore points, vectors and rects, with an
// absolute tolerance.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); !(d <= epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertClose(t *testing.T, name string, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); !(d <= epsilon) {
		t.Errorf("%s: got %v, want %v (off by %g)", name, got, want, d)
	}
}
