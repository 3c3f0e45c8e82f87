package easing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats within epsilon.
var approx = cmpopts.EquateApprox(0, epsilon)

// samples returns n+1 evenly spaced values covering [0, 1].
func samples(n int) []float64 {
	out := make([]float64, n+1)
	for i := range n + 1 {
		out[i] = float64(i) / float64(n)
	}
	return out
}
