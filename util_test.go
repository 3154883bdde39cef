package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats with an absolute tolerance suitable for values of
// magnitude one to ten.
var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func evalCurve(c *Curve, u float64) []float64 {
	pt := make([]float64, c.Dimension())
	c.Evaluate(u, pt)
	return pt
}

func evalSurface(s *Surface, u, v float64) []float64 {
	pt := make([]float64, s.Dimension())
	s.Evaluate(u, v, pt)
	return pt
}

// samples returns n+1 evenly spaced parameters in [lo, hi], including both
// ends.
func samples(lo, hi float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	out[n] = hi
	return out
}
