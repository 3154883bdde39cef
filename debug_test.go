//go:build nurbsdebug

package nurbs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreconditions(t *testing.T) {
	var c Curve
	require.NoError(t, MakeCircle(&c, []float64{0, 0}, 1))

	tests := []struct {
		name string
		fn   func()
	}{
		{"parameter below range", func() { c.FindSpan(-0.1) }},
		{"parameter above range", func() { c.Evaluate(1.1, make([]float64, 2)) }},
		{"direction", func() { c.Spline().Order(1) }},
		{"knot index", func() { c.Knot(12) }},
		{"control point index", func() { c.ControlPoint(0, 9) }},
		{"dependent variable", func() { c.ControlPoint(3, 0) }},
		{"search start below degree", func() { c.FindSpanFrom(0.5, 1) }},
		{"scratch too small", func() {
			n := make([]float64, 2)
			BasisFunctions(c.Knots(), 3, 2, 0.1, n, n, n)
		}},
		{"parameter count", func() { c.Spline().Evaluate([]float64{0.1, 0.2}, make([]float64, 2)) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, tc.fn)
		})
	}

	var line Curve
	require.NoError(t, MakeLine1(&line, 0, 1))
	require.Panics(t, func() { line.Weight(0) })
	require.Panics(t, func() { line.SetRational(true) })
}
