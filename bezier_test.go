package nurbs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeBezier(t *testing.T) {
	var c Curve
	require.NoError(t, MakeBezier(&c, [][]float64{{0, 0}, {1, 2}, {2, 0}}))
	require.Equal(t, 3, c.Order())
	diff(t, []float64{0, 0, 0, 1, 1, 1}, c.Knots())
	require.NoError(t, c.Check())
	diff(t, []float64{1, 1}, evalCurve(&c, 0.5), approx)

	// A cubic with evenly spaced control points on a line is the line.
	require.NoError(t, MakeBezier(&c, [][]float64{{0}, {1}, {2}, {3}}))
	for _, u := range samples(0, 1, 10) {
		diff(t, []float64{3 * u}, evalCurve(&c, u), approx)
	}
}

func TestMakeBezierErrors(t *testing.T) {
	var c Curve
	require.ErrorIs(t, MakeBezier(&c, [][]float64{{0, 0}}), ErrControlPoints)
	require.ErrorIs(t, MakeBezier(&c, [][]float64{{0, 0}, {1}}), ErrDimension)
	require.ErrorIs(t, MakeBezier(&c, [][]float64{{}, {}}), ErrDimension)
}
