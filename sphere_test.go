package nurbs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

func TestMakeSphere(t *testing.T) {
	center := vec3.T{1, 2, 3}
	const radius = 10
	var s Surface
	require.NoError(t, MakeSphere(&s, center, radius))

	require.True(t, s.Rational())
	require.Equal(t, 3, s.Dimension())
	require.Equal(t, 5, s.NumControlPoints(0))
	require.Equal(t, 9, s.NumControlPoints(1))
	require.Equal(t, 45, s.TotalNumControlPoints())
	require.NoError(t, s.Check())

	for _, u := range samples(0, 1, 20) {
		for _, v := range samples(0, 1, 20) {
			pt := evalSurface(&s, u, v)
			if d := floats.Distance(pt, center[:], 2); !floats.EqualWithinAbs(d, radius, 1e-12) {
				t.Errorf("point at (%v, %v) is %v from the center, expected %v", u, v, d, radius)
			}
		}
	}

	diff(t, []float64{1, 2, -7}, evalSurface(&s, 0, 0.3), approx)
	diff(t, []float64{1, 2, 13}, evalSurface(&s, 1, 0.7), approx)
	diff(t, []float64{11, 2, 3}, evalSurface(&s, 0.5, 0), approx)
	diff(t, []float64{1, 12, 3}, evalSurface(&s, 0.5, 0.25), approx)
}

func TestSphereEquatorIsCircle(t *testing.T) {
	var s Surface
	require.NoError(t, MakeSphere(&s, vec3.T{0, 0, 0}, 2))
	var c Curve
	require.NoError(t, MakeCircle3(&c, vec3.T{0, 0, 0}, 2))
	for _, v := range samples(0, 1, 40) {
		diff(t, evalCurve(&c, v), evalSurface(&s, 0.5, v), approx)
	}
}

func TestMakeSphereErrors(t *testing.T) {
	require.ErrorIs(t, MakeSphere(nil, vec3.T{}, 1), ErrInvalid)
	require.ErrorIs(t, MakeSphere((*Surface)(nil), vec3.T{}, 1), ErrInvalid)
}
