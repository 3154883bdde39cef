package nurbs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	var a Curve
	require.NoError(t, MakeCircle(&a, []float64{1, 2}, 3))

	tests := []struct {
		name   string
		mutate func(t *testing.T, c *Curve)
		equal  bool
	}{
		{"clone", func(*testing.T, *Curve) {}, true},
		{"knot", func(t *testing.T, c *Curve) { c.SetKnot(3, 0.26) }, false},
		{"control point", func(t *testing.T, c *Curve) { c.SetControlPoint(0, 2, 0.5) }, false},
		{"weight", func(t *testing.T, c *Curve) { c.SetWeight(1, 0.5) }, false},
		{"rational flag", func(t *testing.T, c *Curve) { c.SetRational(false) }, false},
		{"dimension", func(t *testing.T, c *Curve) { require.NoError(t, c.SetDimension(3)) }, false},
		{"order", func(t *testing.T, c *Curve) { require.NoError(t, c.Resize(3, 2, 9, true)) }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := a.Clone()
			tc.mutate(t, b)
			require.Equal(t, tc.equal, a.Equal(b))
			require.Equal(t, tc.equal, b.Equal(&a))
			require.Equal(t, !tc.equal, a.NotEqual(b))
		})
	}
}

func TestEqualTol(t *testing.T) {
	var a Curve
	require.NoError(t, MakeCircle(&a, []float64{1, 2}, 3))
	b := a.Clone()
	b.SetKnot(3, 0.25+1e-6)
	b.SetControlPoint(1, 4, b.ControlPoint(1, 4)+1e-4)

	require.False(t, a.Equal(b))
	require.False(t, a.EqualTol(b, 0, 0))
	require.False(t, a.EqualTol(b, 1e-5, 1e-5))
	require.False(t, a.EqualTol(b, 1e-7, 1e-3))
	require.True(t, a.EqualTol(b, 1e-5, 1e-3))

	// Zero tolerances agree with Equal.
	c := a.Clone()
	require.True(t, a.EqualTol(c, 0, 0))
	c.SetControlPoint(0, 0, math.Nextafter(c.ControlPoint(0, 0), math.Inf(1)))
	require.False(t, a.EqualTol(c, 0, 0))
	require.False(t, a.Equal(c))
}

func TestEqualWithinVectorTolerance(t *testing.T) {
	var a Curve
	require.NoError(t, MakeCircle(&a, []float64{1, 2}, 3))
	b := a.Clone()
	b.SetControlPoint(0, 4, b.ControlPoint(0, 4)+0.05)

	require.True(t, EqualWithin(a.Spline(), b.Spline(), 0, vec2.T{0.1, 0.001}))
	require.False(t, EqualWithin(a.Spline(), b.Spline(), 0, vec2.T{0.01, 0.1}))

	// The weight channel uses the smallest component.
	b = a.Clone()
	b.SetWeight(4, b.Weight(4)+0.05)
	require.False(t, EqualWithin(a.Spline(), b.Spline(), 0, vec2.T{0.1, 0.01}))
	require.True(t, EqualWithin(a.Spline(), b.Spline(), 0, vec2.T{0.1, 0.1}))
	require.True(t, EqualWithin(a.Spline(), b.Spline(), 0, vec3.T{0.01, 0.01, 0.1}))
}

func TestEqualNaN(t *testing.T) {
	var a Curve
	require.NoError(t, MakeLine2(&a, vec2.T{0, 0}, vec2.T{1, 1}))
	a.SetControlPoint(0, 0, math.NaN())
	require.False(t, a.Equal(&a))
	require.False(t, a.EqualTol(&a, 1, 1))
}

func TestEqualNil(t *testing.T) {
	var a Spline
	require.True(t, (*Spline)(nil).Equal(nil))
	require.False(t, a.Equal(nil))
	require.False(t, EqualWithin(nil, &a, 0, 0.0))
}
