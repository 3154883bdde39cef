package nurbs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

func TestMakeLine(t *testing.T) {
	var c Curve
	require.NoError(t, MakeLine(&c, []float64{1, 2, 3}, []float64{3, 2, 1}))

	require.Equal(t, 3, c.Dimension())
	require.False(t, c.Rational())
	require.Equal(t, 2, c.Order())
	diff(t, []float64{0, 0, 1, 1}, c.Knots())
	require.NoError(t, c.Check())

	diff(t, []float64{1, 2, 3}, evalCurve(&c, 0))
	diff(t, []float64{2, 2, 2}, evalCurve(&c, 0.5), approx)
	diff(t, []float64{3, 2, 1}, evalCurve(&c, 1))
}

func TestMakeLineVariants(t *testing.T) {
	var c Curve
	require.NoError(t, MakeLine1(&c, -1, 1))
	diff(t, []float64{0}, evalCurve(&c, 0.5), approx)

	require.NoError(t, MakeLine2(&c, vec2.T{0, 0}, vec2.T{2, 4}))
	diff(t, []float64{0.5, 1}, evalCurve(&c, 0.25), approx)

	require.NoError(t, MakeLine3(&c, vec3.T{0, 0, 0}, vec3.T{2, 4, 8}))
	diff(t, []float64{1, 2, 4}, evalCurve(&c, 0.5), approx)

	require.NoError(t, MakeLine4(&c, vec4.T{0, 0, 0, 1}, vec4.T{4, 4, 4, 1}))
	diff(t, []float64{3, 3, 3, 1}, evalCurve(&c, 0.75), approx)

	// Constructors work on plain splines, too.
	var s Spline
	require.NoError(t, MakeLine2(&s, vec2.T{0, 0}, vec2.T{2, 4}))
	require.Equal(t, 1, s.NumIndepVars())
}

func TestMakeLineErrors(t *testing.T) {
	var c Curve
	err := MakeLine(&c, []float64{1, 2}, []float64{1, 2, 3})
	require.True(t, errors.Is(err, ErrDimension))
	err = MakeLine(&c, nil, nil)
	require.True(t, errors.Is(err, ErrDimension))
	err = MakeLine(nil, []float64{1}, []float64{2})
	require.True(t, errors.Is(err, ErrInvalid))
	err = MakeLine((*Curve)(nil), []float64{1}, []float64{2})
	require.True(t, errors.Is(err, ErrInvalid))
}

// A three-dimensional line reinterpreted as a rational curve is a line in
// the plane, traced at a non-uniform speed.
func TestLineAsRational(t *testing.T) {
	var c Curve
	require.NoError(t, MakeLine(&c, []float64{1.1, 2.2, 3.3}, []float64{4.4, 5.5, 6.6}))
	c.SetRational(true)
	require.Equal(t, 2, c.Dimension())

	p0 := evalCurve(&c, 0)
	p1 := evalCurve(&c, 1)
	mid := evalCurve(&c, 0.5)
	diff(t, []float64{1.0 / 3, 2.0 / 3}, p0, approx)
	diff(t, []float64{2.0 / 3, 5.0 / 6}, p1, approx)
	diff(t, []float64{2.75 / 4.95, 3.85 / 4.95}, mid, approx)

	// mid lies on the segment between p0 and p1.
	cross := (p1[0]-p0[0])*(mid[1]-p0[1]) - (p1[1]-p0[1])*(mid[0]-p0[0])
	require.InDelta(t, 0, cross, 1e-12)
	require.Greater(t, mid[0], p0[0])
	require.Less(t, mid[0], p1[0])
}
