package nurbs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

func TestMakeArcPieces(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		pieces     int
	}{
		{"quarter", 0, math.Pi / 2, 1},
		{"third", 0, 2 * math.Pi / 3, 2},
		{"half", math.Pi, 2 * math.Pi, 2},
		{"three quarters", 0, 3 * math.Pi / 2, 3},
		{"most", 0, 1.9 * math.Pi, 4},
		{"wrapping", 1, 0, 4},
		{"more than a turn", 0, 3 * math.Pi, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Curve
			require.NoError(t, MakeArc2(&c, vec2.T{1, 1}, 2, tc.start, tc.end))
			require.NoError(t, c.Check())
			require.Equal(t, 2*tc.pieces+1, c.NumControlPoints())
			require.Equal(t, 3, c.Order())
			for _, u := range samples(0, 1, 50) {
				pt := evalCurve(&c, u)
				if d := floats.Distance(pt, []float64{1, 1}, 2); !floats.EqualWithinAbs(d, 2, 1e-12) {
					t.Errorf("point at %v is %v from the center, expected 2", u, d)
				}
			}
			sweep := min(tc.end-tc.start, 2*math.Pi)
			if tc.end < tc.start {
				sweep = 2 * math.Pi
			}
			want := []float64{1 + 2*math.Cos(tc.start+sweep), 1 + 2*math.Sin(tc.start+sweep)}
			diff(t, want, evalCurve(&c, 1), approx)
			want = []float64{1 + 2*math.Cos(tc.start), 1 + 2*math.Sin(tc.start)}
			diff(t, want, evalCurve(&c, 0), approx)
		})
	}
}

func TestFullArcIsCircle(t *testing.T) {
	var arc, circle Curve
	require.NoError(t, MakeArc2(&arc, vec2.T{1, 2}, 3, 0, 2*math.Pi))
	require.NoError(t, MakeCircle2(&circle, vec2.T{1, 2}, 3))
	require.True(t, arc.EqualTol(&circle, 1e-12, 1e-12))
}

func TestMakeArc3D(t *testing.T) {
	center := vec3.T{1, 2, 3}
	x := vec3.T{1, 1, 0}
	y := vec3.T{0, 0, 5}
	var c Curve
	require.NoError(t, MakeArc(&c, center, x, y, 2, 0, math.Pi))
	require.Equal(t, 3, c.Dimension())

	normal := vec3.Cross(&x, &y)
	for _, u := range samples(0, 1, 30) {
		pt := evalCurve(&c, u)
		p := vec3.T{pt[0], pt[1], pt[2]}
		d := vec3.Sub(&p, &center)
		require.InDelta(t, 2, d.Length(), 1e-12)
		require.InDelta(t, 0, vec3.Dot(&d, &normal), 1e-12)
	}
	// Halfway along, the arc points along y.
	diff(t, []float64{1, 2, 5}, evalCurve(&c, 0.5), approx)
}

func TestMakeArcErrors(t *testing.T) {
	var c Curve
	require.ErrorIs(t, MakeArc(&c, vec3.T{}, vec3.T{}, vec3.T{0, 1, 0}, 1, 0, 1), ErrDegenerate)
	require.ErrorIs(t, MakeArc2(&c, vec2.T{}, 1, 1, 1), ErrDegenerate)
	require.ErrorIs(t, MakeEllipseArc(&c, []float64{0}, []float64{1}, []float64{1}, 0, 1), ErrDimension)
	require.ErrorIs(t, MakeEllipseArc(&c, []float64{0, 0}, []float64{1, 0}, []float64{0, 1, 0}, 0, 1), ErrDimension)
	require.ErrorIs(t, MakeEllipseArc(&c, []float64{0, 0}, []float64{0, 0}, []float64{0, 1}, 0, 1), ErrDegenerate)
	require.ErrorIs(t, MakeEllipseArc(nil, []float64{0, 0}, []float64{1, 0}, []float64{0, 1}, 0, 1), ErrInvalid)
}
