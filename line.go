package nurbs

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

// MakeLine configures dst as the straight segment from p1 to p2: a
// non-rational curve of order 2 with two control points and the knot vector
// [0, 0, 1, 1]. The curve has the dimension of the points, which must be
// equal and non-zero.
func MakeLine(dst CurveTarget, p1, p2 []float64) error {
	if len(p1) == 0 || len(p1) != len(p2) {
		return fmt.Errorf("line between %d- and %d-dimensional points: %w", len(p1), len(p2), ErrDimension)
	}
	s, err := curveOf(dst)
	if err != nil {
		return err
	}
	dim := len(p1)
	if err := s.Resize(1, dim, []int{2}, []int{2}, false); err != nil {
		return err
	}
	copy(s.KnotVector(0), []float64{0, 0, 1, 1})
	for j := range dim {
		s.SetControlPoint(j, 0, p1[j])
		s.SetControlPoint(j, 1, p2[j])
	}
	return nil
}

// MakeLine1 configures dst as a one-dimensional line from a to b.
func MakeLine1(dst CurveTarget, a, b float64) error {
	return MakeLine(dst, []float64{a}, []float64{b})
}

// MakeLine2 configures dst as a two-dimensional line from p1 to p2.
func MakeLine2(dst CurveTarget, p1, p2 vec2.T) error {
	return MakeLine(dst, p1[:], p2[:])
}

// MakeLine3 configures dst as a three-dimensional line from p1 to p2.
func MakeLine3(dst CurveTarget, p1, p2 vec3.T) error {
	return MakeLine(dst, p1[:], p2[:])
}

// MakeLine4 configures dst as a four-dimensional line from p1 to p2.
func MakeLine4(dst CurveTarget, p1, p2 vec4.T) error {
	return MakeLine(dst, p1[:], p2[:])
}

func curveOf(dst CurveTarget) (*Spline, error) {
	if dst == nil {
		return nil, fmt.Errorf("nil curve: %w", ErrInvalid)
	}
	s := dst.curveTarget()
	if s == nil {
		return nil, fmt.Errorf("nil curve: %w", ErrInvalid)
	}
	return s, nil
}
