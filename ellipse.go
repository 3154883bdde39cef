package nurbs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MakeEllipseArc configures dst as the arc of the ellipse
//
//	center + xaxis·cos(θ) + yaxis·sin(θ)
//
// for θ from startAngle to endAngle, in radians. The lengths of xaxis and
// yaxis are the radii. If endAngle is less than startAngle, the arc is a full
// turn starting at startAngle; sweeps beyond a full turn are truncated to one.
//
// The arc is split into up to four pieces of at most a quarter turn each.
// The result is a rational curve of order 3 with 2n+1 control points for n
// pieces, parameterized over [0, 1] with double interior knots.
func MakeEllipseArc(dst CurveTarget, center, xaxis, yaxis []float64, startAngle, endAngle float64) error {
	dim := len(center)
	if dim < 2 || len(xaxis) != dim || len(yaxis) != dim {
		return fmt.Errorf("arc with %d-dimensional center and %d- and %d-dimensional axes: %w",
			dim, len(xaxis), len(yaxis), ErrDimension)
	}
	if floats.Norm(xaxis, 2) == 0 || floats.Norm(yaxis, 2) == 0 {
		return fmt.Errorf("arc with zero axis: %w", ErrDegenerate)
	}
	if startAngle == endAngle {
		return fmt.Errorf("arc without sweep: %w", ErrDegenerate)
	}
	s, err := curveOf(dst)
	if err != nil {
		return err
	}

	if endAngle < startAngle {
		endAngle = startAngle + 2*math.Pi
	}
	sweep := min(endAngle-startAngle, 2*math.Pi)
	var pieces int
	switch {
	case sweep <= math.Pi/2:
		pieces = 1
	case sweep <= math.Pi:
		pieces = 2
	case sweep <= 3*math.Pi/2:
		pieces = 3
	default:
		pieces = 4
	}
	step := sweep / float64(pieces)
	// Weight of the middle control point of each piece.
	wm := math.Cos(step / 2)

	n := 2*pieces + 1
	if err := s.Resize(1, dim+1, []int{3}, []int{n}, true); err != nil {
		return err
	}
	kv := s.KnotVector(0)
	for i := 1; i < pieces; i++ {
		k := float64(i) / float64(pieces)
		kv[1+2*i], kv[2+2*i] = k, k
	}
	kv[n], kv[n+1], kv[n+2] = 1, 1, 1

	for k := range n {
		theta := startAngle + float64(k)*step/2
		cos, sin := math.Cos(theta), math.Sin(theta)
		// Points between the pieces lie on the ellipse. The middle points lie
		// on the tangents, 1/wm as far from the center.
		w, f := 1.0, 1.0
		if k%2 == 1 {
			w, f = wm, 1/wm
		}
		for j := range dim {
			p := center[j] + f*(xaxis[j]*cos+yaxis[j]*sin)
			s.SetControlPoint(j, k, w*p)
		}
		s.SetWeight(k, w)
	}
	return nil
}
