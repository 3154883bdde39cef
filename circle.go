package nurbs

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// circleKnots is the knot vector of the nine-point circle: four quarter arcs,
// each joined with multiplicity two.
var circleKnots = [...]float64{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1}

// The control polygon of the unit circle is the square around it, starting
// and ending at (1, 0) and running counterclockwise through the corners.
var (
	squareX = [9]float64{1, 1, 0, -1, -1, -1, 0, 1, 1}
	squareY = [9]float64{0, 1, 1, 1, 0, -1, -1, -1, 0}
)

// squareWeight returns the weight of control point k of the nine-point
// circle: 1 on the circle, 1/√2 at the corners of the square.
func squareWeight(k int) float64 {
	if k%2 == 1 {
		return math.Sqrt2 / 2
	}
	return 1
}

// MakeCircle configures dst as the exact circle of the given radius around
// center, lying in the xy plane. center must have two or three coordinates;
// a third coordinate becomes the constant z of the circle.
//
// The result is a rational curve of order 3 with nine control points and the
// knot vector [0, 0, 0, ¼, ¼, ½, ½, ¾, ¾, 1, 1, 1]. The parameter 0 maps to
// center + (radius, 0) and the curve runs counterclockwise, reaching each
// axis at a multiple of ¼.
func MakeCircle(dst CurveTarget, center []float64, radius float64) error {
	dim := len(center)
	if dim != 2 && dim != 3 {
		return fmt.Errorf("circle around %d-dimensional center: %w", dim, ErrDimension)
	}
	s, err := curveOf(dst)
	if err != nil {
		return err
	}
	if err := s.Resize(1, dim+1, []int{3}, []int{len(squareX)}, true); err != nil {
		return err
	}
	copy(s.KnotVector(0), circleKnots[:])
	for k := range squareX {
		w := squareWeight(k)
		s.SetControlPoint(0, k, w*(center[0]+radius*squareX[k]))
		s.SetControlPoint(1, k, w*(center[1]+radius*squareY[k]))
		if dim == 3 {
			s.SetControlPoint(2, k, w*center[2])
		}
		s.SetWeight(k, w)
	}
	return nil
}

// MakeCircle2 configures dst as a two-dimensional circle.
func MakeCircle2(dst CurveTarget, center vec2.T, radius float64) error {
	return MakeCircle(dst, center[:], radius)
}

// MakeCircle3 configures dst as a three-dimensional circle parallel to the xy
// plane.
func MakeCircle3(dst CurveTarget, center vec3.T, radius float64) error {
	return MakeCircle(dst, center[:], radius)
}
