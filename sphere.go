package nurbs

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// The meridian of the unit sphere in the xz plane, from the south pole to the
// north pole: a half circle with five control points.
var (
	meridianKnots = [...]float64{0, 0, 0, 0.5, 0.5, 1, 1, 1}
	meridianX     = [5]float64{0, 1, 1, 1, 0}
	meridianZ     = [5]float64{-1, -1, 0, 1, 1}
	meridianW     = [5]float64{1, math.Sqrt2 / 2, 1, math.Sqrt2 / 2, 1}
)

// MakeSphere configures dst as the exact sphere of the given radius around
// center. The sphere is the surface of revolution of a half circle, running
// from the south to the north pole in u, about the z axis, running
// counterclockwise from the xz plane in v, as in [MakeCircle].
//
// The result is a rational surface of order 3 in both directions with 5×9
// control points.
func MakeSphere(dst SurfaceTarget, center vec3.T, radius float64) error {
	s, err := surfaceOf(dst)
	if err != nil {
		return err
	}
	nu, nv := len(meridianX), len(squareX)
	if err := s.Resize(2, 4, []int{3, 3}, []int{nu, nv}, true); err != nil {
		return err
	}
	copy(s.KnotVector(0), meridianKnots[:])
	copy(s.KnotVector(1), circleKnots[:])

	for j := range nv {
		for i := range nu {
			idx := s.ControlPointIndex(i, j)
			w := meridianW[i] * squareWeight(j)
			p := vec3.T{
				center[0] + radius*meridianX[i]*squareX[j],
				center[1] + radius*meridianX[i]*squareY[j],
				center[2] + radius*meridianZ[i],
			}
			for c, v := range p {
				s.SetControlPoint(c, idx, w*v)
			}
			s.SetWeight(idx, w)
		}
	}
	return nil
}

func surfaceOf(dst SurfaceTarget) (*Spline, error) {
	var s *Spline
	if dst != nil {
		s = dst.surfaceTarget()
	}
	if s == nil {
		return nil, fmt.Errorf("nil surface: %w", ErrInvalid)
	}
	return s, nil
}
