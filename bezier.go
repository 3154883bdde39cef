package nurbs

import "fmt"

// MakeBezier configures dst as the Bézier curve with the given control
// points: a non-rational curve whose order equals the number of points, with
// all knots at 0 and 1. There must be at least two points, all of the same
// non-zero dimension.
func MakeBezier(dst CurveTarget, pts [][]float64) error {
	dim, err := pointsDimension(pts)
	if err != nil {
		return fmt.Errorf("bezier curve: %w", err)
	}
	s, err := curveOf(dst)
	if err != nil {
		return err
	}
	order := len(pts)
	if err := s.Resize(1, dim, []int{order}, []int{order}, false); err != nil {
		return err
	}
	kv := s.KnotVector(0)
	for k := order; k < len(kv); k++ {
		kv[k] = 1
	}
	setControlPoints(s, pts)
	return nil
}

// pointsDimension returns the common dimension of at least two points.
func pointsDimension(pts [][]float64) (int, error) {
	if len(pts) < MinNumControlPoints {
		return 0, fmt.Errorf("%d points: %w", len(pts), ErrControlPoints)
	}
	dim := len(pts[0])
	for i, p := range pts {
		if len(p) == 0 || len(p) != dim {
			return 0, fmt.Errorf("point %d has dimension %d, want %d: %w", i, len(p), dim, ErrDimension)
		}
	}
	return dim, nil
}

func setControlPoints(s *Spline, pts [][]float64) {
	for i, p := range pts {
		for j, v := range p {
			s.SetControlPoint(j, i, v)
		}
	}
}
