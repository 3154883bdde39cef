package nurbs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MakePolyline configures dst as the polyline through pts: a non-rational
// curve of order 2 whose interior knots are the normalized cumulative chord
// lengths, so that the parameter is proportional to arc length.
//
// There must be at least two points, all of the same non-zero dimension.
// Consecutive equal points are merged into one, and at least two distinct
// points must remain.
func MakePolyline(dst CurveTarget, pts [][]float64) error {
	dim, err := pointsDimension(pts)
	if err != nil {
		return fmt.Errorf("polyline: %w", err)
	}
	kept := pts[:1:1]
	// cum[i] is the length of the polyline up to kept point i.
	cum := []float64{0}
	for _, p := range pts[1:] {
		d := floats.Distance(kept[len(kept)-1], p, 2)
		if d == 0 {
			continue
		}
		kept = append(kept, p)
		cum = append(cum, cum[len(cum)-1]+d)
	}
	n := len(kept)
	if n < 2 {
		return fmt.Errorf("polyline of zero length: %w", ErrDegenerate)
	}
	length := cum[n-1]

	s, err := curveOf(dst)
	if err != nil {
		return err
	}
	if err := s.Resize(1, dim, []int{2}, []int{n}, false); err != nil {
		return err
	}
	kv := s.KnotVector(0)
	for i := 1; i < n-1; i++ {
		kv[i+1] = cum[i] / length
	}
	kv[n], kv[n+1] = 1, 1
	setControlPoints(s, kept)
	return nil
}
