package nurbs

import (
	"slices"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance is a tolerance suitable for comparing splines whose
// values are of magnitude one.
const DefaultTolerance = 1e-9

// Tolerance is the type of a control point tolerance. A float64 applies to
// every channel. A vector applies component j to channel j; channels beyond
// the vector, such as the weight channel of a rational spline, use the
// smallest component.
type Tolerance interface {
	float64 | vec2.T | vec3.T
}

// Equal reports whether s and o have the same configuration, the same knots
// and the same control points. Values are compared with ==, so a spline
// holding NaN isn't equal to anything.
func (s *Spline) Equal(o *Spline) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.sameConfig(o) &&
		slices.Equal(s.knots, o.knots) &&
		slices.Equal(s.ctrPts, o.ctrPts)
}

// NotEqual is the negation of [Spline.Equal].
func (s *Spline) NotEqual(o *Spline) bool { return !s.Equal(o) }

// EqualTol is like [Spline.Equal] but accepts knots that differ by at most
// knotTol and control point values that differ by at most ctrPtTol. With both
// tolerances zero it agrees with Equal.
func (s *Spline) EqualTol(o *Spline, knotTol, ctrPtTol float64) bool {
	return EqualWithin(s, o, knotTol, ctrPtTol)
}

// EqualWithin is like [Spline.EqualTol] with a per-channel control point
// tolerance. See [Tolerance].
func EqualWithin[T Tolerance](a, b *Spline, knotTol float64, ctrPtTol T) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.sameConfig(b) {
		return false
	}
	for i, k := range a.knots {
		if !floats.EqualWithinAbs(k, b.knots[i], knotTol) {
			return false
		}
	}
	tol := channelTolerance(ctrPtTol)
	for j := range a.numDepVars {
		t := tol(j)
		ca, cb := a.Channel(j), b.Channel(j)
		for i, v := range ca {
			if !floats.EqualWithinAbs(v, cb[i], t) {
				return false
			}
		}
	}
	return true
}

func (s *Spline) sameConfig(o *Spline) bool {
	return s.numDepVars == o.numDepVars &&
		s.rational == o.rational &&
		slices.Equal(s.order, o.order) &&
		slices.Equal(s.numCtrPts, o.numCtrPts)
}

func channelTolerance[T Tolerance](tol T) func(channel int) float64 {
	switch tol := any(tol).(type) {
	case float64:
		return func(int) float64 { return tol }
	case vec2.T:
		return componentTolerance(tol[:])
	case vec3.T:
		return componentTolerance(tol[:])
	}
	panic("unreachable")
}

func componentTolerance(tol []float64) func(channel int) float64 {
	smallest := slices.Min(tol)
	return func(j int) float64 {
		if j < len(tol) {
			return tol[j]
		}
		return smallest
	}
}
