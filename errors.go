package nurbs

import "errors"

// Configuration errors. Every operation that reconfigures a spline returns
// one of these, possibly wrapped with context; match them with [errors.Is].
//
// Hot-path operations (span search, basis functions, evaluation, indexed
// access) never return errors. Their preconditions are only checked when the
// package is built with the nurbsdebug tag.
var (
	// ErrIndepVars is returned when the number of independent variables is
	// less than one.
	ErrIndepVars = errors.New("nurbs: invalid number of independent variables")

	// ErrDepVars is returned when the number of dependent variables is less
	// than one, or less than two for a rational spline.
	ErrDepVars = errors.New("nurbs: invalid number of dependent variables")

	// ErrOrder is returned when an order is less than two.
	ErrOrder = errors.New("nurbs: invalid order")

	// ErrControlPoints is returned when a direction has fewer than two
	// control points, or fewer control points than its order.
	ErrControlPoints = errors.New("nurbs: invalid number of control points")

	// ErrSizeMismatch is returned when per-direction slices don't have one
	// entry per independent variable.
	ErrSizeMismatch = errors.New("nurbs: size mismatch")

	// ErrDimension is returned when point arguments have an unsupported or
	// inconsistent dimension.
	ErrDimension = errors.New("nurbs: invalid dimension")

	// ErrDegenerate is returned when a constructor's geometry collapses,
	// such as a polyline of zero length or an arc with a zero axis.
	ErrDegenerate = errors.New("nurbs: degenerate geometry")

	// ErrInvalid is returned by [Spline.Check] when the spline's data is
	// inconsistent.
	ErrInvalid = errors.New("nurbs: invalid spline")
)
