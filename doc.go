// Package nurbs provides non-uniform rational B-splines (NURBS) with any number
// of independent and dependent variables, and the algorithms to evaluate them.
//
// # Splines
//
// [Spline] is the general data model: a tensor product of B-spline bases,
// one per independent variable, over a grid of control points. Each control
// point has one value per dependent variable. A rational spline stores
// homogeneous coordinates, with the weights in the last dependent variable.
//
// [Curve] and [Surface] are views of splines with one and two independent
// variables. They are what most code wants to use; [Spline] is there for
// volumes and for code that is generic over the number of independent
// variables.
//
// A spline is configured with [Spline.Resize] (or [Curve.Resize],
// [Surface.Resize]), after which the caller fills in knots and control
// points. Alternatively, the constructors configure and fill a curve or
// surface in one go:
//
//   - [MakeLine] and its fixed-dimension variants, such as [MakeLine3]
//   - [MakeCircle], an exact circle
//   - [MakeArc] and [MakeEllipseArc], exact circular and elliptical arcs
//   - [MakeBezier], a single Bézier segment
//   - [MakePolyline], a polyline parameterized by arc length
//   - [MakeSphere], an exact sphere
//
// # Evaluation
//
// Evaluation is split into three steps, each of which is exported so that
// callers can reuse intermediate results: [FindSpan] locates the knot span of
// a parameter, [BasisFunctions] computes the nonzero basis functions in that
// span, and [EvaluatePoint] blends the control points of the span.
// [Curve.Evaluate], [Surface.Evaluate] and [Spline.Evaluate] do all three.
//
// Evaluation doesn't allocate. Splines carry a small workspace for the
// intermediate results, which is why evaluating a spline mutates it, and why
// a spline must not be evaluated from several goroutines at once. Use
// [Spline.Clone] to give each goroutine its own copy.
//
// # Errors and preconditions
//
// Operations that configure a spline validate their arguments and return
// errors that wrap the sentinel errors of this package, such as [ErrOrder].
// Operations on the evaluation path, including indexed access to knots and
// control points, don't: they document their preconditions instead. Building
// with the nurbsdebug tag turns those preconditions into checks that panic
// with a descriptive message.
//
// [Spline.Check] validates a whole spline at once and is meant for data that
// enters the program from outside.
//
// # Tracing
//
// Rejected configurations are reported to the trace with the key 'nurbs',
// see [github.com/npillmayer/schuko/tracing].
//
// # Literature
//
//   - [The NURBS Book] by Les Piegl and Wayne Tiller, in particular algorithms
//     A2.1 (span search), A2.2 (basis functions), A4.1 (rational points) and
//     A7.1 (circular arcs)
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
package nurbs
