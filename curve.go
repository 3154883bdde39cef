package nurbs

// CurveTarget is implemented by the types the curve constructors, such as
// [MakeLine] and [MakeCircle], can write to: [*Curve] and [*Spline].
type CurveTarget interface {
	curveTarget() *Spline
}

var _ CurveTarget = (*Curve)(nil)
var _ CurveTarget = (*Spline)(nil)

func (s *Spline) curveTarget() *Spline { return s }

// Curve is a spline with one independent variable. Its methods are those of
// [Spline] with the direction argument dropped.
//
// The zero value is an empty curve; use [Curve.Resize] or one of the
// constructors to configure it.
type Curve struct {
	s Spline
}

func (c *Curve) curveTarget() *Spline {
	if c == nil {
		return nil
	}
	return &c.s
}

// Spline returns the underlying spline. Reconfiguring it to more than one
// independent variable leaves the curve unusable.
func (c *Curve) Spline() *Spline { return &c.s }

// Resize configures the curve. See [Spline.Resize].
func (c *Curve) Resize(numDepVars, order, numCtrPts int, rational bool) error {
	return c.s.Resize(1, numDepVars, []int{order}, []int{numCtrPts}, rational)
}

func (c *Curve) NumDepVars() int { return c.s.NumDepVars() }
func (c *Curve) Rational() bool { return c.s.Rational() }
func (c *Curve) SetRational(rational bool) { c.s.SetRational(rational) }
func (c *Curve) Dimension() int { return c.s.Dimension() }
func (c *Curve) Order() int { return c.s.Order(0) }
func (c *Curve) Degree() int { return c.s.Degree(0) }
func (c *Curve) NumControlPoints() int { return c.s.NumControlPoints(0) }
func (c *Curve) NumKnots() int { return c.s.NumKnots(0) }
func (c *Curve) Knots() []float64 { return c.s.KnotVector(0) }
func (c *Curve) Knot(k int) float64 { return c.s.Knot(0, k) }
func (c *Curve) SetKnot(k int, v float64) { c.s.SetKnot(0, k, v) }
func (c *Curve) FirstKnot() float64 { return c.s.FirstKnot(0) }
func (c *Curve) LastKnot() float64 { return c.s.LastKnot(0) }
func (c *Curve) InRange(u float64) bool { return c.s.InRange(0, u) }
func (c *Curve) KnotMultiplicity(u float64) int {
	return c.s.KnotMultiplicity(0, u)
}

// ControlPoint returns the value of dependent variable dep of control point
// i.
func (c *Curve) ControlPoint(dep, i int) float64 { return c.s.ControlPoint(dep, i) }

// SetControlPoint sets the value of dependent variable dep of control point
// i.
func (c *Curve) SetControlPoint(dep, i int, v float64) { c.s.SetControlPoint(dep, i, v) }

func (c *Curve) Channel(dep int) []float64 { return c.s.Channel(dep) }
func (c *Curve) Weights() []float64 { return c.s.Weights() }
func (c *Curve) Weight(i int) float64 { return c.s.Weight(i) }
func (c *Curve) SetWeight(i int, w float64) { c.s.SetWeight(i, w) }
func (c *Curve) SetNumDepVars(n int) error { return c.s.SetNumDepVars(n) }
func (c *Curve) SetDimension(d int) error { return c.s.SetDimension(d) }
func (c *Curve) Check() error { return c.s.Check() }
func (c *Curve) FindSpan(u float64) int { return c.s.FindSpan(0, u) }
func (c *Curve) FindSpanFrom(u float64, low int) int {
	return c.s.FindSpanFrom(0, u, low)
}

// BasisFunctions returns the nonzero basis functions at u. See
// [Spline.BasisFunctions].
func (c *Curve) BasisFunctions(u float64) []float64 { return c.s.BasisFunctions(0, u) }

// BasisFunctionsAt returns the nonzero basis functions at u, which must lie
// in the given span.
func (c *Curve) BasisFunctionsAt(u float64, span int) []float64 {
	return c.s.BasisFunctionsAt(0, u, span)
}

// Evaluate computes the point at parameter u and stores it in pt. See
// [Spline.Evaluate].
func (c *Curve) Evaluate(u float64, pt []float64) { c.s.evaluateCurve(u, pt) }

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	n := new(Curve)
	n.s.Set(&c.s)
	return n
}

func (c *Curve) Equal(o *Curve) bool { return c.s.Equal(&o.s) }
func (c *Curve) NotEqual(o *Curve) bool { return c.s.NotEqual(&o.s) }

// EqualTol compares curves within tolerances. See [Spline.EqualTol].
func (c *Curve) EqualTol(o *Curve, knotTol, ctrPtTol float64) bool {
	return c.s.EqualTol(&o.s, knotTol, ctrPtTol)
}
