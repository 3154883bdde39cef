package nurbs

// SurfaceTarget is implemented by the types the surface constructors, such as
// [MakeSphere], can write to: [*Surface] and [*Spline].
type SurfaceTarget interface {
	surfaceTarget() *Spline
}

var _ SurfaceTarget = (*Surface)(nil)
var _ SurfaceTarget = (*Spline)(nil)

func (s *Spline) surfaceTarget() *Spline { return s }

// Surface is a spline with two independent variables, u (direction 0) and v
// (direction 1). Control points are addressed by their grid position (i, j),
// i along u and j along v.
type Surface struct {
	s Spline
}

func (sf *Surface) surfaceTarget() *Spline {
	if sf == nil {
		return nil
	}
	return &sf.s
}

// Spline returns the underlying spline. Reconfiguring it to other than two
// independent variables leaves the surface unusable.
func (sf *Surface) Spline() *Spline { return &sf.s }

// Resize configures the surface. order and numCtrPts hold the values for u
// and v. See [Spline.Resize].
func (sf *Surface) Resize(numDepVars int, order, numCtrPts [2]int, rational bool) error {
	return sf.s.Resize(2, numDepVars, order[:], numCtrPts[:], rational)
}

func (sf *Surface) NumDepVars() int { return sf.s.NumDepVars() }
func (sf *Surface) Rational() bool { return sf.s.Rational() }
func (sf *Surface) SetRational(rational bool) { sf.s.SetRational(rational) }
func (sf *Surface) Dimension() int { return sf.s.Dimension() }
func (sf *Surface) Order(dir int) int { return sf.s.Order(dir) }
func (sf *Surface) Degree(dir int) int { return sf.s.Degree(dir) }
func (sf *Surface) NumControlPoints(dir int) int { return sf.s.NumControlPoints(dir) }
func (sf *Surface) TotalNumControlPoints() int { return sf.s.TotalNumControlPoints() }
func (sf *Surface) NumKnots(dir int) int { return sf.s.NumKnots(dir) }
func (sf *Surface) KnotVector(dir int) []float64 { return sf.s.KnotVector(dir) }
func (sf *Surface) Knot(dir, k int) float64 { return sf.s.Knot(dir, k) }
func (sf *Surface) SetKnot(dir, k int, v float64) { sf.s.SetKnot(dir, k, v) }
func (sf *Surface) FirstKnot(dir int) float64 { return sf.s.FirstKnot(dir) }
func (sf *Surface) LastKnot(dir int) float64 { return sf.s.LastKnot(dir) }
func (sf *Surface) InRange(dir int, u float64) bool { return sf.s.InRange(dir, u) }
func (sf *Surface) Check() error { return sf.s.Check() }

// ControlPoint returns the value of dependent variable dep of the control
// point at grid position (i, j).
func (sf *Surface) ControlPoint(dep, i, j int) float64 {
	return sf.s.ControlPoint(dep, sf.s.ControlPointIndex(i, j))
}

// SetControlPoint sets the value of dependent variable dep of the control
// point at grid position (i, j).
func (sf *Surface) SetControlPoint(dep, i, j int, v float64) {
	sf.s.SetControlPoint(dep, sf.s.ControlPointIndex(i, j), v)
}

// Weight returns the weight of the control point at (i, j). The surface must
// be rational.
func (sf *Surface) Weight(i, j int) float64 {
	return sf.s.Weight(sf.s.ControlPointIndex(i, j))
}

// SetWeight sets the weight of the control point at (i, j).
func (sf *Surface) SetWeight(i, j int, w float64) {
	sf.s.SetWeight(sf.s.ControlPointIndex(i, j), w)
}

func (sf *Surface) FindSpan(dir int, u float64) int { return sf.s.FindSpan(dir, u) }

// BasisFunctions returns the nonzero basis functions of direction dir at u.
// The slices returned for u and v are independent of each other.
func (sf *Surface) BasisFunctions(dir int, u float64) []float64 {
	return sf.s.BasisFunctions(dir, u)
}

// Evaluate computes the point at parameters (u, v) and stores it in pt.
func (sf *Surface) Evaluate(u, v float64, pt []float64) {
	params := sf.s.work.params[:2]
	params[0], params[1] = u, v
	sf.s.Evaluate(params, pt)
}

// Clone returns a deep copy of the surface.
func (sf *Surface) Clone() *Surface {
	n := new(Surface)
	n.s.Set(&sf.s)
	return n
}

func (sf *Surface) Equal(o *Surface) bool { return sf.s.Equal(&o.s) }
func (sf *Surface) NotEqual(o *Surface) bool { return sf.s.NotEqual(&o.s) }

// EqualTol compares surfaces within tolerances. See [Spline.EqualTol].
func (sf *Surface) EqualTol(o *Surface, knotTol, ctrPtTol float64) bool {
	return sf.s.EqualTol(&o.s, knotTol, ctrPtTol)
}
