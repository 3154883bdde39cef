package nurbs

import (
	"fmt"
	"math"
	"slices"
)

// Limits of a spline configuration.
const (
	// MinOrder is the smallest order (degree + 1) of any direction.
	MinOrder = 2
	// MinNumControlPoints is the smallest number of control points in any
	// direction.
	MinNumControlPoints = 2
)

// Spline is a tensor-product NURBS with any number of independent variables
// (parametric directions) and dependent variables (control point channels).
//
// The zero value is an empty spline with no independent or dependent
// variables. [Spline.Resize] configures it; afterwards the caller fills in
// the knots and control points.
//
// Knots are stored per direction, one knot vector after the other. Control
// points are stored per channel: all values of dependent variable 0, then all
// values of dependent variable 1, and so on, so that a channel is a
// contiguous slice (see [Spline.Channel]). Within a channel, control points
// form a grid in which direction 0 varies fastest (see
// [Spline.ControlPointIndex]).
//
// If the spline is rational, the last channel holds the weights and the other
// channels hold homogeneous coordinates, that is, coordinates premultiplied by
// their weight.
//
// A Spline owns a scratch workspace that the evaluation methods write to.
// Because of that, a Spline must not be used from multiple goroutines at the
// same time unless all of them only call methods that neither reconfigure it
// nor evaluate it. Distinct splines are independent.
type Spline struct {
	order      []int
	numCtrPts  []int
	numDepVars int
	rational   bool

	// knotOff[i] is the offset of direction i's knot vector in knots.
	// It has one more entry than there are directions.
	knotOff []int
	// stride[i] is the distance between neighboring control points in
	// direction i. stride[len(order)] is the total number of control points.
	stride []int

	knots  []float64
	ctrPts []float64

	work workspace
}

// Resize configures the spline for numIndepVars independent variables and
// numDepVars dependent variables, with the given order and number of control
// points per independent variable.
//
// Resize is a structural reset: the knots and control points are zeroed and
// must be filled in again. It fails, leaving the spline unchanged, if there is
// no independent or dependent variable, if a rational spline has fewer than
// two dependent variables, if an order is less than [MinOrder], or if a
// direction has fewer than [MinNumControlPoints] control points or fewer
// control points than its order.
func (s *Spline) Resize(numIndepVars, numDepVars int, order, numCtrPts []int, rational bool) error {
	if err := checkConfig(numIndepVars, numDepVars, order, numCtrPts, rational); err != nil {
		tracer().Debugf("resize rejected: %v", err)
		return err
	}

	s.order = append(s.order[:0], order...)
	s.numCtrPts = append(s.numCtrPts[:0], numCtrPts...)
	s.numDepVars = numDepVars
	s.rational = rational

	s.knotOff = slices.Grow(s.knotOff[:0], numIndepVars+1)[:numIndepVars+1]
	s.stride = slices.Grow(s.stride[:0], numIndepVars+1)[:numIndepVars+1]
	s.knotOff[0] = 0
	s.stride[0] = 1
	maxOrder := 0
	for i := range numIndepVars {
		s.knotOff[i+1] = s.knotOff[i] + numCtrPts[i] + order[i]
		s.stride[i+1] = s.stride[i] * numCtrPts[i]
		maxOrder = max(maxOrder, order[i])
	}

	s.knots = zeroed(s.knots, s.knotOff[numIndepVars])
	s.ctrPts = zeroed(s.ctrPts, s.stride[numIndepVars]*numDepVars)
	s.work.resize(numIndepVars, numDepVars, maxOrder)
	return nil
}

func checkConfig(numIndepVars, numDepVars int, order, numCtrPts []int, rational bool) error {
	if numIndepVars < 1 {
		return fmt.Errorf("%d independent variables: %w", numIndepVars, ErrIndepVars)
	}
	if numDepVars < 1 || (rational && numDepVars < 2) {
		return fmt.Errorf("%d dependent variables (rational: %t): %w", numDepVars, rational, ErrDepVars)
	}
	if len(order) != numIndepVars || len(numCtrPts) != numIndepVars {
		return fmt.Errorf("%d orders and %d control point counts for %d independent variables: %w",
			len(order), len(numCtrPts), numIndepVars, ErrSizeMismatch)
	}
	for i := range numIndepVars {
		if order[i] < MinOrder {
			return fmt.Errorf("order %d in direction %d: %w", order[i], i, ErrOrder)
		}
		if numCtrPts[i] < MinNumControlPoints || numCtrPts[i] < order[i] {
			return fmt.Errorf("%d control points for order %d in direction %d: %w",
				numCtrPts[i], order[i], i, ErrControlPoints)
		}
	}
	return nil
}

// zeroed returns a zeroed slice of length n, reusing buf if it is big enough.
func zeroed(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// NumIndepVars returns the number of independent variables. A curve has 1, a
// surface 2.
func (s *Spline) NumIndepVars() int { return len(s.order) }

// NumDepVars returns the number of dependent variables, including the weight
// channel of a rational spline.
func (s *Spline) NumDepVars() int { return s.numDepVars }

// Rational reports whether the last dependent variable holds weights.
func (s *Spline) Rational() bool { return s.rational }

// SetRational changes how the last dependent variable is interpreted. The
// stored values are left as they are.
func (s *Spline) SetRational(rational bool) {
	if debugChecks && rational {
		precondition(s.numDepVars >= 2, "rational spline needs two dependent variables, have %d", s.numDepVars)
	}
	s.rational = rational
}

// Dimension returns the number of coordinates of an evaluated point. It is
// the number of dependent variables, minus one if the spline is rational.
func (s *Spline) Dimension() int {
	if s.rational && s.numDepVars > 0 {
		return s.numDepVars - 1
	}
	return s.numDepVars
}

// Order returns the order (degree + 1) in direction dir.
func (s *Spline) Order(dir int) int {
	s.checkDir(dir)
	return s.order[dir]
}

// Degree returns the polynomial degree in direction dir.
func (s *Spline) Degree(dir int) int {
	return s.Order(dir) - 1
}

// NumControlPoints returns the number of control points in direction dir.
func (s *Spline) NumControlPoints(dir int) int {
	s.checkDir(dir)
	return s.numCtrPts[dir]
}

// NumKnots returns the number of knots in direction dir, which is the number
// of control points plus the order.
func (s *Spline) NumKnots(dir int) int {
	s.checkDir(dir)
	return s.knotOff[dir+1] - s.knotOff[dir]
}

// TotalNumControlPoints returns the number of control points in the whole
// grid, which is the product of the per-direction counts.
func (s *Spline) TotalNumControlPoints() int {
	if len(s.stride) == 0 {
		return 0
	}
	return s.stride[len(s.stride)-1]
}

// TotalNumKnots returns the sum of the knot vector lengths.
func (s *Spline) TotalNumKnots() int { return len(s.knots) }

// KnotVector returns the knots of direction dir. The slice aliases the
// spline's storage until the next call to [Spline.Resize].
func (s *Spline) KnotVector(dir int) []float64 {
	s.checkDir(dir)
	lo, hi := s.knotOff[dir], s.knotOff[dir+1]
	return s.knots[lo:hi:hi]
}

// Knot returns knot k of direction dir.
func (s *Spline) Knot(dir, k int) float64 {
	return s.knots[s.knotIndex(dir, k)]
}

// SetKnot sets knot k of direction dir.
func (s *Spline) SetKnot(dir, k int, v float64) {
	s.knots[s.knotIndex(dir, k)] = v
}

func (s *Spline) knotIndex(dir, k int) int {
	s.checkDir(dir)
	if debugChecks {
		precondition(k >= 0 && k < s.knotOff[dir+1]-s.knotOff[dir],
			"knot %d out of range in direction %d", k, dir)
	}
	return s.knotOff[dir] + k
}

// FirstKnot returns the first knot of direction dir, the lower end of its
// parameter range.
func (s *Spline) FirstKnot(dir int) float64 {
	return s.Knot(dir, 0)
}

// LastKnot returns the last knot of direction dir, the upper end of its
// parameter range.
func (s *Spline) LastKnot(dir int) float64 {
	return s.Knot(dir, s.NumKnots(dir)-1)
}

// InRange reports whether u lies in the parameter range of direction dir.
func (s *Spline) InRange(dir int, u float64) bool {
	return u >= s.FirstKnot(dir) && u <= s.LastKnot(dir)
}

// KnotMultiplicity returns how often u appears in the knot vector of
// direction dir. It returns 0 if u is not a knot.
func (s *Spline) KnotMultiplicity(dir int, u float64) int {
	kv := s.KnotVector(dir)
	first := slices.Index(kv, u)
	if first < 0 {
		return 0
	}
	n := 1
	for _, k := range kv[first+1:] {
		if k != u {
			break
		}
		n++
	}
	return n
}

// ControlPoint returns the value of dependent variable dep of control point
// i, where i is a flat grid index (see [Spline.ControlPointIndex]).
func (s *Spline) ControlPoint(dep, i int) float64 {
	return s.ctrPts[s.ctrPtIndex(dep, i)]
}

// SetControlPoint sets the value of dependent variable dep of control point
// i.
func (s *Spline) SetControlPoint(dep, i int, v float64) {
	s.ctrPts[s.ctrPtIndex(dep, i)] = v
}

func (s *Spline) ctrPtIndex(dep, i int) int {
	total := s.TotalNumControlPoints()
	if debugChecks {
		precondition(dep >= 0 && dep < s.numDepVars, "dependent variable %d out of range [0, %d)", dep, s.numDepVars)
		precondition(i >= 0 && i < total, "control point %d out of range [0, %d)", i, total)
	}
	return dep*total + i
}

// Channel returns all values of dependent variable dep, one per control
// point. The slice aliases the spline's storage until the next call to
// [Spline.Resize] or [Spline.SetNumDepVars].
func (s *Spline) Channel(dep int) []float64 {
	if debugChecks {
		precondition(dep >= 0 && dep < s.numDepVars, "dependent variable %d out of range [0, %d)", dep, s.numDepVars)
	}
	total := s.TotalNumControlPoints()
	lo, hi := dep*total, (dep+1)*total
	return s.ctrPts[lo:hi:hi]
}

// Weights returns the weight channel of a rational spline, or nil if the
// spline isn't rational.
func (s *Spline) Weights() []float64 {
	if !s.rational {
		return nil
	}
	return s.Channel(s.numDepVars - 1)
}

// Weight returns the weight of control point i. The spline must be rational.
func (s *Spline) Weight(i int) float64 {
	if debugChecks {
		precondition(s.rational, "weight of a non-rational spline")
	}
	return s.ControlPoint(s.numDepVars-1, i)
}

// SetWeight sets the weight of control point i. The spline must be rational.
func (s *Spline) SetWeight(i int, w float64) {
	if debugChecks {
		precondition(s.rational, "weight of a non-rational spline")
	}
	s.SetControlPoint(s.numDepVars-1, i, w)
}

// ControlPointIndex converts a grid index, one entry per independent
// variable, into the flat index used by [Spline.ControlPoint]. Direction 0
// varies fastest.
func (s *Spline) ControlPointIndex(grid ...int) int {
	if debugChecks {
		precondition(len(grid) == len(s.order), "%d grid indices for %d independent variables", len(grid), len(s.order))
	}
	idx := 0
	for d, g := range grid {
		if debugChecks {
			precondition(g >= 0 && g < s.numCtrPts[d], "grid index %d out of range in direction %d", g, d)
		}
		idx += g * s.stride[d]
	}
	return idx
}

func (s *Spline) checkDir(dir int) {
	if debugChecks {
		precondition(dir >= 0 && dir < len(s.order), "independent variable %d out of range [0, %d)", dir, len(s.order))
	}
}

// Clone returns a deep copy of the spline with its own workspace.
func (s *Spline) Clone() *Spline {
	c := new(Spline)
	c.Set(s)
	return c
}

// Set makes s a deep copy of o. The workspace isn't shared.
func (s *Spline) Set(o *Spline) {
	if s == o {
		return
	}
	s.order = append(s.order[:0], o.order...)
	s.numCtrPts = append(s.numCtrPts[:0], o.numCtrPts...)
	s.numDepVars = o.numDepVars
	s.rational = o.rational
	s.knotOff = append(s.knotOff[:0], o.knotOff...)
	s.stride = append(s.stride[:0], o.stride...)
	s.knots = append(s.knots[:0], o.knots...)
	s.ctrPts = append(s.ctrPts[:0], o.ctrPts...)
	s.work.resize(len(o.order), o.numDepVars, o.work.maxOrder)
}

// SetNumDepVars changes the number of dependent variables by truncating or
// appending coordinate channels. The weight channel of a rational spline
// stays last. Appended channels are zero.
func (s *Spline) SetNumDepVars(n int) error {
	if len(s.order) == 0 {
		return fmt.Errorf("changing dependent variables of an unconfigured spline: %w", ErrIndepVars)
	}
	if n < 1 || (s.rational && n < 2) {
		err := fmt.Errorf("%d dependent variables (rational: %t): %w", n, s.rational, ErrDepVars)
		tracer().Debugf("dependent variable change rejected: %v", err)
		return err
	}
	if n == s.numDepVars {
		return nil
	}

	total := s.TotalNumControlPoints()
	oldDim, newDim := s.Dimension(), n
	if s.rational {
		newDim--
	}
	ctrPts := make([]float64, n*total)
	copy(ctrPts, s.ctrPts[:min(oldDim, newDim)*total])
	if s.rational {
		copy(ctrPts[newDim*total:], s.Weights())
	}
	s.ctrPts = ctrPts
	s.numDepVars = n
	s.work.resize(len(s.order), n, s.work.maxOrder)
	return nil
}

// SetDimension changes the number of coordinates of the spline's points. See
// [Spline.SetNumDepVars].
func (s *Spline) SetDimension(d int) error {
	if s.rational {
		return s.SetNumDepVars(d + 1)
	}
	return s.SetNumDepVars(d)
}

// Check validates the whole spline: its configuration, that all knots and
// control points are finite, that every knot vector is non-decreasing, that
// no knot repeats more often than the order, and that every knot vector is
// clamped, that is, its first and last order knots are equal.
//
// Check is comprehensive and slow compared to evaluation; it is meant for
// code paths where data enters the program. The returned error wraps
// [ErrInvalid].
func (s *Spline) Check() error {
	err := s.check()
	if err != nil {
		tracer().Debugf("check failed: %v", err)
	}
	return err
}

func (s *Spline) check() error {
	if err := checkConfig(len(s.order), s.numDepVars, s.order, s.numCtrPts, s.rational); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(s.ctrPts) != s.TotalNumControlPoints()*s.numDepVars {
		return fmt.Errorf("%w: %d control point values, want %d", ErrInvalid,
			len(s.ctrPts), s.TotalNumControlPoints()*s.numDepVars)
	}
	for dir := range s.order {
		kv := s.KnotVector(dir)
		if len(kv) != s.order[dir]+s.numCtrPts[dir] {
			return fmt.Errorf("%w: direction %d has %d knots, want %d", ErrInvalid,
				dir, len(kv), s.order[dir]+s.numCtrPts[dir])
		}
		for j, k := range kv {
			if math.IsNaN(k) || math.IsInf(k, 0) {
				return fmt.Errorf("%w: knot %d of direction %d is %g", ErrInvalid, j, dir, k)
			}
			if j > 0 && k < kv[j-1] {
				return fmt.Errorf("%w: knot %d of direction %d decreases", ErrInvalid, j, dir)
			}
		}
		order := s.order[dir]
		for j := order; j < len(kv); j++ {
			if kv[j] == kv[j-order] {
				return fmt.Errorf("%w: knot %g of direction %d repeats more than %d times", ErrInvalid,
					kv[j], dir, order)
			}
		}
		first, last := kv[0], kv[len(kv)-1]
		for j := range order {
			if kv[j] != first || kv[len(kv)-order+j] != last {
				return fmt.Errorf("%w: knot vector of direction %d isn't clamped", ErrInvalid, dir)
			}
		}
	}
	for i, v := range s.ctrPts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			total := s.TotalNumControlPoints()
			return fmt.Errorf("%w: control point %d of dependent variable %d is %g", ErrInvalid,
				i%total, i/total, v)
		}
	}
	return nil
}
