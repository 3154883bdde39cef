package nurbs

// EvaluatePoint blends the control points of one knot span with the basis
// functions n (see [BasisFunctions]) and stores the result in pt.
//
// ctrPts holds one channel per coordinate, indexed by control point. If
// weights is not nil, the channels are homogeneous coordinates and the blended
// point is divided by the blended weight. The number of coordinates computed
// is the smaller of len(pt) and len(ctrPts); remaining entries of pt are set
// to zero.
func EvaluatePoint(degree, span int, n []float64, ctrPts [][]float64, weights []float64, pt []float64) {
	first := span - degree
	if debugChecks {
		precondition(first >= 0, "span %d below degree %d", span, degree)
		precondition(len(n) > degree, "%d basis functions for degree %d", len(n), degree)
	}

	clear(pt)
	dim := min(len(pt), len(ctrPts))
	for j := range dim {
		var sum float64
		for i, c := range ctrPts[j][first : first+degree+1] {
			sum += n[i] * c
		}
		pt[j] = sum
	}
	if weights == nil {
		return
	}

	var w float64
	for i, c := range weights[first : first+degree+1] {
		w += n[i] * c
	}
	inv := 1 / w
	for j := range dim {
		pt[j] *= inv
	}
}

// Evaluate computes the point at the parameters params, one per independent
// variable, and stores its coordinates in pt. At most [Spline.Dimension]
// coordinates are computed; if pt is longer, the remaining entries are set to
// zero.
//
// Each parameter must lie in the parameter range of its direction. Evaluate
// doesn't allocate; it uses the spline's workspace.
func (s *Spline) Evaluate(params []float64, pt []float64) {
	nv := len(s.order)
	if debugChecks {
		precondition(len(params) == nv, "%d parameters for %d independent variables", len(params), nv)
		for d, u := range params {
			precondition(s.InRange(d, u), "parameter %g out of range in direction %d", u, d)
		}
	}

	w := &s.work
	for d, u := range params {
		span := s.FindSpan(d, u)
		s.BasisFunctionsAt(d, u, span)
		w.first[d] = span - s.order[d] + 1
		w.index[d] = 0
	}

	clear(pt)
	dim := min(len(pt), s.Dimension())
	total := s.TotalNumControlPoints()
	var weights []float64
	if s.rational {
		weights = s.Weights()
	}
	var weight float64
	for {
		coef := 1.0
		idx := 0
		for d := range nv {
			i := w.index[d]
			coef *= w.basis[d*w.maxOrder+i]
			idx += (w.first[d] + i) * s.stride[d]
		}
		for j := range dim {
			pt[j] += coef * s.ctrPts[j*total+idx]
		}
		if weights != nil {
			weight += coef * weights[idx]
		}

		// Advance the odometer, direction 0 first.
		d := 0
		for ; d < nv; d++ {
			w.index[d]++
			if w.index[d] < s.order[d] {
				break
			}
			w.index[d] = 0
		}
		if d == nv {
			break
		}
	}

	if weights != nil {
		inv := 1 / weight
		for j := range dim {
			pt[j] *= inv
		}
	}
}

// evaluateCurve is the single-direction fast path of Evaluate.
func (s *Spline) evaluateCurve(u float64, pt []float64) {
	if debugChecks {
		precondition(len(s.order) == 1, "curve evaluation of a spline with %d independent variables", len(s.order))
		precondition(s.InRange(0, u), "parameter %g out of range [%g, %g]", u, s.FirstKnot(0), s.LastKnot(0))
	}
	span := s.FindSpan(0, u)
	n := s.BasisFunctionsAt(0, u, span)

	w := &s.work
	w.channels = w.channels[:0]
	for j := range s.Dimension() {
		w.channels = append(w.channels, s.Channel(j))
	}
	EvaluatePoint(s.order[0]-1, span, n, w.channels, s.Weights(), pt)
}
