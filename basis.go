package nurbs

// BasisFunctions computes the order nonzero B-spline basis functions of the
// given order at u, which must lie in knot span span (see [FindSpan]), and
// stores them in n[0:order]. n[i] is the basis function belonging to control
// point span-order+1+i.
//
// left and right are scratch buffers. All three buffers need at least order
// entries; the values in left and right are clobbered.
//
// The basis functions are non-negative and sum to one.
func BasisFunctions(knots []float64, order, span int, u float64, left, right, n []float64) {
	if debugChecks {
		precondition(order >= 1, "order %d", order)
		precondition(len(left) >= order && len(right) >= order && len(n) >= order,
			"scratch buffers of length %d, %d, %d for order %d", len(left), len(right), len(n), order)
		precondition(span >= order-1 && span+order <= len(knots),
			"span %d out of range for order %d and %d knots", span, order, len(knots))
	}

	n[0] = 1
	for j := 1; j < order; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := range j {
			tmp := n[r] / (right[r+1] + left[j-r])
			n[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		n[j] = saved
	}
}

// BasisFunctions returns the nonzero basis functions of direction dir at u.
//
// The returned slice is part of the spline's workspace. It is overwritten by
// the next evaluation in the same direction.
func (s *Spline) BasisFunctions(dir int, u float64) []float64 {
	return s.BasisFunctionsAt(dir, u, s.FindSpan(dir, u))
}

// BasisFunctionsAt is like [Spline.BasisFunctions] for a span that the
// caller has already found.
func (s *Spline) BasisFunctionsAt(dir int, u float64, span int) []float64 {
	order := s.Order(dir)
	left, right, n := s.work.dir(dir)
	BasisFunctions(s.KnotVector(dir), order, span, u, left, right, n)
	return n[:order:order]
}
