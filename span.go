package nurbs

// FindSpan returns the index of the knot span containing u, that is, the
// index i with knots[i] <= u < knots[i+1]. Of several equal knots, the last
// one is used. At the upper end of the parameter range, where u equals
// knots[numCtrPts], FindSpan returns numCtrPts-1, the last non-empty span.
//
// The search is a binary search over knots[low:numCtrPts+1]. Passing the
// degree as low searches the whole range; a larger low restricts the search
// when the caller knows a lower bound, for example when evaluating at
// increasing parameters.
//
// u must lie within [knots[low], knots[numCtrPts]] and no interior knot may
// have a multiplicity greater than the order. These preconditions are only
// checked in nurbsdebug builds.
func FindSpan(knots []float64, numCtrPts int, u float64, low int) int {
	if debugChecks {
		precondition(numCtrPts < len(knots), "%d control points for %d knots", numCtrPts, len(knots))
		precondition(low >= 0 && low <= numCtrPts, "search start %d out of range [0, %d]", low, numCtrPts)
		precondition(u >= knots[low] && u <= knots[numCtrPts],
			"parameter %g outside [%g, %g]", u, knots[low], knots[numCtrPts])
	}

	if u == knots[numCtrPts] {
		return numCtrPts - 1
	}
	high := numCtrPts
	for low <= high {
		mid := (low + high) / 2
		switch {
		case u == knots[mid]:
			return lastEqualKnot(knots, mid)
		case u < knots[mid]:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	if high >= 0 && u == knots[high] {
		return lastEqualKnot(knots, high)
	}
	return low - 1
}

// lastEqualKnot walks forward over knots equal to knots[i].
func lastEqualKnot(knots []float64, i int) int {
	for i+1 < len(knots) && knots[i+1] == knots[i] {
		i++
	}
	return i
}

// FindSpan returns the knot span of u in direction dir. See [FindSpan].
func (s *Spline) FindSpan(dir int, u float64) int {
	return FindSpan(s.KnotVector(dir), s.NumControlPoints(dir), u, s.Degree(dir))
}

// FindSpanFrom is like [Spline.FindSpan] but only searches spans at or above
// low, which must not be less than the degree.
func (s *Spline) FindSpanFrom(dir int, u float64, low int) int {
	if debugChecks {
		precondition(low >= s.Degree(dir), "search start %d below degree %d", low, s.Degree(dir))
	}
	return FindSpan(s.KnotVector(dir), s.NumControlPoints(dir), u, low)
}
