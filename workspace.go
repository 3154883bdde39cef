package nurbs

// workspace holds the scratch buffers of a spline's evaluation methods. Each
// independent variable gets its own segment of maxOrder entries in left,
// right and basis, so that the basis functions of all directions can be held
// at once during tensor-product evaluation.
type workspace struct {
	maxOrder int

	left  []float64
	right []float64
	basis []float64

	// first[d] is the index of the first control point in direction d that
	// contributes to the point being evaluated; index is the odometer that
	// walks the contributing grid.
	first []int
	index []int

	params   []float64
	channels [][]float64
}

func (w *workspace) resize(numIndepVars, numDepVars, maxOrder int) {
	n := numIndepVars * maxOrder
	w.maxOrder = maxOrder
	w.left = resizeBuf(w.left, n)
	w.right = resizeBuf(w.right, n)
	w.basis = resizeBuf(w.basis, n)
	w.first = resizeBuf(w.first, numIndepVars)
	w.index = resizeBuf(w.index, numIndepVars)
	w.params = resizeBuf(w.params, numIndepVars)
	w.channels = resizeBuf(w.channels, numDepVars)[:0]
}

// dir returns the buffers of direction d.
func (w *workspace) dir(d int) (left, right, basis []float64) {
	lo, hi := d*w.maxOrder, (d+1)*w.maxOrder
	return w.left[lo:hi:hi], w.right[lo:hi:hi], w.basis[lo:hi:hi]
}

func resizeBuf[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
