package nurbs

import (
	"math"
	"slices"
)

// Box is an axis-aligned box in any number of dimensions. Min and Max have
// one entry per dimension.
type Box struct {
	Min, Max []float64
}

// NewBoxFromPoints returns the smallest box containing p0 and p1, which must
// have the same dimension.
func NewBoxFromPoints(p0, p1 []float64) Box {
	b := Box{Min: slices.Clone(p0), Max: slices.Clone(p0)}
	return b.UnionPoint(p1)
}

// Dimension returns the number of dimensions of the box.
func (b Box) Dimension() int { return len(b.Min) }

// Contains reports whether pt lies in the box, boundary included.
func (b Box) Contains(pt []float64) bool {
	for i, v := range pt {
		if v < b.Min[i] || v > b.Max[i] {
			return false
		}
	}
	return true
}

// UnionPoint returns the smallest box containing b and pt.
func (b Box) UnionPoint(pt []float64) Box {
	out := Box{Min: slices.Clone(b.Min), Max: slices.Clone(b.Max)}
	for i, v := range pt {
		out.Min[i] = min(out.Min[i], v)
		out.Max[i] = max(out.Max[i], v)
	}
	return out
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Center returns the center of the box.
func (b Box) Center() []float64 {
	c := make([]float64, len(b.Min))
	for i := range c {
		c[i] = (b.Min[i] + b.Max[i]) / 2
	}
	return c
}

// Size returns the extent of the box in each dimension.
func (b Box) Size() []float64 {
	s := make([]float64, len(b.Min))
	for i := range s {
		s[i] = b.Max[i] - b.Min[i]
	}
	return s
}

// Inflate returns the box grown by d on every side.
func (b Box) Inflate(d float64) Box {
	out := Box{Min: slices.Clone(b.Min), Max: slices.Clone(b.Max)}
	for i := range out.Min {
		out.Min[i] -= d
		out.Max[i] += d
	}
	return out
}

// IsNaN reports whether any coordinate of the box is NaN.
func (b Box) IsNaN() bool {
	return slices.ContainsFunc(b.Min, math.IsNaN) || slices.ContainsFunc(b.Max, math.IsNaN)
}

// Bounds returns the bounding box of the control points, in Euclidean
// coordinates. If all weights are positive, the spline lies within it.
func (s *Spline) Bounds() Box {
	dim := s.Dimension()
	total := s.TotalNumControlPoints()
	b := Box{Min: make([]float64, dim), Max: make([]float64, dim)}
	for j := range dim {
		b.Min[j] = math.Inf(1)
		b.Max[j] = math.Inf(-1)
	}
	weights := s.Weights()
	for i := range total {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		for j := range dim {
			v := s.ctrPts[j*total+i] / w
			b.Min[j] = min(b.Min[j], v)
			b.Max[j] = max(b.Max[j], v)
		}
	}
	return b
}
