package nurbs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transform applies the projective transform m to the control points. For a
// spline of dimension d, m must be (d+1)×(d+1) and acts on homogeneous
// coordinates (x₀, …, x_{d-1}, w), where w is 1 for a non-rational spline.
//
// A rational spline keeps the transformed homogeneous coordinates and
// weights, which makes Transform exact for projective maps. A non-rational
// spline is divided by the transformed w, which is exact for affine maps
// only.
func (s *Spline) Transform(m mat.Matrix) error {
	dim := s.Dimension()
	r, c := m.Dims()
	if dim == 0 || r != dim+1 || c != dim+1 {
		return fmt.Errorf("%d×%d transform of %d-dimensional spline: %w", r, c, dim, ErrDimension)
	}

	total := s.TotalNumControlPoints()
	h := mat.NewVecDense(dim+1, nil)
	out := mat.NewVecDense(dim+1, nil)
	for i := range total {
		for j := range dim {
			h.SetVec(j, s.ctrPts[j*total+i])
		}
		if s.rational {
			h.SetVec(dim, s.Weight(i))
		} else {
			h.SetVec(dim, 1)
		}
		out.MulVec(m, h)

		if s.rational {
			for j := range dim + 1 {
				s.ctrPts[j*total+i] = out.AtVec(j)
			}
			continue
		}
		inv := 1 / out.AtVec(dim)
		for j := range dim {
			s.ctrPts[j*total+i] = out.AtVec(j) * inv
		}
	}
	return nil
}

// TranslationMatrix returns the homogeneous matrix translating by v.
func TranslationMatrix(v []float64) *mat.Dense {
	n := len(v) + 1
	m := identityMatrix(n)
	for i, t := range v {
		m.Set(i, n-1, t)
	}
	return m
}

// ScalingMatrix returns the homogeneous matrix scaling coordinate i by v[i].
func ScalingMatrix(v []float64) *mat.Dense {
	m := identityMatrix(len(v) + 1)
	for i, f := range v {
		m.Set(i, i, f)
	}
	return m
}

func identityMatrix(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := range n {
		m.Set(i, i, 1)
	}
	return m
}
