package nurbs

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"gonum.org/v1/gonum/mat"
)

// Affine is a two-dimensional affine transform with the coefficients
// (a, b, c, d, e, f) of the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Composition follows matrix multiplication: (A * B) * p == A * (B * p).
// Splines of dimension 2 are transformed with [Spline.TransformAffine]; for
// other dimensions, see [Spline.Transform].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors the y axis.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX mirrors the x axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scale returns a transform scaling x and y independently.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns a transform moving points by v.
func Translate(v vec2.T) Affine {
	return Affine{1, 0, 0, 1, v[0], v[1]}
}

// Rotate returns a transform rotating by th radians about the origin. A
// positive angle rotates the positive x axis into the positive y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a transform rotating by th radians about center.
func RotateAbout(th float64, center vec2.T) Affine {
	neg := vec2.T{-center[0], -center[1]}
	return Translate(neg).ThenRotate(th).ThenTranslate(center)
}

// Skew returns a transform skewing by x horizontally and y vertically.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// NewAffine returns the transform with the given coefficients.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreRotate returns a rotation by th followed by aff.
func (aff Affine) PreRotate(th float64) Affine {
	return aff.Mul(Rotate(th))
}

// ThenRotate returns aff followed by a rotation by th.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreScale returns a scale by (x, y) followed by aff.
func (aff Affine) PreScale(x, y float64) Affine {
	return aff.Mul(Scale(x, y))
}

// ThenScale returns aff followed by a scale by (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate returns a translation by v followed by aff.
func (aff Affine) PreTranslate(v vec2.T) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v vec2.T) Affine {
	aff.N4 += v[0]
	aff.N5 += v[1]
	return aff
}

// Apply transforms the point p.
func (aff Affine) Apply(p vec2.T) vec2.T {
	return vec2.T{
		aff.N0*p[0] + aff.N2*p[1] + aff.N4,
		aff.N1*p[0] + aff.N3*p[1] + aff.N5,
	}
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. It is NaN if the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation part of the transform.
func (aff Affine) Translation() vec2.T {
	return vec2.T{aff.N4, aff.N5}
}

// WithTranslation replaces the translation part of the transform.
func (aff Affine) WithTranslation(v vec2.T) Affine {
	aff.N4 = v[0]
	aff.N5 = v[1]
	return aff
}

// Matrix returns the augmented 3×3 matrix of the transform.
func (aff Affine) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
		0, 0, 1,
	})
}

// TransformAffine applies aff to the control points of a two-dimensional
// spline.
func (s *Spline) TransformAffine(aff Affine) error {
	if s.Dimension() != 2 {
		return fmt.Errorf("affine transform of %d-dimensional spline: %w", s.Dimension(), ErrDimension)
	}
	return s.Transform(aff.Matrix())
}
