package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularMatrix is returned when a matrix that must be inverted has no inverse
var ErrSingularMatrix = errors.New("matrix is singular")

// TransformPoint applies an affine matrix to a point (w = 1)
func TransformPoint(m mgl64.Mat4, p Vec3) Vec3 {
	return FromMgl(m.Mul4x1(p.Mgl().Vec4(1)).Vec3())
}

// TransformDirection applies an affine matrix to a direction (w = 0), ignoring translation
func TransformDirection(m mgl64.Mat4, d Vec3) Vec3 {
	return FromMgl(m.Mul4x1(d.Mgl().Vec4(0)).Vec3())
}

// Invert returns the inverse of m, or ErrSingularMatrix if m cannot be inverted
func Invert(m mgl64.Mat4) (mgl64.Mat4, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) {
		return mgl64.Mat4{}, ErrSingularMatrix
	}
	return m.Inv(), nil
}
