package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Transform places a child object in the scene through an affine matrix
type Transform struct {
	inverse          mgl64.Mat4
	inverseTranspose mgl64.Mat4
	object           core.Object3D
}

// NewTransform wraps object with the object-to-world matrix m
func NewTransform(m mgl64.Mat4, object core.Object3D) (*Transform, error) {
	if object == nil {
		return nil, fmt.Errorf("transform: nil object")
	}
	inverse, err := core.Invert(m)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	return &Transform{
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
		object:           object,
	}, nil
}

// Object returns the wrapped child
func (tr *Transform) Object() core.Object3D {
	return tr.object
}

// Intersect maps the ray into the child's space and the normal back out.
// The local direction is deliberately left unnormalized so t means the same
// thing on both sides of the transform.
func (tr *Transform) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	local := core.Ray{
		Origin:    core.TransformPoint(tr.inverse, ray.Origin),
		Direction: core.TransformDirection(tr.inverse, ray.Direction),
		IsInside:  ray.IsInside,
	}

	if !tr.object.Intersect(local, hit, tMin) {
		return false
	}

	normal := core.TransformDirection(tr.inverseTranspose, hit.Normal).Normalize()
	hit.Set(hit.T, hit.Material, normal)
	return true
}
