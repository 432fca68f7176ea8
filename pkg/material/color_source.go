package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a 3D point in world space
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// ColorFunc adapts a plain function to ColorSource
type ColorFunc func(point core.Vec3) core.Vec3

// Evaluate calls f(point)
func (f ColorFunc) Evaluate(point core.Vec3) core.Vec3 {
	return f(point)
}

// evaluate treats a nil source as black
func evaluate(source ColorSource, point core.Vec3) core.Vec3 {
	if source == nil {
		return core.Vec3{}
	}
	return source.Evaluate(point)
}
