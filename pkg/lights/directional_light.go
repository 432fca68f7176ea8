package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	direction core.Vec3 // Normalized direction the light travels
	intensity core.Vec3
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(direction, intensity core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		direction: direction.Normalize(),
		intensity: intensity,
	}
}

// IncidentIllumination implements core.Light; the distance is always +Inf
func (l *DirectionalLight) IncidentIllumination(point core.Vec3) (core.Vec3, core.Vec3, float64) {
	return l.direction.Negate(), l.intensity, math.Inf(1)
}
