package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits from a single position with optional distance falloff.
// The intensity arriving at distance d is intensity / (constant + linear*d + quadratic*d²).
type PointLight struct {
	position  core.Vec3
	intensity core.Vec3
	constant  float64
	linear    float64
	quadratic float64
}

// NewPointLight creates a point light without falloff
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return NewAttenuatedPointLight(position, intensity, 1, 0, 0)
}

// NewAttenuatedPointLight creates a point light with the given falloff coefficients
func NewAttenuatedPointLight(position, intensity core.Vec3, constant, linear, quadratic float64) *PointLight {
	return &PointLight{
		position:  position,
		intensity: intensity,
		constant:  constant,
		linear:    linear,
		quadratic: quadratic,
	}
}

// Position returns the light position
func (l *PointLight) Position() core.Vec3 {
	return l.position
}

// IncidentIllumination implements core.Light
func (l *PointLight) IncidentIllumination(point core.Vec3) (core.Vec3, core.Vec3, float64) {
	toLight := l.position.Subtract(point)
	distance := toLight.Length()

	attenuation := l.constant + l.linear*distance + l.quadratic*distance*distance
	if attenuation <= 0 {
		attenuation = 1
	}

	return toLight.Multiply(1 / distance), l.intensity.Multiply(1 / attenuation), distance
}
