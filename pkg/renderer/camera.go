package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays for points in image space
type Camera interface {
	// GenerateRay returns the ray through point, where (0,0) is the lower
	// left corner of the image and (1,1) the upper right
	GenerateRay(point core.Vec2) core.Ray
}

// CameraConfig describes a perspective camera
type CameraConfig struct {
	Center      core.Vec3 // Eye position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction, need not be orthogonal to the view direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width divided by height
}

// PerspectiveCamera is a pinhole camera
type PerspectiveCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewPerspectiveCamera creates a pinhole camera from config
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/360.0)
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis with w pointing away from the view direction
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &PerspectiveCamera{
		origin:          config.Center,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GenerateRay returns a ray with a normalized direction through point
func (c *PerspectiveCamera) GenerateRay(point core.Vec2) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(point.X)).
		Add(c.vertical.Multiply(point.Y)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.LookAt.IsZero() {
		result.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	return result
}
