package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the sphere.
// The reported normal always points away from the center, also for rays that
// start inside the sphere.
func (s *Sphere) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	// Vector from ray origin to sphere center
	toCenter := s.Center.Subtract(ray.Origin)

	// Quadratic equation coefficients: At² + Bt + C = 0
	a := ray.Direction.Dot(ray.Direction)
	b := -2 * ray.Direction.Dot(toCenter)
	c := toCenter.Dot(toCenter) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)
	tNear := (-b - sqrtD) / (2 * a)
	tFar := (-b + sqrtD) / (2 * a)

	// Closest root in front of tMin
	t := tNear
	if t <= tMin {
		t = tFar
	}
	if !(t > tMin && t < hit.T) {
		return false
	}

	normal := ray.At(t).Subtract(s.Center).Normalize()
	hit.Set(t, s.Material, normal)
	return true
}
