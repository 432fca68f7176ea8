package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Plane represents the infinite plane dot(Normal, p) = Offset
type Plane struct {
	Normal   core.Vec3     // Unit normal
	Offset   float64       // Signed distance from the origin along Normal
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane; the normal is normalized and the offset kept as given
func NewPlane(normal core.Vec3, offset float64, material core.Material) *Plane {
	return &Plane{
		Normal:   normal.Normalize(),
		Offset:   offset,
		Material: material,
	}
}

// NewPlaneThroughPoint creates a plane with the given normal containing point
func NewPlaneThroughPoint(point, normal core.Vec3, material core.Material) *Plane {
	n := normal.Normalize()
	return &Plane{Normal: n, Offset: n.Dot(point), Material: material}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never meet the plane
	if denominator == 0 {
		return false
	}

	// t = (d - origin·n) / (direction·n)
	t := (p.Offset - ray.Origin.Dot(p.Normal)) / denominator
	if !(t > tMin && t < hit.T) {
		return false
	}

	hit.Set(t, p.Material, p.Normal)
	return true
}
