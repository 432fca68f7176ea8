package core

// Ray represents a ray with an origin and direction.
// IsInside is set when the ray travels through a transparent medium, so the
// next surface it meets is an exit.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	IsInside  bool
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
