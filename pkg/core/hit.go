package core

import "math"

// Hit records the closest intersection found so far along a ray.
// Material is a non-owning reference to the scene's material.
type Hit struct {
	T        float64
	Material Material
	Normal   Vec3
}

// NewHit returns a hit record positioned at infinity
func NewHit() Hit {
	return Hit{T: math.Inf(1)}
}

// NewHitAt returns a hit record whose closest distance starts at t.
// Only intersections strictly before t can be recorded into it.
func NewHitAt(t float64) Hit {
	return Hit{T: t}
}

// Set overwrites the hit with a new intersection
func (h *Hit) Set(t float64, material Material, normal Vec3) {
	h.T = t
	h.Material = material
	h.Normal = normal
}

// Found reports whether any intersection has been recorded
func (h *Hit) Found() bool {
	return h.Material != nil
}
