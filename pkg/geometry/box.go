package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Box represents an axis-aligned box between two corners
type Box struct {
	Min      core.Vec3     // Minimum corner
	Max      core.Vec3     // Maximum corner
	Material core.Material // Material for all faces
}

// NewBox creates a new axis-aligned box; the corners may be given in any order
func NewBox(corner1, corner2 core.Vec3, material core.Material) *Box {
	return &Box{
		Min:      core.NewVec3(min(corner1.X, corner2.X), min(corner1.Y, corner2.Y), min(corner1.Z, corner2.Z)),
		Max:      core.NewVec3(max(corner1.X, corner2.X), max(corner1.Y, corner2.Y), max(corner1.Z, corner2.Z)),
		Material: material,
	}
}

// slab returns the parameter interval in which the ray is between the two
// planes of one axis, and the outward normal sign of the entry face.
// A ray parallel to the planes, or close enough that 1/dir overflows, is
// either always between them (closed interval) or never, in which case ok
// is false.
func slab(origin, dir, lo, hi float64) (tNear, tFar, entrySign float64, ok bool) {
	invDir := 1 / dir
	if math.IsInf(invDir, 0) {
		if origin < lo || origin > hi {
			return 0, 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), 0, true
	}
	if invDir > 0 {
		return (lo - origin) * invDir, (hi - origin) * invDir, -1, true
	}
	return (hi - origin) * invDir, (lo - origin) * invDir, 1, true
}

// Intersect tests if a ray intersects with the box using the slab method
func (b *Box) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	tNear, tFar, sx, ok := slab(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	if !ok {
		return false
	}
	nearNormal := core.NewVec3(sx, 0, 0)
	farNormal := core.NewVec3(-sx, 0, 0)

	tyNear, tyFar, sy, ok := slab(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	if !ok || tNear > tyFar || tyNear > tFar {
		return false
	}
	if tyNear > tNear {
		tNear = tyNear
		nearNormal = core.NewVec3(0, sy, 0)
	}
	if tyFar < tFar {
		tFar = tyFar
		farNormal = core.NewVec3(0, -sy, 0)
	}

	tzNear, tzFar, sz, ok := slab(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)
	if !ok || tNear > tzFar || tzNear > tFar {
		return false
	}
	if tzNear > tNear {
		tNear = tzNear
		nearNormal = core.NewVec3(0, 0, sz)
	}
	if tzFar < tFar {
		tFar = tzFar
		farNormal = core.NewVec3(0, 0, -sz)
	}

	// Entry face first, exit face for rays starting inside
	t, normal := tNear, nearNormal
	if t <= tMin {
		t, normal = tFar, farNormal
	}
	// Written so that a NaN t is rejected
	if !(t > tMin && t < hit.T) {
		return false
	}

	hit.Set(t, b.Material, normal)
	return true
}
