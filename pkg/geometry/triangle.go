package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a flat-shaded triangle with per-vertex texture coordinates
type Triangle struct {
	V0, V1, V2    core.Vec3     // The three vertices
	UV0, UV1, UV2 core.Vec2     // Per-vertex texture coordinates
	Material      core.Material // Material of the triangle
	normal        core.Vec3     // Cached face normal
}

// NewTriangle creates a new triangle from three vertices with zero texture coordinates
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return NewTriangleWithUVs(v0, v1, v2, core.Vec2{}, core.Vec2{}, core.Vec2{}, material)
}

// NewTriangleWithUVs creates a new triangle from three vertices and their texture coordinates
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		UV0:      uv0,
		UV1:      uv1,
		UV2:      uv2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
	}
}

// Normal returns the triangle's face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// barycentric solves [a-b | a-c | d] (beta, gamma, t) = a - origin
func (t *Triangle) barycentric(ray core.Ray) (beta, gamma, tParam float64) {
	a := t.V0
	system := mgl64.Mat3FromCols(
		a.Subtract(t.V1).Mgl(),
		a.Subtract(t.V2).Mgl(),
		ray.Direction.Mgl(),
	)
	solution := system.Inv().Mul3x1(a.Subtract(ray.Origin).Mgl())
	return solution[0], solution[1], solution[2]
}

// Intersect tests if a ray intersects with the triangle
func (t *Triangle) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	// Ray lies in (or parallel to) the plane of the triangle
	if t.normal.Dot(ray.Direction) == 0 {
		return false
	}

	beta, gamma, tParam := t.barycentric(ray)
	if beta < 0 || gamma < 0 || beta+gamma > 1 {
		return false
	}
	if !(tParam > tMin && tParam < hit.T) {
		return false
	}

	hit.Set(tParam, t.Material, t.normal)
	return true
}

// TexCoordAt interpolates the vertex texture coordinates at a point on the triangle
func (t *Triangle) TexCoordAt(point core.Vec3) core.Vec2 {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	toPoint := point.Subtract(t.V0)

	d00 := edge1.Dot(edge1)
	d01 := edge1.Dot(edge2)
	d11 := edge2.Dot(edge2)
	d20 := toPoint.Dot(edge1)
	d21 := toPoint.Dot(edge2)
	denom := d00*d11 - d01*d01

	beta := (d11*d20 - d01*d21) / denom
	gamma := (d00*d21 - d01*d20) / denom
	alpha := 1 - beta - gamma

	return t.UV0.Multiply(alpha).Add(t.UV1.Multiply(beta)).Add(t.UV2.Multiply(gamma))
}
