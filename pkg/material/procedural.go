package material

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern computes the blend weight of a procedural material at a point
// already expressed in pattern space
type Pattern interface {
	Weight(point core.Vec3) float64
}

// Checkerboard alternates between 0 and 1 across unit cells in all three axes
type Checkerboard struct{}

// Weight returns 1 or 0 depending on the parity of the cell containing point.
// Truncation toward zero merges cells -1..0 and 0..1 into one; the sign terms
// restore the alternation for negative coordinates.
func (Checkerboard) Weight(point core.Vec3) float64 {
	count := 1
	for _, c := range [3]float64{point.X, point.Y, point.Z} {
		count += int(c) % 2
		if c < 0 {
			count++
		}
	}
	return float64(count & 1)
}

// Procedural blends two materials by a spatial pattern
type Procedural struct {
	matrix    mgl64.Mat4
	pattern   Pattern
	material1 core.Material // Selected where the weight is 1
	material2 core.Material // Selected where the weight is 0
}

// NewProcedural creates a material blending material1 and material2 by pattern,
// evaluated at points transformed by matrix
func NewProcedural(matrix mgl64.Mat4, pattern Pattern, material1, material2 core.Material) *Procedural {
	return &Procedural{
		matrix:    matrix,
		pattern:   pattern,
		material1: material1,
		material2: material2,
	}
}

// NewCheckerboard creates a checkerboard blend of two materials
func NewCheckerboard(matrix mgl64.Mat4, material1, material2 core.Material) *Procedural {
	return NewProcedural(matrix, Checkerboard{}, material1, material2)
}

// weight returns the blend weight at a world-space point
func (p *Procedural) weight(point core.Vec3) float64 {
	return p.pattern.Weight(core.TransformPoint(p.matrix, point))
}

func blend(v float64, a, b core.Vec3) core.Vec3 {
	return a.Multiply(v).Add(b.Multiply(1 - v))
}

// DiffuseColor implements core.Material
func (p *Procedural) DiffuseColor(point core.Vec3) core.Vec3 {
	return blend(p.weight(point), p.material1.DiffuseColor(point), p.material2.DiffuseColor(point))
}

// ReflectiveColor implements core.Material
func (p *Procedural) ReflectiveColor(point core.Vec3) core.Vec3 {
	return blend(p.weight(point), p.material1.ReflectiveColor(point), p.material2.ReflectiveColor(point))
}

// TransparentColor implements core.Material
func (p *Procedural) TransparentColor(point core.Vec3) core.Vec3 {
	return blend(p.weight(point), p.material1.TransparentColor(point), p.material2.TransparentColor(point))
}

// RefractionIndex implements core.Material
func (p *Procedural) RefractionIndex(point core.Vec3) float64 {
	v := p.weight(point)
	return v*p.material1.RefractionIndex(point) + (1-v)*p.material2.RefractionIndex(point)
}

// Shade blends the already-shaded colors of both materials
func (p *Procedural) Shade(ray core.Ray, hit core.Hit, dirToLight, incidentIntensity core.Vec3, shadeBack bool) core.Vec3 {
	v := p.weight(ray.At(hit.T))
	shaded1 := p.material1.Shade(ray, hit, dirToLight, incidentIntensity, shadeBack)
	shaded2 := p.material2.Shade(ray, hit, dirToLight, incidentIntensity, shadeBack)
	return blend(v, shaded1, shaded2)
}
