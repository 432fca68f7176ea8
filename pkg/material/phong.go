package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PhongConfig describes a Phong material. Nil color sources are black.
type PhongConfig struct {
	Diffuse         ColorSource
	Reflective      ColorSource
	Transparent     ColorSource
	Specular        core.Vec3
	Exponent        float64
	RefractionIndex float64 // Zero means 1 (vacuum)
}

// Phong is a material with a diffuse and specular local lighting model
type Phong struct {
	diffuse         ColorSource
	reflective      ColorSource
	transparent     ColorSource
	specular        core.Vec3
	exponent        float64
	refractionIndex float64
}

// NewPhong creates a Phong material from its configuration
func NewPhong(config PhongConfig) *Phong {
	ior := config.RefractionIndex
	if ior == 0 {
		ior = 1
	}
	return &Phong{
		diffuse:         config.Diffuse,
		reflective:      config.Reflective,
		transparent:     config.Transparent,
		specular:        config.Specular,
		exponent:        config.Exponent,
		refractionIndex: ior,
	}
}

// NewDiffuse creates a matte Phong material with a constant diffuse color
func NewDiffuse(color core.Vec3) *Phong {
	return NewPhong(PhongConfig{Diffuse: NewSolidColor(color)})
}

// NewMirror creates a reflective Phong material
func NewMirror(diffuse, reflective core.Vec3) *Phong {
	return NewPhong(PhongConfig{
		Diffuse:    NewSolidColor(diffuse),
		Reflective: NewSolidColor(reflective),
	})
}

// NewGlass creates a transparent Phong material with the given refraction index
func NewGlass(transparent core.Vec3, refractionIndex float64) *Phong {
	return NewPhong(PhongConfig{
		Transparent:     NewSolidColor(transparent),
		RefractionIndex: refractionIndex,
	})
}

// DiffuseColor implements core.Material
func (p *Phong) DiffuseColor(point core.Vec3) core.Vec3 {
	return evaluate(p.diffuse, point)
}

// ReflectiveColor implements core.Material
func (p *Phong) ReflectiveColor(point core.Vec3) core.Vec3 {
	return evaluate(p.reflective, point)
}

// TransparentColor implements core.Material
func (p *Phong) TransparentColor(point core.Vec3) core.Vec3 {
	return evaluate(p.transparent, point)
}

// RefractionIndex implements core.Material
func (p *Phong) RefractionIndex(point core.Vec3) float64 {
	return p.refractionIndex
}

// Shade returns the diffuse and specular contribution of one light.
// With shadeBack the surface is two-sided and the normal is turned toward the eye.
func (p *Phong) Shade(ray core.Ray, hit core.Hit, dirToLight, incidentIntensity core.Vec3, shadeBack bool) core.Vec3 {
	point := ray.At(hit.T)
	dirToEye := ray.Origin.Subtract(point).Normalize()

	normal := hit.Normal
	if shadeBack && dirToEye.Dot(normal) < 0 {
		normal = normal.Negate()
	}

	cosLight := normal.Dot(dirToLight)
	if cosLight <= 0 {
		// Light below the local horizon contributes neither term
		return core.Vec3{}
	}

	diffuse := incidentIntensity.MultiplyVec(p.DiffuseColor(point)).Multiply(cosLight)

	reflected := dirToLight.Negate().Add(normal.Multiply(2 * cosLight)).Normalize()
	highlight := math.Pow(max(0, reflected.Dot(dirToEye)), p.exponent)
	specular := incidentIntensity.MultiplyVec(p.specular).Multiply(highlight)

	return diffuse.Add(specular)
}
