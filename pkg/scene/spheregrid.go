package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a gridSize x gridSize grid of colored Phong spheres
func NewSphereGridScene(gridSize int, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5), // Center of grid, slightly lower
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)
	s.Background = core.NewVec3(0.5, 0.7, 1.0)
	s.Ambient = core.Gray(0.1)

	s.AddPointLight(core.NewVec3(20, 25, 20), core.NewVec3(0.9, 0.85, 0.8))
	s.AddDirectionalLight(core.NewVec3(0, -1, -0.3), core.Gray(0.3))

	// Checkered ground, one check per grid cell
	ground := geometry.NewPlane(
		core.NewVec3(0, 1, 0),
		0,
		material.NewCheckerboard(
			mgl64.Ident4(),
			material.NewDiffuse(core.Gray(0.6)),
			material.NewDiffuse(core.Gray(0.4)),
		),
	)
	s.Add(ground)

	if gridSize < 1 {
		return s
	}

	// Scale the grid to fit roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea
	if gridSize > 1 {
		spacing = targetArea / float64(gridSize-1)
	}

	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25
	steps := math.Max(1, float64(gridSize-1))

	spheres := geometry.NewGroup()
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			// Hue across X, chroma across Z
			hue := float64(i) / steps * 360.0
			chroma := minChroma + float64(j)/steps*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			// Every third sphere is polished
			var reflective material.ColorSource
			if (i+j)%3 == 0 {
				reflective = material.NewSolidColor(color.Multiply(0.5))
			}
			m := material.NewPhong(material.PhongConfig{
				Diffuse:    material.NewSolidColor(color),
				Reflective: reflective,
				Specular:   core.Gray(0.5),
				Exponent:   24,
			})

			spheres.Add(geometry.NewSphere(core.NewVec3(x, sphereRadius, z), sphereRadius, m))
		}
	}
	s.Add(spheres)

	return s
}
