package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, a box, a triangle and a checkered ground
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 5), // Slightly above the ground, looking down
		LookAt:      core.NewVec3(0, 0.5, -1),
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
	s.Ambient = core.Gray(0.15)

	// Create materials
	red := material.NewPhong(material.PhongConfig{
		Diffuse:  material.NewSolidColor(core.NewVec3(0.65, 0.25, 0.2)),
		Specular: core.Gray(0.6),
		Exponent: 32,
	})
	silver := material.NewPhong(material.PhongConfig{
		Diffuse:    material.NewSolidColor(core.Gray(0.1)),
		Reflective: material.NewSolidColor(core.Gray(0.8)),
		Specular:   core.Gray(0.9),
		Exponent:   64,
	})
	glass := material.NewPhong(material.PhongConfig{
		Reflective:      material.NewSolidColor(core.Gray(0.1)),
		Transparent:     material.NewSolidColor(core.Gray(0.9)),
		Specular:        core.Gray(1),
		Exponent:        128,
		RefractionIndex: 1.5,
	})
	blue := material.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5))
	gold := material.NewMirror(core.NewVec3(0.4, 0.3, 0.05), core.NewVec3(0.5, 0.4, 0.1))

	// Ground: half-unit checks of white and dark gray
	checker := material.NewCheckerboard(
		mgl64.Scale3D(2, 2, 2),
		material.NewDiffuse(core.Gray(0.9)),
		material.NewDiffuse(core.Gray(0.2)),
	)
	ground := geometry.NewPlane(core.NewVec3(0, 1, 0), 0, checker)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), 0.5, silver)
	solidGlassSphere := geometry.NewSphere(core.NewVec3(0.5, 0.3, 0.2), 0.3, glass)

	// Unit cube turned 30 degrees about Y and stretched upward
	box := mustTransform(
		mgl64.Translate3D(1.2, 0, -1).
			Mul4(mgl64.HomogRotate3DY(math.Pi/6)).
			Mul4(mgl64.Scale3D(0.6, 1, 0.6)),
		geometry.NewBox(core.NewVec3(-0.5, 0, -0.5), core.NewVec3(0.5, 1, 0.5), gold),
	)

	// Upright triangle behind the spheres
	triangle := geometry.NewTriangle(
		core.NewVec3(-2.5, 0, -3),
		core.NewVec3(0.5, 0, -3),
		core.NewVec3(-1, 2, -3),
		blue,
	)

	s.Add(ground, sphereCenter, sphereLeft, solidGlassSphere, box, triangle)

	s.AddDirectionalLight(core.NewVec3(-0.5, -1, -0.7), core.Gray(0.6))
	s.AddPointLight(core.NewVec3(3, 4, 3), core.NewVec3(0.6, 0.55, 0.5))

	return s
}

// mustTransform wraps object in a transform. The matrices built in this
// package are products of translations, rotations and non-zero scales.
func mustTransform(m mgl64.Mat4, object core.Object3D) *geometry.Transform {
	t, err := geometry.NewTransform(m, object)
	if err != nil {
		panic(err)
	}
	return t
}
