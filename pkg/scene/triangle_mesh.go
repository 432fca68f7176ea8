package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewTriangleMeshScene creates a scene of triangle meshes, one pyramid
// shared between several transformed instances
func NewTriangleMeshScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)
	s.Background = core.NewVec3(0.5, 0.7, 1.0)
	s.Ambient = core.Gray(0.1)
	s.AddDirectionalLight(core.NewVec3(-1, -2, -1), core.Gray(0.8))

	// Ground made of two triangles
	ground := NewQuadMesh(
		core.NewVec3(-10, 0, -10),
		core.NewVec3(0, 0, 20),
		core.NewVec3(20, 0, 0),
		material.NewDiffuse(core.NewVec3(0.4, 0.5, 0.4)),
	)
	s.Add(ground)

	orange := material.NewPhong(material.PhongConfig{
		Diffuse:  material.NewSolidColor(core.NewVec3(0.8, 0.4, 0.1)),
		Specular: core.Gray(0.4),
		Exponent: 16,
	})
	pyramid := NewPyramidMesh(2, 2, orange)
	s.Add(pyramid)

	// Instances of the same mesh to either side, rotated and scaled
	s.Add(
		mustTransform(
			mgl64.Translate3D(-2.5, 0, -1).Mul4(mgl64.HomogRotate3DY(math.Pi/4)).Mul4(mgl64.Scale3D(0.6, 0.8, 0.6)),
			pyramid,
		),
		mustTransform(
			mgl64.Translate3D(2.5, 0, -1).Mul4(mgl64.HomogRotate3DY(-math.Pi/8)).Mul4(mgl64.Scale3D(0.7, 1.4, 0.7)),
			pyramid,
		),
	)

	// A glass sphere in front for refraction through the meshes
	glass := material.NewGlass(core.Gray(0.9), 1.5)
	s.Add(geometry.NewSphere(core.NewVec3(0.8, 0.5, 1.5), 0.5, glass))

	return s
}

// NewQuadMesh creates the parallelogram corner, corner+u, corner+u+v, corner+v
// as two triangles. The face normal is u × v.
func NewQuadMesh(corner, u, v core.Vec3, m core.Material) *geometry.Group {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return geometry.NewGroup(
		geometry.NewTriangleWithUVs(corner, p1, p2, core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(1, 1), m),
		geometry.NewTriangleWithUVs(corner, p2, p3, core.NewVec2(0, 0), core.NewVec2(1, 1), core.NewVec2(0, 1), m),
	)
}

// NewPyramidMesh creates a square pyramid standing on the XZ plane, centered on the Y axis.
// All faces wind counter-clockwise seen from outside.
func NewPyramidMesh(base, height float64, m core.Material) *geometry.Group {
	h := base / 2
	apex := core.NewVec3(0, height, 0)
	a := core.NewVec3(-h, 0, h)
	b := core.NewVec3(h, 0, h)
	c := core.NewVec3(h, 0, -h)
	d := core.NewVec3(-h, 0, -h)

	return geometry.NewGroup(
		geometry.NewTriangle(a, b, apex, m),
		geometry.NewTriangle(b, c, apex, m),
		geometry.NewTriangle(c, d, apex, m),
		geometry.NewTriangle(d, a, apex, m),
		// Base, facing down
		geometry.NewTriangle(a, d, c, m),
		geometry.NewTriangle(a, c, b, m),
	)
}
