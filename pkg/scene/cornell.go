package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewCornellScene creates a Cornell box with plane walls, two rotated blocks and a mirror sphere
func NewCornellScene() *Scene {
	config := renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	}

	s := NewScene(config)
	s.Background = core.Vec3{} // Black background
	s.Ambient = core.Gray(0.1)

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Walls as infinite planes facing into the box
	floor := geometry.NewPlane(core.NewVec3(0, 1, 0), 0, white)
	ceiling := geometry.NewPlane(core.NewVec3(0, -1, 0), -boxSize, white)
	backWall := geometry.NewPlane(core.NewVec3(0, 0, -1), -boxSize, white)
	leftWall := geometry.NewPlane(core.NewVec3(1, 0, 0), 0, red)
	rightWall := geometry.NewPlane(core.NewVec3(-1, 0, 0), -boxSize, green)

	s.Add(floor, ceiling, backWall, leftWall, rightWall)

	// Tall block turned 15 degrees, short block turned -18 degrees
	tall := mustTransform(
		mgl64.Translate3D(265, 0, 295).Mul4(mgl64.HomogRotate3DY(15*math.Pi/180)),
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
	)
	short := mustTransform(
		mgl64.Translate3D(130, 0, 65).Mul4(mgl64.HomogRotate3DY(-18*math.Pi/180)),
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
	)
	mirror := geometry.NewSphere(
		core.NewVec3(212, 215, 147),
		50,
		material.NewMirror(core.Gray(0.05), core.NewVec3(0.8, 0.8, 0.9)),
	)

	s.Add(tall, short, mirror)

	// Ceiling light stands in for the area light of the classic box
	s.Lights = append(s.Lights,
		lights.NewAttenuatedPointLight(core.NewVec3(278, boxSize-1, 278), core.Gray(1.2), 1, 0.001, 0),
	)

	return s
}
