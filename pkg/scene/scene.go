package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       renderer.Camera
	CameraConfig renderer.CameraConfig
	Root         *geometry.Group // Objects in the scene
	Lights       []core.Light    // Lights in the scene
	Background   core.Vec3       // Color returned by rays that miss everything
	Ambient      core.Vec3       // Ambient light applied to every surface
}

// NewScene creates an empty scene viewed through a camera built from config
func NewScene(config renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:       renderer.NewPerspectiveCamera(config),
		CameraConfig: config,
		Root:         geometry.NewGroup(),
	}
}

// Group implements renderer.Scene
func (s *Scene) Group() core.Object3D {
	// A nil *Group must not become a non-nil interface
	if s.Root == nil {
		return nil
	}
	return s.Root
}

// BackgroundColor implements renderer.Scene
func (s *Scene) BackgroundColor() core.Vec3 { return s.Background }

// AmbientLight implements renderer.Scene
func (s *Scene) AmbientLight() core.Vec3 { return s.Ambient }

// NumLights implements renderer.Scene
func (s *Scene) NumLights() int { return len(s.Lights) }

// Light implements renderer.Scene
func (s *Scene) Light(i int) core.Light { return s.Lights[i] }

// Add appends objects to the root group, creating it if needed
func (s *Scene) Add(objects ...core.Object3D) {
	if s.Root == nil {
		s.Root = geometry.NewGroup()
	}
	for _, o := range objects {
		s.Root.Add(o)
	}
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// AddDirectionalLight adds a directional light shining along direction
func (s *Scene) AddDirectionalLight(direction, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, intensity))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.Root == nil {
		return 0
	}
	return countPrimitives(s.Root)
}

// countPrimitives counts leaf objects, descending into groups and transforms
func countPrimitives(object core.Object3D) int {
	switch obj := object.(type) {
	case *geometry.Group:
		count := 0
		for i := 0; i < obj.Len(); i++ {
			count += countPrimitives(obj.At(i))
		}
		return count
	case *geometry.Transform:
		return countPrimitives(obj.Object())
	default:
		return 1
	}
}
