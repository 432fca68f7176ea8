package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// testScene implements Scene for tests
type testScene struct {
	group      core.Object3D
	background core.Vec3
	ambient    core.Vec3
	lights     []core.Light
}

func (s *testScene) Group() core.Object3D       { return s.group }
func (s *testScene) BackgroundColor() core.Vec3 { return s.background }
func (s *testScene) AmbientLight() core.Vec3    { return s.ambient }
func (s *testScene) NumLights() int             { return len(s.lights) }
func (s *testScene) Light(i int) core.Light     { return s.lights[i] }

// hitWithoutMaterial reports an intersection but never sets a material
type hitWithoutMaterial struct{}

func (hitWithoutMaterial) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	hit.T = 1
	hit.Normal = core.NewVec3(0, 0, 1)
	return true
}

func assertVecInDelta(t *testing.T, expected, actual core.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}
