package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DummyMaterial is a black material used where intersection tests need a material reference
type DummyMaterial struct {
	Name string
}

func (DummyMaterial) DiffuseColor(core.Vec3) core.Vec3     { return core.Vec3{} }
func (DummyMaterial) ReflectiveColor(core.Vec3) core.Vec3  { return core.Vec3{} }
func (DummyMaterial) TransparentColor(core.Vec3) core.Vec3 { return core.Vec3{} }
func (DummyMaterial) RefractionIndex(core.Vec3) float64    { return 1 }
func (DummyMaterial) Shade(core.Ray, core.Hit, core.Vec3, core.Vec3, bool) core.Vec3 {
	return core.Vec3{}
}

const tolerance = 1e-9

func assertVecInDelta(t *testing.T, expected, actual core.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}
