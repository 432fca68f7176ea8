package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestGroup_Intersect_ClosestChildWins(t *testing.T) {
	near := DummyMaterial{Name: "near"}
	far := DummyMaterial{Name: "far"}

	// Far sphere added first so the closer one has to override it
	group := NewGroup(
		NewSphere(core.NewVec3(0, 0, -10), 1, far),
		NewSphere(core.NewVec3(0, 0, -4), 1, near),
	)
	require.Equal(t, 2, group.Len())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := core.NewHit()
	require.True(t, group.Intersect(ray, &hit, 0.001))
	assert.InDelta(t, 3.0, hit.T, tolerance)
	assert.Equal(t, near, hit.Material)
}

func TestGroup_Intersect_ReportsOnlyUpdates(t *testing.T) {
	group := NewGroup(NewSphere(core.NewVec3(0, 0, -10), 1, DummyMaterial{}))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// The sphere is hit, but not closer than what the record already holds
	hit := core.NewHitAt(5)
	assert.False(t, group.Intersect(ray, &hit, 0.001))
	assert.Equal(t, 5.0, hit.T)
}

func TestGroup_Empty(t *testing.T) {
	group := NewGroup()
	hit := core.NewHit()
	assert.False(t, group.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), &hit, 0))
	assert.Equal(t, 0, group.Len())
}

func TestGroup_Nested(t *testing.T) {
	inner := NewGroup(NewPlane(core.NewVec3(0, 0, 1), -7, DummyMaterial{}))
	outer := NewGroup(inner, NewSphere(core.NewVec3(0, 0, -20), 1, DummyMaterial{}))
	assert.Same(t, inner, outer.At(0))

	hit := core.NewHit()
	require.True(t, outer.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), &hit, 0))
	assert.InDelta(t, 7.0, hit.T, tolerance)
}

func TestGroup_AddNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewGroup().Add(nil) })
}
