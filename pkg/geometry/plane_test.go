package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect_Basic(t *testing.T) {
	// Horizontal plane y = -1
	plane := NewPlane(core.NewVec3(0, 1, 0), -1, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit := core.NewHit()
	require.True(t, plane.Intersect(ray, &hit, 0))
	assert.InDelta(t, 2.0, hit.T, tolerance)
	assertVecInDelta(t, core.NewVec3(0, 1, 0), hit.Normal, tolerance)
}

func TestPlane_Intersect_FromBelowKeepsNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 2, 0), 0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0))

	hit := core.NewHit()
	require.True(t, plane.Intersect(ray, &hit, 0))
	assert.InDelta(t, 3.0, hit.T, tolerance)
	assertVecInDelta(t, core.NewVec3(0, 1, 0), hit.Normal, tolerance, "plane normal is not flipped by the primitive")
}

func TestPlane_Intersect_Rejections(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), 0, DummyMaterial{})

	tests := []struct {
		name  string
		ray   core.Ray
		start float64
		tMin  float64
	}{
		{"parallel", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)), 1e9, 0},
		{"behind origin", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)), 1e9, 0},
		{"closer hit already recorded", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0.5, 0},
		{"at tMin", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 1e9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := core.NewHitAt(tt.start)
			assert.False(t, plane.Intersect(tt.ray, &hit, tt.tMin))
			assert.Equal(t, tt.start, hit.T)
		})
	}
}

func TestNewPlaneThroughPoint(t *testing.T) {
	plane := NewPlaneThroughPoint(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 2), DummyMaterial{})
	assert.InDelta(t, -4.0, plane.Offset, tolerance)
	assertVecInDelta(t, core.NewVec3(0, 0, 1), plane.Normal, tolerance)
}
