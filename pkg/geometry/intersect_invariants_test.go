package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func invariantTestObjects(t *testing.T) map[string]core.Object3D {
	t.Helper()
	scaled, err := NewTransform(mgl64.Translate3D(1, 0, -2).Mul4(mgl64.Scale3D(1, 2, 0.5)),
		NewSphere(core.Vec3{}, 1, DummyMaterial{}))
	require.NoError(t, err)
	boxed, err := NewTransform(mgl64.Translate3D(0, 0, -3),
		NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), DummyMaterial{}))
	require.NoError(t, err)

	objects := map[string]core.Object3D{
		"sphere":          NewSphere(core.NewVec3(0, 0, -3), 1.5, DummyMaterial{}),
		"plane":           NewPlane(core.NewVec3(0.3, 1, 0.2), -1, DummyMaterial{}),
		"axis plane":      NewPlane(core.NewVec3(0, 1, 0), -1, DummyMaterial{}),
		"box":             NewBox(core.NewVec3(-1, -1, -4), core.NewVec3(1, 1, -2), DummyMaterial{}),
		"triangle":        NewTriangle(core.NewVec3(-2, -2, -3), core.NewVec3(2, -2, -3), core.NewVec3(0, 2, -3), DummyMaterial{}),
		"transform":       scaled,
		"transformed box": boxed,
	}
	objects["group"] = NewGroup(objects["sphere"], objects["box"], objects["triangle"], objects["axis plane"])
	return objects
}

// checkIntersect asserts that an intersection only ever shrinks hit.T to a
// number above tMin and leaves it untouched on a miss
func checkIntersect(t *testing.T, obj core.Object3D, ray core.Ray, tMin, start float64) {
	t.Helper()
	hit := core.NewHitAt(start)
	if obj.Intersect(ray, &hit, tMin) {
		require.False(t, math.IsNaN(hit.T), "ray %+v", ray)
		require.Greater(t, hit.T, tMin, "ray %+v", ray)
		require.LessOrEqual(t, hit.T, start, "ray %+v", ray)
		require.NotNil(t, hit.Material)
	} else {
		require.Equal(t, start, hit.T, "ray %+v", ray)
	}
}

// Every primitive must only ever shrink hit.T and never report t <= tMin.
func TestIntersect_HitTMonotonicAndAboveTMin(t *testing.T) {
	objects := invariantTestObjects(t)

	random := rand.New(rand.NewSource(11))
	randomVec := func(scale float64) core.Vec3 {
		return core.NewVec3(
			(2*random.Float64()-1)*scale,
			(2*random.Float64()-1)*scale,
			(2*random.Float64()-1)*scale,
		)
	}

	for name, obj := range objects {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				ray := core.NewRay(randomVec(4), randomVec(1).Normalize())
				checkIntersect(t, obj, ray, random.Float64()*0.5, 1+random.Float64()*10)
			}
		})
	}
}

// Axis-aligned rays starting on face planes, edges and vertices of the test
// objects hit the cases where slab and barycentric terms become 0 or ±Inf.
func TestIntersect_AxisAlignedAndFacePlaneRays(t *testing.T) {
	objects := invariantTestObjects(t)

	// Coordinates that land on faces, edges and vertices of the box, the
	// transformed box, the triangle and the planes above
	coords := []float64{-2, -1, 0, 1, 2}
	depths := []float64{-4, -3, -2, 0, 5}
	axes := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, -1).Normalize(),
	}

	for name, obj := range objects {
		t.Run(name, func(t *testing.T) {
			for _, x := range coords {
				for _, y := range coords {
					for _, z := range depths {
						for _, dir := range axes {
							ray := core.NewRay(core.NewVec3(x, y, z), dir)
							checkIntersect(t, obj, ray, 0.001, math.Inf(1))
							checkIntersect(t, obj, ray, 0.001, 2)
						}
					}
				}
			}
		})
	}
}

func TestIntersect_ZeroDirectionNeverHits(t *testing.T) {
	for name, obj := range invariantTestObjects(t) {
		t.Run(name, func(t *testing.T) {
			hit := core.NewHit()
			assert.False(t, obj.Intersect(core.NewRay(core.NewVec3(0, 0, -3), core.Vec3{}), &hit, 0.001))
			assert.True(t, math.IsInf(hit.T, 1))
		})
	}
}
