package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCheckerboard_Weight(t *testing.T) {
	tests := []struct {
		point    core.Vec3
		expected float64
	}{
		{core.NewVec3(0.5, 0.5, 0.5), 1},
		{core.NewVec3(1.5, 0.5, 0.5), 0},
		{core.NewVec3(1.5, 1.5, 0.5), 1},
		{core.NewVec3(-0.5, 0.5, 0.5), 0},
		{core.NewVec3(-1.5, 0.5, 0.5), 1},
		{core.NewVec3(-0.5, -0.5, 0.5), 1},
		{core.NewVec3(-0.5, -0.5, -0.5), 0},
		{core.NewVec3(2.5, -3.5, 0.25), 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Checkerboard{}.Weight(tt.point), "point %v", tt.point)
	}
}

func TestCheckerboard_AlternatesAcrossOrigin(t *testing.T) {
	// Walking along x in half-unit steps must flip parity at every integer
	prev := Checkerboard{}.Weight(core.NewVec3(-4.5, 0.5, 0.5))
	for x := -3.5; x < 4; x++ {
		w := Checkerboard{}.Weight(core.NewVec3(x, 0.5, 0.5))
		assert.NotEqual(t, prev, w, "x = %v", x)
		prev = w
	}
}

func TestProcedural_BlendsQueries(t *testing.T) {
	red := NewPhong(PhongConfig{
		Diffuse:    NewSolidColor(core.NewVec3(1, 0, 0)),
		Reflective: NewSolidColor(core.Gray(0.5)),
	})
	glass := NewGlass(core.Gray(0.9), 1.5)
	checker := NewCheckerboard(mgl64.Ident4(), red, glass)

	inRed := core.NewVec3(0.5, 0.5, 0.5)
	inGlass := core.NewVec3(1.5, 0.5, 0.5)

	assert.Equal(t, core.NewVec3(1, 0, 0), checker.DiffuseColor(inRed))
	assert.Equal(t, core.Gray(0.5), checker.ReflectiveColor(inRed))
	assert.Equal(t, core.Vec3{}, checker.TransparentColor(inRed))
	assert.Equal(t, 1.0, checker.RefractionIndex(inRed))

	assert.Equal(t, core.Vec3{}, checker.DiffuseColor(inGlass))
	assert.Equal(t, core.Gray(0.9), checker.TransparentColor(inGlass))
	assert.Equal(t, 1.5, checker.RefractionIndex(inGlass))
}

func TestProcedural_MatrixScalesPattern(t *testing.T) {
	white := NewDiffuse(core.Gray(1))
	black := NewDiffuse(core.Gray(0))
	// Cells of size 0.5 in world space
	checker := NewCheckerboard(mgl64.Scale3D(2, 2, 2), white, black)

	assert.Equal(t, core.Gray(1), checker.DiffuseColor(core.NewVec3(0.25, 0.25, 0.25)))
	assert.Equal(t, core.Gray(0), checker.DiffuseColor(core.NewVec3(0.75, 0.25, 0.25)))
}

func TestProcedural_ShadeBlendsShadedColors(t *testing.T) {
	shiny := NewPhong(PhongConfig{
		Diffuse:  NewSolidColor(core.Gray(0.2)),
		Specular: core.Gray(1),
		Exponent: 1,
	})
	matte := NewDiffuse(core.Gray(0.8))
	// Translate so the origin lands in a weight-1 cell
	checker := NewCheckerboard(mgl64.Translate3D(0.5, 0.5, 0.5), shiny, matte)

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	hit := core.NewHit()
	hit.Set(2, checker, core.NewVec3(0, 1, 0))
	light := core.NewVec3(0, 1, 0)

	got := checker.Shade(ray, hit, light, core.Gray(1), false)
	expected := shiny.Shade(ray, hit, light, core.Gray(1), false)
	assert.Equal(t, expected, got)
	assertVecInDelta(t, core.Gray(1.2), got, tolerance)
}
