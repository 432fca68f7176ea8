package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	assert.Equal(t, NewVec3(5, -3, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, 7, -3), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(4, -10, 18), a.MultiplyVec(b))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Negate())
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z cross x", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"parallel", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Cross(tt.b))
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(3, 0, 4).Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)

	// Degenerate input is not masked
	z := NewVec3(0, 0, 0).Normalize()
	assert.True(t, math.IsNaN(z.X))
}

func TestVec3_IsZero(t *testing.T) {
	assert.True(t, Vec3{}.IsZero())
	assert.False(t, NewVec3(0, 1e-9, 0).IsZero())
}

func TestVec3_Clamp(t *testing.T) {
	assert.Equal(t, NewVec3(0, 0.5, 1), NewVec3(-2, 0.5, 7).Clamp(0, 1))
}

func TestVec3_MglRoundTrip(t *testing.T) {
	v := NewVec3(1.5, -2, 3.25)
	assert.Equal(t, v, FromMgl(v.Mgl()))
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, 0))
	assert.Equal(t, NewVec3(1, 4, 1), r.At(1.5))
	assert.False(t, r.IsInside)
}

func TestHit_Set(t *testing.T) {
	h := NewHit()
	assert.True(t, math.IsInf(h.T, 1))
	assert.False(t, h.Found())

	h.Set(2, nil, NewVec3(0, 1, 0))
	assert.Equal(t, 2.0, h.T)
	assert.Equal(t, NewVec3(0, 1, 0), h.Normal)

	bounded := NewHitAt(5)
	assert.Equal(t, 5.0, bounded.T)
}
