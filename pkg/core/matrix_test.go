package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformPoint_AppliesTranslation(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	assert.Equal(t, NewVec3(1, 2, 3), TransformPoint(m, NewVec3(0, 0, 0)))
}

func TestTransformDirection_IgnoresTranslation(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(2, 2, 2))
	assert.Equal(t, NewVec3(2, 0, 0), TransformDirection(m, NewVec3(1, 0, 0)))
}

func TestInvert(t *testing.T) {
	m := mgl64.Translate3D(1, 0, 0).Mul4(mgl64.Scale3D(2, 4, 8))
	inv, err := Invert(m)
	require.NoError(t, err)

	p := NewVec3(3, 4, 5)
	back := TransformPoint(inv, TransformPoint(m, p))
	assert.InDelta(t, p.X, back.X, 1e-12)
	assert.InDelta(t, p.Y, back.Y, 1e-12)
	assert.InDelta(t, p.Z, back.Z, 1e-12)

	_, err = Invert(mgl64.Scale3D(1, 0, 1))
	assert.ErrorIs(t, err, ErrSingularMatrix)
}
