package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ErrNotPerfectSquare is returned when a grid sampler is asked for a sample
// count that cannot be laid out as a d×d grid
var ErrNotPerfectSquare = errors.New("sample count must be a perfect square")

// Sampler produces sample positions within a pixel for antialiasing.
// SamplePosition is called once per subsample index 0 <= i < n and returns a
// point in the unit square.
type Sampler interface {
	SamplePosition(i int) Vec2
}

// Pattern selects a sampling strategy
type Pattern int

const (
	PatternUniform Pattern = iota
	PatternRegular
	PatternJittered
)

func (p Pattern) String() string {
	switch p {
	case PatternUniform:
		return "uniform"
	case PatternRegular:
		return "regular"
	case PatternJittered:
		return "jittered"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// ParsePattern converts a pattern name into a Pattern
func ParsePattern(name string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform":
		return PatternUniform, nil
	case "regular":
		return PatternRegular, nil
	case "jittered":
		return PatternJittered, nil
	}
	return 0, fmt.Errorf("unknown sample pattern %q", name)
}

// NewSampler creates a sampler of the given pattern for n samples per pixel
func NewSampler(pattern Pattern, n int, random *rand.Rand) (Sampler, error) {
	switch pattern {
	case PatternUniform:
		return NewUniformSampler(random), nil
	case PatternRegular:
		return NewRegularSampler(n)
	case PatternJittered:
		return NewJitteredSampler(n, random)
	}
	return nil, fmt.Errorf("unknown sample pattern %v", pattern)
}

// UniformSampler returns independent uniformly distributed positions
type UniformSampler struct {
	random *rand.Rand
}

// NewUniformSampler creates a sampler from a Go random generator
func NewUniformSampler(random *rand.Rand) *UniformSampler {
	return &UniformSampler{random: random}
}

// SamplePosition ignores i and returns a random point in [0, 1)²
func (s *UniformSampler) SamplePosition(i int) Vec2 {
	return NewVec2(s.random.Float64(), s.random.Float64())
}

// gridDim returns d such that d*d == n
func gridDim(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNotPerfectSquare, n)
	}
	d := int(math.Round(math.Sqrt(float64(n))))
	if d*d != n {
		return 0, fmt.Errorf("%w: got %d", ErrNotPerfectSquare, n)
	}
	return d, nil
}

// cellCenter returns the center of grid cell (i mod d, i div d)
func cellCenter(i, dim int) Vec2 {
	col := i % dim
	row := i / dim
	size := 1.0 / float64(dim)
	return NewVec2((float64(col)+0.5)*size, (float64(row)+0.5)*size)
}

// RegularSampler returns the centers of a d×d grid of subpixels
type RegularSampler struct {
	dim int
}

// NewRegularSampler creates a regular grid sampler; n must be a perfect square
func NewRegularSampler(n int) (*RegularSampler, error) {
	dim, err := gridDim(n)
	if err != nil {
		return nil, err
	}
	return &RegularSampler{dim: dim}, nil
}

// SamplePosition returns the center of the i-th subpixel
func (s *RegularSampler) SamplePosition(i int) Vec2 {
	return cellCenter(i, s.dim)
}

// JitteredSampler returns a random position inside each cell of a d×d grid
type JitteredSampler struct {
	dim    int
	random *rand.Rand
}

// NewJitteredSampler creates a jittered grid sampler; n must be a perfect square
func NewJitteredSampler(n int, random *rand.Rand) (*JitteredSampler, error) {
	dim, err := gridDim(n)
	if err != nil {
		return nil, err
	}
	return &JitteredSampler{dim: dim, random: random}, nil
}

// SamplePosition returns the i-th cell center offset by at most half a cell on each axis
func (s *JitteredSampler) SamplePosition(i int) Vec2 {
	halfCell := 1.0 / (2 * float64(s.dim))
	offset := NewVec2(
		(2*s.random.Float64()-1)*halfCell,
		(2*s.random.Float64()-1)*halfCell,
	)
	return cellCenter(i, s.dim).Add(offset)
}
