package renderer

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RayKind identifies why a ray was cast
type RayKind int

const (
	RayPrimary RayKind = iota
	RayShadow
	RayReflection
	RayRefraction
	RayInternalReflection // Mirror ray substituted for a refraction under total internal reflection
)

func (k RayKind) String() string {
	switch k {
	case RayPrimary:
		return "primary"
	case RayShadow:
		return "shadow"
	case RayReflection:
		return "reflection"
	case RayRefraction:
		return "refraction"
	case RayInternalReflection:
		return "internal-reflection"
	}
	return "unknown"
}

// Color returns the color the segment is drawn with in debug views
func (k RayKind) Color() core.Vec3 {
	switch k {
	case RayShadow:
		return core.NewVec3(1, 1, 1)
	case RayReflection, RayInternalReflection:
		return core.NewVec3(1, 1, 0)
	case RayRefraction:
		return core.NewVec3(0, 1, 1)
	}
	return core.NewVec3(1, 0, 0)
}

// RaySegment is one traced ray as it would be drawn by a debug view
type RaySegment struct {
	Kind   RayKind
	Origin core.Vec3
	Vector core.Vec3 // Direction scaled to the segment length
	Normal core.Vec3 // Normal at the far end, zero on a miss
	Color  core.Vec3
	Bounce int // Remaining bounce budget when the ray was cast
}

// DebugLog collects ray segments emitted while tracing.
// It is safe for concurrent use.
type DebugLog struct {
	mu       sync.Mutex
	segments []RaySegment
}

// NewDebugLog creates an empty debug log
func NewDebugLog() *DebugLog {
	return &DebugLog{}
}

func (d *DebugLog) add(segment RaySegment) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.segments = append(d.segments, segment)
}

// Segments returns a copy of the collected segments in emission order
func (d *DebugLog) Segments() []RaySegment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]RaySegment(nil), d.segments...)
}

// Count returns how many segments of the given kind were collected
func (d *DebugLog) Count(kind RayKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, s := range d.segments {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all collected segments
func (d *DebugLog) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.segments = d.segments[:0]
}
