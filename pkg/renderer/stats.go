package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SamplesPerPixel  int           // Samples taken for every pixel
	PrimaryRays      int64         // Camera rays traced
	ShadowRays       int64         // Shadow rays cast toward lights
	ReflectionRays   int64         // Mirror rays, including internal reflections
	RefractionRays   int64         // Transmitted rays
	AverageLuminance float64       // Mean luminance of the final pixel colors
	Duration         time.Duration // Wall time spent rendering
}

// TotalRays returns the number of rays of every kind traced during the render
func (s RenderStats) TotalRays() int64 {
	return s.PrimaryRays + s.ShadowRays + s.ReflectionRays + s.RefractionRays
}

// RayCounters counts traced rays by kind. It is safe for concurrent use.
type RayCounters struct {
	primary    atomic.Int64
	shadow     atomic.Int64
	reflection atomic.Int64
	refraction atomic.Int64
}

func (c *RayCounters) add(kind RayKind) {
	switch kind {
	case RayPrimary:
		c.primary.Add(1)
	case RayShadow:
		c.shadow.Add(1)
	case RayReflection, RayInternalReflection:
		c.reflection.Add(1)
	case RayRefraction:
		c.refraction.Add(1)
	}
}

// Primary returns the number of primary rays traced
func (c *RayCounters) Primary() int64 { return c.primary.Load() }

// Shadow returns the number of shadow rays cast
func (c *RayCounters) Shadow() int64 { return c.shadow.Load() }

// Reflection returns the number of reflected rays traced
func (c *RayCounters) Reflection() int64 { return c.reflection.Load() }

// Refraction returns the number of refracted rays traced
func (c *RayCounters) Refraction() int64 { return c.refraction.Load() }

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum     core.Vec3 // RGB accumulator for final result
	LuminanceAccum float64   // Luminance accumulator
	SampleCount    int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.LuminanceAccum += color.Luminance()
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// GetLuminance returns the average luminance of the samples taken so far
func (ps *PixelStats) GetLuminance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	return ps.LuminanceAccum / float64(ps.SampleCount)
}

// CalculateAverageLuminance returns the mean luminance over all pixels
func CalculateAverageLuminance(pixels [][]PixelStats) float64 {
	total := 0.0
	count := 0
	for _, row := range pixels {
		for i := range row {
			total += row[i].GetLuminance()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
