package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidOptions is returned when render options cannot produce an image
var ErrInvalidOptions = errors.New("invalid render options")

// Options controls a render
type Options struct {
	Width     int          // Image width in pixels
	Height    int          // Image height in pixels
	Samples   int          // Samples per pixel
	Pattern   core.Pattern // Sample placement within a pixel
	Bounces   int          // Reflection/refraction recursion budget
	Shadows   bool         // Cast shadow rays
	ShadeBack bool         // Shade back faces
	Workers   int          // Concurrent row tasks, 0 for runtime.NumCPU()
	Seed      int64        // Base seed for uniform and jittered sampling
	Gamma     float64      // Output gamma, 0 or 1 writes linear values
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:   200,
		Height:  200,
		Samples: 1,
		Pattern: core.PatternRegular,
		Bounces: 4,
		Shadows: true,
		Gamma:   1,
	}
}

// TraceOptions extracts the per-hit lighting options
func (o Options) TraceOptions() TraceOptions {
	return TraceOptions{Shadows: o.Shadows, ShadeBack: o.ShadeBack}
}

// Renderer renders a scene through a camera into an image
type Renderer struct {
	scene   Scene
	camera  Camera
	options Options
	logger  core.Logger
}

// NewRenderer validates options and creates a renderer. A nil logger discards output.
func NewRenderer(scene Scene, camera Camera, options Options, logger core.Logger) (*Renderer, error) {
	if scene == nil || camera == nil {
		return nil, fmt.Errorf("%w: scene and camera are required", ErrInvalidOptions)
	}
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidOptions, options.Width, options.Height)
	}
	if options.Samples < 1 {
		return nil, fmt.Errorf("%w: %d samples per pixel", ErrInvalidOptions, options.Samples)
	}
	if options.Bounces < 0 {
		return nil, fmt.Errorf("%w: negative bounce budget %d", ErrInvalidOptions, options.Bounces)
	}
	if _, err := core.NewSampler(options.Pattern, options.Samples, rand.New(rand.NewSource(options.Seed))); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Renderer{
		scene:   scene,
		camera:  camera,
		options: options,
		logger:  logger,
	}, nil
}

// Options returns the effective render options
func (r *Renderer) Options() Options {
	return r.options
}

// Render traces every pixel and returns the image. Rows are rendered in
// parallel; cancellation is observed between rows.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	opts := r.options
	r.logger.Printf("Rendering %dx%d, %d %s samples/pixel, %d bounces, %d workers\n",
		opts.Width, opts.Height, opts.Samples, opts.Pattern, opts.Bounces, opts.Workers)

	rt := NewRaytracer(r.scene, opts.TraceOptions())
	pixels := make([][]PixelStats, opts.Height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for y := 0; y < opts.Height; y++ {
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := r.renderRow(rt, y)
			if err != nil {
				return err
			}
			pixels[y] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Printf("Render aborted: %v\n", err)
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y, row := range pixels {
		for x := range row {
			img.SetRGBA(x, y, r.vec3ToColor(row[x].GetColor()))
		}
	}

	counters := rt.Counters()
	stats := RenderStats{
		TotalPixels:      opts.Width * opts.Height,
		TotalSamples:     opts.Width * opts.Height * opts.Samples,
		SamplesPerPixel:  opts.Samples,
		PrimaryRays:      counters.Primary(),
		ShadowRays:       counters.Shadow(),
		ReflectionRays:   counters.Reflection(),
		RefractionRays:   counters.Refraction(),
		AverageLuminance: CalculateAverageLuminance(pixels),
		Duration:         time.Since(start),
	}
	r.logger.Printf("Render complete in %v: %d rays (%d primary, %d shadow, %d reflection, %d refraction)\n",
		stats.Duration, stats.TotalRays(), stats.PrimaryRays, stats.ShadowRays, stats.ReflectionRays, stats.RefractionRays)

	return img, stats, nil
}

// RenderPixel returns the averaged linear color of pixel (x, y), where y = 0 is the top row
func (r *Renderer) RenderPixel(x, y int) (core.Vec3, error) {
	if err := r.checkPixel(x, y); err != nil {
		return core.Vec3{}, err
	}
	stats, err := r.samplePixel(NewRaytracer(r.scene, r.options.TraceOptions()), x, y)
	if err != nil {
		return core.Vec3{}, err
	}
	return stats.GetColor(), nil
}

// DebugPixel traces pixel (x, y) with the same samples Render would use and
// returns every ray segment cast along the way
func (r *Renderer) DebugPixel(x, y int) ([]RaySegment, error) {
	if err := r.checkPixel(x, y); err != nil {
		return nil, err
	}
	log := NewDebugLog()
	rt := NewRaytracer(r.scene, r.options.TraceOptions()).WithDebugLog(log)
	if _, err := r.samplePixel(rt, x, y); err != nil {
		return nil, err
	}
	return log.Segments(), nil
}

func (r *Renderer) checkPixel(x, y int) error {
	if x < 0 || x >= r.options.Width || y < 0 || y >= r.options.Height {
		return fmt.Errorf("%w: pixel (%d, %d) outside %dx%d", ErrInvalidOptions, x, y, r.options.Width, r.options.Height)
	}
	return nil
}

// rowSampler returns the sampler for image row y. Each row owns its random
// source so results do not depend on scheduling.
func (r *Renderer) rowSampler(y int) (core.Sampler, error) {
	random := rand.New(rand.NewSource(r.options.Seed + int64(y)))
	return core.NewSampler(r.options.Pattern, r.options.Samples, random)
}

func (r *Renderer) renderRow(rt *Raytracer, y int) ([]PixelStats, error) {
	sampler, err := r.rowSampler(y)
	if err != nil {
		return nil, err
	}
	row := make([]PixelStats, r.options.Width)
	for x := range row {
		r.samplePixelWith(rt, sampler, x, y, &row[x])
	}
	return row, nil
}

// samplePixel replays the row sampler up to pixel x so the samples match a full render
func (r *Renderer) samplePixel(rt *Raytracer, x, y int) (PixelStats, error) {
	sampler, err := r.rowSampler(y)
	if err != nil {
		return PixelStats{}, err
	}
	for i := 0; i < x; i++ {
		for s := 0; s < r.options.Samples; s++ {
			sampler.SamplePosition(s)
		}
	}
	var stats PixelStats
	r.samplePixelWith(rt, sampler, x, y, &stats)
	return stats, nil
}

func (r *Renderer) samplePixelWith(rt *Raytracer, sampler core.Sampler, x, y int, stats *PixelStats) {
	width := float64(r.options.Width)
	height := float64(r.options.Height)
	// Image rows run top to bottom, camera space bottom to top
	row := float64(r.options.Height - 1 - y)

	for s := 0; s < r.options.Samples; s++ {
		offset := sampler.SamplePosition(s)
		point := core.NewVec2((float64(x)+offset.X)/width, (row+offset.Y)/height)
		ray := r.camera.GenerateRay(point)
		color, _ := rt.TraceRay(ray, 0, r.options.Bounces, 1.0)
		stats.AddSample(color)
	}
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func (r *Renderer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	if r.options.Gamma > 0 && r.options.Gamma != 1 {
		colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(r.options.Gamma)
	}
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: channelToByte(colorVec.X),
		G: channelToByte(colorVec.Y),
		B: channelToByte(colorVec.Z),
		A: 255,
	}
}

// channelToByte maps a clamped channel to 0-255. NaN maps to 0.
func channelToByte(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(255*c + 0.5)
}
