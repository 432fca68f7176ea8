// Package config loads render settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrInvalidConfig is returned by Validate and by anything that validates
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every user-tunable render setting
type Config struct {
	Scene     string  `toml:"scene" yaml:"scene"`           // Built-in scene ID
	Width     int     `toml:"width" yaml:"width"`           // Image width in pixels
	Height    int     `toml:"height" yaml:"height"`         // Image height in pixels
	Samples   int     `toml:"samples" yaml:"samples"`       // Samples per pixel
	Pattern   string  `toml:"pattern" yaml:"pattern"`       // uniform, regular or jittered
	Bounces   int     `toml:"bounces" yaml:"bounces"`       // Reflection/refraction recursion budget
	Shadows   bool    `toml:"shadows" yaml:"shadows"`       // Cast shadow rays
	ShadeBack bool    `toml:"shade_back" yaml:"shade_back"` // Shade back faces
	Workers   int     `toml:"workers" yaml:"workers"`       // Parallel row tasks, 0 for all CPUs
	Seed      int64   `toml:"seed" yaml:"seed"`             // Base random seed
	Gamma     float64 `toml:"gamma" yaml:"gamma"`           // Output gamma, 1 for linear
	Camera    Camera  `toml:"camera" yaml:"camera"`         // Overrides of the scene camera
}

// Camera overrides fields of a scene's camera. Omitted fields keep the scene default.
type Camera struct {
	Center []float64 `toml:"center,omitempty" yaml:"center,omitempty"`
	LookAt []float64 `toml:"look_at,omitempty" yaml:"look_at,omitempty"`
	Up     []float64 `toml:"up,omitempty" yaml:"up,omitempty"`
	VFov   float64   `toml:"vfov,omitempty" yaml:"vfov,omitempty"`
}

// Default returns sensible default values
func Default() Config {
	return Config{
		Scene:   "default",
		Width:   400,
		Height:  225,
		Samples: 4,
		Pattern: core.PatternJittered.String(),
		Bounces: 5,
		Shadows: true,
		Gamma:   1,
	}
}

// Load reads a config file on top of the defaults. Files ending in .yaml or
// .yml are YAML, everything else TOML. A leading ~ expands to the home directory.
func Load(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("expanding config path %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	parse := Parse
	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseYAML decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func ParseYAML(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document leaves the defaults untouched
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as TOML
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks that the config describes a renderable image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be at least 1, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Bounces < 0 {
		return fmt.Errorf("%w: bounces must not be negative, got %d", ErrInvalidConfig, c.Bounces)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Gamma < 0 {
		return fmt.Errorf("%w: gamma must not be negative, got %g", ErrInvalidConfig, c.Gamma)
	}

	pattern, err := core.ParsePattern(c.Pattern)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if pattern != core.PatternUniform {
		// Same check the grid samplers make
		if _, err := core.NewSampler(pattern, c.Samples, nil); err != nil {
			return fmt.Errorf("%w: %s sampling: %w", ErrInvalidConfig, pattern, err)
		}
	}

	for name, v := range map[string][]float64{"center": c.Camera.Center, "look_at": c.Camera.LookAt, "up": c.Camera.Up} {
		if v != nil && len(v) != 3 {
			return fmt.Errorf("%w: camera %s needs 3 components, got %d", ErrInvalidConfig, name, len(v))
		}
	}
	return nil
}

// RenderOptions converts the config to renderer options. The config must be valid.
func (c Config) RenderOptions() (renderer.Options, error) {
	pattern, err := core.ParsePattern(c.Pattern)
	if err != nil {
		return renderer.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return renderer.Options{
		Width:     c.Width,
		Height:    c.Height,
		Samples:   c.Samples,
		Pattern:   pattern,
		Bounces:   c.Bounces,
		Shadows:   c.Shadows,
		ShadeBack: c.ShadeBack,
		Workers:   c.Workers,
		Seed:      c.Seed,
		Gamma:     c.Gamma,
	}, nil
}

// CameraOverride returns the camera fields set in the config, with the
// aspect ratio taken from the image size
func (c Config) CameraOverride() renderer.CameraConfig {
	override := renderer.CameraConfig{VFov: c.Camera.VFov}
	if c.Height > 0 {
		override.AspectRatio = float64(c.Width) / float64(c.Height)
	}
	if len(c.Camera.Center) == 3 {
		override.Center = toVec3(c.Camera.Center)
	}
	if len(c.Camera.LookAt) == 3 {
		override.LookAt = toVec3(c.Camera.LookAt)
	}
	if len(c.Camera.Up) == 3 {
		override.Up = toVec3(c.Camera.Up)
	}
	return override
}

func toVec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
