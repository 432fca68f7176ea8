package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Epsilon offsets secondary rays from the surface they leave
const Epsilon = 0.001

// maxDebugSegmentLength clips primary ray segments that miss everything
const maxDebugSegmentLength = 100.0

// Scene is the read-only view of a scene the raytracer needs
type Scene interface {
	Group() core.Object3D // May be nil for an empty scene
	BackgroundColor() core.Vec3
	AmbientLight() core.Vec3
	NumLights() int
	Light(i int) core.Light
}

// TraceOptions controls the lighting terms computed at each hit
type TraceOptions struct {
	Shadows   bool // Cast shadow rays toward every light
	ShadeBack bool // Treat surfaces as two-sided
}

// Raytracer computes the color seen along a ray with recursive reflection and refraction.
// A Raytracer is safe for concurrent use as long as the scene is not modified.
type Raytracer struct {
	scene    Scene
	options  TraceOptions
	debug    *DebugLog
	counters *RayCounters
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, options TraceOptions) *Raytracer {
	return &Raytracer{
		scene:    scene,
		options:  options,
		counters: &RayCounters{},
	}
}

// WithDebugLog returns a raytracer that shares this one's scene, options and
// counters and records every ray it casts into log
func (rt *Raytracer) WithDebugLog(log *DebugLog) *Raytracer {
	clone := *rt
	clone.debug = log
	return &clone
}

// Counters returns the ray counters accumulated by this raytracer
func (rt *Raytracer) Counters() *RayCounters {
	return rt.counters
}

// TraceRay returns the color arriving along ray and the closest hit.
// bounces is the remaining reflection/refraction budget and refrIndex the
// index of refraction of the medium the ray currently travels through.
func (rt *Raytracer) TraceRay(ray core.Ray, tMin float64, bounces int, refrIndex float64) (core.Vec3, core.Hit) {
	return rt.trace(ray, tMin, bounces, refrIndex, RayPrimary)
}

func (rt *Raytracer) trace(ray core.Ray, tMin float64, bounces int, refrIndex float64, kind RayKind) (core.Vec3, core.Hit) {
	rt.counters.add(kind)

	hit := core.NewHit()
	intersected := false
	if group := rt.scene.Group(); group != nil {
		intersected = group.Intersect(ray, &hit, tMin)
	}

	if rt.debug != nil {
		rt.debug.add(RaySegment{
			Kind:   kind,
			Origin: ray.Origin,
			Vector: ray.Direction.Normalize().Multiply(math.Min(maxDebugSegmentLength, hit.T)),
			Normal: hit.Normal,
			Color:  kind.Color(),
			Bounce: bounces,
		})
	}

	if !intersected {
		return rt.scene.BackgroundColor(), hit
	}

	// Stored normals point out of the solid; a ray travelling inside sees them reversed
	if ray.IsInside {
		hit.Normal = hit.Normal.Negate()
	}

	m := hit.Material
	if m == nil {
		panic("renderer: object reported an intersection without a material")
	}

	point := ray.At(hit.T)
	color := m.DiffuseColor(point).MultiplyVec(rt.scene.AmbientLight())

	for i := 0; i < rt.scene.NumLights(); i++ {
		dirToLight, intensity, distance := rt.scene.Light(i).IncidentIllumination(point)
		if rt.options.Shadows && rt.occluded(point, dirToLight, distance, bounces) {
			continue
		}
		color = color.Add(m.Shade(ray, hit, dirToLight, intensity, rt.options.ShadeBack))
	}

	if bounces < 1 {
		return color, hit
	}

	if reflective := m.ReflectiveColor(point); !reflective.IsZero() {
		reflected := core.Ray{
			Origin:    point,
			Direction: mirrorDirection(hit.Normal, ray.Direction),
			IsInside:  ray.IsInside,
		}
		incoming, _ := rt.trace(reflected, Epsilon, bounces-1, refrIndex, RayReflection)
		color = color.Add(reflective.MultiplyVec(incoming))
	}

	if transparent := m.TransparentColor(point); !transparent.IsZero() {
		// Rays inside a solid always exit into vacuum
		farIndex := m.RefractionIndex(point)
		if ray.IsInside {
			farIndex = 1
		}

		var incoming core.Vec3
		if direction, ok := transmittedDirection(hit.Normal, ray.Direction, refrIndex, farIndex); ok {
			transmitted := core.Ray{
				Origin:    ray.At(hit.T + Epsilon),
				Direction: direction,
				IsInside:  !ray.IsInside,
			}
			incoming, _ = rt.trace(transmitted, Epsilon, bounces-1, farIndex, RayRefraction)
		} else {
			reflected := core.Ray{
				Origin:    point,
				Direction: mirrorDirection(hit.Normal, ray.Direction),
				IsInside:  ray.IsInside,
			}
			incoming, _ = rt.trace(reflected, Epsilon, bounces-1, refrIndex, RayInternalReflection)
		}
		color = color.Add(transparent.MultiplyVec(incoming))
	}

	return color, hit
}

// occluded casts a shadow ray and reports whether anything lies between
// point and a light at the given distance
func (rt *Raytracer) occluded(point, dirToLight core.Vec3, distance float64, bounces int) bool {
	rt.counters.add(RayShadow)

	group := rt.scene.Group()
	if group == nil {
		return false
	}

	shadowRay := core.NewRay(point, dirToLight)
	shadowHit := core.NewHitAt(distance)
	blocked := group.Intersect(shadowRay, &shadowHit, Epsilon)

	if blocked && rt.debug != nil {
		rt.debug.add(RaySegment{
			Kind:   RayShadow,
			Origin: shadowRay.Origin,
			Vector: shadowRay.Direction.Multiply(shadowHit.T),
			Normal: shadowHit.Normal,
			Color:  RayShadow.Color(),
			Bounce: bounces,
		})
	}
	return blocked
}

// mirrorDirection reflects incoming about normal
func mirrorDirection(normal, incoming core.Vec3) core.Vec3 {
	return incoming.Subtract(normal.Multiply(2 * incoming.Dot(normal))).Normalize()
}

// transmittedDirection bends incoming through a surface between media of
// index indexIncident and indexTransmitted. It returns false on total
// internal reflection. normal must face the incoming ray.
func transmittedDirection(normal, incoming core.Vec3, indexIncident, indexTransmitted float64) (core.Vec3, bool) {
	d := incoming.Normalize()
	cosIncident := normal.Dot(d.Negate())
	eta := indexIncident / indexTransmitted

	k := 1 - eta*eta*(1-cosIncident*cosIncident)
	if k < 0 {
		return core.Vec3{}, false
	}

	return normal.Multiply(eta*cosIncident - math.Sqrt(k)).Add(d.Multiply(eta)).Normalize(), true
}
