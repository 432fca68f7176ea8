package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Object3D is anything a ray can be intersected with.
//
// Intersect returns true only if it updated hit to a strictly closer
// intersection whose parameter is greater than tMin. It never increases hit.T.
type Object3D interface {
	Intersect(ray Ray, hit *Hit, tMin float64) bool
}

// Material describes how a surface responds to light at a given point
type Material interface {
	DiffuseColor(point Vec3) Vec3
	ReflectiveColor(point Vec3) Vec3
	TransparentColor(point Vec3) Vec3
	RefractionIndex(point Vec3) float64

	// Shade returns the diffuse and specular contribution of a single light.
	// Ambient light and recursive terms are the tracer's responsibility.
	Shade(ray Ray, hit Hit, dirToLight, incidentIntensity Vec3, shadeBack bool) Vec3
}

// Light provides the illumination arriving at a point
type Light interface {
	// IncidentIllumination returns the unit direction from point toward the
	// light, the intensity arriving at point and the distance to the light
	// (+Inf for lights at infinity).
	IncidentIllumination(point Vec3) (dirToLight, intensity Vec3, distance float64)
}
