package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Group is an ordered collection of objects intersected one after another.
// It is not a bounding volume: every child is tested on every query.
type Group struct {
	objects []core.Object3D
}

// NewGroup creates a group holding the given objects
func NewGroup(objects ...core.Object3D) *Group {
	g := &Group{}
	for _, o := range objects {
		g.Add(o)
	}
	return g
}

// Add appends an object to the group. Adding nil panics.
func (g *Group) Add(o core.Object3D) {
	if o == nil {
		panic("geometry: nil object added to group")
	}
	g.objects = append(g.objects, o)
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.objects)
}

// At returns the i-th child
func (g *Group) At(i int) core.Object3D {
	return g.objects[i]
}

// Intersect tests every child against the same hit record and reports
// whether any of them recorded a closer intersection
func (g *Group) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	intersected := false
	for _, o := range g.objects {
		if o.Intersect(ray, hit, tMin) {
			intersected = true
		}
	}
	return intersected
}
