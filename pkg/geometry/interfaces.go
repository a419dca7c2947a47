package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is the closed set of objects a ray can be intersected with:
// *Sphere and *HittableList.
type Hittable interface {
	isHittable()
}

func (*Sphere) isHittable()       {}
func (*HittableList) isHittable() {}

// Hit intersects ray with h and returns the nearest hit with t strictly inside (tMin, tMax)
func Hit(h Hittable, ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	switch h := h.(type) {
	case *Sphere:
		return h.Hit(ray, tMin, tMax)
	case *HittableList:
		return h.Hit(ray, tMin, tMax)
	}
	return material.HitRecord{}, false
}
