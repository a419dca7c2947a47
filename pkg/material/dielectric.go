package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material.
// A non-positive index is treated as vacuum (1.0).
func NewDielectric(refractiveIndex float64) *Dielectric {
	if refractiveIndex <= 0 {
		refractiveIndex = 1.0
	}
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements dielectric scattering. It never absorbs.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	unitDirection := rayIn.Direction.Normalize()

	// Orient the normal against the ray and pick the index ratio for the side we came from
	normal := hit.Normal
	refractionRatio := 1.0 / d.RefractiveIndex // entering (from air to glass)
	if unitDirection.Dot(normal) > 0 {
		normal = normal.Negate()
		refractionRatio = d.RefractiveIndex // exiting (from glass to air)
	}

	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)

	var direction core.Vec3
	refracted, canRefract := refract(unitDirection, normal, refractionRatio)
	if !canRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, normal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// refract bends the unit vector uv through a surface with normal n (facing uv) using Snell's law.
// It reports false on total internal reflection.
func refract(uv, n core.Vec3, etaiOverEtat float64) (core.Vec3, bool) {
	dt := uv.Dot(n)
	discriminant := 1.0 - etaiOverEtat*etaiOverEtat*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	perp := uv.Subtract(n.Multiply(dt)).Multiply(etaiOverEtat)
	return perp.Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
