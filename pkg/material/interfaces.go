package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material is the closed set of surface materials: *Lambertian, *Metal and *Dielectric.
// Materials are immutable after construction and may be shared by any number of shapes.
type Material interface {
	isMaterial()
}

func (*Lambertian) isMaterial() {}
func (*Metal) isMaterial()      {}
func (*Dielectric) isMaterial() {}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit outward surface normal; not flipped toward the ray
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}

// Scatter decides whether rayIn continues after hitting a surface made of m.
// A false result means the light along this path was absorbed.
func Scatter(m Material, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m := m.(type) {
	case *Lambertian:
		return m.Scatter(rayIn, hit, sampler)
	case *Metal:
		return m.Scatter(rayIn, hit, sampler)
	case *Dielectric:
		return m.Scatter(rayIn, hit, sampler)
	}
	return ScatterResult{}, false
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
