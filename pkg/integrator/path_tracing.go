package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	// DefaultMaxDepth is the bounce count at which paths are cut off
	DefaultMaxDepth = 50

	// ShadowAcneEpsilon is the minimum hit distance, suppressing self-intersection
	ShadowAcneEpsilon = 0.001
)

var (
	// SkyTop is the background color straight up
	SkyTop = core.NewVec3(0.5, 0.7, 1.0)
	// SkyBottom is the background color straight down
	SkyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a hard depth cutoff.
// The background gradient is the only light source.
type PathTracingIntegrator struct {
	MaxDepth    int
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewPathTracingIntegrator creates a new path tracing integrator lit by the default sky
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:    maxDepth,
		TopColor:    SkyTop,
		BottomColor: SkyBottom,
	}
}

// RayColor computes the color for a primary ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.ColorAt(ray, world, sampler, 0)
}

// ColorAt computes the color seen along ray after depth bounces
func (pt *PathTracingIntegrator) ColorAt(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := geometry.Hit(world, ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.BackgroundGradient(ray)
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= pt.MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := material.Scatter(hit.Material, ray, hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.ColorAt(scatter.Scattered, world, sampler, depth+1))
}

// BackgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) BackgroundGradient(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
