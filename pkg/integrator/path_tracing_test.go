package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var black = core.Vec3{X: 0, Y: 0, Z: 0}

// createTestWorld creates a simple world with a single sphere
func createTestWorld(mat material.Material) *geometry.HittableList {
	return geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat))
}

func expectedBackground(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return core.NewVec3(1, 1, 1).Multiply(1 - t).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(t))
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultMaxDepth)
	world := createTestWorld(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	sampler := core.NewSeededSampler(42)

	directions := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0.3, 0.4, 2),
		core.NewVec3(-2, -5, 0.1),
	}

	for _, dir := range directions {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		got := integrator.RayColor(ray, world, sampler)
		if diff := cmp.Diff(expectedBackground(dir), got); diff != "" {
			t.Errorf("Background mismatch for %v (-want +got):\n%s", dir, diff)
		}
	}
}

func TestPathTracing_BackgroundEndpoints(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultMaxDepth)
	empty := geometry.NewHittableList()
	sampler := core.NewSeededSampler(42)

	up := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), empty, sampler)
	if diff := cmp.Diff(SkyTop, up); diff != "" {
		t.Errorf("Straight up should be sky blue (-want +got):\n%s", diff)
	}
	down := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), empty, sampler)
	if diff := cmp.Diff(SkyBottom, down); diff != "" {
		t.Errorf("Straight down should be white (-want +got):\n%s", diff)
	}
}

func TestPathTracing_DepthCutoff(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultMaxDepth)
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	materials := map[string]material.Material{
		"lambertian": material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)),
		"metal":      material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0),
		"dielectric": material.NewDielectric(1.5),
	}

	for name, mat := range materials {
		t.Run(name, func(t *testing.T) {
			world := createTestWorld(mat)
			got := integrator.ColorAt(ray, world, sampler, integrator.MaxDepth)
			if got != black {
				t.Errorf("Expected black at the depth limit, got %v", got)
			}
		})
	}
}

func TestPathTracing_ZeroMaxDepth(t *testing.T) {
	integrator := NewPathTracingIntegrator(0)
	world := createTestWorld(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	sampler := core.NewSeededSampler(42)

	// A hit is immediately cut off, a miss still sees the sky
	hitRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := integrator.RayColor(hitRay, world, sampler); got != black {
		t.Errorf("Expected black for depth 0, got %v", got)
	}
	missRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := integrator.RayColor(missRay, world, sampler); got == black {
		t.Error("Expected sky color for a miss with depth 0")
	}
}

func TestPathTracing_AbsorptionIsBlack(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultMaxDepth)
	// A mirror hit from inside reflects below its outward normal and is absorbed
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 5, material.NewMetal(core.NewVec3(1, 1, 1), 0)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if got := integrator.RayColor(ray, world, core.NewSeededSampler(1)); got != black {
		t.Errorf("Expected absorbed path to be black, got %v", got)
	}
}

func TestPathTracing_MirrorTintsBackground(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	integrator := NewPathTracingIntegrator(DefaultMaxDepth)
	world := createTestWorld(material.NewMetal(albedo, 0))

	// Straight on: the ray returns along +z and sees the horizon
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, core.NewSeededSampler(1))

	want := albedo.MultiplyVec(expectedBackground(core.NewVec3(0, 0, 1)))
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Mirror color mismatch (-want +got):\n%s", diff)
	}
}

func TestPathTracing_DiffuseStaysBounded(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultMaxDepth)
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(albedo)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(2, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.3)),
	)
	sampler := core.NewSeededSampler(5)

	for i := 0; i < 500; i++ {
		dir := core.NewVec3(sampler.Get1D()-0.5, -sampler.Get1D(), sampler.Get1D()-0.5)
		c := integrator.RayColor(core.NewRay(core.NewVec3(0, 3, 5), dir), world, sampler)
		for _, ch := range []float64{c.X, c.Y, c.Z} {
			if math.IsNaN(ch) || math.IsInf(ch, 0) || ch < 0 || ch > 1 {
				t.Fatalf("Radiance %v out of range for direction %v", c, dir)
			}
		}
	}
}
