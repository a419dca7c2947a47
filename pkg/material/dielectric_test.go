package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// sinToNormal returns the sine of the angle between direction d and the normal axis n
func sinToNormal(d, n core.Vec3) float64 {
	return d.Normalize().Cross(n).Length()
}

func TestNewDielectric_NonPositiveIndex(t *testing.T) {
	tests := []struct {
		name  string
		index float64
		want  float64
	}{
		{"glass", 1.5, 1.5},
		{"zero", 0, 1.0},
		{"negative", -2, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDielectric(tt.index).RefractiveIndex; got != tt.want {
				t.Errorf("Expected refractive index %f, got %f", tt.want, got)
			}
		})
	}
}

func TestDielectric_SnellsLaw(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, Material: glass}

	// A draw above any Schlick reflectance below the critical angle forces refraction
	alwaysRefract := fixedSampler{v1: 0.999, v3: core.NewVec3(0.5, 0.5, 0.5)}

	tests := []struct {
		name      string
		direction core.Vec3
		n1, n2    float64
	}{
		{"entering at 30 degrees", core.NewVec3(math.Sin(math.Pi/6), -math.Cos(math.Pi/6), 0), 1.0, 1.5},
		{"entering at 60 degrees", core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0), 1.0, 1.5},
		{"exiting at 20 degrees", core.NewVec3(math.Sin(math.Pi/9), math.Cos(math.Pi/9), 0), 1.5, 1.0},
		{"entering off-axis", core.NewVec3(0.3, -1, 0.4), 1.0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayAtTime(core.NewVec3(0, 1, 0), tt.direction, 0.4)
			result, scattered := glass.Scatter(ray, hit, alwaysRefract)
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}

			out := result.Scattered.Direction
			// Refracted ray continues through the surface
			if math.Signbit(out.Dot(normal)) != math.Signbit(tt.direction.Dot(normal)) {
				t.Fatalf("Expected refraction through the surface, got %v", out)
			}

			lhs := tt.n1 * sinToNormal(tt.direction, normal)
			rhs := tt.n2 * sinToNormal(out, normal)
			if math.Abs(lhs-rhs) > 1e-9 {
				t.Errorf("Snell's law violated: n1 sin1 = %f, n2 sin2 = %f", lhs, rhs)
			}
			if math.Abs(out.Length()-1) > 1e-9 {
				t.Errorf("Expected unit refracted direction, got length %f", out.Length())
			}
			if result.Scattered.Time != ray.Time {
				t.Errorf("Expected scattered time %f, got %f", ray.Time, result.Scattered.Time)
			}
			if result.Attenuation != core.NewVec3(1, 1, 1) {
				t.Errorf("Expected white attenuation, got %v", result.Attenuation)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, Material: glass}

	// Exiting glass at 60 degrees: 1.5·sin(60°) > 1
	rayDirection := core.NewVec3(math.Sin(math.Pi/3), math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewVec3(0, -1, 0), rayDirection)

	for seed := int64(0); seed < 200; seed++ {
		result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}

		out := result.Scattered.Direction
		// Reflection stays inside the glass
		if out.Y >= 0 {
			t.Fatalf("Expected total internal reflection back into the glass, got %v", out)
		}
		if math.Abs(out.X-rayDirection.X) > 1e-12 || math.Abs(out.Y+rayDirection.Y) > 1e-12 {
			t.Fatalf("Expected mirror reflection of %v, got %v", rayDirection, out)
		}
	}
}

func TestDielectric_FresnelChoosesReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))

	// A zero draw is below any positive reflectance
	alwaysReflect := fixedSampler{v1: 0, v3: core.NewVec3(0.5, 0.5, 0.5)}
	result, _ := glass.Scatter(ray, hit, alwaysReflect)
	if result.Scattered.Direction.Y <= 0 {
		t.Errorf("Expected reflection above the surface, got %v", result.Scattered.Direction)
	}
}

func TestDielectric_ReflectionProbabilityMatchesSchlick(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

	// Grazing-ish incidence at 80 degrees has a sizeable reflectance
	theta := 80 * math.Pi / 180
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(math.Sin(theta), -math.Cos(theta), 0))
	want := Reflectance(math.Cos(theta), 1/1.5)

	sampler := core.NewSeededSampler(99)
	const n = 20000
	reflections := 0
	for i := 0; i < n; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		}
	}

	got := float64(reflections) / n
	if math.Abs(got-want) > 0.02 {
		t.Errorf("Expected reflection fraction near %.3f, got %.3f", want, got)
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence (0°) - should be low for air->glass
	r0 := Reflectance(1.0, 1.0/1.5)
	if math.Abs(r0-0.04) > 1e-9 {
		t.Errorf("Normal incidence reflectance = %.6f, expected 0.04", r0)
	}

	// Grazing incidence (90°) - should be 1
	if r90 := Reflectance(0.0, 1.0/1.5); math.Abs(r90-1) > 1e-12 {
		t.Errorf("Grazing incidence reflectance = %.6f, expected 1.0", r90)
	}

	// Inverting the ratio does not change the normal-incidence term
	if math.Abs(Reflectance(1.0, 1.5)-r0) > 1e-12 {
		t.Errorf("Expected symmetric R0, got %f and %f", Reflectance(1.0, 1.5), r0)
	}

	// Monotonic in angle
	r45 := Reflectance(math.Cos(math.Pi/4), 1.0/1.5)
	if r45 <= r0 || r45 >= 1 {
		t.Errorf("Reflectance should increase with angle: R(0°)=%.3f, R(45°)=%.3f", r0, r45)
	}
}
