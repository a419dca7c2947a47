package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewRandomSpheresScene creates the classic field of small random spheres around three large ones.
// The layout is drawn from its own sampler so the same seed always yields the same scene.
func NewRandomSpheresScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)
	rnd := sampler.Get1D

	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// One glass material shared by every glass sphere
	glass := material.NewDielectric(1.5)

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rnd()
			center := core.NewVec3(float64(a)+0.9*rnd(), 0.2, float64(b)+0.9*rnd())

			// Keep the space around the big metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse spheres bounce upward during the shutter interval
				albedo := core.NewVec3(rnd()*rnd(), rnd()*rnd(), rnd()*rnd())
				center1 := center.Add(core.NewVec3(0, 0.5*rnd(), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(0.5*(1+rnd()), 0.5*(1+rnd()), 0.5*(1+rnd()))
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*rnd())))
			default:
				world.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Seed = seed

	return &Scene{
		Name:  "random-spheres",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   float64(samplingConfig.Width) / float64(samplingConfig.Height),
			Aperture:      0.0,
			FocusDistance: 0.0, // Auto-calculate focus distance
			ShutterOpen:   0.0,
			ShutterClose:  1.0,
		},
		SamplingConfig: samplingConfig,
	}
}
