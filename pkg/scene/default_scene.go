package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a small scene with one sphere of each material on a ground sphere
func NewDefaultScene() *Scene {
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGreen),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		// Hollow glass sphere: the negative radius flips the inner surface's normal
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass),
	)

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Width = 400
	samplingConfig.Height = 225 // 16:9 aspect ratio
	samplingConfig.SamplesPerPixel = 100

	return &Scene{
		Name:  "default",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewVec3(-2, 2, 1),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          30,
			AspectRatio:   16.0 / 9.0,
			Aperture:      0.1,
			FocusDistance: 0.0,
		},
		SamplingConfig: samplingConfig,
	}
}

// NewGroundScene creates a single diffuse ground sphere viewed from straight above
func NewGroundScene() *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Width = 100
	samplingConfig.Height = 100
	samplingConfig.SamplesPerPixel = 16

	return &Scene{
		Name:  "ground",
		World: world,
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(0, 5, 0),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 0, -1),
			VFov:        30,
			AspectRatio: 1,
		},
		SamplingConfig: samplingConfig,
	}
}
