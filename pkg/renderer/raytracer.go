package renderer

import (
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Display gamma
	Seed            int64   // Seed for the render's sampler
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           800,
		Height:          400,
		SamplesPerPixel: 400,
		MaxDepth:        integrator.DefaultMaxDepth,
		Gamma:           2.2,
		Seed:            42,
	}
}

// Validate reports the first unusable setting
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return xerrors.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return xerrors.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return xerrors.Errorf("max depth must be positive, got %d", c.MaxDepth)
	case c.Gamma <= 0:
		return xerrors.Errorf("gamma must be positive, got %f", c.Gamma)
	}
	return nil
}

// Raytracer runs the pixel loop for one render. It is single-threaded and owns its sampler.
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	sampler    core.Sampler
}

// NewRaytracer creates a new raytracer with a path tracing integrator and a sampler seeded from config
func NewRaytracer(world geometry.Hittable, camera *Camera, config SamplingConfig) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		config:     config,
		sampler:    core.NewSeededSampler(config.Seed),
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// SetSampler replaces the random sampler
func (rt *Raytracer) SetSampler(s core.Sampler) {
	rt.sampler = s
}

// RenderPixel averages SamplesPerPixel jittered samples for pixel (i, j), with j counted from the bottom row
func (rt *Raytracer) RenderPixel(i, j int) core.Vec3 {
	var stats PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		s := (float64(i) + rt.sampler.Get1D()) / float64(rt.config.Width)
		t := (float64(j) + rt.sampler.Get1D()) / float64(rt.config.Height)

		ray := rt.camera.GetRay(s, t, rt.sampler)
		stats.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler))
	}
	return stats.GetColor()
}

// Render traces every pixel from the top row down and streams the encoded colors into sink
func (rt *Raytracer) Render(sink ImageSink) (RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return RenderStats{}, xerrors.Errorf("while validating sampling config: %w", err)
	}

	width, height := rt.config.Width, rt.config.Height
	if err := sink.Begin(width, height, MaxColorValue); err != nil {
		return RenderStats{}, xerrors.Errorf("while starting image: %w", err)
	}

	startTime := time.Now()
	for j := height - 1; j >= 0; j-- {
		glog.V(1).Infof("Scanlines remaining: %d", j+1)
		for i := 0; i < width; i++ {
			r, g, b := EncodeColor(rt.RenderPixel(i, j), rt.config.Gamma, MaxColorValue)
			if err := sink.WriteColor(r, g, b); err != nil {
				return RenderStats{}, xerrors.Errorf("while writing pixel (%d, %d): %w", i, height-1-j, err)
			}
		}
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Duration:        time.Since(startTime),
	}
	glog.Infof("Rendered %dx%d at %d spp in %v", width, height, stats.SamplesPerPixel, stats.Duration)
	return stats, nil
}
