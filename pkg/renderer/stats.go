package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	Duration        time.Duration // Wall time spent in the pixel loop
}

// PixelStats tracks the running mean of the samples taken for a single pixel
type PixelStats struct {
	Mean        core.Vec3 // Average of all samples so far
	SampleCount int       // Number of samples taken
}

// AddSample folds a new color sample into the running mean.
// A single sample is reproduced exactly, and so is a constant sequence.
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	delta := color.Subtract(ps.Mean)
	ps.Mean = ps.Mean.Add(delta.Multiply(1.0 / float64(ps.SampleCount)))
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}
