package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MaxColorValue is the largest channel value handed to an ImageSink
const MaxColorValue = 255

// ImageSink receives the finished raster one pixel at a time, in row-major order
// starting from the top row.
type ImageSink interface {
	Begin(width, height, maxColor int) error
	WriteColor(r, g, b int) error
}

// EncodeColor applies the display transform to a linear color: gamma encoding,
// clamping to [0,1] and quantization to integers in [0, maxColor].
func EncodeColor(c core.Vec3, gamma float64, maxColor int) (r, g, b int) {
	c = c.GammaCorrect(gamma)
	scale := float64(maxColor) + 0.99
	return quantize(c.X, scale), quantize(c.Y, scale), quantize(c.Z, scale)
}

func quantize(v, scale float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(scale * max(0, min(1, v)))
}
