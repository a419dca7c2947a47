package output

import (
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrTooManyPixels is returned when a sink receives more pixels than Begin announced
var ErrTooManyPixels = xerrors.New("more pixels than the image holds")

// Sink is an image sink that must be flushed once rendering completes
type Sink interface {
	renderer.ImageSink
	Flush() error
}

// Supported format names
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// NewSink creates a sink for the named format writing to w
func NewSink(format string, w io.Writer) (Sink, error) {
	switch strings.ToLower(format) {
	case FormatPPM:
		return NewPPMWriter(w), nil
	case FormatPNG:
		return NewPNGWriter(w), nil
	}
	return nil, xerrors.Errorf("unsupported image format %q", format)
}

// FormatForPath infers the format from a destination's extension, defaulting to PPM
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatPPM
}
