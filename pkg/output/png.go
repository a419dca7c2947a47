package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/xerrors"
)

// PNGWriter collects pixels into an image and encodes it as PNG on Flush
type PNGWriter struct {
	w        io.Writer
	img      *image.NRGBA
	maxColor int
	next     int
}

// NewPNGWriter creates a PNG sink writing to w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// Begin allocates the image
func (p *PNGWriter) Begin(width, height, maxColor int) error {
	if maxColor <= 0 {
		return xerrors.Errorf("max color must be positive, got %d", maxColor)
	}
	p.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	p.maxColor = maxColor
	p.next = 0
	return nil
}

// WriteColor stores the next pixel, filling rows left to right from the top
func (p *PNGWriter) WriteColor(r, g, b int) error {
	if p.img == nil {
		return xerrors.New("PNG writer used before Begin")
	}
	width := p.img.Rect.Dx()
	if p.next >= width*p.img.Rect.Dy() {
		return ErrTooManyPixels
	}
	x, y := p.next%width, p.next/width
	p.img.SetNRGBA(x, y, color.NRGBA{
		R: p.scale(r),
		G: p.scale(g),
		B: p.scale(b),
		A: 255,
	})
	p.next++
	return nil
}

func (p *PNGWriter) scale(v int) uint8 {
	return uint8(v * 255 / p.maxColor)
}

// Image returns the pixels collected so far
func (p *PNGWriter) Image() image.Image {
	return p.img
}

// Flush encodes the image
func (p *PNGWriter) Flush() error {
	if p.img == nil {
		return xerrors.New("PNG writer flushed before Begin")
	}
	if err := png.Encode(p.w, p.img); err != nil {
		return xerrors.Errorf("while encoding PNG: %w", err)
	}
	return nil
}
