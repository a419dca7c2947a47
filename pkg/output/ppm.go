package output

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/xerrors"
)

// PPMWriter emits a plain-text (P3) PPM image
type PPMWriter struct {
	w         *bufio.Writer
	remaining int
}

// NewPPMWriter creates a PPM sink writing to w. Call Flush when the image is complete.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the header
func (p *PPMWriter) Begin(width, height, maxColor int) error {
	p.remaining = width * height
	if _, err := fmt.Fprintf(p.w, "P3\n%d %d\n%d\n", width, height, maxColor); err != nil {
		return xerrors.Errorf("while writing PPM header: %w", err)
	}
	return nil
}

// WriteColor writes one "R G B" line
func (p *PPMWriter) WriteColor(r, g, b int) error {
	if p.remaining <= 0 {
		return ErrTooManyPixels
	}
	p.remaining--
	if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
		return xerrors.Errorf("while writing PPM pixel: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return xerrors.Errorf("while flushing PPM: %w", err)
	}
	return nil
}
