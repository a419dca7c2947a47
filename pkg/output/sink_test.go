package output

import (
	"bytes"
	"testing"
)

func TestNewSink(t *testing.T) {
	tests := []struct {
		format  string
		wantPPM bool
		wantErr bool
	}{
		{"ppm", true, false},
		{"PPM", true, false},
		{"png", false, false},
		{"jpeg", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			sink, err := NewSink(tt.format, &bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSink(%q) error = %v, wantErr %t", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			_, isPPM := sink.(*PPMWriter)
			if isPPM != tt.wantPPM {
				t.Errorf("NewSink(%q) returned %T", tt.format, sink)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"":                    FormatPPM,
		"-":                   FormatPPM,
		"out/image.ppm":       FormatPPM,
		"out/image.PNG":       FormatPNG,
		"gs://bucket/a/b.png": FormatPNG,
		"noext":               FormatPPM,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
