package renderer

import (
	"testing"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

func TestFramebuffer_PixelRoundtrip(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	if fb.Width() != 4 || fb.Height() != 3 {
		t.Errorf("Expected 4x3, got %dx%d", fb.Width(), fb.Height())
	}

	colour := core.NewVec3(0.25, 0.5, 1.0)
	fb.SetPixel(2, 1, colour)

	if got := fb.Pixel(2, 1); got != colour {
		t.Errorf("Expected %v, got %v", colour, got)
	}
	if got := fb.Pixel(0, 0); got != (core.Vec3{}) {
		t.Errorf("Expected untouched pixel to stay black, got %v", got)
	}
}

func TestGammaByte(t *testing.T) {
	tests := []struct {
		name     string
		channel  float64
		expected uint8
	}{
		{"black", 0.0, 0},
		{"quarter becomes half", 0.25, 128}, // round(sqrt(0.25)*255.999) = round(127.9995)
		{"full", 1.0, 255},                  // round(255.999) clamps to 255
		{"over range clamps", 4.0, 255},
		{"dim value", 0.01, 26}, // round(0.1*255.999) = round(25.5999)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gammaByte(tt.channel); got != tt.expected {
				t.Errorf("gammaByte(%f): expected %d, got %d", tt.channel, tt.expected, got)
			}
		})
	}
}

func TestFramebuffer_ImageAppliesGamma(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, core.NewVec3(0.25, 1.0, 0.0))

	img := fb.Image()
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	pixel := img.RGBAAt(0, 0)
	if pixel.R != 128 || pixel.G != 255 || pixel.B != 0 || pixel.A != 255 {
		t.Errorf("Expected RGBA (128, 255, 0, 255), got %v", pixel)
	}
}

func TestFramebuffer_RadianceSnapshot(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	colour := core.NewVec3(0.1, 0.2, 0.3)
	fb.SetPixel(1, 1, colour)

	rm := fb.Radiance(64)
	if rm.Width != 2 || rm.Height != 2 || rm.Samples != 64 {
		t.Errorf("Unexpected radiance metadata: %+v", rm)
	}
	if rm.Pixels[3] != colour {
		t.Errorf("Expected snapshot pixel %v, got %v", colour, rm.Pixels[3])
	}

	// The snapshot is a copy, not a view
	fb.SetPixel(1, 1, core.NewVec3(9, 9, 9))
	if rm.Pixels[3] != colour {
		t.Error("Radiance snapshot aliases the framebuffer")
	}
}
