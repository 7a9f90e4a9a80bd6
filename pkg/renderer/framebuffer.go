package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// Framebuffer holds linear radiance per pixel. Row partitioning guarantees no
// two workers ever target the same pixel; the mutex exists only for
// memory-visibility safety around the shared slice.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates an empty framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels
func (f *Framebuffer) Height() int { return f.height }

// SetPixel stores the averaged linear radiance for one pixel
func (f *Framebuffer) SetPixel(x, y int, colour core.Vec3) {
	f.mu.Lock()
	f.pixels[y*f.width+x] = colour
	f.mu.Unlock()
}

// Pixel returns the stored linear radiance for one pixel
func (f *Framebuffer) Pixel(x, y int) core.Vec3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pixels[y*f.width+x]
}

// Image converts the linear framebuffer into a gamma-corrected 8-bit image
func (f *Framebuffer) Image() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := f.pixels[y*f.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: gammaByte(p.X),
				G: gammaByte(p.Y),
				B: gammaByte(p.Z),
				A: 255,
			})
		}
	}
	return img
}

// RadianceMap is a snapshot of the linear framebuffer for persistence
type RadianceMap struct {
	Width   int
	Height  int
	Samples int
	Pixels  []core.Vec3
}

// Radiance snapshots the linear pixel data along with the sample count used
func (f *Framebuffer) Radiance(samples int) *RadianceMap {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixels := make([]core.Vec3, len(f.pixels))
	copy(pixels, f.pixels)
	return &RadianceMap{
		Width:   f.width,
		Height:  f.height,
		Samples: samples,
		Pixels:  pixels,
	}
}

// gammaByte applies gamma-2 encoding: round(sqrt(c) * 255.999), clamped
func gammaByte(channel float64) uint8 {
	v := math.Round(math.Sqrt(channel) * 255.999)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
