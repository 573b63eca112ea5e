package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame is a dense row-major color buffer. Row 0 is the top scanline.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}

// Add sums other into f element-wise. Frames of different shapes are never merged.
func (f *Frame) Add(other *Frame) error {
	if other == nil || other.Width != f.Width || other.Height != f.Height || len(other.Pixels) != len(f.Pixels) {
		var w, h int
		if other != nil {
			w, h = other.Width, other.Height
		}
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSizeMismatch, w, h, f.Width, f.Height)
	}

	for i := range f.Pixels {
		f.Pixels[i] = f.Pixels[i].Add(other.Pixels[i])
	}
	return nil
}

// Scale multiplies every pixel by s
func (f *Frame) Scale(s float64) {
	for i := range f.Pixels {
		f.Pixels[i] = f.Pixels[i].Multiply(s)
	}
}
