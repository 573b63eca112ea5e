// Package output converts accumulated linear frames into 8-bit images and
// serializes them as plain PPM, binary PPM or PNG.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownFormat is returned for an unsupported image format name or file extension
var ErrUnknownFormat = errors.New("unknown image format")

// Format selects the image serialization
type Format string

const (
	FormatPPM       Format = "ppm"  // P3 plain text
	FormatPPMBinary Format = "ppm6" // P6 binary
	FormatPNG       Format = "png"
)

// Formats lists the supported formats
var Formats = []Format{FormatPPM, FormatPPMBinary, FormatPNG}

// ParseFormat resolves a format name as given on the command line
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPPM, FormatPPMBinary, FormatPNG:
		return f, nil
	case "p3":
		return FormatPPM, nil
	case "p6":
		return FormatPPMBinary, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from the file extension. ".ppm" is plain text.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// maxChannel is the largest value a channel may reach before scaling
const maxChannel = 0.9999

// ToneMap applies gamma 2 correction to a linear color, clamps each channel
// to [0, 0.9999] and scales it to 8 bits. NaN channels map to 0.
func ToneMap(c core.Vec3) (r, g, b uint8) {
	return toneChannel(c.X), toneChannel(c.Y), toneChannel(c.Z)
}

func toneChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	v = math.Min(math.Sqrt(v), maxChannel)
	return uint8(256 * v)
}

// Write serializes the frame in the requested format
func Write(w io.Writer, frame *renderer.Frame, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, frame)
	case FormatPPMBinary:
		return WritePPMBinary(w, frame)
	case FormatPNG:
		return WritePNG(w, frame)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WritePPM writes a plain text P3 image: a three line header, then one
// "r g b" line per pixel starting at the top scanline
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height)

	for _, pixel := range frame.Pixels {
		r, g, b := ToneMap(pixel)
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ppm: %w", err)
	}
	return nil
}

// WritePPMBinary writes a P6 image with raw RGB bytes after the header
func WritePPMBinary(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", frame.Width, frame.Height)

	for _, pixel := range frame.Pixels {
		r, g, b := ToneMap(pixel)
		bw.Write([]byte{r, g, b})
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ppm: %w", err)
	}
	return nil
}

// ToImage converts the frame to an 8-bit RGBA image
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := ToneMap(frame.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the frame as PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, ToImage(frame)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
