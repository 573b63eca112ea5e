package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b
	lp, mp, sp = lp*lp*lp, mp*mp*mp, sp*sp*sp

	// LMS to linear RGB
	r := +4.0767416621*lp - 3.3077115913*mp + 0.2309699292*sp
	g := -1.2684380046*lp + 2.6097574011*mp - 0.3413193965*sp
	blue := -0.0041960863*lp - 0.7034186147*mp + 1.7076147010*sp

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewMetalFuzzScene creates a grid of metal spheres. Hue varies across x and
// fuzz grows from a perfect mirror in the front row to fully rough at the back.
func NewMetalFuzzScene(aspectRatio float64) *Scene {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 3.5, 9),
		LookAt:      core.NewVec3(0, 0.3, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35.0,
		AspectRatio: aspectRatio,
	}

	s := NewScene(cameraConfig, SamplingConfig{SamplesPerPixel: 100, MaxDepth: 40})

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	const (
		columns = 7
		rows    = 5
		spacing = 1.1
		radius  = 0.4
	)

	for i := 0; i < columns; i++ {
		for j := 0; j < rows; j++ {
			x := (float64(i) - float64(columns-1)/2) * spacing
			z := (float64(rows-1)/2 - float64(j)) * spacing

			hue := float64(i) / float64(columns) * 360.0
			color := oklchToRGB(0.7, 0.15, hue)
			fuzz := float64(j) / float64(rows-1)

			s.Add(geometry.NewSphere(core.NewVec3(x, radius, z), radius, material.NewMetal(color, fuzz)))
		}
	}

	return s
}
