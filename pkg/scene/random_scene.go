package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RandomSceneSeed is the seed used by the registry so the scene is the same on every run
const RandomSceneSeed = 42

// NewRandomScene scatters small random spheres around three large feature
// spheres. The same seed always produces the same layout.
func NewRandomScene(aspectRatio float64, seed int64) *Scene {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := NewScene(cameraConfig, SamplingConfig{SamplesPerPixel: 500, MaxDepth: 50})
	random := rand.New(rand.NewSource(seed))

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep the small spheres clear of the large metal one
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			chooseMat := random.Float64()

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// randomColor returns a color with each channel uniform in [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
