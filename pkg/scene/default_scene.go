package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates three spheres (diffuse, glass and metal) resting on a large ground sphere
func NewDefaultScene(aspectRatio float64) *Scene {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35.0,
		AspectRatio: aspectRatio,
	}

	s := NewScene(cameraConfig, SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50})

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}

// NewGroundScene creates a single diffuse sphere on a ground sphere, seen
// from the origin looking down -z
func NewGroundScene(aspectRatio float64) *Scene {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: aspectRatio,
	}

	s := NewScene(cameraConfig, SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50})

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return s
}
