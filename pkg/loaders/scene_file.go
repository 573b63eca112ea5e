package loaders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var (
	// ErrInvalidScene wraps every validation failure in a scene file
	ErrInvalidScene = errors.New("invalid scene file")
	// ErrUnknownMaterial is returned when a sphere names a material that is not defined
	ErrUnknownMaterial = errors.New("unknown material")
)

// Material kinds accepted in scene files
const (
	KindLambertian = "lambertian"
	KindMetal      = "metal"
	KindDielectric = "dielectric"
)

// Defaults applied to fields left out of a scene file
const (
	DefaultVFov            = 90.0
	DefaultSamplesPerPixel = 100
	DefaultMaxDepth        = 50
)

var logger = log.New("loaders")

// Vec3Cfg is a vector written as a three element JSON array
type Vec3Cfg [3]float64

// Vec converts the array to a core vector
func (v Vec3Cfg) Vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg describes the camera. Up defaults to +y, VFov to 90 degrees and
// FocusDistance to the distance between LookFrom and LookAt.
type CameraCfg struct {
	LookFrom      Vec3Cfg  `json:"lookFrom"`
	LookAt        Vec3Cfg  `json:"lookAt"`
	Up            *Vec3Cfg `json:"up,omitempty"`
	VFov          float64  `json:"vfov,omitempty"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDistance,omitempty"`
}

// SamplingCfg holds the render settings recommended for the scene
type SamplingCfg struct {
	SamplesPerPixel int `json:"samplesPerPixel,omitempty"`
	MaxDepth        int `json:"maxDepth,omitempty"`
}

// MaterialCfg is a named material definition
type MaterialCfg struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Albedo Vec3Cfg `json:"albedo"`
	Fuzz   float64 `json:"fuzz,omitempty"`
	IOR    float64 `json:"ior,omitempty"`
}

// SphereCfg places a sphere with a material referenced by name
type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// SceneCfg is the top level of a scene file
type SceneCfg struct {
	Camera    CameraCfg     `json:"camera"`
	Sampling  SamplingCfg   `json:"sampling,omitempty"`
	Materials []MaterialCfg `json:"materials"`
	Spheres   []SphereCfg   `json:"spheres"`
}

// LoadSceneFile reads and builds a JSON scene file
func LoadSceneFile(path string, aspectRatio float64) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseScene(data, aspectRatio)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debugf("loaded scene from %s: %d spheres (%s)", path, s.ShapeCount(), s.MaterialSummary())
	return s, nil
}

// ParseScene decodes a JSON scene description. Unknown fields are rejected.
func ParseScene(data []byte, aspectRatio float64) (*scene.Scene, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg SceneCfg
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	return cfg.Build(aspectRatio)
}

// Build validates the configuration and constructs the scene
func (c SceneCfg) Build(aspectRatio float64) (*scene.Scene, error) {
	if aspectRatio <= 0 {
		return nil, fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidScene, aspectRatio)
	}

	cameraConfig, err := c.Camera.build(aspectRatio)
	if err != nil {
		return nil, err
	}

	sampling := scene.SamplingConfig{
		SamplesPerPixel: c.Sampling.SamplesPerPixel,
		MaxDepth:        c.Sampling.MaxDepth,
	}
	if sampling.SamplesPerPixel <= 0 {
		sampling.SamplesPerPixel = DefaultSamplesPerPixel
	}
	if sampling.MaxDepth <= 0 {
		sampling.MaxDepth = DefaultMaxDepth
	}

	materials := make(map[string]material.Material, len(c.Materials))
	for i, m := range c.Materials {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: material %d has no name", ErrInvalidScene, i)
		}
		if _, dup := materials[m.Name]; dup {
			return nil, fmt.Errorf("%w: material %q defined twice", ErrInvalidScene, m.Name)
		}
		mat, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		materials[m.Name] = mat
	}

	if len(c.Spheres) == 0 {
		return nil, fmt.Errorf("%w: scene has no spheres", ErrInvalidScene)
	}

	s := scene.NewScene(cameraConfig, sampling)
	for i, sp := range c.Spheres {
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d radius %v must be positive", ErrInvalidScene, i, sp.Radius)
		}
		mat, ok := materials[sp.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w %q", i, ErrUnknownMaterial, sp.Material)
		}
		s.Add(geometry.NewSphere(sp.Center.Vec(), sp.Radius, mat))
	}

	return s, nil
}

func (c CameraCfg) build(aspectRatio float64) (geometry.CameraConfig, error) {
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		up = c.Up.Vec()
	}
	vfov := c.VFov
	if vfov == 0 {
		vfov = DefaultVFov
	}

	lookFrom, lookAt := c.LookFrom.Vec(), c.LookAt.Vec()
	forward := lookAt.Subtract(lookFrom)

	switch {
	case forward.NearZero():
		return geometry.CameraConfig{}, fmt.Errorf("%w: camera lookFrom and lookAt coincide", ErrInvalidScene)
	case up.Cross(forward).NearZero():
		return geometry.CameraConfig{}, fmt.Errorf("%w: camera up is parallel to the view direction", ErrInvalidScene)
	case vfov <= 0 || vfov >= 180:
		return geometry.CameraConfig{}, fmt.Errorf("%w: vfov %v must be in (0, 180)", ErrInvalidScene, vfov)
	case c.Aperture < 0:
		return geometry.CameraConfig{}, fmt.Errorf("%w: aperture %v must not be negative", ErrInvalidScene, c.Aperture)
	case c.FocusDistance < 0:
		return geometry.CameraConfig{}, fmt.Errorf("%w: focusDistance %v must not be negative", ErrInvalidScene, c.FocusDistance)
	}

	return geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            up,
		VFov:          vfov,
		AspectRatio:   aspectRatio,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	}, nil
}

func (m MaterialCfg) build() (material.Material, error) {
	switch m.Kind {
	case KindLambertian, KindMetal:
		for _, a := range m.Albedo {
			if a < 0 || a > 1 {
				return nil, fmt.Errorf("%w: albedo %v must be in [0, 1]", ErrInvalidScene, m.Albedo)
			}
		}
		if m.Kind == KindLambertian {
			return material.NewLambertian(m.Albedo.Vec()), nil
		}
		if m.Fuzz < 0 || m.Fuzz > 1 {
			return nil, fmt.Errorf("%w: fuzz %v must be in [0, 1]", ErrInvalidScene, m.Fuzz)
		}
		return material.NewMetal(m.Albedo.Vec(), m.Fuzz), nil
	case KindDielectric:
		if m.IOR <= 0 {
			return nil, fmt.Errorf("%w: ior %v must be positive", ErrInvalidScene, m.IOR)
		}
		return material.NewDielectric(m.IOR), nil
	default:
		return nil, fmt.Errorf("%w: unknown material kind %q", ErrInvalidScene, m.Kind)
	}
}
