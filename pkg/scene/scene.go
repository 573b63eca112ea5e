package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

var (
	// ErrUnknownScene is returned when no built-in scene has the requested name
	ErrUnknownScene = errors.New("unknown scene")
	// ErrInvalidAspect is returned for a non-positive aspect ratio
	ErrInvalidAspect = errors.New("aspect ratio must be positive")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	SamplingConfig SamplingConfig
}

// SamplingConfig holds the render settings a scene was tuned for
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// NewScene creates an empty scene viewed through the given camera
func NewScene(cameraConfig geometry.CameraConfig, sampling SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		SamplingConfig: sampling,
	}
}

// Add appends shapes to the scene in order
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.World.Add(shapes...)
}

// GetWorld returns the scene aggregate
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// MaterialCounts returns the number of spheres using each material kind
func (s *Scene) MaterialCounts() map[string]int {
	counts := make(map[string]int)
	for _, shape := range s.World.Shapes {
		if sphere, ok := shape.(*geometry.Sphere); ok && sphere.Material != nil {
			counts[sphere.Material.Kind()]++
		}
	}
	return counts
}

// MaterialSummary formats MaterialCounts as "kind n" pairs sorted by kind
func (s *Scene) MaterialSummary() string {
	counts := s.MaterialCounts()
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = fmt.Sprintf("%s %d", kind, counts[kind])
	}
	return strings.Join(parts, ", ")
}

// ShapeCount returns the number of shapes in the scene
func (s *Scene) ShapeCount() int {
	return s.World.Len()
}
