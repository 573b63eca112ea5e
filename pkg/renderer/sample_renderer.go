package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Shape
	GetCamera() *geometry.Camera
}

// SampleRenderer renders one full-frame sample pass using an integrator.
// It holds only read-only state and is shared by all workers.
type SampleRenderer struct {
	scene      Scene
	integrator integrator.Integrator
	width      int
	height     int
	maxDepth   int
}

// NewSampleRenderer creates a sample renderer for the given frame size
func NewSampleRenderer(scene Scene, integratorInst integrator.Integrator, width, height, maxDepth int) *SampleRenderer {
	return &SampleRenderer{
		scene:      scene,
		integrator: integratorInst,
		width:      width,
		height:     height,
		maxDepth:   maxDepth,
	}
}

// RenderFrame traces one jittered ray through every pixel and returns the
// un-averaged contributions
func (sr *SampleRenderer) RenderFrame(sampler core.Sampler) *Frame {
	frame := NewFrame(sr.width, sr.height)
	camera := sr.scene.GetCamera()
	world := sr.scene.GetWorld()

	for j := 0; j < sr.height; j++ {
		for i := 0; i < sr.width; i++ {
			ray := sr.PixelRay(camera, i, j, sampler)
			frame.Set(i, j, sr.integrator.RayColor(ray, world, sampler, sr.maxDepth))
		}
	}

	return frame
}

// PixelRay returns a camera ray through pixel (i, j), jittered by up to half
// a pixel in each axis. Row j = 0 is the top scanline.
func (sr *SampleRenderer) PixelRay(camera *geometry.Camera, i, j int, sampler core.Sampler) core.Ray {
	jitterX := sampler.Get1D() - 0.5
	jitterY := sampler.Get1D() - 0.5

	s := (float64(i) + 0.5 + jitterX) / float64(sr.width)
	t := (float64(sr.height-1-j) + 0.5 + jitterY) / float64(sr.height)

	return camera.GetRay(s, t, sampler)
}
