package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance accepted for any ray, so a
// scattered ray does not re-intersect the surface it just left.
const ShadowAcneEpsilon = 0.001

// SkyConfig describes the analytic background gradient
type SkyConfig struct {
	TopColor    core.Vec3 // Color for rays pointing straight up
	BottomColor core.Vec3 // Color for rays pointing straight down
}

// DefaultSkyConfig returns the white to sky-blue gradient
func DefaultSkyConfig() SkyConfig {
	return SkyConfig{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// PathTracingIntegrator implements unidirectional path tracing with a hard
// bounce limit. The sky gradient is the only light source.
type PathTracingIntegrator struct {
	sky SkyConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(sky SkyConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{sky: sky}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.BackgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}

// BackgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return pt.sky.BottomColor.Lerp(pt.sky.TopColor, t)
}
