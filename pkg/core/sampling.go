package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; each worker owns its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a RandomSampler with its own source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleInUnitSphere rejection-samples a point strictly inside the unit sphere
func SampleInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		u := sampler.Get3D()
		p := NewVec3(2*u.X-1, 2*u.Y-1, 2*u.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SampleUnitVector returns a point inside the unit sphere projected onto its surface
func SampleUnitVector(sampler Sampler) Vec3 {
	return SampleInUnitSphere(sampler).Normalize()
}

// SampleInUnitDisk rejection-samples a point inside the unit disk on the z = 0 plane (for depth of field)
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		x := 2*sampler.Get1D() - 1
		y := 2*sampler.Get1D() - 1
		p := NewVec3(x, y, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
