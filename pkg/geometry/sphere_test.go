package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_PointingAway(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(1, -2, 3), 1.5, nil)

	for i := 0; i < 500; i++ {
		// Origin strictly outside the sphere
		offset := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1).Normalize()
		origin := sphere.Center.Add(offset.Multiply(sphere.Radius + 0.01 + random.Float64()*5))

		// Direction with a positive component along the outward offset
		direction := offset.Add(core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).Multiply(0.5))
		if direction.Dot(origin.Subtract(sphere.Center)) <= 0 {
			continue
		}

		if hit, isHit := sphere.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); isHit {
			t.Fatalf("Ray from %v along %v should miss, got hit at t=%f", origin, direction, hit.T)
		}
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_TowardCenter(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, -5), 0.75, nil)

	for _, origin := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(10, -3, 4),
		core.NewVec3(1, 2, 3),
	} {
		direction := sphere.Center.Subtract(origin)
		hit, isHit := sphere.Hit(core.NewRay(origin, direction.Normalize()), 0.001, math.Inf(1))
		if !isHit {
			t.Fatalf("Expected hit from %v", origin)
		}

		expectedT := direction.Length() - sphere.Radius
		if math.Abs(hit.T-expectedT) > 1e-9 {
			t.Errorf("From %v: expected t=%f, got t=%f", origin, expectedT, hit.T)
		}
	}
}

func TestSphere_Hit_NormalInvariant(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2)
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		if direction.NearZero() {
			continue
		}

		hit, isHit := sphere.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
		if !isHit {
			continue
		}
		hits++

		if math.Abs(hit.Normal.Length()-1.0) > 1e-6 {
			t.Fatalf("Expected unit normal, got length %f", hit.Normal.Length())
		}
		if direction.Dot(hit.Normal) >= 0 {
			t.Fatalf("Normal %v should face the ray direction %v", hit.Normal, direction)
		}
	}

	if hits == 0 {
		t.Fatal("Expected some hits")
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded, far root accepted
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far intersection at t=3, got %v", hit)
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Errorf("Expected hit to carry the sphere material")
	}
}
