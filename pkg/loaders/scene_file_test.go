package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestLoadSceneFile(t *testing.T) {
	s, err := LoadSceneFile(filepath.Join("testdata", "three_spheres.json"), 16.0/9.0)
	if err != nil {
		t.Fatalf("Failed to load scene: %v", err)
	}

	if s.ShapeCount() != 4 {
		t.Fatalf("Expected 4 spheres, got %d", s.ShapeCount())
	}
	if s.SamplingConfig.SamplesPerPixel != 64 || s.SamplingConfig.MaxDepth != 20 {
		t.Errorf("Unexpected sampling config %+v", s.SamplingConfig)
	}

	cam := s.CameraConfig
	if cam.LookFrom != core.NewVec3(-2, 2, 1) || cam.VFov != 35 || cam.AspectRatio != 16.0/9.0 {
		t.Errorf("Unexpected camera config %+v", cam)
	}
	if cam.Up != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected default up vector, got %v", cam.Up)
	}

	kinds := []string{"lambertian", "lambertian", "dielectric", "metal"}
	for i, shape := range s.World.Shapes {
		sphere := shape.(*geometry.Sphere)
		if sphere.Material.Kind() != kinds[i] {
			t.Errorf("Sphere %d: expected %s, got %s", i, kinds[i], sphere.Material.Kind())
		}
	}

	gold := s.World.Shapes[3].(*geometry.Sphere).Material.(*material.Metal)
	if gold.Fuzzness != 0.3 {
		t.Errorf("Expected fuzz 0.3, got %f", gold.Fuzzness)
	}
}

func TestLoadSceneFile_Missing(t *testing.T) {
	_, err := LoadSceneFile(filepath.Join(t.TempDir(), "nope.json"), 1.0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestParseScene_SharedMaterials(t *testing.T) {
	data := `{
		"camera": {"lookFrom": [0, 0, 0], "lookAt": [0, 0, -1]},
		"materials": [{"name": "m", "kind": "lambertian", "albedo": [0.5, 0.5, 0.5]}],
		"spheres": [
			{"center": [0, 0, -1], "radius": 0.5, "material": "m"},
			{"center": [0, -100.5, -1], "radius": 100, "material": "m"}
		]
	}`

	s, err := ParseScene([]byte(data), 2.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	a := s.World.Shapes[0].(*geometry.Sphere).Material
	b := s.World.Shapes[1].(*geometry.Sphere).Material
	if a != b {
		t.Error("Expected spheres to share one material instance")
	}
	if s.CameraConfig.VFov != DefaultVFov {
		t.Errorf("Expected default vfov, got %f", s.CameraConfig.VFov)
	}
	if s.SamplingConfig.SamplesPerPixel != DefaultSamplesPerPixel || s.SamplingConfig.MaxDepth != DefaultMaxDepth {
		t.Errorf("Expected default sampling, got %+v", s.SamplingConfig)
	}
}

func TestParseScene_Invalid(t *testing.T) {
	const camera = `"camera": {"lookFrom": [0, 0, 0], "lookAt": [0, 0, -1]}`
	const lambert = `{"name": "m", "kind": "lambertian", "albedo": [0.5, 0.5, 0.5]}`
	const sphere = `{"center": [0, 0, -1], "radius": 0.5, "material": "m"}`

	tests := []struct {
		name    string
		json    string
		wantErr error
		message string
	}{
		{
			name:    "malformed json",
			json:    `{"camera": `,
			wantErr: ErrInvalidScene,
		},
		{
			name:    "unknown field",
			json:    `{` + camera + `, "lights": [], "materials": [` + lambert + `], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "lights",
		},
		{
			name:    "zero radius",
			json:    `{` + camera + `, "materials": [` + lambert + `], "spheres": [{"center": [0, 0, -1], "radius": 0, "material": "m"}]}`,
			wantErr: ErrInvalidScene,
			message: "radius",
		},
		{
			name:    "negative radius",
			json:    `{` + camera + `, "materials": [` + lambert + `], "spheres": [{"center": [0, 0, -1], "radius": -0.4, "material": "m"}]}`,
			wantErr: ErrInvalidScene,
			message: "radius",
		},
		{
			name:    "unknown material reference",
			json:    `{` + camera + `, "materials": [` + lambert + `], "spheres": [{"center": [0, 0, -1], "radius": 1, "material": "chrome"}]}`,
			wantErr: ErrUnknownMaterial,
			message: "chrome",
		},
		{
			name:    "duplicate material",
			json:    `{` + camera + `, "materials": [` + lambert + `, ` + lambert + `], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "twice",
		},
		{
			name:    "unknown material kind",
			json:    `{` + camera + `, "materials": [{"name": "m", "kind": "emissive"}], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "emissive",
		},
		{
			name:    "fuzz out of range",
			json:    `{` + camera + `, "materials": [{"name": "m", "kind": "metal", "albedo": [1, 1, 1], "fuzz": 1.5}], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "fuzz",
		},
		{
			name:    "albedo out of range",
			json:    `{` + camera + `, "materials": [{"name": "m", "kind": "lambertian", "albedo": [1.2, 0, 0]}], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "albedo",
		},
		{
			name:    "zero ior",
			json:    `{` + camera + `, "materials": [{"name": "m", "kind": "dielectric"}], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "ior",
		},
		{
			name:    "no spheres",
			json:    `{` + camera + `, "materials": [` + lambert + `], "spheres": []}`,
			wantErr: ErrInvalidScene,
			message: "no spheres",
		},
		{
			name:    "degenerate camera",
			json:    `{"camera": {"lookFrom": [1, 1, 1], "lookAt": [1, 1, 1]}, "materials": [` + lambert + `], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "coincide",
		},
		{
			name:    "up parallel to view",
			json:    `{"camera": {"lookFrom": [0, 0, 0], "lookAt": [0, -1, 0]}, "materials": [` + lambert + `], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "parallel",
		},
		{
			name:    "vfov too wide",
			json:    `{"camera": {"lookFrom": [0, 0, 0], "lookAt": [0, 0, -1], "vfov": 180}, "materials": [` + lambert + `], "spheres": [` + sphere + `]}`,
			wantErr: ErrInvalidScene,
			message: "vfov",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScene([]byte(tt.json), 1.0)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected error to mention %q, got %v", tt.message, err)
			}
			if s != nil {
				t.Error("Expected no scene on error")
			}
		})
	}
}

func TestSceneCfg_BuildRejectsAspect(t *testing.T) {
	cfg := SceneCfg{
		Camera:    CameraCfg{LookAt: Vec3Cfg{0, 0, -1}},
		Materials: []MaterialCfg{{Name: "m", Kind: KindDielectric, IOR: 1.5}},
		Spheres:   []SphereCfg{{Center: Vec3Cfg{0, 0, -1}, Radius: 1, Material: "m"}},
	}

	if _, err := cfg.Build(0); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene, got %v", err)
	}
	if _, err := cfg.Build(1.5); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
