package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"go-pathtracer"}, args...))
	return buf.String(), err
}

func TestRender_StdoutPPM(t *testing.T) {
	out, err := runApp(t, "render", "--width", "8", "--aspect", "2:1", "--spp", "2", "--depth", "3",
		"--workers", "2", "--scene", "ground")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3+8*4 {
		t.Fatalf("Expected %d lines, got %d", 3+8*4, len(lines))
	}
	if lines[0] != "P3" || lines[1] != "8 4" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
}

func TestRender_PNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.png")
	if _, err := runApp(t, "render", "--width", "6", "--aspect", "1", "--spp", "1", "--depth", "2",
		"--scene", "metal-fuzz", "--out", path); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Errorf("Unexpected bounds %v", b)
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"render", "--scene", "cornell", "--width", "4", "--spp", "1"}},
		{"bad aspect", []string{"render", "--aspect", "wide", "--width", "4", "--spp", "1"}},
		{"zero width", []string{"render", "--width", "0", "--spp", "1"}},
		{"zero samples", []string{"render", "--width", "4", "--spp", "0"}},
		{"unknown format", []string{"render", "--width", "4", "--spp", "1", "--format", "gif"}},
		{"missing scene file", []string{"render", "--scene-file", "does-not-exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			if err == nil {
				t.Error("Expected an error")
			}
			if strings.HasPrefix(out, "P3") {
				t.Error("Expected no image output on failure")
			}
		})
	}
}

func TestScenes(t *testing.T) {
	out, err := runApp(t, "scenes")
	if err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, name := range []string{"default", "ground", "random", "metal-fuzz", "Materials", "dielectric 1, lambertian 2, metal 1"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %q in scene list:\n%s", name, out)
		}
	}
}
