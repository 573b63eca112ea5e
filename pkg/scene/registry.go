package scene

import "fmt"

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	build       func(aspectRatio float64) *Scene
}

var builtins = []Info{
	{
		Name:        "default",
		Description: "Diffuse, glass and gold spheres on a yellow ground",
		build:       NewDefaultScene,
	},
	{
		Name:        "ground",
		Description: "One gray sphere on a ground sphere, camera at the origin",
		build:       NewGroundScene,
	},
	{
		Name:        "random",
		Description: "Hundreds of small random spheres around three large ones",
		build: func(aspectRatio float64) *Scene {
			return NewRandomScene(aspectRatio, RandomSceneSeed)
		},
	},
	{
		Name:        "metal-fuzz",
		Description: "Grid of colored metal spheres with increasing fuzz",
		build:       NewMetalFuzzScene,
	},
}

// DefaultSceneName is the scene rendered when none is requested
const DefaultSceneName = "default"

// List returns the built-in scenes in registration order
func List() []Info {
	return append([]Info(nil), builtins...)
}

// Names returns the names of the built-in scenes
func Names() []string {
	names := make([]string, len(builtins))
	for i, info := range builtins {
		names[i] = info.Name
	}
	return names
}

// New builds the named built-in scene for the given aspect ratio
func New(name string, aspectRatio float64) (*Scene, error) {
	if aspectRatio <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAspect, aspectRatio)
	}
	for _, info := range builtins {
		if info.Name == name {
			return info.build(aspectRatio), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
}
