package main

import (
	"os"
	"strings"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	defaults := renderer.DefaultConfig()
	formats := make([]string, len(output.Formats))
	for i, f := range output.Formats {
		formats[i] = string(f)
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image",
			Description: `
Render a built-in scene or a JSON scene file. Every sample is a full-frame pass
traced by a pool of workers; the passes are averaged into the final image.

Samples per pixel and max depth default to the values the scene recommends.
Progress and statistics are logged to stderr so the image can be written to
stdout with --out -.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "image width in pixels",
				},
				cli.StringFlag{
					Name:  "aspect",
					Value: "16:9",
					Usage: "aspect ratio as W:H or a decimal; height is derived from it",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.MaxDepth,
					Usage: "maximum bounce depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: defaults.NumWorkers,
					Usage: "number of worker goroutines (0 = one per logical CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "base random seed",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: scene.DefaultSceneName,
					Usage: "built-in scene: " + strings.Join(scene.Names(), ", "),
				},
				cli.StringFlag{
					Name:  "scene-file, f",
					Usage: "JSON scene file; overrides --scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: "output image file, - for stdout",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "image format (" + strings.Join(formats, ", ") + "); defaults to the file extension",
				},
			},
			Action: cmd.RenderImage,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
