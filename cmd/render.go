package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// ErrInvalidAspect is returned when the aspect flag cannot be parsed
var ErrInvalidAspect = errors.New("invalid aspect ratio")

// Render a scene and write the image.
func RenderImage(ctx *cli.Context) error {
	setupLogging(ctx)

	aspect, err := ParseAspect(ctx.String("aspect"))
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx.String("scene"), ctx.String("scene-file"), aspect)
	if err != nil {
		return err
	}

	width := ctx.Int("width")
	config := renderer.Config{
		Width:           width,
		Height:          renderer.HeightForAspect(width, aspect),
		SamplesPerPixel: sc.SamplingConfig.SamplesPerPixel,
		MaxDepth:        sc.SamplingConfig.MaxDepth,
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}

	// Explicit flags override the scene's recommended settings
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}

	outPath := ctx.String("out")
	format, err := resolveFormat(ctx.String("format"), outPath)
	if err != nil {
		return err
	}

	r := renderer.NewRenderer(sc, integrator.NewPathTracingIntegrator(integrator.DefaultSkyConfig()), config)
	frame, stats, err := r.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Noticef("render statistics\n%s", stats.Table())

	if err := writeImage(ctx.App.Writer, outPath, frame, format); err != nil {
		return err
	}
	if outPath != "-" {
		logger.Noticef("wrote %dx%d %s image to %s", frame.Width, frame.Height, format, outPath)
	}
	return nil
}

// ParseAspect accepts a ratio written as "W:H" or as a decimal number
func ParseAspect(value string) (float64, error) {
	value = strings.TrimSpace(value)

	var aspect float64
	if w, h, ok := strings.Cut(value, ":"); ok {
		num, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
		den, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAspect, value)
		}
		aspect = num / den
	} else {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAspect, value)
		}
		aspect = f
	}

	if !(aspect > 0) || aspect > 1e6 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidAspect, value)
	}
	return aspect, nil
}

// loadScene builds either the scene file, when given, or the named built-in scene
func loadScene(name, file string, aspect float64) (*scene.Scene, error) {
	if file != "" {
		logger.Infof("loading scene file %s", file)
		return loaders.LoadSceneFile(file, aspect)
	}
	if name == "" {
		name = scene.DefaultSceneName
	}
	logger.Infof("using built-in scene %q", name)
	return scene.New(name, aspect)
}

// resolveFormat picks the output format from the flag, then the file
// extension. Standard output defaults to plain PPM.
func resolveFormat(flagValue, outPath string) (output.Format, error) {
	if flagValue != "" {
		return output.ParseFormat(flagValue)
	}
	if outPath == "-" {
		return output.FormatPPM, nil
	}
	return output.FormatFromPath(outPath)
}

// writeImage writes the frame to outPath, or to stdout when outPath is "-"
func writeImage(stdout io.Writer, outPath string, frame *renderer.Frame, format output.Format) error {
	if outPath == "-" {
		return output.Write(stdout, frame, format)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := output.Write(f, frame, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
