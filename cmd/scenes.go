package cmd

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description", "Spheres", "Materials", "Samples", "Max depth"})

	for _, info := range scene.List() {
		sc, err := scene.New(info.Name, 16.0/9.0)
		if err != nil {
			return err
		}
		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%d", sc.ShapeCount()),
			sc.MaterialSummary(),
			fmt.Sprintf("%d", sc.SamplingConfig.SamplesPerPixel),
			fmt.Sprintf("%d", sc.SamplingConfig.MaxDepth),
		})
	}

	table.Render()
	return nil
}
