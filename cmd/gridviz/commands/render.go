package commands

import (
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"gridviz"
	"gridviz/config"
	"gridviz/render"
)

func renderCmd() *cobra.Command {
	var (
		output string
		noSave bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the transformation comparison figure to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if output != "" {
				scene.Output = output
			}

			grid, err := gridviz.NewGrid(scene.Domain(), scene.Step)
			if err != nil {
				return err
			}

			r := render.New(
				render.WithSize(scene.Width, scene.Height),
				render.WithColumns(scene.Cols),
				render.WithLineWidth(scene.LineWidth),
				render.WithColors(gg.Hex(scene.RefColor), gg.Hex(scene.DeformedColor)),
				render.WithCornerMarkers(scene.Markers),
				render.WithTitles(scene.Titles),
			)
			dc, err := r.Figure(grid, scene.GridCases())
			if err != nil {
				return err
			}

			if noSave {
				return nil
			}
			if err := dc.SavePNG(scene.Output); err != nil {
				return err
			}
			cmd.Printf("wrote %s (%dx%d)\n", scene.Output, scene.Width, scene.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (overrides config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "render without writing the PNG")
	return cmd
}
