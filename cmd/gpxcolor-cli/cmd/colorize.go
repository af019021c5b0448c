package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gpxcolor/internal/application"
	"gpxcolor/internal/application/commands"
)

var colorizeCmd = &cobra.Command{
	Use:   "colorize <file.gpx>",
	Short: "Annotate waypoints with colors and write a _color copy",
	Long: `Annotate the waypoints of a GPX file with display colors.

Each waypoint whose name contains a keyword from the built-in table
gains a color extension. The output is written to <name>_color.gpx in
the same directory; the input file is left untouched. A full copy is
written even when no waypoint matched.

Examples:
  gpxcolor-cli colorize hike.gpx
  gpxcolor-cli colorize ~/tracks/yellowstone.gpx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cmd := commands.NewColorizeCommand(GetRepo(), args[0], application.DefaultPalette())
		result, err := cmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, m := range result.Report.Matches {
			fmt.Printf(" -> Found keyword, colored '%s' with %s (Success)\n", m.Name, m.Color)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorizeCmd)
}
