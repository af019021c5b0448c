package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gpxcolor/internal/application"
	"gpxcolor/internal/application/commands"
	"gpxcolor/internal/domain"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.gpx>",
	Short: "Show which waypoints would be colored, without writing",
	Long: `Dry run: classify the waypoints of a GPX file against the keyword
table and list the matches. Nothing is written to disk.

Examples:
  gpxcolor-cli preview hike.gpx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cmd := commands.NewPreviewCommand(GetRepo(), args[0], application.DefaultPalette())
		result, err := cmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, m := range result.Report.Matches {
			fmt.Printf("%s  %-30s (keyword: %s)\n", m.Color, domain.DisplayName(m.Name), m.Keyword)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
