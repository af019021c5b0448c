package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gpxcolor/internal/adapters/gpxfile"
	"gpxcolor/internal/ports"
)

var repo ports.GPXRepository

var rootCmd = &cobra.Command{
	Use:   "gpxcolor-cli",
	Short: "CLI for coloring GPX waypoints by name keywords",
	Long: `gpxcolor-cli annotates the waypoints of a GPX file with display
colors based on keyword matches in waypoint names.

A waypoint whose name contains a keyword from the built-in table (e.g.
"lake", "peak", "trailhead") gains an extensions block with an ARGB
color code that mapping applications render as a colored marker. The
result is written to a new <name>_color.gpx file next to the input;
the input file is never modified.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = gpxfile.NewRepository()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetRepo returns the initialized repository
func GetRepo() ports.GPXRepository {
	return repo
}
