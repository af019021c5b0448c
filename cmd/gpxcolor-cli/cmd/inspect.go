package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gpxcolor/internal/application/commands"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.gpx>",
	Short: "Report waypoint, track, and route counts of a GPX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cmd := commands.NewInspectCommand(GetRepo(), args[0])
		result, err := cmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
