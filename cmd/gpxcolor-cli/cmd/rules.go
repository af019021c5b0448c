package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpxcolor/internal/application"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in keyword-to-color table",
	Long: `List the keyword table driving classification. Keywords are matched
case-insensitively as substrings of waypoint names; when several
keywords match, the first-listed rule wins.`,
	Run: func(cobraCmd *cobra.Command, args []string) {
		for _, rule := range application.DefaultPalette() {
			fmt.Printf("%-10s %s\n", rule.Keyword, rule.Color)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
