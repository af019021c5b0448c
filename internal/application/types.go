package application

import "gpxcolor/internal/domain"

// Re-export domain types for use by adapters
type (
	ColorRule      = domain.ColorRule
	Palette        = domain.Palette
	WaypointMatch  = domain.WaypointMatch
	ColorizeReport = domain.ColorizeReport
	DocumentInfo   = domain.DocumentInfo
)

// DefaultPalette returns the built-in keyword table
func DefaultPalette() domain.Palette {
	return domain.DefaultPalette()
}

// OutputPath derives the output file path for an input path
func OutputPath(inputPath string) string {
	return domain.OutputPath(inputPath)
}
