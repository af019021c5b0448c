package ports

import "gpxcolor/internal/domain"

// GPXRepository defines the interface for GPX file operations
type GPXRepository interface {
	// Colorize annotates matching waypoints and writes the result to
	// the derived output path. The input file is never modified.
	Colorize(inputPath string, palette domain.Palette) (*domain.ColorizeReport, error)

	// Preview classifies waypoints without mutating or writing anything.
	Preview(inputPath string, palette domain.Palette) (*domain.ColorizeReport, error)

	// Inspect reports waypoint, track, and route counts for a file.
	Inspect(inputPath string) (*domain.DocumentInfo, error)
}
