package commands

import (
	"context"
	"fmt"

	"gpxcolor/internal/application"
	"gpxcolor/internal/domain"
	"gpxcolor/internal/ports"
)

// ColorizeResult contains the result of a colorize run
type ColorizeResult struct {
	Report  *domain.ColorizeReport
	Message string
}

// ColorizeCommand annotates the waypoints of one GPX file and writes
// the colored copy next to the input.
type ColorizeCommand struct {
	repo      ports.GPXRepository
	InputPath string
	Palette   domain.Palette
}

// NewColorizeCommand creates a new ColorizeCommand
func NewColorizeCommand(repo ports.GPXRepository, inputPath string, palette domain.Palette) *ColorizeCommand {
	return &ColorizeCommand{
		repo:      repo,
		InputPath: inputPath,
		Palette:   palette,
	}
}

// Validate checks if the colorize operation is valid
func (c *ColorizeCommand) Validate() error {
	if err := application.ValidateInputFile("inputPath", c.InputPath); err != nil {
		return err
	}
	return application.ValidatePalette(c.Palette)
}

// Execute runs the colorize command
func (c *ColorizeCommand) Execute(ctx context.Context) (*ColorizeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.repo.Colorize(c.InputPath, c.Palette)
	if err != nil {
		return nil, err
	}

	return &ColorizeResult{
		Report:  report,
		Message: colorizeMessage(report),
	}, nil
}

func colorizeMessage(report *domain.ColorizeReport) string {
	if report.Processed == 0 {
		return fmt.Sprintf("No waypoints were modified based on the keyword list.\nOriginal file copied to: %s", report.OutputPath)
	}
	return fmt.Sprintf("Successfully added color to %d waypoints.\nNew colored file saved as: %s", report.Processed, report.OutputPath)
}
