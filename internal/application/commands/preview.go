package commands

import (
	"context"
	"fmt"

	"gpxcolor/internal/application"
	"gpxcolor/internal/domain"
	"gpxcolor/internal/ports"
)

// PreviewResult contains the result of a dry run
type PreviewResult struct {
	Report  *domain.ColorizeReport
	Message string
}

// PreviewCommand classifies the waypoints of a GPX file without
// writing anything.
type PreviewCommand struct {
	repo      ports.GPXRepository
	InputPath string
	Palette   domain.Palette
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(repo ports.GPXRepository, inputPath string, palette domain.Palette) *PreviewCommand {
	return &PreviewCommand{
		repo:      repo,
		InputPath: inputPath,
		Palette:   palette,
	}
}

// Validate checks if the preview operation is valid
func (c *PreviewCommand) Validate() error {
	if err := application.ValidateInputFile("inputPath", c.InputPath); err != nil {
		return err
	}
	return application.ValidatePalette(c.Palette)
}

// Execute runs the preview command
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.repo.Preview(c.InputPath, c.Palette)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Report:  report,
		Message: fmt.Sprintf("%d of %d waypoints would be colored.", report.Processed, report.Waypoints),
	}, nil
}
