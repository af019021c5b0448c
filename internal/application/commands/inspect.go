package commands

import (
	"context"
	"fmt"

	"gpxcolor/internal/application"
	"gpxcolor/internal/domain"
	"gpxcolor/internal/ports"
)

// InspectResult contains the result of inspecting a GPX file
type InspectResult struct {
	Info    *domain.DocumentInfo
	Message string
}

// InspectCommand reports the structure of a GPX file
type InspectCommand struct {
	repo      ports.GPXRepository
	InputPath string
}

// NewInspectCommand creates a new InspectCommand
func NewInspectCommand(repo ports.GPXRepository, inputPath string) *InspectCommand {
	return &InspectCommand{
		repo:      repo,
		InputPath: inputPath,
	}
}

// Validate checks if the inspect operation is valid
func (c *InspectCommand) Validate() error {
	return application.ValidateInputFile("inputPath", c.InputPath)
}

// Execute runs the inspect command
func (c *InspectCommand) Execute(ctx context.Context) (*InspectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	info, err := c.repo.Inspect(c.InputPath)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("%s: %d waypoints, %d tracks, %d routes", info.Path, info.Waypoints, info.Tracks, info.Routes)
	if info.Creator != "" {
		msg += fmt.Sprintf(" (creator: %s)", info.Creator)
	}

	return &InspectResult{
		Info:    info,
		Message: msg,
	}, nil
}
