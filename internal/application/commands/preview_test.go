package commands

import (
	"context"
	"strings"
	"testing"

	"gpxcolor/internal/domain"
)

func TestPreviewCommand_Execute(t *testing.T) {
	fixture := writeFixture(t)
	repo := &fakeRepo{
		report: &domain.ColorizeReport{
			InputPath: fixture,
			Waypoints: 5,
			Processed: 3,
			Matches: []domain.WaypointMatch{
				{Name: "Granite Peak", Keyword: "peak", Color: domain.ColorGreen},
				{Name: "Carpool Lot", Keyword: "pool", Color: domain.ColorBlue},
				{Name: "Ranger Station", Keyword: "ranger", Color: domain.ColorYellow},
			},
		},
	}

	cmd := NewPreviewCommand(repo, fixture, domain.DefaultPalette())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(result.Message, "3 of 5 waypoints") {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if len(result.Report.Matches) != 3 {
		t.Errorf("expected 3 matches in the report, got %d", len(result.Report.Matches))
	}
}

func TestPreviewCommand_Validate_RequiresInput(t *testing.T) {
	cmd := NewPreviewCommand(&fakeRepo{}, "", domain.DefaultPalette())
	if err := cmd.Validate(); err == nil {
		t.Error("expected validation error for empty input path")
	}
}

func TestInspectCommand_Execute(t *testing.T) {
	fixture := writeFixture(t)
	repo := &fakeRepo{
		info: &domain.DocumentInfo{
			Path:      fixture,
			Creator:   "gpxcolor-test",
			Version:   "1.1",
			Waypoints: 4,
			Tracks:    1,
			Routes:    0,
		},
	}

	cmd := NewInspectCommand(repo, fixture)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(result.Message, "4 waypoints, 1 tracks, 0 routes") {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if !strings.Contains(result.Message, "gpxcolor-test") {
		t.Errorf("message should include the creator, got %q", result.Message)
	}
}
