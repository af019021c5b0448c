package application

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gpxcolor/internal/domain"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "hike.gpx")
	if err := os.WriteFile(file, []byte("<gpx/>"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "existing file",
			path:    file,
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
			errMsg:  "inputPath is required",
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.gpx"),
			wantErr: true,
			errMsg:  "cannot access",
		},
		{
			name:    "directory instead of file",
			path:    dir,
			wantErr: true,
			errMsg:  "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputFile("inputPath", tt.path)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateInputFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.WriteFile(filepath.Join(home, "hike.gpx"), []byte("<gpx/>"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := ValidateInputFile("inputPath", "~/hike.gpx"); err != nil {
		t.Errorf("tilde path should validate against the expanded location, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/tracks/hike.gpx"); got != filepath.Join(home, "tracks", "hike.gpx") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/hike.gpx"); got != "/abs/hike.gpx" {
		t.Errorf("absolute path must pass through, got %q", got)
	}
}

func TestValidatePalette(t *testing.T) {
	if err := ValidatePalette(domain.DefaultPalette()); err != nil {
		t.Errorf("default palette should validate, got %v", err)
	}

	if err := ValidatePalette(domain.Palette{}); !errors.Is(err, ErrInvalidPalette) {
		t.Errorf("expected ErrInvalidPalette for empty palette, got %v", err)
	}

	bad := domain.Palette{{Keyword: "lake", Color: "blue"}}
	if err := ValidatePalette(bad); !errors.Is(err, ErrInvalidPalette) {
		t.Errorf("expected ErrInvalidPalette for malformed color code, got %v", err)
	}
}
