package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gpxcolor/internal/domain"
)

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateInputFile checks that a path points at an existing regular
// file. Any extension is accepted; the original tool offered "All
// files" in its picker.
func ValidateInputFile(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}

	info, err := os.Stat(ExpandHome(path))
	if err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("cannot access %s: %v", path, err),
		}
	}
	if info.IsDir() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is a directory, not a file", path),
		}
	}
	return nil
}

// ValidatePalette checks the keyword table before a run. Failures
// satisfy errors.Is(err, ErrInvalidPalette).
func ValidatePalette(palette domain.Palette) error {
	if len(palette) == 0 {
		return &PaletteError{Reason: "at least one color rule is required"}
	}
	if err := palette.Validate(); err != nil {
		return &PaletteError{Reason: err.Error()}
	}
	return nil
}
