package gpxfile

import (
	"os"
	"path/filepath"

	"gpxcolor/internal/application"
	"gpxcolor/internal/domain"
)

// Repository implements ports.GPXRepository on the local filesystem
type Repository struct{}

// NewRepository creates a new GPX file repository
func NewRepository() *Repository {
	return &Repository{}
}

// Colorize loads a GPX file, annotates matching waypoints, and writes
// the result to the derived output path. The input file is never
// modified. A full copy is written even when nothing matched, so a
// zero-match run is distinguishable from a parse failure by the
// presence of the output file.
func (r *Repository) Colorize(inputPath string, palette domain.Palette) (*domain.ColorizeReport, error) {
	inputPath = application.ExpandHome(inputPath)

	doc, err := Load(inputPath)
	if err != nil {
		return nil, err
	}

	matches := Annotate(doc, palette)

	outputPath := domain.OutputPath(inputPath)
	if err := r.writeAtomic(doc, outputPath); err != nil {
		return nil, &application.WriteError{Path: outputPath, Err: err}
	}

	return &domain.ColorizeReport{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Waypoints:  len(doc.Waypoints()),
		Processed:  len(matches),
		Matches:    matches,
	}, nil
}

// Preview classifies waypoints without mutating the tree or touching
// the filesystem beyond the read.
func (r *Repository) Preview(inputPath string, palette domain.Palette) (*domain.ColorizeReport, error) {
	inputPath = application.ExpandHome(inputPath)

	doc, err := Load(inputPath)
	if err != nil {
		return nil, err
	}

	matches := Classify(doc, palette)

	return &domain.ColorizeReport{
		InputPath:  inputPath,
		OutputPath: domain.OutputPath(inputPath),
		Waypoints:  len(doc.Waypoints()),
		Processed:  len(matches),
		Matches:    matches,
	}, nil
}

// Inspect reports the structure of a GPX file
func (r *Repository) Inspect(inputPath string) (*domain.DocumentInfo, error) {
	inputPath = application.ExpandHome(inputPath)

	doc, err := Load(inputPath)
	if err != nil {
		return nil, err
	}

	return &domain.DocumentInfo{
		Path:      inputPath,
		Creator:   doc.Creator(),
		Version:   doc.Version(),
		Waypoints: doc.CountElements(waypointTag),
		Tracks:    doc.CountElements(trackTag),
		Routes:    doc.CountElements(routeTag),
	}, nil
}

// writeAtomic serializes to a temp file in the destination directory
// and renames it into place, so a failed write never leaves a partial
// file that looks complete.
func (r *Repository) writeAtomic(doc *Document, outputPath string) error {
	dir := filepath.Dir(outputPath)

	tmp, err := os.CreateTemp(dir, ".gpxcolor-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := doc.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
