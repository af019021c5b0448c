package domain

import (
	"path/filepath"
	"strings"
)

// OutputSuffix is inserted before the extension of the input file name
// to derive the output path, e.g. hike.gpx -> hike_color.gpx.
const OutputSuffix = "_color"

// OutputPath derives the output file path for an input path. The output
// lands in the same directory with the suffix before the extension.
// Extensionless inputs get the suffix appended.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + OutputSuffix + ext
}
