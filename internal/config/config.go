package config

import "os"

const DefaultStartDir = "."

// StartDir returns the directory the file picker opens in, from the
// GPXCOLOR_DIR env var, falling back to DefaultStartDir.
func StartDir() string {
	if env := os.Getenv("GPXCOLOR_DIR"); env != "" {
		return env
	}
	return DefaultStartDir
}
