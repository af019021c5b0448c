package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gpxcolor/internal/adapters/gpxfile"
	"gpxcolor/internal/adapters/tui"
	"gpxcolor/internal/config"
)

func main() {
	repo := gpxfile.NewRepository()

	app := tui.NewApp(repo, config.StartDir())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
