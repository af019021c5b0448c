package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gpxcolor/internal/adapters/tui/views"
	"gpxcolor/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewReport
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo ports.GPXRepository

	state  ViewState
	picker *views.PickerModel
	report *views.ReportModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.GPXRepository, startDir string) *App {
	return &App{
		repo:   repo,
		state:  ViewPicker,
		picker: views.NewPickerModel(repo, startDir),
		report: views.NewReportModel(),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.report.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		// The picker handles its own sizing below.

	// View switching messages
	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, a.picker.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.ColorizedMsg:
		a.state = ViewReport
		a.report.SetReport(msg.Report)
		return a, nil

	case views.ColorizeErrMsg:
		a.state = ViewPicker
		a.picker.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewReport:
		return a.report.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.picker.View()
	}
}
