package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gpxcolor/internal/adapters/tui/styles"
	"gpxcolor/internal/application/commands"
	"gpxcolor/internal/domain"
	"gpxcolor/internal/ports"
)

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

var PickerKeys = PickerKeyMap{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PickerModel selects the GPX file to process
type PickerModel struct {
	ViewState

	repo    ports.GPXRepository
	picker  filepicker.Model
	palette domain.Palette
}

// NewPickerModel creates a new picker model rooted at startDir
func NewPickerModel(repo ports.GPXRepository, startDir string) *PickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".gpx"}
	fp.CurrentDirectory = startDir
	fp.ShowHidden = false

	return &PickerModel{
		repo:    repo,
		picker:  fp,
		palette: domain.DefaultPalette(),
	}
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.picker.Height = msg.Height - 8

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, PickerKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		return m, m.colorize(path)
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.SetMessage(path+" is not a GPX file", true)
	}

	return m, cmd
}

func (m *PickerModel) colorize(path string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewColorizeCommand(m.repo, path, m.palette)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return ColorizeErrMsg{Err: err}
		}
		return ColorizedMsg{Report: result.Report}
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Select GPX File to Process"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Waypoints with keyword names get color extensions"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpDesc.Render("enter: colorize • ?: help • q: quit"))

	return styles.App.Render(b.String())
}
