package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gpxcolor/internal/adapters/tui/styles"
	"gpxcolor/internal/domain"
)

// ReportKeyMap defines key bindings for the report view
type ReportKeyMap struct {
	Back key.Binding
	Copy key.Binding
	Quit key.Binding
}

var ReportKeys = ReportKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "enter", "b"),
		key.WithHelp("enter", "pick another file"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy output path"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReportModel shows the outcome of a colorize run
type ReportModel struct {
	ViewState

	report *domain.ColorizeReport
}

// NewReportModel creates a new report view model
func NewReportModel() *ReportModel {
	return &ReportModel{}
}

// SetReport installs the report to display
func (m *ReportModel) SetReport(report *domain.ColorizeReport) {
	m.report = report
	m.ClearMessage()
}

// Init initializes the report view
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ReportKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ReportKeys.Back):
			return m, func() tea.Msg { return SwitchToPickerMsg{} }

		case key.Matches(msg, ReportKeys.Copy):
			if m.report != nil {
				clipboard.WriteAll(m.report.OutputPath)
				m.SetMessage("Output path copied to clipboard", false)
			}
		}
	}

	return m, nil
}

// View renders the report view
func (m *ReportModel) View() string {
	if m.report == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Colorize Report"))
	b.WriteString("\n\n")

	for _, match := range m.report.Matches {
		b.WriteString("  ")
		b.WriteString(styles.Swatch(match.Color))
		b.WriteString(" ")
		b.WriteString(styles.MatchName.Render(match.Name))
		b.WriteString(styles.MatchKeyword.Render(fmt.Sprintf("  (%s → %s)", match.Keyword, match.Color)))
		b.WriteString("\n")
	}
	if len(m.report.Matches) > 0 {
		b.WriteString("\n")
	}

	if m.report.Processed == 0 {
		b.WriteString(styles.MutedText.Render("No waypoints were modified based on the keyword list."))
	} else {
		b.WriteString(styles.Success.Render(fmt.Sprintf("Colored %d of %d waypoints.", m.report.Processed, m.report.Waypoints)))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Saved as: " + m.report.OutputPath))
	b.WriteString("\n\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HelpDesc.Render("enter: pick another file • y: copy output path • q: quit"))

	return styles.App.Render(b.String())
}
