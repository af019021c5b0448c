package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#249CF2") // Blue, the palette's water color
	Secondary = lipgloss.Color("#3C8C3C") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Report styles
	MatchName = lipgloss.NewStyle()

	MatchKeyword = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)
)

// Swatch renders a block of the given ARGB palette color. The alpha
// byte is dropped; terminals only take #RRGGBB.
func Swatch(argb string) string {
	if len(argb) != 9 {
		return "  "
	}
	rgb := "#" + argb[3:]
	return lipgloss.NewStyle().Background(lipgloss.Color(rgb)).Render("  ")
}
