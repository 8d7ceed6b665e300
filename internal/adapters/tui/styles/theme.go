package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors, taken from the published gallery page
	Primary   = lipgloss.Color("#37677B") // Teal
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#848681") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#B41E1E") // Price red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

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

	// Plan action styles
	ActionDelete = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ActionArchive = lipgloss.NewStyle().
			Foreground(Warning)

	ActionKeep = lipgloss.NewStyle().
			Foreground(Secondary)

	ActionSkip = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning)

	InfoMsg = lipgloss.NewStyle().
		Foreground(Info)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Price label as shown on gallery tiles
	Price = lipgloss.NewStyle().
		Foreground(White).
		Background(Error).
		Padding(0, 1)
)

// ActionStyle returns the style for a plan action name
func ActionStyle(kind string) lipgloss.Style {
	switch kind {
	case "delete":
		return ActionDelete
	case "archive":
		return ActionArchive
	case "keep":
		return ActionKeep
	default:
		return ActionSkip
	}
}
