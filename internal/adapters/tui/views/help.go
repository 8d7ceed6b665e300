package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"booq/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToReviewMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("booq Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Review a gallery sync before anything is touched"))
	b.WriteString("\n\n")

	b.WriteString(styles.InfoMsg.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString("\n")

	b.WriteString(styles.InfoMsg.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Apply the plan and publish"))
	b.WriteString(helpLine("n / q / esc", "Abort without changes"))
	b.WriteString(helpLine("c", "Copy the published page location"))
	b.WriteString(helpLine("o", "Open the published page"))
	b.WriteString("\n")

	b.WriteString(styles.InfoMsg.Render("Plan"))
	b.WriteString("\n")
	b.WriteString("  " + styles.ActionDelete.Render(padRight("delete", 10)) + styles.MutedText.Render("duplicate variant such as BN12_2.jpg") + "\n")
	b.WriteString("  " + styles.ActionArchive.Render(padRight("archive", 10)) + styles.MutedText.Render("item no longer active, moved to Sold/") + "\n")
	b.WriteString("  " + styles.ActionKeep.Render(padRight("keep", 10)) + styles.MutedText.Render("published in the gallery") + "\n")
	b.WriteString("  " + styles.ActionSkip.Render(padRight("skip", 10)) + styles.MutedText.Render("not a catalog image, left alone") + "\n")
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
