package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"booq/internal/adapters/tui/styles"
	"booq/internal/application/commands"
	"booq/internal/domain"
)

// ReviewKeyMap defines key bindings for the review view
type ReviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Copy     key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "pgup"),
		key.WithHelp("←/h", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "pgdown"),
		key.WithHelp("→/l", "next page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy location"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open page"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ReviewPhase is where the review is in the sync lifecycle
type ReviewPhase int

const (
	PhaseLoading ReviewPhase = iota
	PhaseReady
	PhaseApplying
	PhaseDone
	PhaseFailed
)

// OpenPreviewMsg asks the app to open the published page
type OpenPreviewMsg struct {
	Path string
}

// ReviewModel lists every planned action and waits for a decision
type ReviewModel struct {
	ViewState
	Keys      ReviewKeyMap
	Log       *ActivityLog
	phase     ReviewPhase
	plan      *commands.SyncPlan
	result    *commands.SyncResult
	err       error
	paginator *Paginator
	confirm   ConfirmationModel
	copy      func(string) error
}

// NewReviewModel creates a review view reading reporter output from log
func NewReviewModel(log *ActivityLog) *ReviewModel {
	return &ReviewModel{
		Keys:      ReviewKeys,
		Log:       log,
		paginator: NewPaginator(15),
		confirm:   NewConfirmationModel(),
		copy:      clipboard.WriteAll,
	}
}

// SetClipboard replaces the clipboard writer
func (m *ReviewModel) SetClipboard(fn func(string) error) {
	m.copy = fn
}

// Phase returns the current lifecycle phase
func (m *ReviewModel) Phase() ReviewPhase {
	return m.phase
}

// SetPlan shows a computed plan and waits for confirmation
func (m *ReviewModel) SetPlan(plan *commands.SyncPlan) {
	m.plan = plan
	m.phase = PhaseReady
	m.paginator.SetTotal(len(plan.Reconcile.Actions))
	m.ClearMessage()
}

// SetApplying marks the plan as being applied
func (m *ReviewModel) SetApplying() {
	m.phase = PhaseApplying
	m.ClearMessage()
}

// SetResult shows the outcome of an applied plan
func (m *ReviewModel) SetResult(result *commands.SyncResult) {
	m.result = result
	m.phase = PhaseDone
	if result != nil && result.Publish != nil && result.Output != nil {
		m.SetMessage(fmt.Sprintf("Published %d items to %s", len(result.Output.Items), result.Publish.IndexPath), false)
	}
}

// SetError shows a fatal error
func (m *ReviewModel) SetError(err error) {
	m.err = err
	m.phase = PhaseFailed
	m.SetMessage(err.Error(), true)
}

// Init initializes the review view
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review view
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.paginator.SetPageSize(max(msg.Height-16, 5))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, func() tea.Msg { return AbortMsg{} }
	case key.Matches(msg, m.Keys.Up):
		m.paginator.CursorUp()
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		m.paginator.CursorDown()
		return m, nil
	case key.Matches(msg, m.Keys.PrevPage):
		m.paginator.PrevPage()
		return m, nil
	case key.Matches(msg, m.Keys.NextPage):
		m.paginator.NextPage()
		return m, nil
	case key.Matches(msg, m.Keys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(msg, m.Keys.Copy):
		m.copyLocation()
		return m, nil
	case key.Matches(msg, m.Keys.Open):
		if path := m.indexPath(); path != "" {
			return m, func() tea.Msg { return OpenPreviewMsg{Path: path} }
		}
		m.SetMessage("Nothing published yet", true)
		return m, nil
	}

	if m.phase == PhaseApplying {
		return m, nil
	}
	if m.phase != PhaseReady {
		// y has nothing to apply; n/q/esc leave
		if key.Matches(msg, m.confirm.Keys.Cancel) {
			return m, func() tea.Msg { return AbortMsg{} }
		}
		return m, nil
	}

	_, cmd := m.confirm.HandleKeyMsg(msg,
		func() tea.Msg { return ApplyConfirmedMsg{} },
		func() tea.Msg { return AbortMsg{} },
	)
	return m, cmd
}

func (m *ReviewModel) indexPath() string {
	if m.result == nil || m.result.Publish == nil {
		return ""
	}
	return m.result.Publish.IndexPath
}

func (m *ReviewModel) copyLocation() {
	path := m.indexPath()
	if path == "" {
		m.SetMessage("Nothing published yet", true)
		return
	}
	if err := m.copy(path); err != nil {
		m.SetMessage("Copy failed: "+err.Error(), true)
		return
	}
	m.SetMessage("Copied "+path, false)
}

// View renders the review view
func (m *ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("booq"))
	b.WriteString("\n")

	switch m.phase {
	case PhaseLoading:
		b.WriteString(styles.MutedText.Render("Fetching catalog and scanning images..."))
		b.WriteString("\n")
	case PhaseFailed:
		if m.plan == nil {
			b.WriteString(m.RenderMessage())
			b.WriteString("\n\n")
			b.WriteString(m.renderActivity())
			b.WriteString(m.renderHelpBar())
			return styles.App.Render(b.String())
		}
	}

	if m.plan != nil {
		b.WriteString(m.renderSummary())
		b.WriteString("\n\n")
		b.WriteString(m.renderActions())
		b.WriteString("\n")
	}

	switch m.phase {
	case PhaseReady:
		n := m.plan.Reconcile.Stats.Mutations()
		b.WriteString(RenderConfirmPrompt(fmt.Sprintf("Apply %d file changes and publish %d items?", n, len(m.plan.Preview.Items))))
		b.WriteString("\n")
	case PhaseApplying:
		b.WriteString(styles.InfoMsg.Render("Applying..."))
		b.WriteString("\n")
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderActivity())
	b.WriteString(m.renderHelpBar())

	return styles.App.Render(b.String())
}

func (m *ReviewModel) renderSummary() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Source: " + m.plan.Source))
	for _, dir := range m.plan.Ignored {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Ignored: " + dir))
	}
	b.WriteString("\n")

	s := m.plan.Reconcile.Stats
	parts := []string{
		styles.ActionDelete.Render(fmt.Sprintf("%d delete", s.Deleted)),
		styles.ActionArchive.Render(fmt.Sprintf("%d archive", s.Moved)),
		styles.ActionKeep.Render(fmt.Sprintf("%d keep", s.Kept)),
		styles.ActionSkip.Render(fmt.Sprintf("%d skip", s.Skipped)),
	}
	b.WriteString(strings.Join(parts, styles.HelpSeparator.String()))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("   %d active items, %d in gallery", len(m.plan.Inventory.Keys), len(m.plan.Preview.Items))))

	for _, err := range m.plan.Degraded {
		b.WriteString("\n")
		b.WriteString(styles.WarningMsg.Render("⚠ " + err.Error()))
	}
	return b.String()
}

func (m *ReviewModel) renderActions() string {
	actions := m.plan.Reconcile.Actions
	if len(actions) == 0 {
		return styles.MutedText.Render("No images found.") + "\n"
	}

	var b strings.Builder
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderAction(actions[i], i == m.paginator.Cursor()))
		b.WriteString("\n")
	}
	if m.paginator.TotalPages() > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("Page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ReviewModel) renderAction(a domain.PlannedAction, selected bool) string {
	kind := a.Kind.String()
	line := padRight(kind, 9) + " " + a.Asset.Filename
	if a.Kind == domain.ActionArchive {
		line += " → " + filepath.Join(domain.ArchiveDirName, filepath.Base(a.Target))
	}
	if a.Kind == domain.ActionKeep {
		if k, ok := a.Asset.Key.Get(); ok {
			if raw, ok := m.plan.Inventory.Records[k].Price.Get(); ok {
				if price, ok := domain.FormatPrice(raw).Get(); ok {
					line += "  " + price
				}
			}
		}
	}
	if selected {
		return styles.Selected.Render("> " + line)
	}
	return "  " + styles.ActionStyle(kind).Render(line)
}

func (m *ReviewModel) renderActivity() string {
	if m.Log == nil {
		return ""
	}
	var b strings.Builder
	for _, line := range m.Log.Tail(4) {
		switch line.Level {
		case "warn":
			b.WriteString(styles.WarningMsg.Render("⚠ " + line.Text))
		case "error":
			b.WriteString(styles.ErrorMsg.Render("✗ " + line.Text))
		case "success":
			b.WriteString(styles.Success.Render("✓ " + line.Text))
		default:
			b.WriteString(styles.MutedText.Render(line.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ReviewModel) renderHelpBar() string {
	bindings := []key.Binding{m.Keys.Up, m.Keys.Down, m.confirm.Keys.Confirm, m.confirm.Keys.Cancel, m.Keys.Copy, m.Keys.Help}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}
