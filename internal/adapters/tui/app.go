package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"booq/internal/adapters/tui/views"
	"booq/internal/application/commands"
	"booq/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReview ViewState = iota
	ViewHelp
)

// Syncer computes and applies a gallery sync
type Syncer interface {
	Plan(ctx context.Context) (*commands.SyncPlan, error)
	Apply(ctx context.Context, plan *commands.SyncPlan) (*commands.SyncResult, error)
}

// App is the main TUI application model
type App struct {
	ctx    context.Context
	syncer Syncer
	opener ports.PreviewOpener

	state  ViewState
	review *views.ReviewModel
	help   *views.HelpModel

	plan    *commands.SyncPlan
	result  *commands.SyncResult
	aborted bool

	width  int
	height int
}

// NewApp creates a new TUI application. log must be the reporter the syncer
// writes to; opener may be nil.
func NewApp(ctx context.Context, syncer Syncer, log *views.ActivityLog, opener ports.PreviewOpener) *App {
	return &App{
		ctx:    ctx,
		syncer: syncer,
		opener: opener,
		state:  ViewReview,
		review: views.NewReviewModel(log),
		help:   views.NewHelpModel(),
	}
}

// Review exposes the review view
func (a *App) Review() *views.ReviewModel {
	return a.review
}

// Result returns the applied sync, or nil when nothing was applied
func (a *App) Result() *commands.SyncResult {
	return a.result
}

// Aborted reports whether the user left without applying the plan
func (a *App) Aborted() bool {
	return a.aborted
}

// Init starts the dry run
func (a *App) Init() tea.Cmd {
	return a.loadPlan()
}

func (a *App) loadPlan() tea.Cmd {
	return func() tea.Msg {
		plan, err := a.syncer.Plan(a.ctx)
		if err != nil {
			return views.PlanErrMsg{Err: err}
		}
		return views.PlanLoadedMsg{Plan: plan}
	}
}

func (a *App) applyPlan(plan *commands.SyncPlan) tea.Cmd {
	return func() tea.Msg {
		result, err := a.syncer.Apply(a.ctx, plan)
		if err != nil {
			return views.ApplyErrMsg{Err: err}
		}
		return views.ApplyDoneMsg{Result: result}
	}
}

type previewOpenedMsg struct{ err error }

func (a *App) openPreview(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}
	return func() tea.Msg {
		return previewOpenedMsg{err: a.opener.OpenFile(path)}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.review.Update(msg)
		a.help.Update(msg)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		return a, nil

	case views.PlanLoadedMsg:
		a.plan = msg.Plan
		a.review.SetPlan(msg.Plan)
		return a, nil

	case views.PlanErrMsg:
		a.review.SetError(msg.Err)
		return a, nil

	case views.ApplyConfirmedMsg:
		if a.plan == nil {
			return a, nil
		}
		a.review.SetApplying()
		return a, a.applyPlan(a.plan)

	case views.ApplyDoneMsg:
		a.result = msg.Result
		a.review.SetResult(msg.Result)
		return a, nil

	case views.ApplyErrMsg:
		a.review.SetError(msg.Err)
		return a, nil

	case views.OpenPreviewMsg:
		return a, a.openPreview(msg.Path)

	case previewOpenedMsg:
		if msg.err != nil {
			a.review.SetMessage("Open failed: "+msg.err.Error(), true)
		}
		return a, nil

	case views.AbortMsg:
		a.aborted = a.result == nil
		return a, tea.Quit
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReview:
		_, cmd = a.review.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.review.View()
	}
}
