package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"booq/internal/adapters/tui/views"
	"booq/internal/application/commands"
	"booq/internal/domain"
)

type fakeSyncer struct {
	plan     *commands.SyncPlan
	planErr  error
	applyErr error
	applied  int
}

func (f *fakeSyncer) Plan(ctx context.Context) (*commands.SyncPlan, error) {
	return f.plan, f.planErr
}

func (f *fakeSyncer) Apply(ctx context.Context, plan *commands.SyncPlan) (*commands.SyncResult, error) {
	f.applied++
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	return &commands.SyncResult{
		Plan:    plan,
		Output:  &domain.RenderedOutput{},
		Publish: &commands.PublishResult{IndexPath: filepath.FromSlash("/out/index.html")},
	}, nil
}

type fakeOpener struct {
	opened []string
}

func (f *fakeOpener) OpenFile(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

// drive feeds msg to the app and keeps running returned commands until none
// are left or the app quits.
func drive(t *testing.T, app *App, msg tea.Msg) tea.Msg {
	t.Helper()
	for i := 0; i < 10 && msg != nil; i++ {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return nil
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return msg
		}
	}
	return msg
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestApp_ConfirmApplies(t *testing.T) {
	syncer := &fakeSyncer{plan: &commands.SyncPlan{Source: "/gallery"}}
	app := NewApp(context.Background(), syncer, views.NewActivityLog(10), nil)

	drive(t, app, app.Init()())
	if app.Review().Phase() != views.PhaseReady {
		t.Fatalf("Phase() = %v, expected PhaseReady", app.Review().Phase())
	}

	drive(t, app, key('y'))
	if syncer.applied != 1 {
		t.Errorf("applied %d times, expected 1", syncer.applied)
	}
	if app.Result() == nil || app.Review().Phase() != views.PhaseDone {
		t.Fatalf("expected a published result, phase %v", app.Review().Phase())
	}

	if _, ok := drive(t, app, key('q')).(tea.QuitMsg); !ok {
		t.Error("q after publishing should quit")
	}
	if app.Aborted() {
		t.Error("Aborted() = true after publishing")
	}
}

func TestApp_AbortAppliesNothing(t *testing.T) {
	syncer := &fakeSyncer{plan: &commands.SyncPlan{}}
	app := NewApp(context.Background(), syncer, nil, nil)

	drive(t, app, app.Init()())
	if _, ok := drive(t, app, key('n')).(tea.QuitMsg); !ok {
		t.Fatal("n should quit")
	}
	if syncer.applied != 0 {
		t.Errorf("applied %d times, expected 0", syncer.applied)
	}
	if !app.Aborted() {
		t.Error("Aborted() = false, expected true")
	}
}

func TestApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		syncer *fakeSyncer
	}{
		{"plan fails", &fakeSyncer{planErr: errors.New("authentication failed")}},
		{"apply fails", &fakeSyncer{plan: &commands.SyncPlan{}, applyErr: errors.New("cannot archive")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(context.Background(), tt.syncer, nil, nil)
			drive(t, app, app.Init()())
			drive(t, app, key('y'))

			if app.Review().Phase() != views.PhaseFailed {
				t.Errorf("Phase() = %v, expected PhaseFailed", app.Review().Phase())
			}
			if app.Result() != nil {
				t.Error("Result() should be nil after a failure")
			}
		})
	}
}

func TestApp_HelpAndPreview(t *testing.T) {
	opener := &fakeOpener{}
	app := NewApp(context.Background(), &fakeSyncer{plan: &commands.SyncPlan{}}, nil, opener)
	drive(t, app, app.Init()())

	drive(t, app, key('?'))
	if app.state != ViewHelp {
		t.Fatalf("state = %v, expected ViewHelp", app.state)
	}
	drive(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.state != ViewReview {
		t.Fatalf("state = %v, expected ViewReview", app.state)
	}

	drive(t, app, key('y'))
	drive(t, app, key('o'))
	if len(opener.opened) != 1 || opener.opened[0] != filepath.FromSlash("/out/index.html") {
		t.Errorf("opened = %v", opener.opened)
	}
}
