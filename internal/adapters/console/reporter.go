package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"booq/internal/adapters/tui/styles"
	"booq/internal/ports"
)

// Reporter prints pipeline progress as styled terminal lines:
// "[15:04:05] msg", "✓ msg", "⚠  msg" and "✗  msg".
type Reporter struct {
	mu    sync.Mutex
	out   io.Writer
	err   io.Writer
	now   func() time.Time
	stamp lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
}

// NewReporter creates a Reporter writing info and success lines to out and
// warnings and errors to errOut. Colors are off when color is false.
func NewReporter(out, errOut io.Writer, color bool) *Reporter {
	r := &Reporter{out: out, err: errOut, now: time.Now}

	renderer := lipgloss.NewRenderer(out)
	plain := renderer.NewStyle()
	r.stamp, r.ok, r.warn, r.fail = plain, plain, plain, plain
	if color {
		r.stamp = renderer.NewStyle().Foreground(styles.Info)
		r.ok = renderer.NewStyle().Foreground(styles.Secondary).Bold(true)
		r.warn = renderer.NewStyle().Foreground(styles.Warning).Bold(true)
		r.fail = renderer.NewStyle().Foreground(styles.Error).Bold(true)
	}
	return r
}

// ColorEnabled reports whether colored output should be used:
// not disabled by flag, NO_COLOR unset and TERM not "dumb".
func ColorEnabled(noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return strings.ToLower(os.Getenv("TERM")) != "dumb"
}

var _ ports.Reporter = (*Reporter)(nil)

func (r *Reporter) Info(format string, args ...any) {
	r.print(r.out, r.stamp.Render("["+r.now().Format("15:04:05")+"]")+" ", format, args...)
}

func (r *Reporter) Success(format string, args ...any) {
	r.print(r.out, r.ok.Render("✓")+" ", format, args...)
}

func (r *Reporter) Warn(format string, args ...any) {
	r.print(r.err, r.warn.Render("⚠")+"  ", format, args...)
}

func (r *Reporter) Error(format string, args ...any) {
	r.print(r.err, r.fail.Render("✗")+"  ", format, args...)
}

func (r *Reporter) print(w io.Writer, prefix, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(w, prefix+fmt.Sprintf(format, args...))
}
