package slogreport

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"booq/internal/ports"
)

// Reporter forwards pipeline progress to a slog.Logger. Success lines are
// logged at info level with outcome=ok.
type Reporter struct {
	logger *slog.Logger
}

// New wraps logger
func New(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// NewText creates a Reporter writing text records to w
func NewText(w io.Writer, verbose bool) *Reporter {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

var _ ports.Reporter = (*Reporter)(nil)

func (r *Reporter) Info(format string, args ...any) {
	r.logger.Log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...))
}

func (r *Reporter) Success(format string, args ...any) {
	r.logger.Log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...), "outcome", "ok")
}

func (r *Reporter) Warn(format string, args ...any) {
	r.logger.Log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, args...))
}

func (r *Reporter) Error(format string, args ...any) {
	r.logger.Log(context.Background(), slog.LevelError, fmt.Sprintf(format, args...))
}
