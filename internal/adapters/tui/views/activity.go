package views

import (
	"fmt"
	"sync"
)

// ActivityLine is one reported message
type ActivityLine struct {
	Level string
	Text  string
}

// ActivityLog collects reporter output while the terminal UI owns the screen.
// It implements ports.Reporter and is safe for concurrent use.
type ActivityLog struct {
	mu    sync.Mutex
	limit int
	lines []ActivityLine
}

// NewActivityLog keeps at most limit lines
func NewActivityLog(limit int) *ActivityLog {
	if limit <= 0 {
		limit = 50
	}
	return &ActivityLog{limit: limit}
}

func (l *ActivityLog) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, ActivityLine{Level: level, Text: fmt.Sprintf(format, args...)})
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = l.lines[over:]
	}
}

func (l *ActivityLog) Info(format string, args ...any)    { l.add("info", format, args...) }
func (l *ActivityLog) Success(format string, args ...any) { l.add("success", format, args...) }
func (l *ActivityLog) Warn(format string, args ...any)    { l.add("warn", format, args...) }
func (l *ActivityLog) Error(format string, args ...any)   { l.add("error", format, args...) }

// Tail returns the last n lines
func (l *ActivityLog) Tail(n int) []ActivityLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := max(len(l.lines)-n, 0)
	out := make([]ActivityLine, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}
