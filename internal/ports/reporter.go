package ports

// Reporter receives human-readable progress from the pipeline
type Reporter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// NopReporter discards everything
type NopReporter struct{}

func (NopReporter) Info(string, ...any)    {}
func (NopReporter) Success(string, ...any) {}
func (NopReporter) Warn(string, ...any)    {}
func (NopReporter) Error(string, ...any)   {}
