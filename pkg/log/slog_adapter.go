package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("operation", event.Operation),
		slog.String("category", event.Category.String()),
	}
	if event.Location != "" {
		attrs = append(attrs, slog.String("location", event.Location))
	}

	switch {
	case event.Change != nil:
		attrs = append(attrs,
			slog.String("field", event.Change.Field),
			slog.String("old", event.Change.OldValue),
			slog.String("new", event.Change.NewValue),
		)
	case event.Diagnostic != nil:
		attrs = append(attrs,
			slog.String("severity", event.Diagnostic.Severity.String()),
			slog.String("message", event.Diagnostic.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "change", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
