package log

// Logger receives change log events. Pass nil or NoopLogger to disable
// change capture.
type Logger interface {
	// Log records one event.
	Log(event Event)
}

// NoopLogger discards all events. It is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// MemoryLogger keeps events in memory, in arrival order.
type MemoryLogger struct {
	Events []Event
}

// Log appends the event.
func (m *MemoryLogger) Log(event Event) {
	m.Events = append(m.Events, event)
}

// Changes returns the change events, in order.
func (m *MemoryLogger) Changes() []*ChangeEvent {
	var out []*ChangeEvent
	for _, e := range m.Events {
		if e.Change != nil {
			out = append(out, e.Change)
		}
	}
	return out
}

// Compile-time interface satisfaction check.
var (
	_ Logger = NoopLogger{}
	_ Logger = (*MemoryLogger)(nil)
)
