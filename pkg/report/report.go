// Package report defines the diagnostics returned by batch operations.
package report

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// SeverityWarning indicates an item that was skipped or left as is.
	SeverityWarning Severity = iota
	// SeverityError indicates an item that could not be processed.
	SeverityError
	// SeverityFatal indicates a precondition failure for the whole entity.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "fatal":
		*s = SeverityFatal
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// Item is one diagnostic. Location identifies the offending entity.
type Item struct {
	Severity Severity `json:"severity"`
	Location string   `json:"location"`
	Message  string   `json:"message"`
}

// Warning returns a warning item.
func Warning(location, message string) Item {
	return Item{Severity: SeverityWarning, Location: location, Message: message}
}

// Error returns an error item.
func Error(location, message string) Item {
	return Item{Severity: SeverityError, Location: location, Message: message}
}

// Fatal returns a fatal item.
func Fatal(location, message string) Item {
	return Item{Severity: SeverityFatal, Location: location, Message: message}
}

// String returns a formatted representation of the item.
func (i Item) String() string {
	if i.Location == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", i.Severity, i.Message, i.Location)
}

// IsError reports whether the item is an error or fatal.
func (i Item) IsError() bool {
	return i.Severity >= SeverityError
}

// HasErrors reports whether any item is an error or fatal.
func HasErrors(items []Item) bool {
	for _, it := range items {
		if it.IsError() {
			return true
		}
	}
	return false
}

// FilterBySeverity returns the items of the given severity, in order.
func FilterBySeverity(items []Item, s Severity) []Item {
	var out []Item
	for _, it := range items {
		if it.Severity == s {
			out = append(out, it)
		}
	}
	return out
}
