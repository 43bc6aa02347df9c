package log

import (
	"time"

	"github.com/sct-tools/sct-go/pkg/report"
)

// Event is one change log entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// Operation is the engine operation that produced the event
	// (for example "ldepf" or "update-source").
	Operation string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	// Location is the path of the entity the event is about.
	Location string `cbor:"4,keyasint,omitempty"`

	// One of these is set.
	Change     *ChangeEvent     `cbor:"5,keyasint,omitempty"`
	Diagnostic *DiagnosticEvent `cbor:"6,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryBinding is a write of an ExtRef binding field or of an LDevice ldName.
	CategoryBinding Category = 0
	// CategorySource is a write of an ExtRef src* field.
	CategorySource Category = 1
	// CategoryDAI is a write of a data attribute value.
	CategoryDAI Category = 2
	// CategoryDiagnostic is a report item.
	CategoryDiagnostic Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryBinding:
		return "BINDING"
	case CategorySource:
		return "SOURCE"
	case CategoryDAI:
		return "DAI"
	case CategoryDiagnostic:
		return "DIAGNOSTIC"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category with the given name.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryBinding; c <= CategoryDiagnostic; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// ChangeEvent records one attribute write.
type ChangeEvent struct {
	// Field names the attribute, e.g. "iedName" or "SrcRef.setSrcRef".
	Field string `cbor:"1,keyasint"`

	// OldValue is the value before the write ("" when unset).
	OldValue string `cbor:"2,keyasint,omitempty"`

	// NewValue is the value written.
	NewValue string `cbor:"3,keyasint,omitempty"`
}

// DiagnosticEvent records one report item.
type DiagnosticEvent struct {
	Severity report.Severity `cbor:"1,keyasint"`
	Message  string          `cbor:"2,keyasint"`
}

// ChangeEventFor builds a change event stamped with the current time.
func ChangeEventFor(op string, cat Category, location, field, oldValue, newValue string) Event {
	return Event{
		Timestamp: time.Now(),
		Operation: op,
		Category:  cat,
		Location:  location,
		Change:    &ChangeEvent{Field: field, OldValue: oldValue, NewValue: newValue},
	}
}

// DiagnosticEventFor builds a diagnostic event from a report item.
func DiagnosticEventFor(op string, item report.Item) Event {
	return Event{
		Timestamp:  time.Now(),
		Operation:  op,
		Category:   CategoryDiagnostic,
		Location:   item.Location,
		Diagnostic: &DiagnosticEvent{Severity: item.Severity, Message: item.Message},
	}
}
