package extref

import (
	"log/slog"
	"strings"

	"github.com/sct-tools/sct-go/pkg/log"
	"github.com/sct-tools/sct-go/pkg/report"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// Operation names used in change log events.
const (
	OpBindIEDNames  = "bind-ied-names"
	OpLDEPF         = "ldepf"
	OpUpdateBinders = "update-binders"
	OpUpdateSource  = "update-source"
)

// Config configures a Service.
type Config struct {
	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ChangeLogger receives every write and diagnostic.
	// If nil, changes are not recorded.
	ChangeLogger log.Logger
}

// Service runs binding operations against SCL documents. It holds no
// document state; a Service may be reused across documents but not used
// from several goroutines on the same document.
type Service struct {
	logger       *slog.Logger
	changeLogger log.Logger
}

// NewService creates a Service.
func NewService(config Config) *Service {
	return &Service{
		logger:       config.Logger,
		changeLogger: config.ChangeLogger,
	}
}

func (s *Service) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Service) infoLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Service) record(event log.Event) {
	if s.changeLogger != nil {
		s.changeLogger.Log(event)
	}
}

// diagnostics sends items to the change logger and returns them.
func (s *Service) diagnostics(op string, items []report.Item) []report.Item {
	for _, it := range items {
		s.record(log.DiagnosticEventFor(op, it))
	}
	return items
}

// set writes value into dst and records the change.
func (s *Service) set(op string, cat log.Category, location, field string, dst *string, value string) {
	if *dst == value {
		return
	}
	old := *dst
	*dst = value
	s.record(log.ChangeEventFor(op, cat, location, field, old, value))
}

// setOptional writes an optional attribute. A nil value unsets it.
func (s *Service) setOptional(op string, cat log.Category, location, field string, dst **string, value *string) {
	oldVal, newVal := "", ""
	if *dst != nil {
		oldVal = **dst
	}
	if value != nil {
		newVal = *value
	}
	if (*dst == nil) == (value == nil) && oldVal == newVal {
		return
	}
	if value == nil {
		*dst = nil
	} else {
		*dst = scl.Ptr(newVal)
	}
	s.record(log.ChangeEventFor(op, cat, location, field, oldVal, newVal))
}

// setClasses writes an lnClass list.
func (s *Service) setClasses(op string, cat log.Category, location, field string, dst *scl.LNClassList, value scl.LNClassList) {
	oldVal, newVal := strings.Join(*dst, " "), strings.Join(value, " ")
	if oldVal == newVal {
		return
	}
	*dst = value
	s.record(log.ChangeEventFor(op, cat, location, field, oldVal, newVal))
}

// clearBinding unsets the binding fields of e and records one change.
func (s *Service) clearBinding(op, location string, e *scl.ExtRef) {
	old := bindingString(e)
	if old == "" {
		return
	}
	e.ClearBinding()
	s.record(log.ChangeEventFor(op, log.CategoryBinding, location, "binding", old, ""))
}

// clearSource unsets the src* fields of e and records one change.
func (s *Service) clearSource(op, location string, e *scl.ExtRef) {
	old := sourceString(e)
	if old == "" {
		return
	}
	e.ClearSource()
	s.record(log.ChangeEventFor(op, log.CategorySource, location, "source", old, ""))
}
