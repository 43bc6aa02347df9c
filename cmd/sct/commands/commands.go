// Package commands implements the sct CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sct-tools/sct-go/pkg/extref"
	"github.com/sct-tools/sct-go/pkg/log"
	"github.com/sct-tools/sct-go/pkg/report"
	"github.com/sct-tools/sct-go/pkg/scl"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// Session is a loaded document and the environment commands run in.
// The shell keeps one Session across commands; the CLI opens one per run.
type Session struct {
	Doc    *scl.Document
	Path   string
	Config Config
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer

	changeLog *log.FileLogger
}

// OpenSession parses the document at path.
func OpenSession(path string, cfg Config, stdout, stderr io.Writer) (*Session, error) {
	logger, err := NewLogger(stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	doc, err := scl.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("document loaded", "path", path, "ieds", len(doc.IEDs()))
	return &Session{
		Doc:    doc,
		Path:   path,
		Config: cfg,
		Logger: logger,
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

// Close flushes the change log.
func (s *Session) Close() error {
	if s.changeLog == nil {
		return nil
	}
	err := s.changeLog.Close()
	s.changeLog = nil
	return err
}

// Service returns a binding service that logs through the session logger
// and records changes into the configured change log.
func (s *Session) Service() (*extref.Service, error) {
	loggers := []log.Logger{log.NewSlogAdapter(s.Logger)}
	if s.Config.ChangeLog != "" {
		if s.changeLog == nil {
			fl, err := log.NewFileLogger(s.Config.ChangeLog)
			if err != nil {
				return nil, fmt.Errorf("failed to open change log: %w", err)
			}
			s.changeLog = fl
		}
		loggers = append(loggers, s.changeLog)
	}
	return extref.NewService(extref.Config{
		Logger:       s.Logger,
		ChangeLogger: log.NewMultiLogger(loggers...),
	}), nil
}

// Save records a header history item and writes the document to output.
// A document without a Header gets one with a fresh id.
func (s *Session) Save(output, what, why string) error {
	if s.Doc.Header == nil {
		s.Doc.Header = &scl.Header{ID: uuid.NewString(), Version: "1", Revision: "1"}
	}
	s.Doc.Header.AddHistoryItem(s.Config.Who, what, why)
	if err := s.Doc.WriteFile(output); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	s.Logger.Info("document written", "path", output)
	return nil
}

// commonOptions are the flags every document command accepts.
type commonOptions struct {
	ConfigPath string
	LogLevel   string
	ChangeLog  string
	JSON       bool
	Severity   string
	File       string

	severity *report.Severity
}

func (o *commonOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Configuration file path")
	fs.StringVar(&o.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&o.ChangeLog, "change-log", "", "Append changes to this CBOR change log")
	fs.BoolVar(&o.JSON, "json", false, "Output results as JSON")
	fs.StringVar(&o.Severity, "severity", "", "Only print diagnostics of this severity: warning, error, fatal")
}

// sessionOnly rejects the flags that select a configuration. A shell
// session keeps the configuration it was opened with.
func (o *commonOptions) sessionOnly() error {
	flags := []struct {
		name string
		set  bool
	}{
		{"-config", o.ConfigPath != ""},
		{"-log-level", o.LogLevel != ""},
		{"-change-log", o.ChangeLog != ""},
	}
	for _, f := range flags {
		if f.set {
			return fmt.Errorf("%s is not supported in the shell", f.name)
		}
	}
	return nil
}

// config loads the configuration file, if any, and applies flag overrides.
func (o *commonOptions) config() (Config, error) {
	cfg := DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = LoadConfig(o.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.ChangeLog != "" {
		cfg.ChangeLog = o.ChangeLog
	}
	return cfg, nil
}

// parseArgs parses args into fs and takes the single positional argument as
// the document path. A path already set in o is kept when none is given.
func parseArgs(fs *flag.FlagSet, o *commonOptions, args []string) error {
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if o.Severity != "" {
		var sev report.Severity
		if err := sev.UnmarshalText([]byte(o.Severity)); err != nil {
			return err
		}
		o.severity = &sev
	}
	switch fs.NArg() {
	case 0:
		if o.File == "" {
			return errors.New("no file specified")
		}
	case 1:
		o.File = fs.Arg(0)
	default:
		return fmt.Errorf("unexpected arguments: %v", fs.Args()[1:])
	}
	return nil
}

// runFromFile opens a session for opts.File, runs fn and closes the session.
func runFromFile(opts *commonOptions, stdout, stderr io.Writer, fn func(*Session) int) int {
	cfg, err := opts.config()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	s, err := OpenSession(opts.File, cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	code := fn(s)
	if err := s.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return code
}

// ItemsOutput is the JSON form of a diagnostics list.
type ItemsOutput struct {
	Valid bool          `json:"valid"`
	Items []report.Item `json:"items"`
}

// printItems writes the diagnostics selected by -severity and returns the
// exit code implied by all of them. The text summary counts all of them.
func (o *commonOptions) printItems(w io.Writer, items []report.Item) int {
	shown := items
	if o.severity != nil {
		shown = report.FilterBySeverity(items, *o.severity)
	}
	valid := !report.HasErrors(items)

	if o.JSON {
		if shown == nil {
			shown = []report.Item{}
		}
		printJSON(w, ItemsOutput{Valid: valid, Items: shown})
	} else {
		for _, it := range shown {
			fmt.Fprintf(w, "  %s\n", it)
		}
		counts := map[report.Severity]int{}
		for _, it := range items {
			counts[it.Severity]++
		}
		if len(items) == 0 {
			fmt.Fprintln(w, "OK")
		} else {
			fmt.Fprintf(w, "%d fatal, %d errors, %d warnings\n",
				counts[report.SeverityFatal], counts[report.SeverityError], counts[report.SeverityWarning])
		}
	}
	if !valid {
		return exitValidation
	}
	return exitSuccess
}

func printJSON(w io.Writer, v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(data))
}
