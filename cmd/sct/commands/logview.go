package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sct-tools/sct-go/pkg/log"
)

// LogViewOptions configures the log view command.
type LogViewOptions struct {
	Operation      string
	Category       string
	LocationPrefix string
	JSON           bool
	File           string
}

// RunLog runs the log command group.
func RunLog(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] != "view" {
		fmt.Fprintln(stderr, "Error: unknown log command (supported: view)")
		printLogUsage(stderr)
		return exitCommandError
	}
	opts, err := parseLogViewArgs(args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printLogUsage(stderr)
		return exitCommandError
	}
	if err := RunLogView(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

// RunLogView prints the events of a change log.
func RunLogView(opts LogViewOptions, w io.Writer) error {
	filter := log.Filter{
		Operation:      opts.Operation,
		LocationPrefix: opts.LocationPrefix,
	}
	if opts.Category != "" {
		c, ok := log.ParseCategory(strings.ToUpper(opts.Category))
		if !ok {
			return fmt.Errorf("unknown category: %s (use: binding, source, dai, diagnostic)", opts.Category)
		}
		filter.Category = &c
	}

	reader, err := log.NewFilteredReader(opts.File, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	encoder := json.NewEncoder(w)
	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		count++
		if opts.JSON {
			if err := encoder.Encode(event); err != nil {
				return fmt.Errorf("failed to encode event: %w", err)
			}
			continue
		}
		formatEvent(w, event)
	}
	if !opts.JSON {
		fmt.Fprintf(w, "%d events\n", count)
	}
	return nil
}

// formatEvent writes one event as a header line and an indented detail line.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s %s %s\n", ts, event.Operation, event.Category)
	if event.Location != "" {
		fmt.Fprintf(w, "  At: %s\n", event.Location)
	}
	switch {
	case event.Change != nil:
		fmt.Fprintf(w, "  %s: %q -> %q\n", event.Change.Field, event.Change.OldValue, event.Change.NewValue)
	case event.Diagnostic != nil:
		fmt.Fprintf(w, "  %s: %s\n", event.Diagnostic.Severity, event.Diagnostic.Message)
	}
}

func parseLogViewArgs(args []string) (LogViewOptions, error) {
	fs := flag.NewFlagSet("log view", flag.ContinueOnError)
	fs.Usage = func() {}
	opts := LogViewOptions{}
	fs.StringVar(&opts.Operation, "operation", "", "Filter by operation (bind-ied-names, ldepf, update-binders, update-source)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (binding, source, dai, diagnostic)")
	fs.StringVar(&opts.LocationPrefix, "location", "", "Filter by location prefix")
	fs.BoolVar(&opts.JSON, "json", false, "Output events as JSON lines")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		return opts, errors.New("log file path required")
	}
	opts.File = fs.Arg(0)
	return opts, nil
}

func printLogUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct log view [options] <file.slog>

Options:
  -operation string  Filter by operation
  -category string   Filter by category (binding, source, dai, diagnostic)
  -location string   Filter by location prefix
  -json              Output events as JSON lines`)
}
