package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sct-tools/sct-go/pkg/extref"
)

// UpdateOptions configures the update-binders and update-source commands.
type UpdateOptions struct {
	commonOptions
	Info   string // ExtRefInfo JSON, or @path to a JSON file
	Output string
}

// RunUpdateBinders runs the update-binders command.
func RunUpdateBinders(args []string, stdout, stderr io.Writer) int {
	return runUpdate(extref.OpUpdateBinders, args, stdout, stderr)
}

// RunUpdateSource runs the update-source command.
func RunUpdateSource(args []string, stdout, stderr io.Writer) int {
	return runUpdate(extref.OpUpdateSource, args, stdout, stderr)
}

func runUpdate(op string, args []string, stdout, stderr io.Writer) int {
	opts, err := parseUpdateArgs(op, args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUpdateUsage(stderr, op)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.Update(op, opts)
	})
}

// Update applies one ExtRefInfo to the session document with the
// update-binders or update-source operation and writes the result to
// opts.Output when set.
func (s *Session) Update(op string, opts UpdateOptions) int {
	info, err := readExtRefInfo(opts.Info)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	svc, err := s.Service()
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}

	var why string
	switch op {
	case extref.OpUpdateBinders:
		err = svc.UpdateBinders(s.Doc, info)
		why = "ExtRef binding update"
	case extref.OpUpdateSource:
		_, err = svc.UpdateSource(s.Doc, info)
		why = "ExtRef source update"
	default:
		err = fmt.Errorf("unknown update operation: %s", op)
	}
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintf(s.Stdout, "%s: ExtRef %q updated\n", op, info.Signal.Desc)

	if opts.Output != "" {
		if err := s.Save(opts.Output, op, why); err != nil {
			fmt.Fprintf(s.Stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}
	return exitSuccess
}

// readExtRefInfo decodes an ExtRefInfo given inline or, with a leading @,
// from a file.
func readExtRefInfo(arg string) (*extref.ExtRefInfo, error) {
	data := []byte(arg)
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	var info extref.ExtRefInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decode ExtRefInfo: %w", err)
	}
	return &info, nil
}

func parseUpdateArgs(op string, args []string, file string) (UpdateOptions, error) {
	fs := flag.NewFlagSet(op, flag.ContinueOnError)
	opts := UpdateOptions{commonOptions: commonOptions{File: file}}
	opts.register(fs)
	fs.StringVar(&opts.Info, "info", "", "ExtRefInfo JSON or @file (required)")
	fs.StringVar(&opts.Output, "o", "", "Output file (default: no write)")
	if err := parseArgs(fs, &opts.commonOptions, args); err != nil {
		return opts, err
	}
	if opts.Info == "" {
		return opts, errors.New("-info is required")
	}
	return opts, nil
}

func printUpdateUsage(w io.Writer, op string) {
	fmt.Fprintf(w, `
Usage: sct %s -info JSON|@file [options] <file.scd>

Applies an ExtRefInfo, as printed by "sct extrefs -json", to the holder
ExtRef carrying its signal.

Options:
  -info string       ExtRefInfo JSON, or @path to a JSON file
  -o string          Output file (default: no write)
  -change-log string Append changes to this CBOR change log
  -config string     Configuration file path
`, op)
}
