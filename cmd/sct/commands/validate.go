package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/sct-tools/sct-go/pkg/extref"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	commonOptions
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printValidateUsage(stderr)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.Validate(opts)
	})
}

// Validate checks the IED identities of the session document.
func (s *Session) Validate(opts ValidateOptions) int {
	items := extref.ValidateIEDs(s.Doc)
	s.Logger.Info("validated IED identities", "ieds", len(s.Doc.IEDs()), "items", len(items))
	return opts.printItems(s.Stdout, items)
}

func parseValidateArgs(args []string, file string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts := ValidateOptions{commonOptions{File: file}}
	opts.register(fs)
	err := parseArgs(fs, &opts.commonOptions, args)
	return opts, err
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct validate [options] <file.scd>

Checks that every IED carries a complete compas ICDHeader with a unique
ICDSystemVersionUUID.

Options:
  -json            Output diagnostics as JSON
  -config string   Configuration file path
  -log-level string  Log level: debug, info, warn, error`)
}
