package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/sct-tools/sct-go/pkg/extref"
)

// BindOptions configures the bind-ied-names command.
type BindOptions struct {
	commonOptions
	Output string
}

// RunBindIEDNames runs the bind-ied-names command.
func RunBindIEDNames(args []string, stdout, stderr io.Writer) int {
	opts, err := parseBindArgs(args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printBindUsage(stderr)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.BindIEDNames(opts)
	})
}

// BindIEDNames binds the ExtRef IED names of the session document from
// their compas:Flow privates and writes the result to opts.Output.
func (s *Session) BindIEDNames(opts BindOptions) int {
	svc, err := s.Service()
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	items := svc.BindAllIEDNames(s.Doc)
	code := opts.printItems(s.Stdout, items)

	if opts.Output != "" {
		if err := s.Save(opts.Output, extref.OpBindIEDNames, "ExtRef iedName binding from compas:Flow"); err != nil {
			fmt.Fprintf(s.Stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}
	return code
}

func parseBindArgs(args []string, file string) (BindOptions, error) {
	fs := flag.NewFlagSet("bind-ied-names", flag.ContinueOnError)
	opts := BindOptions{commonOptions: commonOptions{File: file}}
	opts.register(fs)
	fs.StringVar(&opts.Output, "o", "", "Output file (default: no write)")
	err := parseArgs(fs, &opts.commonOptions, args)
	return opts, err
}

func printBindUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct bind-ied-names [options] <file.scd>

Sets the iedName of every LN0 ExtRef to the IED referenced by its
compas:Flow private.

Options:
  -o string          Output file (default: no write)
  -json              Output diagnostics as JSON
  -change-log string Append changes to this CBOR change log
  -config string     Configuration file path`)
}
