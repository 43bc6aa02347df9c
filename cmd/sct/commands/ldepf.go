package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/sct-tools/sct-go/pkg/extref"
	"github.com/sct-tools/sct-go/pkg/ldepf"
)

// LDEPFOptions configures the ldepf command.
type LDEPFOptions struct {
	commonOptions
	Settings string
	Output   string
}

// RunLDEPF runs the ldepf command.
func RunLDEPF(args []string, stdout, stderr io.Writer) int {
	opts, err := parseLDEPFArgs(args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printLDEPFUsage(stderr)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.LDEPF(opts)
	})
}

// LDEPF wires the LDEPF ExtRefs of the session document using the
// settings table and writes the result to opts.Output.
func (s *Session) LDEPF(opts LDEPFOptions) int {
	path := opts.Settings
	if path == "" {
		path = s.Config.Settings
	}
	if path == "" {
		fmt.Fprintln(s.Stderr, "Error: no LDEPF settings (use -settings or the config file)")
		return exitCommandError
	}
	table, err := ldepf.LoadFile(path)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	s.Logger.Debug("LDEPF settings loaded", "path", path, "rows", len(table.Settings))

	svc, err := s.Service()
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	items := svc.WireLDEPF(s.Doc, table)
	code := opts.printItems(s.Stdout, items)

	if opts.Output != "" {
		if err := s.Save(opts.Output, extref.OpLDEPF, "LDEPF binding from "+path); err != nil {
			fmt.Fprintf(s.Stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}
	return code
}

func parseLDEPFArgs(args []string, file string) (LDEPFOptions, error) {
	fs := flag.NewFlagSet("ldepf", flag.ContinueOnError)
	opts := LDEPFOptions{commonOptions: commonOptions{File: file}}
	opts.register(fs)
	fs.StringVar(&opts.Settings, "settings", "", "LDEPF settings YAML file")
	fs.StringVar(&opts.Output, "o", "", "Output file (default: no write)")
	err := parseArgs(fs, &opts.commonOptions, args)
	return opts, err
}

func printLDEPFUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct ldepf -settings settings.yaml [options] <file.scd>

Binds the DYN_LDEPF_ ExtRefs of every LDEPF logical device and updates the
RBDR/RADR channel logical nodes.

Options:
  -settings string   LDEPF settings YAML file
  -o string          Output file (default: no write)
  -json              Output diagnostics as JSON
  -change-log string Append changes to this CBOR change log
  -config string     Configuration file path`)
}
