package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sct-tools/sct-go/pkg/extref"
)

// BindersOptions configures the binders command.
type BindersOptions struct {
	commonOptions
	IED string
	LD  string
	PLN string
	PDO string
	PDA string
}

// RunBinders runs the binders command.
func RunBinders(args []string, stdout, stderr io.Writer) int {
	opts, err := parseBindersArgs(args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printBindersUsage(stderr)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.Binders(opts)
	})
}

// Binders lists the logical nodes of one device able to serve a signal.
func (s *Session) Binders(opts BindersOptions) int {
	svc, err := s.Service()
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	signal := &extref.SignalInfo{PLN: opts.PLN, PDO: opts.PDO, PDA: opts.PDA}
	candidates, err := svc.FindBindersByName(s.Doc, opts.IED, opts.LD, signal)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.JSON {
		if candidates == nil {
			candidates = []extref.BindingCandidate{}
		}
		printJSON(s.Stdout, candidates)
		return exitSuccess
	}

	tw := tabwriter.NewWriter(s.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LN\tTYPE\tDO\tDA\tCDC\tFC")
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\t%s\t%s\n", c.Prefix, c.LnClass, c.LnInst, c.LnType, c.DoName, c.DaName, c.CDC, c.FC)
	}
	tw.Flush()
	fmt.Fprintf(s.Stdout, "%d candidates\n", len(candidates))
	return exitSuccess
}

func parseBindersArgs(args []string, file string) (BindersOptions, error) {
	fs := flag.NewFlagSet("binders", flag.ContinueOnError)
	opts := BindersOptions{commonOptions: commonOptions{File: file}}
	opts.register(fs)
	fs.StringVar(&opts.IED, "ied", "", "IED name (required)")
	fs.StringVar(&opts.LD, "ld", "", "LDevice inst (required)")
	fs.StringVar(&opts.PLN, "pln", "", "Restrict to this lnClass")
	fs.StringVar(&opts.PDO, "pdo", "", "Data object path (required)")
	fs.StringVar(&opts.PDA, "pda", "", "Data attribute path")
	if err := parseArgs(fs, &opts.commonOptions, args); err != nil {
		return opts, err
	}
	if opts.IED == "" || opts.LD == "" || opts.PDO == "" {
		return opts, errors.New("-ied, -ld and -pdo are required")
	}
	return opts, nil
}

func printBindersUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct binders -ied NAME -ld INST -pdo DO [-pda DA] [-pln CLASS] <file.scd>

Lists the logical nodes whose type exposes the data object path.

Options:
  -ied string   IED name
  -ld string    LDevice inst
  -pdo string   Data object path ("Mod" or "DO.SDO")
  -pda string   Data attribute path ("stVal" or "DA.BDA")
  -pln string   Restrict to this lnClass
  -json         Output as JSON`)
}
