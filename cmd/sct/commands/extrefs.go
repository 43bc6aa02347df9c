package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sct-tools/sct-go/pkg/extref"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// ExtRefsOptions configures the extrefs command.
type ExtRefsOptions struct {
	commonOptions
	IED    string
	LD     string
	Dedupe bool
}

// RunExtRefs runs the extrefs command.
func RunExtRefs(args []string, stdout, stderr io.Writer) int {
	opts, err := parseExtRefsArgs(args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printExtRefsUsage(stderr)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.ExtRefs(opts)
	})
}

// ExtRefs lists the ExtRefs of one logical device. With Dedupe only the
// first ExtRef per feeding control block is listed.
func (s *Session) ExtRefs(opts ExtRefsOptions) int {
	ied, err := s.Doc.IEDByName(opts.IED)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	ld, err := ied.LDeviceByInst(opts.LD)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}

	holders := make(map[*scl.ExtRef]*scl.LN)
	var all []*scl.ExtRef
	for _, ln := range ld.LNsWithLN0() {
		for _, e := range ln.ExtRefs() {
			holders[e] = ln
			all = append(all, e)
		}
	}
	if opts.Dedupe {
		all = extref.FilterDuplicated(all)
	}

	infos := make([]extref.ExtRefInfo, 0, len(all))
	for _, e := range all {
		infos = append(infos, extref.InfoOf(ied, ld, holders[e], e))
	}

	if opts.JSON {
		printJSON(s.Stdout, infos)
		return exitSuccess
	}
	for _, info := range infos {
		fmt.Fprintln(s.Stdout, formatExtRefInfo(info))
	}
	fmt.Fprintf(s.Stdout, "%d ExtRefs\n", len(infos))
	return exitSuccess
}

func formatExtRefInfo(info extref.ExtRefInfo) string {
	var sb strings.Builder
	holder := info.HolderLnPrefix + info.HolderLnClass + info.HolderLnInst
	fmt.Fprintf(&sb, "%s %q pDO=%s", holder, info.Signal.Desc, info.Signal.PDO)
	if info.Signal.PDA != "" {
		fmt.Fprintf(&sb, " pDA=%s", info.Signal.PDA)
	}
	if b := info.Binding; b != nil {
		fmt.Fprintf(&sb, " -> %s/%s/%s%s%s", b.IEDName, b.LdInst, b.Prefix, b.LnClass, b.LnInst)
		if b.ServiceType != "" {
			fmt.Fprintf(&sb, " [%s]", b.ServiceType)
		}
	} else {
		sb.WriteString(" (unbound)")
	}
	if src := info.Source; src != nil {
		fmt.Fprintf(&sb, " from %s/%s%s%s.%s", src.SrcLDInst, src.SrcPrefix, src.LNClass(), src.SrcLNInst, src.SrcCBName)
	}
	return sb.String()
}

func parseExtRefsArgs(args []string, file string) (ExtRefsOptions, error) {
	fs := flag.NewFlagSet("extrefs", flag.ContinueOnError)
	opts := ExtRefsOptions{commonOptions: commonOptions{File: file}}
	opts.register(fs)
	fs.StringVar(&opts.IED, "ied", "", "IED name (required)")
	fs.StringVar(&opts.LD, "ld", "", "LDevice inst (required)")
	fs.BoolVar(&opts.Dedupe, "dedupe", false, "Keep one ExtRef per feeding control block")
	if err := parseArgs(fs, &opts.commonOptions, args); err != nil {
		return opts, err
	}
	if opts.IED == "" || opts.LD == "" {
		return opts, errors.New("-ied and -ld are required")
	}
	return opts, nil
}

func printExtRefsUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct extrefs -ied NAME -ld INST [options] <file.scd>

Options:
  -ied string   IED name
  -ld string    LDevice inst
  -dedupe       Keep one ExtRef per feeding control block
  -json         Output as JSON`)
}
