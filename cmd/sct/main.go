// Command sct binds and auto-wires ExtRefs in SCL substation configuration
// documents.
//
// Usage:
//
//	sct <command> [options] <file.scd>
//
// Commands:
//
//	validate        Check the compas ICDHeader identity of every IED
//	bind-ied-names  Bind ExtRef iedNames from their compas:Flow privates
//	ldepf           Wire the LDEPF ExtRefs using a settings table
//	extrefs         List the ExtRefs of a logical device
//	binders         List the logical nodes able to serve a signal
//	update-binders  Rebind one ExtRef from an ExtRefInfo
//	update-source   Set the control block source of one bound ExtRef
//	show            Summarize a document
//	log view        Print a change log
//	shell           Interactive shell over one document
//
// Exit codes are 0 on success, 1 on command errors and 2 when the
// diagnostics contain an error or fatal item.
//
// Examples:
//
//	# Bind the ExtRef iedNames and save the result
//	sct bind-ied-names -o bound.scd station.scd
//
//	# Wire LDEPF channels and record every change
//	sct ldepf -settings ldepf.yaml -change-log ldepf.slog -o wired.scd station.scd
//
//	# Review the recorded changes
//	sct log view -category dai ldepf.slog
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sct-tools/sct-go/cmd/sct/commands"
	"github.com/sct-tools/sct-go/cmd/sct/interactive"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "bind-ied-names":
		exitCode = commands.RunBindIEDNames(args, os.Stdout, os.Stderr)
	case "ldepf":
		exitCode = commands.RunLDEPF(args, os.Stdout, os.Stderr)
	case "extrefs":
		exitCode = commands.RunExtRefs(args, os.Stdout, os.Stderr)
	case "binders":
		exitCode = commands.RunBinders(args, os.Stdout, os.Stderr)
	case "update-binders":
		exitCode = commands.RunUpdateBinders(args, os.Stdout, os.Stderr)
	case "update-source":
		exitCode = commands.RunUpdateSource(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "log":
		exitCode = commands.RunLog(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = runShell(args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage(os.Stderr)
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func runShell(args []string) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	configPath := fs.String("config", "", "Configuration file path")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: no file specified")
		return exitCommandError
	}

	cfg := commands.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = commands.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	session, err := commands.OpenSession(fs.Arg(0), cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer session.Close()

	sh, err := interactive.New(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	sh.Run()
	return exitSuccess
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `sct - SCL ExtRef binding tool

Usage:
  sct <command> [options] <file.scd>

Commands:
  validate        Check the compas ICDHeader identity of every IED
  bind-ied-names  Bind ExtRef iedNames from their compas:Flow privates
  ldepf           Wire the LDEPF ExtRefs using a settings table
  extrefs         List the ExtRefs of a logical device
  binders         List the logical nodes able to serve a signal
  update-binders  Rebind one ExtRef from an ExtRefInfo
  update-source   Set the control block source of one bound ExtRef
  show            Summarize a document
  log view        Print a change log
  shell           Interactive shell over one document

Common options:
  -config string     YAML configuration file
  -log-level string  Log level: debug, info, warn, error
  -change-log string Append changes to this CBOR change log
  -json              Output results as JSON
  -severity string   Only print diagnostics of this severity

Examples:
  sct validate station.scd
  sct bind-ied-names -o bound.scd station.scd
  sct ldepf -settings ldepf.yaml -o wired.scd station.scd
  sct binders -ied IED1 -ld LD1 -pdo Mod -pda stVal station.scd`)
}
