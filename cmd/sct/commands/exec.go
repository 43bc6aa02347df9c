package commands

import (
	"errors"
	"fmt"

	"github.com/sct-tools/sct-go/pkg/extref"
)

// DocumentCommands lists the commands Exec accepts.
var DocumentCommands = []string{
	"validate", "bind-ied-names", "ldepf", "extrefs", "binders",
	extref.OpUpdateBinders, extref.OpUpdateSource, "show", "save",
}

// Exec runs a document command against the session document with the
// session configuration. Flags that select a configuration are rejected.
func (s *Session) Exec(name string, args []string) int {
	fail := func(err error) int {
		fmt.Fprintf(s.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	check := func(o *commonOptions, err error) error {
		if err != nil {
			return err
		}
		return o.sessionOnly()
	}

	switch name {
	case "validate":
		opts, err := parseValidateArgs(args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.Validate(opts)
	case "bind-ied-names":
		opts, err := parseBindArgs(args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.BindIEDNames(opts)
	case "ldepf":
		opts, err := parseLDEPFArgs(args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.LDEPF(opts)
	case "extrefs":
		opts, err := parseExtRefsArgs(args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.ExtRefs(opts)
	case "binders":
		opts, err := parseBindersArgs(args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.Binders(opts)
	case extref.OpUpdateBinders, extref.OpUpdateSource:
		opts, err := parseUpdateArgs(name, args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.Update(name, opts)
	case "show":
		opts, err := parseShowArgs(args, s.Path)
		if err := check(&opts.commonOptions, err); err != nil {
			return fail(err)
		}
		return s.Show(opts)
	case "save":
		if len(args) != 1 {
			return fail(errors.New("usage: save <file.scd>"))
		}
		if err := s.Save(args[0], "save", "saved from shell"); err != nil {
			return fail(err)
		}
		return exitSuccess
	default:
		return fail(fmt.Errorf("unknown command: %s", name))
	}
}
