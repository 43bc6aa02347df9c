package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sct-tools/sct-go/pkg/netsettings"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	commonOptions
	Network string
	Format  string // text, json, yaml
}

// ShowOutput summarizes a document.
type ShowOutput struct {
	File        string             `json:"file,omitempty" yaml:"file,omitempty"`
	HeaderID    string             `json:"headerId,omitempty" yaml:"headerId,omitempty"`
	Bays        []string           `json:"bays,omitempty" yaml:"bays,omitempty"`
	SubNetworks []SubNetworkOutput `json:"subNetworks,omitempty" yaml:"subNetworks,omitempty"`
	IEDs        []IEDOutput        `json:"ieds" yaml:"ieds"`
}

// SubNetworkOutput describes one subnetwork. Error is set when the type is
// not a known SubNetwork type.
type SubNetworkOutput struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// IEDOutput summarizes one IED.
type IEDOutput struct {
	Name        string          `json:"name" yaml:"name"`
	Type        string          `json:"type,omitempty" yaml:"type,omitempty"`
	UUID        string          `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Bay         string          `json:"bay,omitempty" yaml:"bay,omitempty"`
	SubNetworks []string        `json:"subNetworks,omitempty" yaml:"subNetworks,omitempty"`
	LDevices    []LDeviceOutput `json:"ldevices" yaml:"ldevices"`
}

// LDeviceOutput summarizes one logical device.
type LDeviceOutput struct {
	Inst          string               `json:"inst" yaml:"inst"`
	Status        string               `json:"status,omitempty" yaml:"status,omitempty"`
	ExtRefs       int                  `json:"extRefs" yaml:"extRefs"`
	Bound         int                  `json:"bound" yaml:"bound"`
	ControlBlocks []ControlBlockOutput `json:"controlBlocks,omitempty" yaml:"controlBlocks,omitempty"`
}

// ControlBlockOutput describes one published control block and the
// network settings it would receive.
type ControlBlockOutput struct {
	Type    string                       `json:"type" yaml:"type"`
	Name    string                       `json:"name" yaml:"name"`
	DatSet  string                       `json:"datSet,omitempty" yaml:"datSet,omitempty"`
	Network *netsettings.SettingsOrError `json:"network,omitempty" yaml:"network,omitempty"`
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printShowUsage(stderr)
		return exitCommandError
	}
	return runFromFile(&opts.commonOptions, stdout, stderr, func(s *Session) int {
		return s.Show(opts)
	})
}

// Show prints a summary of the session document.
func (s *Session) Show(opts ShowOptions) int {
	var provider netsettings.Provider
	path := opts.Network
	if path == "" {
		path = s.Config.Network
	}
	if path != "" {
		table, err := netsettings.LoadFile(path)
		if err != nil {
			fmt.Fprintf(s.Stderr, "Error: %v\n", err)
			return exitCommandError
		}
		provider = table
	}

	output := buildShowOutput(s.Doc, provider)
	output.File = s.Path

	switch opts.Format {
	case "json":
		printJSON(s.Stdout, output)
	case "yaml":
		data, _ := yaml.Marshal(output)
		fmt.Fprint(s.Stdout, string(data))
	case "", "text":
		printShowText(s.Stdout, output)
	default:
		fmt.Fprintf(s.Stderr, "Error: unknown format: %s (supported: text, json, yaml)\n", opts.Format)
		return exitCommandError
	}
	return exitSuccess
}

func buildShowOutput(doc *scl.Document, provider netsettings.Provider) ShowOutput {
	var out ShowOutput
	if doc.Header != nil {
		out.HeaderID = doc.Header.ID
	}
	for _, bay := range doc.Bays() {
		out.Bays = append(out.Bays, bay.Name)
	}

	if doc.Communication != nil {
		for _, sn := range doc.Communication.SubNetworks {
			sno := SubNetworkOutput{Name: sn.Name, Type: string(sn.Type)}
			if sn.Type != "" {
				if _, err := scl.ParseSubNetworkType(sno.Type); err != nil {
					sno.Error = err.Error()
				}
			}
			out.SubNetworks = append(out.SubNetworks, sno)
		}
	}

	out.IEDs = make([]IEDOutput, 0, len(doc.IEDs()))
	for _, ied := range doc.IEDs() {
		iedOut := IEDOutput{Name: ied.Name, SubNetworks: doc.SubNetworksOf(ied.Name)}
		if hdr, ok := ied.ICDHeader(); ok {
			iedOut.Type = hdr.IEDType
			iedOut.UUID = hdr.ICDSystemVersionUUID
		}
		if bay, ok := ied.CompasBay(); ok {
			iedOut.Bay = bay.UUID
		}
		for _, ld := range ied.LDevices() {
			iedOut.LDevices = append(iedOut.LDevices, buildLDeviceOutput(ied, ld, provider))
		}
		out.IEDs = append(out.IEDs, iedOut)
	}
	return out
}

func buildLDeviceOutput(ied *scl.IED, ld *scl.LDevice, provider netsettings.Provider) LDeviceOutput {
	out := LDeviceOutput{Inst: ld.Inst}
	out.Status, _ = ld.Status()
	for _, ln := range ld.LNsWithLN0() {
		for _, e := range ln.ExtRefs() {
			out.ExtRefs++
			if e.IsBound() {
				out.Bound++
			}
		}
	}
	for _, cb := range ld.ControlBlocks() {
		cbo := ControlBlockOutput{Type: cb.ServiceType.String(), Name: cb.Name, DatSet: cb.DatSet}
		if cbType, ok := netsettings.CBTypeFor(cb.ServiceType); ok && provider != nil {
			settings := provider.Settings(cbType, ied, ld.Inst, cb.Name)
			cbo.Network = &settings
		}
		out.ControlBlocks = append(out.ControlBlocks, cbo)
	}
	return out
}

func printShowText(w io.Writer, out ShowOutput) {
	fmt.Fprintf(w, "File: %s\n", out.File)
	if out.HeaderID != "" {
		fmt.Fprintf(w, "Header: %s\n", out.HeaderID)
	}
	if len(out.Bays) > 0 {
		fmt.Fprintf(w, "Bays: %s\n", strings.Join(out.Bays, ", "))
	}
	for _, sn := range out.SubNetworks {
		fmt.Fprintf(w, "SubNetwork %s", sn.Name)
		if sn.Type != "" {
			fmt.Fprintf(w, " (%s)", sn.Type)
		}
		if sn.Error != "" {
			fmt.Fprintf(w, " %s", sn.Error)
		}
		fmt.Fprintln(w)
	}
	for _, ied := range out.IEDs {
		fmt.Fprintf(w, "\nIED %s", ied.Name)
		if ied.Type != "" {
			fmt.Fprintf(w, " (%s)", ied.Type)
		}
		fmt.Fprintln(w)
		if ied.UUID != "" {
			fmt.Fprintf(w, "  UUID: %s\n", ied.UUID)
		}
		if ied.Bay != "" {
			fmt.Fprintf(w, "  Bay: %s\n", ied.Bay)
		}
		if len(ied.SubNetworks) > 0 {
			fmt.Fprintf(w, "  SubNetworks: %s\n", strings.Join(ied.SubNetworks, ", "))
		}
		for _, ld := range ied.LDevices {
			status := ld.Status
			if status == "" {
				status = "-"
			}
			fmt.Fprintf(w, "  LDevice %s [%s] ExtRefs: %d (%d bound)\n", ld.Inst, status, ld.ExtRefs, ld.Bound)
			for _, cb := range ld.ControlBlocks {
				fmt.Fprintf(w, "    %s %s", cb.Type, cb.Name)
				if cb.Network != nil {
					if cb.Network.OK() {
						fmt.Fprintf(w, " appId %d-%d mac %s-%s",
							cb.Network.Ranges.AppIDStart, cb.Network.Ranges.AppIDEnd,
							cb.Network.Ranges.MacStart, cb.Network.Ranges.MacEnd)
						if v := cb.Network.Settings.VlanID; v != nil {
							fmt.Fprintf(w, " vlan %d", *v)
						}
					} else {
						fmt.Fprintf(w, " (%s)", cb.Network.Err)
					}
				}
				fmt.Fprintln(w)
			}
		}
	}
}

func parseShowArgs(args []string, file string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts := ShowOptions{commonOptions: commonOptions{File: file}}
	opts.register(fs)
	fs.StringVar(&opts.Network, "network", "", "Network settings YAML file")
	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	err := parseArgs(fs, &opts.commonOptions, args)
	if opts.JSON {
		opts.Format = "json"
	}
	return opts, err
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sct show [options] <file.scd>

Options:
  -format string   Output format: text, json, yaml (default "text")
  -network string  Network settings YAML file; shows the addressing of
                   every GOOSE and SV control block`)
}
