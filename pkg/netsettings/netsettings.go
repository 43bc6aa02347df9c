// Package netsettings defines the addressing parameters given to control
// blocks and a table-backed provider for them.
//
// The allocation of addresses inside the ranges is out of scope; the
// provider only hands out the VLAN settings and ranges configured per
// control block type.
package netsettings

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sct-tools/sct-go/pkg/scl"
)

// ErrInvalidRange is returned for a range whose start is after its end.
var ErrInvalidRange = errors.New("invalid range")

// CBType is the control block type addressed by the provider.
type CBType string

// Control block types.
const (
	CBTypeGOOSE CBType = "GOOSE"
	CBTypeSV    CBType = "SV"
)

// CBTypeFor maps an ExtRef service type to a control block type.
func CBTypeFor(st scl.ServiceType) (CBType, bool) {
	switch st {
	case scl.ServiceGOOSE:
		return CBTypeGOOSE, true
	case scl.ServiceSMV:
		return CBTypeSV, true
	}
	return "", false
}

// Settings are the VLAN parameters of a control block.
type Settings struct {
	VlanID       *int   `yaml:"vlanId,omitempty" json:"vlanId,omitempty"`
	VlanPriority *uint8 `yaml:"vlanPriority,omitempty" json:"vlanPriority,omitempty"`
}

// Ranges are the APPID and MAC address ranges of a control block type.
type Ranges struct {
	AppIDStart uint16 `yaml:"appIdStart" json:"appIdStart"`
	AppIDEnd   uint16 `yaml:"appIdEnd" json:"appIdEnd"`
	MacStart   string `yaml:"macStart" json:"macStart"`
	MacEnd     string `yaml:"macEnd" json:"macEnd"`
}

// SettingsOrError carries either settings and ranges or an error message.
type SettingsOrError struct {
	Settings *Settings `json:"settings,omitempty"`
	Ranges   *Ranges   `json:"ranges,omitempty"`
	Err      string    `json:"error,omitempty"`
}

// OK reports whether the result carries settings.
func (s SettingsOrError) OK() bool {
	return s.Err == "" && s.Settings != nil
}

// Provider hands out network settings per control block.
type Provider interface {
	Settings(cbType CBType, ied *scl.IED, ldInst, cbName string) SettingsOrError
}

// Entry is the table row of one control block type.
type Entry struct {
	Settings `yaml:",inline"`
	Ranges   Ranges `yaml:"ranges"`
}

// Table is a Provider keyed by control block type.
type Table map[CBType]*Entry

// Load decodes a YAML network settings table.
func Load(r io.Reader) (Table, error) {
	t := Table{}
	if err := yaml.NewDecoder(r).Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	for cbType, e := range t {
		if e == nil {
			continue
		}
		if e.Ranges.AppIDStart > e.Ranges.AppIDEnd {
			return nil, fmt.Errorf("%s: %w: appId %d > %d", cbType, ErrInvalidRange, e.Ranges.AppIDStart, e.Ranges.AppIDEnd)
		}
	}
	return t, nil
}

// LoadFile reads the YAML network settings table at path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Settings returns the entry configured for cbType.
func (t Table) Settings(cbType CBType, ied *scl.IED, ldInst, cbName string) SettingsOrError {
	e, ok := t[cbType]
	if !ok || e == nil {
		return SettingsOrError{Err: fmt.Sprintf("no network settings for %s control block %s/%s/%s", cbType, ied.Name, ldInst, cbName)}
	}
	s := e.Settings
	r := e.Ranges
	return SettingsOrError{Settings: &s, Ranges: &r}
}

// Compile-time interface satisfaction check.
var _ Provider = Table(nil)
