package ldepf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sct-tools/sct-go/pkg/scl"
)

// Table errors.
var (
	ErrInvalidSignalType = errors.New("invalid channel signal type")
	ErrInvalidBayScope   = errors.New("invalid bay scope")
	ErrMissingField      = errors.New("missing required field")
)

// Table is a Settings implementation backed by a list of rows.
type Table struct {
	Settings []*Setting `yaml:"settings"`
}

// Load decodes a YAML settings table.
func Load(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return &t, nil
		}
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	for i, s := range t.Settings {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("setting %d: %w", i+1, err)
		}
	}
	return &t, nil
}

// LoadFile reads the YAML settings table at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// validate checks the fields the engine needs. The channel numbers are
// passed through as given.
func (s *Setting) validate() error {
	switch s.ChannelSignalType {
	case SignalDigital, SignalAnalog:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSignalType, s.ChannelSignalType)
	}
	switch s.BayScope {
	case "":
		s.BayScope = BayAll
	case BayInternal, BayExternal, BayAll:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBayScope, s.BayScope)
	}
	required := []struct{ name, value string }{
		{"ldInst", s.LdInst},
		{"lnClass", s.LnClass},
		{"doName", s.DoName},
	}
	for _, f := range required {
		if scl.IsBlank(f.value) {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// MatchSetting returns the first row whose desc prefix starts the ExtRef
// desc and whose source coordinates agree with the ExtRef pLN, pDO and pDA
// when those are set.
func (t *Table) MatchSetting(extRef *scl.ExtRef) (*Setting, bool) {
	for _, s := range t.Settings {
		prefix, ok := s.DescPrefix()
		if !ok || !strings.HasPrefix(extRef.Desc, prefix) {
			continue
		}
		if !scl.IsBlank(extRef.PLN) && extRef.PLN != s.LnClass {
			continue
		}
		if !scl.IsBlank(extRef.PDO) && extRef.PDO != s.ResolvedDoName() {
			continue
		}
		if !scl.IsBlank(extRef.PDA) && extRef.PDA != s.DaName {
			continue
		}
		return s, true
	}
	return nil, false
}

// IEDSources returns, in document order, the IEDs whose ICDHeader matches
// the row, whose bay satisfies the row's scope and which hold an enabled
// LDevice setting.LdInst.
func (t *Table) IEDSources(doc *scl.Document, bay *scl.CompasBay, setting *Setting) []*scl.IED {
	var out []*scl.IED
	for _, ied := range doc.IEDs() {
		hdr, ok := ied.ICDHeader()
		if !ok {
			continue
		}
		if !matchOrAny(setting.IEDType, hdr.IEDType) ||
			!matchOrAny(setting.IEDRedundancy, hdr.IEDRedundancy) ||
			!matchOrAny(setting.IEDInstance, hdr.IEDSystemVersionInstance) {
			continue
		}
		if !inScope(setting.BayScope, bay, ied) {
			continue
		}
		ld, ok := ied.FindLDevice(setting.LdInst)
		if !ok || !ld.IsOn() {
			continue
		}
		out = append(out, ied)
	}
	return out
}

func matchOrAny(want, got string) bool {
	return scl.IsBlank(want) || want == got
}

func inScope(scope BayScope, bay *scl.CompasBay, ied *scl.IED) bool {
	if scope == BayAll || scope == "" {
		return true
	}
	iedBay, ok := ied.CompasBay()
	if !ok || bay == nil {
		return false
	}
	same := iedBay.UUID == bay.UUID
	if scope == BayInternal {
		return same
	}
	return !same
}

// Compile-time interface satisfaction check.
var _ Settings = (*Table)(nil)
