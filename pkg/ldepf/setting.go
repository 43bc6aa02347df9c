// Package ldepf provides the settings table that drives the LDEPF
// auto-wiring engine.
//
// Each row of the table describes one channel of the LDEPF logical device:
// which ExtRef it applies to (by desc prefix and signal descriptor), which
// source logical node it binds to, and which values the channel logical
// nodes receive.
package ldepf

import (
	"strconv"

	"github.com/sct-tools/sct-go/pkg/scl"
)

// SignalType is the channel signal type.
type SignalType string

// Signal types.
const (
	SignalDigital SignalType = "DIGITAL"
	SignalAnalog  SignalType = "ANALOG"
)

// BayScope restricts which IEDs may serve as source relative to the bay of
// the LDEPF holder.
type BayScope string

// Bay scopes.
const (
	BayInternal BayScope = "BAY_INTERNAL"
	BayExternal BayScope = "BAY_EXTERNAL"
	BayAll      BayScope = "ALL"
)

// DescPrefix is the desc prefix of every ExtRef handled by the LDEPF engine.
const DescPrefix = "DYN_LDEPF_"

// Setting is one row of the LDEPF table.
type Setting struct {
	ChannelSignalType SignalType `yaml:"channelSignalType"`
	ChannelDigitalNum *int       `yaml:"channelDigitalNum,omitempty"`
	ChannelAnalogNum  *int       `yaml:"channelAnalogNum,omitempty"`
	ChannelShortLabel string     `yaml:"channelShortLabel"`
	ChannelMC         string     `yaml:"channelMC,omitempty"`
	ChannelLevMod     string     `yaml:"channelLevMod"`
	ChannelLevModQ    string     `yaml:"channelLevModQ"`

	LdInst   string  `yaml:"ldInst"`
	LnPrefix *string `yaml:"lnPrefix,omitempty"`
	LnClass  string  `yaml:"lnClass"`
	LnInst   string  `yaml:"lnInst"`
	DoName   string  `yaml:"doName"`
	DoInst   string  `yaml:"doInst,omitempty"`
	DaName   string  `yaml:"daName"`

	IEDType       string   `yaml:"iedType,omitempty"`
	IEDRedundancy string   `yaml:"iedRedundancy,omitempty"`
	IEDInstance   string   `yaml:"iedInstance,omitempty"`
	BayScope      BayScope `yaml:"bayScope,omitempty"`
}

// ResolvedDoName returns the data object name with its instance suffix.
// An empty, blank or "0" instance is implicit and adds nothing.
func (s *Setting) ResolvedDoName() string {
	if scl.IsBlank(s.DoInst) || s.DoInst == "0" {
		return s.DoName
	}
	return s.DoName + s.DoInst
}

// IsDigital reports whether only the digital channel number is set.
func (s *Setting) IsDigital() bool {
	return s.ChannelDigitalNum != nil && s.ChannelAnalogNum == nil
}

// IsAnalog reports whether only the analog channel number is set.
func (s *Setting) IsAnalog() bool {
	return s.ChannelDigitalNum == nil && s.ChannelAnalogNum != nil
}

// Channel returns the channel number selected by the signal type.
func (s *Setting) Channel() (int, bool) {
	var n *int
	switch s.ChannelSignalType {
	case SignalDigital:
		n = s.ChannelDigitalNum
	case SignalAnalog:
		n = s.ChannelAnalogNum
	}
	if n == nil {
		return 0, false
	}
	return *n, true
}

// DescPrefix returns the ExtRef desc prefix the row applies to, for example
// "DYN_LDEPF_DIGITAL CHANNEL 3_".
func (s *Setting) DescPrefix() (string, bool) {
	n, ok := s.Channel()
	if !ok {
		return "", false
	}
	return DescPrefix + string(s.ChannelSignalType) + " CHANNEL " + strconv.Itoa(n) + "_", true
}

// Settings is the settings provider consumed by the LDEPF engine.
type Settings interface {
	// MatchSetting returns the row that applies to extRef.
	MatchSetting(extRef *scl.ExtRef) (*Setting, bool)

	// IEDSources returns the IEDs able to serve as source for setting, seen
	// from an LDEPF holder located in bay.
	IEDSources(doc *scl.Document, bay *scl.CompasBay, setting *Setting) []*scl.IED
}
