package scl

import (
	"encoding/xml"
	"strings"
)

// ServiceType is the ExtRef service type (serviceType and pServT).
type ServiceType string

// Service types.
const (
	ServiceGOOSE  ServiceType = "GOOSE"
	ServiceSMV    ServiceType = "SMV"
	ServiceReport ServiceType = "Report"
	ServicePoll   ServiceType = "Poll"
)

// String returns the attribute value.
func (s ServiceType) String() string {
	return string(s)
}

// LNClassList is a space separated lnClass attribute.
type LNClassList []string

// MarshalXMLAttr implements xml.MarshalerAttr.
func (l LNClassList) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if len(l) == 0 {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: strings.Join(l, " ")}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (l *LNClassList) UnmarshalXMLAttr(attr xml.Attr) error {
	*l = strings.Fields(attr.Value)
	return nil
}

// First returns the first class, or "" for an empty list.
func (l LNClassList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Contains reports whether class is in the list.
func (l LNClassList) Contains(class string) bool {
	for _, c := range l {
		if c == class {
			return true
		}
	}
	return false
}

// Inputs holds the ExtRefs of a logical node and the compas:Flow privates
// describing them.
type Inputs struct {
	Privates []*Private `xml:"Private"`

	Extension
	ExtRefs []*ExtRef `xml:"ExtRef"`
}

// Flows returns every compas:Flow carried by the Inputs privates.
func (in *Inputs) Flows() []*Flow {
	var out []*Flow
	for _, p := range in.Privates {
		if p.Type == PrivateFlow {
			out = append(out, p.Flows...)
		}
	}
	return out
}

// FlowsFor returns the flows whose dataStreamKey equals desc.
func (in *Inputs) FlowsFor(desc string) []*Flow {
	var out []*Flow
	for _, f := range in.Flows() {
		if f.DataStreamKey == desc {
			out = append(out, f)
		}
	}
	return out
}

// ExtRef is an external signal reference.
//
// Desc, IntAddr and the p* fields form the signal descriptor. IEDName,
// LdInst, Prefix, LnClass, LnInst, DoName, DaName and ServiceType are the
// binding. The src* fields name the control block feeding the signal.
type ExtRef struct {
	Desc        string      `xml:"desc,attr,omitempty"`
	IEDName     string      `xml:"iedName,attr,omitempty"`
	LdInst      string      `xml:"ldInst,attr,omitempty"`
	Prefix      *string     `xml:"prefix,attr,omitempty"`
	LnClass     LNClassList `xml:"lnClass,attr,omitempty"`
	LnInst      string      `xml:"lnInst,attr,omitempty"`
	DoName      string      `xml:"doName,attr,omitempty"`
	DaName      string      `xml:"daName,attr,omitempty"`
	IntAddr     string      `xml:"intAddr,attr,omitempty"`
	ServiceType ServiceType `xml:"serviceType,attr,omitempty"`
	SrcLDInst   string      `xml:"srcLDInst,attr,omitempty"`
	SrcPrefix   *string     `xml:"srcPrefix,attr,omitempty"`
	SrcLNClass  LNClassList `xml:"srcLNClass,attr,omitempty"`
	SrcLNInst   string      `xml:"srcLNInst,attr,omitempty"`
	SrcCBName   string      `xml:"srcCBName,attr,omitempty"`
	PServT      ServiceType `xml:"pServT,attr,omitempty"`
	PLN         string      `xml:"pLN,attr,omitempty"`
	PDO         string      `xml:"pDO,attr,omitempty"`
	PDA         string      `xml:"pDA,attr,omitempty"`

	Extension
}

// IsBound reports whether the ExtRef names a source IED.
func (e *ExtRef) IsBound() bool {
	return !IsBlank(e.IEDName)
}

// HasBinding reports whether any binding field is set.
func (e *ExtRef) HasBinding() bool {
	return e.IEDName != "" || e.LdInst != "" || e.Prefix != nil || len(e.LnClass) > 0 ||
		e.LnInst != "" || e.DoName != "" || e.DaName != ""
}

// HasSource reports whether any src* field is set.
func (e *ExtRef) HasSource() bool {
	return e.SrcLDInst != "" || e.SrcPrefix != nil || len(e.SrcLNClass) > 0 ||
		e.SrcLNInst != "" || e.SrcCBName != ""
}

// ClearBinding unsets every binding field. The service type is kept.
func (e *ExtRef) ClearBinding() {
	e.IEDName = ""
	e.LdInst = ""
	e.Prefix = nil
	e.LnClass = nil
	e.LnInst = ""
	e.DoName = ""
	e.DaName = ""
}

// ClearSource unsets every src* field.
func (e *ExtRef) ClearSource() {
	e.SrcLDInst = ""
	e.SrcPrefix = nil
	e.SrcLNClass = nil
	e.SrcLNInst = ""
	e.SrcCBName = ""
}

// MatchesSignal reports whether the ExtRef carries the given signal
// descriptor. Blank fields are equal to each other.
func (e *ExtRef) MatchesSignal(desc, intAddr, pLN, pDO, pDA string, pServT ServiceType) bool {
	return EqualsOrBothBlank(e.Desc, desc) &&
		EqualsOrBothBlank(e.IntAddr, intAddr) &&
		EqualsOrBothBlank(e.PLN, pLN) &&
		EqualsOrBothBlank(e.PDO, pDO) &&
		EqualsOrBothBlank(e.PDA, pDA) &&
		EqualsOrBothBlank(string(e.PServT), string(pServT))
}
