package scl

import "encoding/xml"

// Private types of the compas extensions.
const (
	PrivateICDHeader = "COMPAS-ICDHeader"
	PrivateBay       = "COMPAS-Bay"
	PrivateFlow      = "COMPAS-Flow"
)

// Private is an SCL Private element. The compas payloads used by the
// binding engine are decoded; any other Private is written back from its
// raw content.
type Private struct {
	Type      string     `xml:"type,attr"`
	Source    string     `xml:"source,attr,omitempty"`
	Attrs     []Attr     `xml:",any,attr"`
	ICDHeader *ICDHeader `xml:"https://www.lfenergy.org/compas/extension/v1 ICDHeader,omitempty"`
	Bay       *CompasBay `xml:"https://www.lfenergy.org/compas/extension/v1 Bay,omitempty"`
	Flows     []*Flow    `xml:"https://www.lfenergy.org/compas/extension/v1 Flow,omitempty"`

	// Raw is the content as read. It is only written when no compas
	// payload is decoded.
	Raw []byte `xml:",innerxml"`
}

// decoded reports whether p carries a compas payload of the model.
func (p *Private) decoded() bool {
	return p.ICDHeader != nil || p.Bay != nil || len(p.Flows) > 0
}

// MarshalXML implements xml.Marshaler.
func (p Private) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type plain Private
	out := plain(p)
	if p.decoded() {
		out.Raw = nil
	}
	return e.EncodeElement(out, start)
}

// ICDHeader is the compas identity header of an IED.
type ICDHeader struct {
	ICDSystemVersionUUID     string `xml:"ICDSystemVersionUUID,attr"`
	IEDType                  string `xml:"IEDType,attr,omitempty"`
	IEDSubstationInstance    string `xml:"IEDSubstationinstance,attr,omitempty"`
	IEDSystemVersionInstance string `xml:"IEDSystemVersioninstance,attr,omitempty"`
	IEDName                  string `xml:"IEDName,attr"`
	BayLabel                 string `xml:"BayLabel,attr,omitempty"`
	VendorName               string `xml:"VendorName,attr,omitempty"`
	IEDRedundancy            string `xml:"IEDredundancy,attr,omitempty"`
	IEDModel                 string `xml:"IEDmodel,attr,omitempty"`
	HwRev                    string `xml:"hwRev,attr,omitempty"`
	SwRev                    string `xml:"swRev,attr,omitempty"`
	HeaderID                 string `xml:"headerId,attr,omitempty"`
	HeaderVersion            string `xml:"headerVersion,attr,omitempty"`
	HeaderRevision           string `xml:"headerRevision,attr,omitempty"`

	Attrs []Attr `xml:",any,attr"`
}

// CompasBay ties an IED or a substation bay to a bay identity.
type CompasBay struct {
	UUID             string `xml:"UUID,attr"`
	BayCodif         string `xml:"BayCodif,attr,omitempty"`
	Version          string `xml:"Version,attr,omitempty"`
	MainShortLabel   string `xml:"MainShortLabel,attr,omitempty"`
	SecondShortLabel string `xml:"SecondShortLabel,attr,omitempty"`

	Attrs []Attr `xml:",any,attr"`
}

// FlowStatus is the compas:Flow FlowStatus attribute.
type FlowStatus string

// Flow statuses.
const (
	FlowActive   FlowStatus = "ACTIVE"
	FlowInactive FlowStatus = "INACTIVE"
	FlowUntested FlowStatus = "UNTESTED"
)

// FlowKind is the compas:Flow FlowKind attribute.
type FlowKind string

// Flow kinds.
const (
	FlowBayInternal FlowKind = "BAY_INTERNAL"
	FlowBayExternal FlowKind = "BAY_EXTERNAL"
)

// Flow describes the intended source of one ExtRef, keyed by the ExtRef desc.
// ExtRefIEDName holds the source ICDSystemVersionUUID before binding and
// the source IED name after.
type Flow struct {
	DataStreamKey                string     `xml:"dataStreamKey,attr"`
	ExtRefIEDName                string     `xml:"ExtRefiedName,attr,omitempty"`
	ExtRefLdInst                 string     `xml:"ExtRefldinst,attr,omitempty"`
	ExtRefLnClass                string     `xml:"ExtReflnClass,attr,omitempty"`
	ExtRefLnInst                 string     `xml:"ExtReflnInst,attr,omitempty"`
	ExtRefPrefix                 string     `xml:"ExtRefprefix,attr,omitempty"`
	FlowSourceIEDType            string     `xml:"FlowSourceIEDType,attr,omitempty"`
	FlowSourceIEDRedundancy      string     `xml:"FlowSourceIEDredundancy,attr,omitempty"`
	FlowIEDSystemVersionInstance string     `xml:"FlowIEDSystemVersioninstance,attr,omitempty"`
	FlowSourceBayCode            string     `xml:"FlowSourceBayCode,attr,omitempty"`
	FlowStatus                   FlowStatus `xml:"FlowStatus,attr"`
	FlowKind                     FlowKind   `xml:"FlowKind,attr,omitempty"`
	FlowID                       string     `xml:"FlowID,attr,omitempty"`

	Attrs []Attr `xml:",any,attr"`
}
