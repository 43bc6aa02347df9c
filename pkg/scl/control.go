package scl

// DataSet is a named list of published data references.
type DataSet struct {
	Name  string  `xml:"name,attr"`
	FCDAs []*FCDA `xml:"FCDA"`

	Extension
}

// FCDA references one functionally constrained data item.
type FCDA struct {
	LdInst  string `xml:"ldInst,attr,omitempty"`
	Prefix  string `xml:"prefix,attr,omitempty"`
	LnClass string `xml:"lnClass,attr,omitempty"`
	LnInst  string `xml:"lnInst,attr,omitempty"`
	DoName  string `xml:"doName,attr,omitempty"`
	DaName  string `xml:"daName,attr,omitempty"`
	FC      string `xml:"fc,attr"`

	Extension
}

// GSEControl is a GOOSE control block.
type GSEControl struct {
	Name    string `xml:"name,attr"`
	DatSet  string `xml:"datSet,attr,omitempty"`
	AppID   string `xml:"appID,attr"`
	ConfRev int    `xml:"confRev,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`

	Extension
}

// SampledValueControl is a sampled value control block.
type SampledValueControl struct {
	Name    string `xml:"name,attr"`
	DatSet  string `xml:"datSet,attr,omitempty"`
	SmvID   string `xml:"smvID,attr"`
	SmpRate int    `xml:"smpRate,attr,omitempty"`
	NofASDU int    `xml:"nofASDU,attr,omitempty"`
	ConfRev int    `xml:"confRev,attr,omitempty"`

	Extension
}

// ReportControl is a report control block.
type ReportControl struct {
	Name     string `xml:"name,attr"`
	DatSet   string `xml:"datSet,attr,omitempty"`
	RptID    string `xml:"rptID,attr,omitempty"`
	ConfRev  int    `xml:"confRev,attr,omitempty"`
	Buffered bool   `xml:"buffered,attr,omitempty"`

	Extension
}

// ControlBlockRef identifies a control block published by a logical node.
type ControlBlockRef struct {
	ServiceType ServiceType
	Name        string
	DatSet      string
	LnClass     string
}

// ControlBlocks returns the control blocks of every logical node of the
// device, LN0 first.
func (l *LDevice) ControlBlocks() []ControlBlockRef {
	var out []ControlBlockRef
	for _, ln := range l.LNsWithLN0() {
		for _, cb := range ln.GSEControls {
			out = append(out, ControlBlockRef{ServiceType: ServiceGOOSE, Name: cb.Name, DatSet: cb.DatSet, LnClass: ln.LnClass})
		}
		for _, cb := range ln.SampledValueControls {
			out = append(out, ControlBlockRef{ServiceType: ServiceSMV, Name: cb.Name, DatSet: cb.DatSet, LnClass: ln.LnClass})
		}
		for _, cb := range ln.ReportControls {
			out = append(out, ControlBlockRef{ServiceType: ServiceReport, Name: cb.Name, DatSet: cb.DatSet, LnClass: ln.LnClass})
		}
	}
	return out
}
