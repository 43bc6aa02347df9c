package scl

import (
	"errors"
	"fmt"
	"strings"
)

// Data errors.
var (
	ErrDONotFound = errors.New("DO not found")
	ErrDANotFound = errors.New("DA not found")
)

// LN is a logical node. LN0 and plain logical nodes share this type;
// IsLN0 tells them apart.
type LN struct {
	LnClass string `xml:"lnClass,attr"`
	Inst    string `xml:"inst,attr"`
	Prefix  string `xml:"prefix,attr,omitempty"`
	LnType  string `xml:"lnType,attr"`
	Desc    string `xml:"desc,attr,omitempty"`

	Extension
	DataSets             []*DataSet             `xml:"DataSet"`
	ReportControls       []*ReportControl       `xml:"ReportControl"`
	DOIs                 []*DOI                 `xml:"DOI"`
	Inputs               *Inputs                `xml:"Inputs"`
	GSEControls          []*GSEControl          `xml:"GSEControl"`
	SampledValueControls []*SampledValueControl `xml:"SampledValueControl"`
}

// IsLN0 reports whether the node is the default logical node.
func (n *LN) IsLN0() bool {
	return n.LnClass == LLN0
}

// ExtRefs returns the ExtRefs of the node's Inputs.
func (n *LN) ExtRefs() []*ExtRef {
	if n.Inputs == nil {
		return nil
	}
	return n.Inputs.ExtRefs
}

// FindDOI returns the DOI with the given name.
func (n *LN) FindDOI(name string) (*DOI, bool) {
	for _, doi := range n.DOIs {
		if doi.Name == name {
			return doi, true
		}
	}
	return nil, false
}

// DOIByName returns the DOI with the given name or an error wrapping
// ErrDONotFound.
func (n *LN) DOIByName(name string) (*DOI, error) {
	doi, ok := n.FindDOI(name)
	if !ok {
		return nil, fmt.Errorf("%w: DO@name=%s", ErrDONotFound, name)
	}
	return doi, nil
}

// HasControlBlock reports whether the node publishes a control block named
// name of the kind serving st.
func (n *LN) HasControlBlock(name string, st ServiceType) bool {
	switch st {
	case ServiceGOOSE:
		for _, cb := range n.GSEControls {
			if cb.Name == name {
				return true
			}
		}
	case ServiceSMV:
		for _, cb := range n.SampledValueControls {
			if cb.Name == name {
				return true
			}
		}
	case ServiceReport:
		for _, cb := range n.ReportControls {
			if cb.Name == name {
				return true
			}
		}
	}
	return false
}

// DOI is an instantiated data object.
type DOI struct {
	Name string `xml:"name,attr"`
	Desc string `xml:"desc,attr,omitempty"`

	Extension
	SDIs []*SDI `xml:"SDI"`
	DAIs []*DAI `xml:"DAI"`
}

// SDI is an instantiated sub data object or structured attribute.
type SDI struct {
	Name string `xml:"name,attr"`

	Extension
	SDIs []*SDI `xml:"SDI"`
	DAIs []*DAI `xml:"DAI"`
}

// DAI is an instantiated data attribute.
type DAI struct {
	Name    string `xml:"name,attr"`
	ValKind string `xml:"valKind,attr,omitempty"`

	Extension
	Vals []*Val `xml:"Val"`
}

// Val is a DAI value, optionally tied to a setting group.
type Val struct {
	SGroup int    `xml:"sGroup,attr,omitempty"`
	Value  string `xml:",chardata"`
}

// Value returns the first value of the attribute.
func (d *DAI) Value() (string, bool) {
	if len(d.Vals) == 0 {
		return "", false
	}
	return d.Vals[0].Value, true
}

// SetValue replaces all values with v and reports whether anything changed.
func (d *DAI) SetValue(v string) bool {
	if len(d.Vals) == 1 && d.Vals[0].SGroup == 0 && d.Vals[0].Value == v {
		return false
	}
	d.Vals = []*Val{{Value: v}}
	return true
}

// FindDAI resolves a dotted attribute name ("stVal", "origin.orCat")
// through nested SDIs.
func (d *DOI) FindDAI(name string) (*DAI, bool) {
	parts := strings.Split(name, ".")
	sdis, dais := d.SDIs, d.DAIs
	for _, part := range parts[:len(parts)-1] {
		next := findSDI(sdis, part)
		if next == nil {
			return nil, false
		}
		sdis, dais = next.SDIs, next.DAIs
	}
	last := parts[len(parts)-1]
	for _, dai := range dais {
		if dai.Name == last {
			return dai, true
		}
	}
	return nil, false
}

// UpdateDAI writes value into the named attribute. It returns the previous
// value and whether the stored value changed. A missing attribute is an
// error wrapping ErrDANotFound.
func (d *DOI) UpdateDAI(name, value string) (string, bool, error) {
	dai, ok := d.FindDAI(name)
	if !ok {
		return "", false, fmt.Errorf("%w: DO@name=%s/DA@name=%s", ErrDANotFound, d.Name, name)
	}
	old, _ := dai.Value()
	return old, dai.SetValue(value), nil
}

func findSDI(sdis []*SDI, name string) *SDI {
	for _, sdi := range sdis {
		if sdi.Name == name {
			return sdi
		}
	}
	return nil
}
