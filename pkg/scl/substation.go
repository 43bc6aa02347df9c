package scl

// Substation is the root of the functional topology.
type Substation struct {
	Name          string          `xml:"name,attr"`
	Desc          string          `xml:"desc,attr,omitempty"`

	Extension
	VoltageLevels []*VoltageLevel `xml:"VoltageLevel"`
}

// VoltageLevel groups bays of one voltage.
type VoltageLevel struct {
	Name string `xml:"name,attr"`

	Extension
	Bays []*Bay `xml:"Bay"`
}

// Bay is a functional grouping of equipment.
type Bay struct {
	Name     string     `xml:"name,attr"`
	Desc     string     `xml:"desc,attr,omitempty"`
	Privates []*Private `xml:"Private"`

	Extension
}

// CompasBay returns the compas Bay private of the bay.
func (b *Bay) CompasBay() (*CompasBay, bool) {
	for _, p := range b.Privates {
		if p.Type == PrivateBay && p.Bay != nil {
			return p.Bay, true
		}
	}
	return nil, false
}

// Bays returns every bay of the document in document order.
func (d *Document) Bays() []*Bay {
	var out []*Bay
	for _, s := range d.Substations {
		for _, vl := range s.VoltageLevels {
			out = append(out, vl.Bays...)
		}
	}
	return out
}

// FindBayByUUID returns the substation bay whose compas Bay private carries uuid.
func (d *Document) FindBayByUUID(uuid string) (*Bay, bool) {
	if IsBlank(uuid) {
		return nil, false
	}
	for _, bay := range d.Bays() {
		if cb, ok := bay.CompasBay(); ok && cb.UUID == uuid {
			return bay, true
		}
	}
	return nil, false
}
