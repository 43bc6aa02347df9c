package scl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// XML namespaces used by SCL documents.
const (
	// Namespace is the IEC 61850-6 SCL namespace.
	Namespace = "http://www.iec.ch/61850/2003/SCL"

	// CompasNamespace is the namespace of the compas private extensions.
	CompasNamespace = "https://www.lfenergy.org/compas/extension/v1"
)

// Document errors.
var (
	ErrIEDNotFound = errors.New("IED not found")
	ErrNoDocument  = errors.New("no SCL document")
)

// Document is the root SCL element.
type Document struct {
	XMLName  xml.Name `xml:"SCL"`
	Version  string   `xml:"version,attr,omitempty"`
	Revision string   `xml:"revision,attr,omitempty"`
	Release  string   `xml:"release,attr,omitempty"`

	Extension
	Header            *Header            `xml:"Header"`
	Substations       []*Substation      `xml:"Substation"`
	Communication     *Communication     `xml:"Communication"`
	IEDList           []*IED             `xml:"IED"`
	DataTypeTemplates *DataTypeTemplates `xml:"DataTypeTemplates"`
}

// Header carries the document identity and its modification history.
type Header struct {
	ID       string   `xml:"id,attr"`
	Version  string   `xml:"version,attr,omitempty"`
	Revision string   `xml:"revision,attr,omitempty"`
	ToolID   string   `xml:"toolID,attr,omitempty"`

	Extension
	History *History `xml:"History"`
}

// History is the ordered list of history items.
type History struct {
	Items []*Hitem `xml:"Hitem"`
}

// Hitem records one modification of the document.
type Hitem struct {
	Version  string `xml:"version,attr"`
	Revision string `xml:"revision,attr"`
	When     string `xml:"when,attr"`
	Who      string `xml:"who,attr,omitempty"`
	What     string `xml:"what,attr,omitempty"`
	Why      string `xml:"why,attr,omitempty"`
}

// AddHistoryItem appends a history item stamped with the header's current
// version and revision.
func (h *Header) AddHistoryItem(who, what, why string) *Hitem {
	item := &Hitem{
		Version:  h.Version,
		Revision: h.Revision,
		When:     time.Now().Format(time.RFC3339),
		Who:      who,
		What:     what,
		Why:      why,
	}
	if h.History == nil {
		h.History = &History{}
	}
	h.History.Items = append(h.History.Items, item)
	return item
}

// Parse decodes an SCL document.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode SCL: %w", err)
	}
	return &doc, nil
}

// ParseFile reads and decodes the SCL document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Encode writes the document as indented XML, together with the content
// the model does not decode.
func (d *Document) Encode(w io.Writer) error {
	d.XMLName = xml.Name{Space: Namespace, Local: "SCL"}
	if !declaresCompas(d.Attrs) {
		d.Attrs = append(d.Attrs, Attr{Name: xml.Name{Space: xmlnsSpace, Local: "compas"}, Value: CompasNamespace})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode SCL: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile encodes the document into the file at path.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IEDs returns the IEDs in document order.
func (d *Document) IEDs() []*IED {
	return d.IEDList
}

// IEDByName returns the IED with the given name.
func (d *Document) IEDByName(name string) (*IED, error) {
	for _, ied := range d.IEDList {
		if ied.Name == name {
			return ied, nil
		}
	}
	return nil, fmt.Errorf("%w: IED.name %q", ErrIEDNotFound, name)
}

// Templates returns the type catalog, creating an empty one when the
// document has none.
func (d *Document) Templates() *DataTypeTemplates {
	if d.DataTypeTemplates == nil {
		d.DataTypeTemplates = &DataTypeTemplates{}
	}
	return d.DataTypeTemplates
}
