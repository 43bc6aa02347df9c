package scl

import "encoding/xml"

// xmlnsSpace is the space the decoder gives to namespace declarations.
const xmlnsSpace = "xmlns"

// Extension holds the attributes and child elements a model type does not
// decode. Model types embed it so that unknown content is written back.
//
// Captured elements are written after the decoded elements of the same
// parent that precede the embedding point in the struct. Their own content
// is kept byte for byte.
type Extension struct {
	Attrs    []Attr       `xml:",any,attr"`
	Elements []AnyElement `xml:",any"`
}

// Attr is an attribute kept verbatim.
type Attr xml.Attr

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (a *Attr) UnmarshalXMLAttr(attr xml.Attr) error {
	*a = Attr(attr)
	return nil
}

// MarshalXMLAttr implements xml.MarshalerAttr. Namespace declarations keep
// their prefix; a default namespace declaration is dropped because the
// element name carries it.
func (a Attr) MarshalXMLAttr(xml.Name) (xml.Attr, error) {
	return outAttr(xml.Attr(a)), nil
}

// AnyElement is an element the model does not decode.
type AnyElement struct {
	XMLName xml.Name
	Attrs   []Attr `xml:",any,attr"`
	Inner   []byte `xml:",innerxml"`
}

type rawContent struct {
	Inner []byte `xml:",innerxml"`
}

// MarshalXML implements xml.Marshaler.
func (a AnyElement) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: outName(a.XMLName)}
	for _, attr := range a.Attrs {
		if out := outAttr(xml.Attr(attr)); out.Name.Local != "" {
			start.Attr = append(start.Attr, out)
		}
	}
	return e.EncodeElement(rawContent{Inner: a.Inner}, start)
}

// outName maps a decoded element name back to its document form. SCL
// elements inherit the default namespace and compas elements use the
// compas prefix declared on the root.
func outName(n xml.Name) xml.Name {
	switch n.Space {
	case "", Namespace:
		return xml.Name{Local: n.Local}
	case CompasNamespace:
		return xml.Name{Local: "compas:" + n.Local}
	}
	return n
}

func outAttr(a xml.Attr) xml.Attr {
	switch {
	case a.Name.Space == xmlnsSpace:
		return xml.Attr{Name: xml.Name{Local: "xmlns:" + a.Name.Local}, Value: a.Value}
	case a.Name.Space == "" && a.Name.Local == xmlnsSpace:
		return xml.Attr{}
	case a.Name.Space == CompasNamespace:
		return xml.Attr{Name: xml.Name{Local: "compas:" + a.Name.Local}, Value: a.Value}
	}
	return a
}

// declaresCompas reports whether attrs bind the compas prefix.
func declaresCompas(attrs []Attr) bool {
	for _, a := range attrs {
		if a.Name.Space == xmlnsSpace && a.Name.Local == "compas" {
			return true
		}
	}
	return false
}
