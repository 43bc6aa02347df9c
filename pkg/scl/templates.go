package scl

import (
	"fmt"
	"strings"
)

// DataTypeTemplates is the shared type catalog of the document.
type DataTypeTemplates struct {
	LNodeTypes []*LNodeType `xml:"LNodeType"`
	DOTypes    []*DOType    `xml:"DOType"`
	DATypes    []*DAType    `xml:"DAType"`
	EnumTypes  []*EnumType  `xml:"EnumType"`

	Extension
}

// LNodeType lists the data objects of a logical node type.
type LNodeType struct {
	ID      string   `xml:"id,attr"`
	LnClass string   `xml:"lnClass,attr"`

	Extension
	DOs []*DODef `xml:"DO"`
}

// DODef is a data object of an LNodeType.
type DODef struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`

	Extension
}

// DOType describes a data object type.
type DOType struct {
	ID   string    `xml:"id,attr"`
	CDC  string    `xml:"cdc,attr"`

	Extension
	SDOs []*SDODef `xml:"SDO"`
	DAs  []*DADef  `xml:"DA"`
}

// SDODef is a sub data object of a DOType.
type SDODef struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`

	Extension
}

// DADef is a data attribute of a DOType.
type DADef struct {
	Name  string `xml:"name,attr"`
	FC    string `xml:"fc,attr"`
	BType string `xml:"bType,attr"`
	Type  string `xml:"type,attr,omitempty"`

	Extension
}

// DAType describes a structured attribute type.
type DAType struct {
	ID string `xml:"id,attr"`

	Extension
	BDAs []*BDADef `xml:"BDA"`
}

// BDADef is a member of a DAType.
type BDADef struct {
	Name  string `xml:"name,attr"`
	BType string `xml:"bType,attr"`
	Type  string `xml:"type,attr,omitempty"`

	Extension
}

// EnumType lists the values of an enumeration.
type EnumType struct {
	ID string `xml:"id,attr"`

	Extension
	EnumVals []*EnumVal `xml:"EnumVal"`
}

// EnumVal is one enumeration literal.
type EnumVal struct {
	Ord   int    `xml:"ord,attr"`
	Value string `xml:",chardata"`
}

// BTypeStruct is the bType of a structured attribute.
const BTypeStruct = "Struct"

// Match describes a resolved pDO/pDA path.
type Match struct {
	DoName string
	DaName string
	CDC    string
	FC     string
	BType  string
}

// ResolutionError reports a malformed signal path or a broken type chain.
type ResolutionError struct {
	LnType string
	PDO    string
	PDA    string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s.%s on LNodeType %q: %s", e.PDO, e.PDA, e.LnType, e.Reason)
}

// FindLNodeType returns the LNodeType with the given id.
func (t *DataTypeTemplates) FindLNodeType(id string) (*LNodeType, bool) {
	for _, lnt := range t.LNodeTypes {
		if lnt.ID == id {
			return lnt, true
		}
	}
	return nil, false
}

// FindDOType returns the DOType with the given id.
func (t *DataTypeTemplates) FindDOType(id string) (*DOType, bool) {
	for _, dot := range t.DOTypes {
		if dot.ID == id {
			return dot, true
		}
	}
	return nil, false
}

// FindDAType returns the DAType with the given id.
func (t *DataTypeTemplates) FindDAType(id string) (*DAType, bool) {
	for _, dat := range t.DATypes {
		if dat.ID == id {
			return dat, true
		}
	}
	return nil, false
}

// ResolveSignal checks whether the LNodeType lnType exposes the data object
// path pDO ("DO" or "DO.SDO...") and, when pDA is not blank, the attribute
// path pDA ("DA" or "DA.BDA...") below it.
//
// A name missing from a type is a non-match (ok false, nil error). A blank
// pDO, an empty path segment, an unknown lnType or a type reference that
// points nowhere is a *ResolutionError.
func (t *DataTypeTemplates) ResolveSignal(lnType, pDO, pDA string) (Match, bool, error) {
	fail := func(reason string) (Match, bool, error) {
		return Match{}, false, &ResolutionError{LnType: lnType, PDO: pDO, PDA: pDA, Reason: reason}
	}

	if IsBlank(pDO) {
		return fail("pDO is blank")
	}
	doPath, ok := splitPath(pDO)
	if !ok {
		return fail("pDO has an empty segment")
	}
	var daPath []string
	if !IsBlank(pDA) {
		if daPath, ok = splitPath(pDA); !ok {
			return fail("pDA has an empty segment")
		}
	}

	lnt, ok := t.FindLNodeType(lnType)
	if !ok {
		return fail("unknown LNodeType")
	}

	var typeID string
	for _, do := range lnt.DOs {
		if do.Name == doPath[0] {
			typeID = do.Type
			break
		}
	}
	if typeID == "" {
		return Match{}, false, nil
	}
	dot, ok := t.FindDOType(typeID)
	if !ok {
		return fail(fmt.Sprintf("DO %q references unknown DOType %q", doPath[0], typeID))
	}

	for _, name := range doPath[1:] {
		var next string
		for _, sdo := range dot.SDOs {
			if sdo.Name == name {
				next = sdo.Type
				break
			}
		}
		if next == "" {
			return Match{}, false, nil
		}
		if dot, ok = t.FindDOType(next); !ok {
			return fail(fmt.Sprintf("SDO %q references unknown DOType %q", name, next))
		}
	}

	m := Match{DoName: pDO, CDC: dot.CDC}
	if len(daPath) == 0 {
		return m, true, nil
	}

	var da *DADef
	for _, d := range dot.DAs {
		if d.Name == daPath[0] {
			da = d
			break
		}
	}
	if da == nil {
		return Match{}, false, nil
	}
	m.DaName = pDA
	m.FC = da.FC
	m.BType = da.BType

	bType, typeRef := da.BType, da.Type
	for _, name := range daPath[1:] {
		if bType != BTypeStruct {
			return Match{}, false, nil
		}
		dat, ok := t.FindDAType(typeRef)
		if !ok {
			return fail(fmt.Sprintf("attribute references unknown DAType %q", typeRef))
		}
		var bda *BDADef
		for _, b := range dat.BDAs {
			if b.Name == name {
				bda = b
				break
			}
		}
		if bda == nil {
			return Match{}, false, nil
		}
		bType, typeRef = bda.BType, bda.Type
	}
	m.BType = bType
	return m, true, nil
}

func splitPath(p string) ([]string, bool) {
	parts := strings.Split(strings.TrimSpace(p), ".")
	for _, part := range parts {
		if part == "" {
			return nil, false
		}
	}
	return parts, true
}
