package extref

import (
	"fmt"
	"strings"

	"github.com/sct-tools/sct-go/pkg/report"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// Identity diagnostics.
var (
	msgNoICDHeader        = fmt.Sprintf("IED has no Private %s element", scl.PrivateICDHeader)
	msgIncompleteHeader   = fmt.Sprintf("IED private %s as no icdSystemVersionUUID or iedName attribute", scl.PrivateICDHeader)
	msgDuplicateSystemVer = "/IED/Private/compas:ICDHeader[@ICDSystemVersionUUID] must be unique but the same ICDSystemVersionUUID was found on several IED."
)

// ValidateIEDs checks that every IED carries a complete compas ICDHeader
// and that non-blank ICDSystemVersionUUID values are unique. An empty
// result means the document is safe to auto-bind.
//
// Fatal items per IED come first, in document order, followed by one error
// per duplicated UUID in order of first appearance.
func ValidateIEDs(doc *scl.Document) []report.Item {
	var items []report.Item

	groups := make(map[string][]*scl.IED)
	var order []string

	for _, ied := range doc.IEDs() {
		hdr, ok := ied.ICDHeader()
		switch {
		case !ok:
			items = append(items, report.Fatal(scl.IEDPath(ied.Name), msgNoICDHeader))
		case scl.IsBlank(hdr.ICDSystemVersionUUID) || scl.IsBlank(hdr.IEDName):
			items = append(items, report.Fatal(scl.IEDPath(ied.Name), msgIncompleteHeader))
		}

		if !ok || scl.IsBlank(hdr.ICDSystemVersionUUID) {
			continue
		}
		id := hdr.ICDSystemVersionUUID
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], ied)
	}

	for _, id := range order {
		ieds := groups[id]
		if len(ieds) < 2 {
			continue
		}
		paths := make([]string, len(ieds))
		for i, ied := range ieds {
			paths[i] = scl.IEDPath(ied.Name)
		}
		items = append(items, report.Error(strings.Join(paths, ", "), msgDuplicateSystemVer))
	}
	return items
}
