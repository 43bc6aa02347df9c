package extref

import (
	"fmt"

	"github.com/sct-tools/sct-go/pkg/log"
	"github.com/sct-tools/sct-go/pkg/report"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// Flow binding diagnostics.
const (
	msgNoMatchingFlow     = "The signal ExtRef has no matching compas:Flow Private"
	msgTooManyFlows       = "The signal ExtRef has more than one matching compas:Flow Private"
	msgFlowIEDNameMissing = "The signal ExtRef has a compas:Flow Private without ExtRefiedName"
	msgSourceIEDNotFound  = `ExtRef.compas:Flow@FlowStatus="ACTIVE" but no IED has ICDSystemVersionUUID="%s"`
	msgSourceLDNotFound   = "The signal ExtRef ExtRefldinst does not match any LDevice with same inst attribute in source IED %s"
	msgSourceLDNotEnabled = `The signal ExtRef source LDevice %s status is not "on" in IED %s`
)

// BindAllIEDNames binds every ExtRef held by an LN0 to the IED named by its
// compas:Flow private.
//
// ValidateIEDs runs first; when it reports anything, its items are returned
// and the document is left untouched. Otherwise each ExtRef is handled on
// its own and the items of all ExtRefs are returned together.
func (s *Service) BindAllIEDNames(doc *scl.Document) []report.Item {
	if items := ValidateIEDs(doc); len(items) > 0 {
		s.infoLog("IED validation failed, no binding done", "items", len(items))
		return s.diagnostics(OpBindIEDNames, items)
	}

	byUUID := make(map[string]*scl.IED)
	for _, ied := range doc.IEDs() {
		hdr, _ := ied.ICDHeader()
		byUUID[hdr.ICDSystemVersionUUID] = ied
	}

	var items []report.Item
	bound := 0
	for _, ied := range doc.IEDs() {
		for _, ld := range ied.LDevices() {
			if ld.LN0 == nil || ld.LN0.Inputs == nil {
				continue
			}
			for _, e := range ld.LN0.Inputs.ExtRefs {
				item, ok := s.bindIEDName(byUUID, ied, ld, e)
				if ok {
					items = append(items, item)
				} else if e.IsBound() {
					bound++
				}
			}
		}
	}
	s.infoLog("bound ExtRef IED names", "bound", bound, "items", len(items))
	return s.diagnostics(OpBindIEDNames, items)
}

func (s *Service) bindIEDName(byUUID map[string]*scl.IED, ied *scl.IED, ld *scl.LDevice, e *scl.ExtRef) (report.Item, bool) {
	loc := scl.ExtRefPath(ied.Name, ld.Inst, ld.LN0, e)

	flows := ld.LN0.Inputs.FlowsFor(e.Desc)
	switch {
	case len(flows) == 0:
		return report.Fatal(loc, msgNoMatchingFlow), true
	case len(flows) > 1:
		return report.Fatal(loc, msgTooManyFlows), true
	}
	flow := flows[0]

	if flow.FlowStatus == scl.FlowInactive {
		s.debugLog("inactive flow, clearing ExtRef", "location", loc)
		s.clearBinding(OpBindIEDNames, loc, e)
		s.clearSource(OpBindIEDNames, loc, e)
		return report.Item{}, false
	}

	fail := func(msg string) (report.Item, bool) {
		s.clearBinding(OpBindIEDNames, loc, e)
		return report.Warning(loc, msg), true
	}

	if scl.IsBlank(flow.ExtRefIEDName) {
		return fail(msgFlowIEDNameMissing)
	}
	source, ok := byUUID[flow.ExtRefIEDName]
	if !ok {
		// Already rewritten by an earlier run.
		source = findIED(byUUID, flow.ExtRefIEDName)
	}
	if source == nil {
		return fail(fmt.Sprintf(msgSourceIEDNotFound, flow.ExtRefIEDName))
	}
	if !scl.IsBlank(flow.ExtRefLdInst) {
		srcLD, ok := source.FindLDevice(flow.ExtRefLdInst)
		if !ok {
			return fail(fmt.Sprintf(msgSourceLDNotFound, source.Name))
		}
		if !srcLD.IsOn() {
			return fail(fmt.Sprintf(msgSourceLDNotEnabled, srcLD.Inst, source.Name))
		}
	}

	s.set(OpBindIEDNames, log.CategoryBinding, loc, "iedName", &e.IEDName, source.Name)
	s.set(OpBindIEDNames, log.CategoryBinding, loc, "compas:Flow@ExtRefiedName", &flow.ExtRefIEDName, source.Name)
	s.debugLog("bound ExtRef", "location", loc, "ied", source.Name)
	return report.Item{}, false
}

func findIED(byUUID map[string]*scl.IED, name string) *scl.IED {
	for _, ied := range byUUID {
		if ied.Name == name {
			return ied
		}
	}
	return nil
}
