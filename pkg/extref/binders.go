package extref

import (
	"github.com/sct-tools/sct-go/pkg/scl"
)

// BindingCandidate is one logical node able to serve a signal descriptor.
type BindingCandidate struct {
	IEDName string `json:"iedName"`
	LdInst  string `json:"ldInst"`
	LnClass string `json:"lnClass"`
	LnInst  string `json:"lnInst,omitempty"`
	Prefix  string `json:"prefix,omitempty"`
	LnType  string `json:"lnType"`
	DoName  string `json:"doName"`
	DaName  string `json:"daName,omitempty"`
	CDC     string `json:"cdc,omitempty"`
	FC      string `json:"fc,omitempty"`
}

// FindBinders returns the logical nodes of ld (LN0 first) whose type
// exposes the signal's pDO/pDA path. A non-blank pLN restricts the search
// to that lnClass.
//
// A node whose type lacks the path is skipped. A malformed path or a broken
// type chain aborts the search with a *scl.ResolutionError.
func FindBinders(doc *scl.Document, ied *scl.IED, ld *scl.LDevice, signal *SignalInfo) ([]BindingCandidate, error) {
	tmpl := doc.Templates()

	var out []BindingCandidate
	for _, ln := range ld.LNsWithLN0() {
		if !scl.IsBlank(signal.PLN) && signal.PLN != ln.LnClass {
			continue
		}
		m, ok, err := tmpl.ResolveSignal(ln.LnType, signal.PDO, signal.PDA)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, BindingCandidate{
			IEDName: ied.Name,
			LdInst:  ld.Inst,
			LnClass: ln.LnClass,
			LnInst:  ln.Inst,
			Prefix:  ln.Prefix,
			LnType:  ln.LnType,
			DoName:  m.DoName,
			DaName:  m.DaName,
			CDC:     m.CDC,
			FC:      m.FC,
		})
	}
	return out, nil
}

// FindBindersByName resolves the IED and LDevice by name and runs FindBinders.
func (s *Service) FindBindersByName(doc *scl.Document, iedName, ldInst string, signal *SignalInfo) ([]BindingCandidate, error) {
	ied, err := doc.IEDByName(iedName)
	if err != nil {
		return nil, err
	}
	ld, err := ied.LDeviceByInst(ldInst)
	if err != nil {
		return nil, err
	}
	out, err := FindBinders(doc, ied, ld, signal)
	if err != nil {
		return nil, err
	}
	s.debugLog("FindBinders", "ied", iedName, "ld", ldInst, "pDO", signal.PDO, "pDA", signal.PDA, "candidates", len(out))
	return out, nil
}
