package extref

import (
	"fmt"

	"github.com/sct-tools/sct-go/pkg/scl"
)

// SignalInfo is the signal descriptor of an ExtRef.
type SignalInfo struct {
	Desc    string          `json:"desc,omitempty"`
	IntAddr string          `json:"intAddr,omitempty"`
	PServT  scl.ServiceType `json:"pServT,omitempty"`
	PLN     string          `json:"pLN,omitempty"`
	PDO     string          `json:"pDO,omitempty"`
	PDA     string          `json:"pDA,omitempty"`
}

// IsValid reports whether the descriptor names a data object.
func (s *SignalInfo) IsValid() bool {
	return s != nil && !scl.IsBlank(s.PDO)
}

// BindingInfo is the binding of an ExtRef.
type BindingInfo struct {
	IEDName     string          `json:"iedName"`
	LdInst      string          `json:"ldInst"`
	Prefix      string          `json:"prefix,omitempty"`
	LnClass     string          `json:"lnClass"`
	LnInst      string          `json:"lnInst,omitempty"`
	DoName      string          `json:"doName,omitempty"`
	DaName      string          `json:"daName,omitempty"`
	ServiceType scl.ServiceType `json:"serviceType,omitempty"`
}

// IsValid reports whether the binding names an IED, an LDevice and a
// logical node. lnInst is required except for LLN0.
func (b *BindingInfo) IsValid() bool {
	if b == nil {
		return false
	}
	if scl.IsBlank(b.IEDName) || scl.IsBlank(b.LdInst) || scl.IsBlank(b.LnClass) {
		return false
	}
	return b.LnClass == scl.LLN0 || !scl.IsBlank(b.LnInst)
}

// SourceInfo names the control block feeding an ExtRef.
type SourceInfo struct {
	SrcLDInst  string `json:"srcLDInst"`
	SrcPrefix  string `json:"srcPrefix,omitempty"`
	SrcLNClass string `json:"srcLNClass,omitempty"`
	SrcLNInst  string `json:"srcLNInst,omitempty"`
	SrcCBName  string `json:"srcCBName"`
}

// IsValid reports whether the source names an LDevice and a control block.
func (s *SourceInfo) IsValid() bool {
	return s != nil && !scl.IsBlank(s.SrcLDInst) && !scl.IsBlank(s.SrcCBName)
}

// LNClass returns the source lnClass, LLN0 when unset.
func (s *SourceInfo) LNClass() string {
	if scl.IsBlank(s.SrcLNClass) {
		return scl.LLN0
	}
	return s.SrcLNClass
}

// ExtRefInfo addresses one ExtRef through its holder logical node and
// carries the payloads of single-item operations.
type ExtRefInfo struct {
	HolderIEDName  string `json:"holderIedName"`
	HolderLDInst   string `json:"holderLdInst"`
	HolderLnClass  string `json:"holderLnClass"`
	HolderLnInst   string `json:"holderLnInst,omitempty"`
	HolderLnPrefix string `json:"holderLnPrefix,omitempty"`

	Signal  *SignalInfo  `json:"signal,omitempty"`
	Binding *BindingInfo `json:"binding,omitempty"`
	Source  *SourceInfo  `json:"source,omitempty"`
}

// SignalInfoOf returns the signal descriptor of e.
func SignalInfoOf(e *scl.ExtRef) *SignalInfo {
	return &SignalInfo{
		Desc:    e.Desc,
		IntAddr: e.IntAddr,
		PServT:  e.PServT,
		PLN:     e.PLN,
		PDO:     e.PDO,
		PDA:     e.PDA,
	}
}

// BindingInfoOf returns the binding of e, or nil when e is unbound.
func BindingInfoOf(e *scl.ExtRef) *BindingInfo {
	if !e.IsBound() {
		return nil
	}
	return &BindingInfo{
		IEDName:     e.IEDName,
		LdInst:      e.LdInst,
		Prefix:      scl.StringOf(e.Prefix),
		LnClass:     e.LnClass.First(),
		LnInst:      e.LnInst,
		DoName:      e.DoName,
		DaName:      e.DaName,
		ServiceType: e.ServiceType,
	}
}

// SourceInfoOf returns the source of e, or nil when no control block is set.
func SourceInfoOf(e *scl.ExtRef) *SourceInfo {
	if scl.IsBlank(e.SrcCBName) {
		return nil
	}
	return &SourceInfo{
		SrcLDInst:  e.SrcLDInst,
		SrcPrefix:  scl.StringOf(e.SrcPrefix),
		SrcLNClass: e.SrcLNClass.First(),
		SrcLNInst:  e.SrcLNInst,
		SrcCBName:  e.SrcCBName,
	}
}

// ExtRefInfos lists the ExtRefs of an LDevice, LN0 first.
func ExtRefInfos(doc *scl.Document, iedName, ldInst string) ([]ExtRefInfo, error) {
	ied, err := doc.IEDByName(iedName)
	if err != nil {
		return nil, err
	}
	ld, err := ied.LDeviceByInst(ldInst)
	if err != nil {
		return nil, err
	}
	var out []ExtRefInfo
	for _, ln := range ld.LNsWithLN0() {
		for _, e := range ln.ExtRefs() {
			out = append(out, InfoOf(ied, ld, ln, e))
		}
	}
	return out, nil
}

// InfoOf returns the info of extRef e held by ln.
func InfoOf(ied *scl.IED, ld *scl.LDevice, ln *scl.LN, e *scl.ExtRef) ExtRefInfo {
	return ExtRefInfo{
		HolderIEDName:  ied.Name,
		HolderLDInst:   ld.Inst,
		HolderLnClass:  ln.LnClass,
		HolderLnInst:   ln.Inst,
		HolderLnPrefix: ln.Prefix,
		Signal:         SignalInfoOf(e),
		Binding:        BindingInfoOf(e),
		Source:         SourceInfoOf(e),
	}
}

// holder resolves the logical node holding the addressed ExtRef.
func (info *ExtRefInfo) holder(doc *scl.Document) (*scl.IED, *scl.LDevice, *scl.LN, error) {
	ied, err := doc.IEDByName(info.HolderIEDName)
	if err != nil {
		return nil, nil, nil, err
	}
	ld, ok := ied.FindLDevice(info.HolderLDInst)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: Unknown LDevice (%s) in IED (%s)", scl.ErrLDeviceNotFound, info.HolderLDInst, info.HolderIEDName)
	}
	lnClass := info.HolderLnClass
	if scl.IsBlank(lnClass) {
		lnClass = scl.LLN0
	}
	ln, err := ld.LNByClass(lnClass, info.HolderLnInst, info.HolderLnPrefix)
	if err != nil {
		return nil, nil, nil, err
	}
	return ied, ld, ln, nil
}
