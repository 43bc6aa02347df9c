package extref

import (
	"fmt"

	"github.com/sct-tools/sct-go/pkg/log"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// UpdateBinders rebinds the single ExtRef of the holder logical node that
// carries info.Signal to info.Binding.
//
// The binding must name an existing IED, LDevice and logical node whose
// type exposes the bound data object. Nothing is written unless every check
// passes.
func (s *Service) UpdateBinders(doc *scl.Document, info *ExtRefInfo) error {
	if info == nil || info.Signal == nil || info.Binding == nil {
		return ErrMissingSignalOrBinding
	}
	if !info.Signal.IsValid() {
		return ErrInvalidSignal
	}
	if !info.Binding.IsValid() {
		return ErrInvalidBinding
	}

	ied, ld, ln, err := info.holder(doc)
	if err != nil {
		return err
	}
	e, err := findSignal(ln, info.Signal)
	if err != nil {
		return err
	}

	b := info.Binding
	doName, daName := b.DoName, b.DaName
	if scl.IsBlank(doName) {
		doName, daName = info.Signal.PDO, info.Signal.PDA
	}
	serviceType := b.ServiceType
	if serviceType == "" {
		serviceType = info.Signal.PServT
	}
	if err := checkBindingTarget(doc, b, doName, daName); err != nil {
		return err
	}

	loc := scl.ExtRefPath(ied.Name, ld.Inst, ln, e)
	s.set(OpUpdateBinders, log.CategoryBinding, loc, "iedName", &e.IEDName, b.IEDName)
	s.set(OpUpdateBinders, log.CategoryBinding, loc, "ldInst", &e.LdInst, b.LdInst)
	var prefix *string
	if !scl.IsBlank(b.Prefix) {
		prefix = scl.Ptr(b.Prefix)
	}
	s.setOptional(OpUpdateBinders, log.CategoryBinding, loc, "prefix", &e.Prefix, prefix)
	s.setClasses(OpUpdateBinders, log.CategoryBinding, loc, "lnClass", &e.LnClass, scl.LNClassList{b.LnClass})
	s.set(OpUpdateBinders, log.CategoryBinding, loc, "lnInst", &e.LnInst, b.LnInst)
	s.set(OpUpdateBinders, log.CategoryBinding, loc, "doName", &e.DoName, doName)
	s.set(OpUpdateBinders, log.CategoryBinding, loc, "daName", &e.DaName, daName)
	if serviceType != e.ServiceType {
		s.record(log.ChangeEventFor(OpUpdateBinders, log.CategoryBinding, loc, "serviceType", string(e.ServiceType), string(serviceType)))
		e.ServiceType = serviceType
	}

	s.debugLog("UpdateBinders", "location", loc, "binding", bindingString(e))
	return nil
}

// checkBindingTarget resolves the bound logical node and its data object.
func checkBindingTarget(doc *scl.Document, b *BindingInfo, doName, daName string) error {
	target, err := doc.IEDByName(b.IEDName)
	if err != nil {
		return err
	}
	ld, err := target.LDeviceByInst(b.LdInst)
	if err != nil {
		return err
	}
	ln, err := ld.LNByClass(b.LnClass, b.LnInst, b.Prefix)
	if err != nil {
		return err
	}
	if scl.IsBlank(doName) {
		return nil
	}
	_, ok, err := doc.Templates().ResolveSignal(ln.LnType, doName, daName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBinding, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s.%s is not a data object of LNodeType %q", ErrInvalidBinding, doName, daName, ln.LnType)
	}
	return nil
}

// UpdateSource sets the control block feeding the ExtRef that carries
// info.Signal and is bound to info.Binding, and returns the updated ExtRef.
//
// Bindings to the holder IED itself and Poll bindings cannot have a control
// block. The control block must exist in the bound IED with a kind matching
// the service type. Nothing is written unless every check passes.
func (s *Service) UpdateSource(doc *scl.Document, info *ExtRefInfo) (*scl.ExtRef, error) {
	if info == nil || !info.Signal.IsValid() {
		return nil, ErrInvalidSignal
	}
	b := info.Binding
	if !b.IsValid() {
		return nil, ErrInvalidBinding
	}
	if b.IEDName == info.HolderIEDName || b.ServiceType == scl.ServicePoll {
		return nil, ErrInternalBinding
	}
	src := info.Source
	if !src.IsValid() {
		return nil, ErrInvalidSource
	}

	ied, ld, ln, err := info.holder(doc)
	if err != nil {
		return nil, err
	}
	e, err := findBoundSignal(ln, info.Signal, b)
	if err != nil {
		return nil, err
	}

	serviceType := e.ServiceType
	if serviceType == "" {
		serviceType = b.ServiceType
	}
	if serviceType == "" {
		serviceType = info.Signal.PServT
	}
	if err := checkControlBlock(doc, b.IEDName, src, serviceType); err != nil {
		return nil, err
	}

	loc := scl.ExtRefPath(ied.Name, ld.Inst, ln, e)
	s.set(OpUpdateSource, log.CategorySource, loc, "srcLDInst", &e.SrcLDInst, src.SrcLDInst)
	var prefix *string
	if !scl.IsBlank(src.SrcPrefix) {
		prefix = scl.Ptr(src.SrcPrefix)
	}
	s.setOptional(OpUpdateSource, log.CategorySource, loc, "srcPrefix", &e.SrcPrefix, prefix)
	var classes scl.LNClassList
	if !scl.IsBlank(src.SrcLNClass) {
		classes = scl.LNClassList{src.SrcLNClass}
	}
	s.setClasses(OpUpdateSource, log.CategorySource, loc, "srcLNClass", &e.SrcLNClass, classes)
	s.set(OpUpdateSource, log.CategorySource, loc, "srcLNInst", &e.SrcLNInst, src.SrcLNInst)
	s.set(OpUpdateSource, log.CategorySource, loc, "srcCBName", &e.SrcCBName, src.SrcCBName)

	s.debugLog("UpdateSource", "location", loc, "source", sourceString(e))
	return e, nil
}

func checkControlBlock(doc *scl.Document, iedName string, src *SourceInfo, st scl.ServiceType) error {
	ied, err := doc.IEDByName(iedName)
	if err != nil {
		return err
	}
	ld, err := ied.LDeviceByInst(src.SrcLDInst)
	if err != nil {
		return err
	}
	ln, err := ld.LNByClass(src.LNClass(), src.SrcLNInst, src.SrcPrefix)
	if err != nil {
		return err
	}
	if !ln.HasControlBlock(src.SrcCBName, st) {
		return fmt.Errorf("%w: no %s control block %q in %s", ErrControlBlockNotFound,
			st, src.SrcCBName, scl.LNPath(iedName, ld.Inst, ln))
	}
	return nil
}

// findSignal returns the single ExtRef of ln carrying signal.
func findSignal(ln *scl.LN, signal *SignalInfo) (*scl.ExtRef, error) {
	return single(ln, signal, func(*scl.ExtRef) bool { return true })
}

// findBoundSignal returns the single ExtRef of ln carrying signal and
// bound to the IED, LDevice and logical node of b.
func findBoundSignal(ln *scl.LN, signal *SignalInfo, b *BindingInfo) (*scl.ExtRef, error) {
	return single(ln, signal, func(e *scl.ExtRef) bool {
		return e.IEDName == b.IEDName &&
			e.LdInst == b.LdInst &&
			e.LnClass.First() == b.LnClass &&
			scl.EqualsOrBothBlank(e.LnInst, b.LnInst) &&
			scl.EqualsOrBothBlank(scl.StringOf(e.Prefix), b.Prefix)
	})
}

func single(ln *scl.LN, signal *SignalInfo, keep func(*scl.ExtRef) bool) (*scl.ExtRef, error) {
	var found []*scl.ExtRef
	for _, e := range ln.ExtRefs() {
		if e.MatchesSignal(signal.Desc, signal.IntAddr, signal.PLN, signal.PDO, signal.PDA, signal.PServT) && keep(e) {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return nil, fmt.Errorf("%w: no ExtRef with desc %q and pDO %q", ErrExtRefNotFound, signal.Desc, signal.PDO)
	default:
		return nil, fmt.Errorf("%w: %d ExtRefs with desc %q and pDO %q", ErrExtRefNotFound, len(found), signal.Desc, signal.PDO)
	}
}
