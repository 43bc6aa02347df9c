package extref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sct-tools/sct-go/pkg/ldepf"
	"github.com/sct-tools/sct-go/pkg/log"
	"github.com/sct-tools/sct-go/pkg/report"
	"github.com/sct-tools/sct-go/pkg/scl"
)

// LDEPF names.
const (
	// LDEPFInst is the instance code of the LDEPF logical device.
	LDEPFInst = "LDEPF"

	// TestIEDName is the IED excluded from LDEPF wiring.
	TestIEDName = "IEDTEST"

	lnDigital     = "RBDR"
	lnAnalog      = "RADR"
	prefixDigital = "B"
	prefixAnalog  = "A"
	qualitySuffix = "q"
)

// Data attributes written on each channel logical node.
var channelAttributes = []struct{ do, da string }{
	{"ChNum1", "dU"},
	{"LevMod", "setVal"},
	{"Mod", "stVal"},
	{"SrcRef", "setSrcRef"},
}

// LDEPF diagnostics.
const (
	msgLDEPFNoStatus  = "There is no DOI@name=Mod/DAI@name=stVal/Val for LDevice@inst " + LDEPFInst
	msgLDEPFNoBay     = "The IED has no Private Bay"
	msgLDEPFAmbiguous = "There is more than one IED source to bind the signal /IED@name=%s/LDevice@inst=" + LDEPFInst + "/LN0/ExtRef@desc=%s"
	msgLDEPFNoDAI     = "DOI@name=%s/DAI@name=%s not found, value %q not written"
)

// WireLDEPF binds the LDEPF ExtRefs of every IED except TestIEDName using
// settings, then writes the channel attributes of the matching RBDR or RADR
// logical nodes.
//
// An ExtRef is bound only when its setting selects exactly one channel
// family and exactly one source IED other than the holder is found. Several
// sources produce a warning and leave the ExtRef unbound. Running twice on
// the same document gives the same result.
func (s *Service) WireLDEPF(doc *scl.Document, settings ldepf.Settings) []report.Item {
	var items []report.Item
	bound := 0

	for _, ied := range doc.IEDs() {
		if ied.Name == TestIEDName {
			continue
		}
		ld, ok := ied.FindLDevice(LDEPFInst)
		if !ok {
			continue
		}
		extRefs, bay, item, ok := collectLDEPFExtRefs(ied, ld)
		if !ok {
			if item != nil {
				items = append(items, *item)
			}
			continue
		}

		wired := 0
		for _, e := range extRefs {
			setting, ok := settings.MatchSetting(e)
			if !ok {
				continue
			}
			if !setting.IsDigital() && !setting.IsAnalog() {
				s.debugLog("setting selects no single channel family, skipped", "ied", ied.Name, "desc", e.Desc)
				continue
			}

			sources := withoutIED(settings.IEDSources(doc, bay, setting), ied)
			switch len(sources) {
			case 0:
				s.debugLog("no source IED", "ied", ied.Name, "desc", e.Desc)
			case 1:
				s.bindLDEPF(ied, ld, e, sources[0], setting)
				items = append(items, s.writeChannels(ied, ld, e, setting)...)
				wired++
			default:
				items = append(items, report.Warning(
					scl.ExtRefPath(ied.Name, ld.Inst, ld.LN0, e),
					fmt.Sprintf(msgLDEPFAmbiguous, ied.Name, e.Desc)))
			}
		}
		if wired > 0 {
			if item, ok := s.renameLDevice(ied, ld); !ok {
				items = append(items, item)
			}
		}
		bound += wired
	}

	s.infoLog("LDEPF wiring done", "bound", bound, "items", len(items))
	return s.diagnostics(OpLDEPF, items)
}

// collectLDEPFExtRefs returns the LN0 ExtRefs of an enabled LDEPF device
// together with the holder bay. ok is false when the device is skipped;
// item is then set when the skip deserves a diagnostic.
func collectLDEPFExtRefs(ied *scl.IED, ld *scl.LDevice) ([]*scl.ExtRef, *scl.CompasBay, *report.Item, bool) {
	status, ok := ld.Status()
	if !ok {
		item := report.Fatal(scl.LDevicePath(ied.Name, ld.Inst), msgLDEPFNoStatus)
		return nil, nil, &item, false
	}
	if status != scl.StatusOn {
		return nil, nil, nil, false
	}
	bay, ok := ied.CompasBay()
	if !ok {
		item := report.Fatal(scl.IEDPath(ied.Name), msgLDEPFNoBay)
		return nil, nil, &item, false
	}

	var out []*scl.ExtRef
	for _, e := range ld.LN0.ExtRefs() {
		if strings.HasPrefix(e.Desc, ldepf.DescPrefix) {
			out = append(out, e)
		}
	}
	return out, bay, nil, true
}

func withoutIED(ieds []*scl.IED, holder *scl.IED) []*scl.IED {
	out := make([]*scl.IED, 0, len(ieds))
	for _, ied := range ieds {
		if ied.Name != holder.Name {
			out = append(out, ied)
		}
	}
	return out
}

func (s *Service) bindLDEPF(ied *scl.IED, ld *scl.LDevice, e *scl.ExtRef, source *scl.IED, setting *ldepf.Setting) {
	loc := scl.ExtRefPath(ied.Name, ld.Inst, ld.LN0, e)

	s.set(OpLDEPF, log.CategoryBinding, loc, "iedName", &e.IEDName, source.Name)
	s.set(OpLDEPF, log.CategoryBinding, loc, "ldInst", &e.LdInst, setting.LdInst)
	if !e.LnClass.Contains(setting.LnClass) {
		classes := append(append(scl.LNClassList{}, e.LnClass...), setting.LnClass)
		s.setClasses(OpLDEPF, log.CategoryBinding, loc, "lnClass", &e.LnClass, classes)
	}
	s.set(OpLDEPF, log.CategoryBinding, loc, "lnInst", &e.LnInst, setting.LnInst)
	if setting.LnPrefix != nil {
		s.setOptional(OpLDEPF, log.CategoryBinding, loc, "prefix", &e.Prefix, setting.LnPrefix)
	}
	s.set(OpLDEPF, log.CategoryBinding, loc, "doName", &e.DoName, setting.ResolvedDoName())

	s.debugLog("bound LDEPF ExtRef", "location", loc, "source", source.Name)
}

// renameLDevice sets the ldName of a wired LDEPF device from its IED name.
func (s *Service) renameLDevice(ied *scl.IED, ld *scl.LDevice) (report.Item, bool) {
	loc := scl.LDevicePath(ied.Name, ld.Inst)
	old := ld.LdName
	if err := ld.UpdateLDName(ied.Name); err != nil {
		return report.Error(loc, err.Error()), false
	}
	if ld.LdName != old {
		s.record(log.ChangeEventFor(OpLDEPF, log.CategoryBinding, loc, "ldName", old, ld.LdName))
	}
	return report.Item{}, true
}

// writeChannels updates the bare and the prefixed channel logical node of
// the setting's channel. Missing nodes are skipped.
func (s *Service) writeChannels(ied *scl.IED, ld *scl.LDevice, e *scl.ExtRef, setting *ldepf.Setting) []report.Item {
	lnClass, prefix, num := lnAnalog, prefixAnalog, setting.ChannelAnalogNum
	if setting.IsDigital() {
		lnClass, prefix, num = lnDigital, prefixDigital, setting.ChannelDigitalNum
	}
	inst := strconv.Itoa(*num)

	var items []report.Item
	for _, p := range []string{"", prefix} {
		ln, ok := ld.FindLN(lnClass, inst, p)
		if !ok {
			continue
		}
		items = append(items, s.writeChannel(ied, ld, ln, e, setting)...)
	}
	return items
}

func (s *Service) writeChannel(ied *scl.IED, ld *scl.LDevice, ln *scl.LN, e *scl.ExtRef, setting *ldepf.Setting) []report.Item {
	loc := scl.LNPath(ied.Name, ld.Inst, ln)
	prefixed := ln.Prefix == prefixDigital || ln.Prefix == prefixAnalog

	var items []report.Item
	for _, attr := range channelAttributes {
		value := channelValue(attr.da, prefixed, e, setting)

		doi, err := ln.DOIByName(attr.do)
		var old string
		var changed bool
		if err == nil {
			old, changed, err = doi.UpdateDAI(attr.da, value)
		}
		switch {
		case errors.Is(err, scl.ErrDONotFound), errors.Is(err, scl.ErrDANotFound):
			items = append(items, report.Warning(loc, fmt.Sprintf(msgLDEPFNoDAI, attr.do, attr.da, value)))
		case changed:
			s.record(log.ChangeEventFor(OpLDEPF, log.CategoryDAI, loc, attr.do+"."+attr.da, old, value))
		}
	}
	return items
}

func channelValue(da string, prefixed bool, e *scl.ExtRef, setting *ldepf.Setting) string {
	switch da {
	case "dU":
		return setting.ChannelShortLabel
	case "setVal":
		if prefixed {
			return setting.ChannelLevModQ
		}
		return setting.ChannelLevMod
	case "stVal":
		return scl.StatusOn
	case "setSrcRef":
		suffix := setting.DaName
		if prefixed {
			suffix = qualitySuffix
		}
		return sourceReference(e, suffix)
	}
	return ""
}

// sourceReference composes iedName+ldInst/prefix+lnClass+lnInst.doName.suffix.
func sourceReference(e *scl.ExtRef, suffix string) string {
	return e.IEDName + e.LdInst + "/" +
		strings.TrimSpace(scl.StringOf(e.Prefix)) + e.LnClass.First() + strings.TrimSpace(e.LnInst) + "." +
		e.DoName + "." + suffix
}
