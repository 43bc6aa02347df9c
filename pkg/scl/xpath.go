package scl

import "fmt"

// IEDPath returns the location of an IED.
func IEDPath(iedName string) string {
	return fmt.Sprintf("/SCL/IED[%s]", attrFilter("name", &iedName))
}

// LDevicePath returns the location of a logical device.
func LDevicePath(iedName, ldInst string) string {
	return fmt.Sprintf("%s/AccessPoint/Server/LDevice[%s]", IEDPath(iedName), attrFilter("inst", &ldInst))
}

// LNPath returns the location of a logical node. LN0 has no key.
func LNPath(iedName, ldInst string, ln *LN) string {
	base := LDevicePath(iedName, ldInst)
	if ln.IsLN0() {
		return base + "/LN0"
	}
	var prefix *string
	if !IsBlank(ln.Prefix) {
		prefix = &ln.Prefix
	}
	return fmt.Sprintf("%s/LN[%s and %s and %s]", base,
		attrFilter("lnClass", &ln.LnClass), attrFilter("inst", &ln.Inst), attrFilter("prefix", prefix))
}

// ExtRefPath returns the location of an ExtRef, keyed by its desc.
func ExtRefPath(iedName, ldInst string, ln *LN, extRef *ExtRef) string {
	return fmt.Sprintf("%s/Inputs/ExtRef[%s]", LNPath(iedName, ldInst, ln), attrFilter("desc", &extRef.Desc))
}

func attrFilter(name string, value *string) string {
	if value == nil {
		return fmt.Sprintf("not(@%s)", name)
	}
	return fmt.Sprintf("@%s=%q", name, *value)
}
