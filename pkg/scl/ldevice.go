package scl

import (
	"errors"
	"fmt"
)

// Logical device errors.
var (
	ErrLNNotFound    = errors.New("LN not found")
	ErrLDNameTooLong = errors.New("LDevice name too long")
)

// Well-known names.
const (
	// LLN0 is the lnClass of the default logical node.
	LLN0 = "LLN0"

	// StatusOn is the Mod.stVal value of an enabled logical device.
	StatusOn = "on"

	// MaxLDNameLength is the longest ldName a logical device may carry.
	MaxLDNameLength = 33
)

// LDevice is a logical device. Inst is unique within its IED.
type LDevice struct {
	Inst   string `xml:"inst,attr"`
	LdName string `xml:"ldName,attr,omitempty"`
	Desc   string `xml:"desc,attr,omitempty"`

	Extension
	LN0 *LN   `xml:"LN0"`
	LNs []*LN `xml:"LN"`
}

// LNsWithLN0 returns LN0 (when present) followed by the other logical nodes.
func (l *LDevice) LNsWithLN0() []*LN {
	out := make([]*LN, 0, len(l.LNs)+1)
	if l.LN0 != nil {
		out = append(out, l.LN0)
	}
	return append(out, l.LNs...)
}

// FindLN returns the plain logical node identified by class, inst and prefix.
// Blank prefixes are equal to each other.
func (l *LDevice) FindLN(lnClass, inst, prefix string) (*LN, bool) {
	for _, ln := range l.LNs {
		if ln.LnClass == lnClass && ln.Inst == inst && EqualsOrBothBlank(ln.Prefix, prefix) {
			return ln, true
		}
	}
	return nil, false
}

// LNByClass resolves LN0 when lnClass is LLN0 and a plain logical node
// otherwise.
func (l *LDevice) LNByClass(lnClass, inst, prefix string) (*LN, error) {
	if lnClass == LLN0 {
		if l.LN0 == nil {
			return nil, fmt.Errorf("%w: LDevice %q has no LN0", ErrLNNotFound, l.Inst)
		}
		return l.LN0, nil
	}
	ln, ok := l.FindLN(lnClass, inst, prefix)
	if !ok {
		return nil, fmt.Errorf("%w: LDevice %q has no LN [%s,%s,%s]", ErrLNNotFound, l.Inst, prefix, lnClass, inst)
	}
	return ln, nil
}

// Status returns the LN0 Mod.stVal value.
func (l *LDevice) Status() (string, bool) {
	if l.LN0 == nil {
		return "", false
	}
	doi, ok := l.LN0.FindDOI("Mod")
	if !ok {
		return "", false
	}
	dai, ok := doi.FindDAI("stVal")
	if !ok {
		return "", false
	}
	return dai.Value()
}

// IsOn reports whether the device status is "on".
func (l *LDevice) IsOn() bool {
	status, ok := l.Status()
	return ok && status == StatusOn
}

// UpdateLDName sets ldName to the IED name followed by the instance code.
func (l *LDevice) UpdateLDName(iedName string) error {
	name := iedName + l.Inst
	if len(name) > MaxLDNameLength {
		return fmt.Errorf("%w: %q has more than %d characters", ErrLDNameTooLong, name, MaxLDNameLength)
	}
	l.LdName = name
	return nil
}
