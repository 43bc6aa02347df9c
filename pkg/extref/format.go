package extref

import (
	"strings"

	"github.com/sct-tools/sct-go/pkg/scl"
)

// bindingString renders the binding of e as iedName/ldInst/prefix+lnClass+lnInst.doName.daName,
// or "" when e is unbound.
func bindingString(e *scl.ExtRef) string {
	if !e.HasBinding() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(e.IEDName)
	sb.WriteString("/")
	sb.WriteString(e.LdInst)
	sb.WriteString("/")
	sb.WriteString(scl.StringOf(e.Prefix))
	sb.WriteString(strings.Join(e.LnClass, " "))
	sb.WriteString(e.LnInst)
	if e.DoName != "" {
		sb.WriteString(".")
		sb.WriteString(e.DoName)
	}
	if e.DaName != "" {
		sb.WriteString(".")
		sb.WriteString(e.DaName)
	}
	return sb.String()
}

// sourceString renders the control block source of e, or "" when unset.
func sourceString(e *scl.ExtRef) string {
	if !e.HasSource() {
		return ""
	}
	return e.SrcLDInst + "/" + scl.StringOf(e.SrcPrefix) + strings.Join(e.SrcLNClass, " ") + e.SrcLNInst + "." + e.SrcCBName
}
