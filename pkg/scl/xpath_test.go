package scl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sct-tools/sct-go/pkg/scl"
)

func TestPaths(t *testing.T) {
	ln0 := &scl.LN{LnClass: scl.LLN0}
	rbdr := &scl.LN{LnClass: "RBDR", Inst: "1", Prefix: "B"}
	plain := &scl.LN{LnClass: "RBDR", Inst: "1"}

	assert.Equal(t, `/SCL/IED[@name="IED1"]`, scl.IEDPath("IED1"))
	assert.Equal(t, `/SCL/IED[@name="IED1"]/AccessPoint/Server/LDevice[@inst="LDEPF"]`,
		scl.LDevicePath("IED1", "LDEPF"))
	assert.Equal(t, `/SCL/IED[@name="IED1"]/AccessPoint/Server/LDevice[@inst="LDEPF"]/LN0`,
		scl.LNPath("IED1", "LDEPF", ln0))
	assert.Equal(t, `/SCL/IED[@name="IED1"]/AccessPoint/Server/LDevice[@inst="LDEPF"]/LN[@lnClass="RBDR" and @inst="1" and @prefix="B"]`,
		scl.LNPath("IED1", "LDEPF", rbdr))
	assert.Equal(t, `/SCL/IED[@name="IED1"]/AccessPoint/Server/LDevice[@inst="LDEPF"]/LN[@lnClass="RBDR" and @inst="1" and not(@prefix)]`,
		scl.LNPath("IED1", "LDEPF", plain))
	assert.Equal(t, `/SCL/IED[@name="IED1"]/AccessPoint/Server/LDevice[@inst="LDEPF"]/LN0/Inputs/ExtRef[@desc="DYN_LDEPF_X"]`,
		scl.ExtRefPath("IED1", "LDEPF", ln0, &scl.ExtRef{Desc: "DYN_LDEPF_X"}))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "", scl.StringOf(nil))
	assert.Equal(t, "", scl.StringOf(scl.Ptr("  ")))
	assert.Equal(t, "B", scl.StringOf(scl.Ptr(" B ")))
	assert.True(t, scl.IsBlank(" "))
	assert.True(t, scl.EqualsOrBothBlank("", " "))
	assert.False(t, scl.EqualsOrBothBlank("", "A"))
	assert.True(t, scl.EqualsOrBothBlank("A", "A"))
}

func TestLNClassListAttr(t *testing.T) {
	var l scl.LNClassList
	assert.Equal(t, "", l.First())
	assert.False(t, l.Contains("LLN0"))

	l = scl.LNClassList{"PTRC", "GGIO"}
	assert.Equal(t, "PTRC", l.First())
	assert.True(t, l.Contains("GGIO"))
}
