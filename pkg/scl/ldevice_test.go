package scl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sct-tools/sct-go/pkg/scl"
	"github.com/sct-tools/sct-go/pkg/scl/scltest"
)

func TestLDeviceLookups(t *testing.T) {
	b := scltest.NewDocument()
	ldb := b.IED("IED1").LDevice("LD1", "on")
	ldb.LN("PTRC", "1", "", scltest.TypePTRC)
	ldb.ChannelLN("RBDR", "1", "B")
	ld := ldb.LDevice()

	lns := ld.LNsWithLN0()
	require.Len(t, lns, 3)
	assert.True(t, lns[0].IsLN0())
	assert.False(t, lns[1].IsLN0())

	ln, ok := ld.FindLN("RBDR", "1", "B")
	require.True(t, ok)
	assert.Equal(t, "B", ln.Prefix)

	_, ok = ld.FindLN("RBDR", "1", "")
	assert.False(t, ok)

	ptrc, err := ld.LNByClass("PTRC", "1", "")
	require.NoError(t, err)
	assert.Equal(t, "PTRC", ptrc.LnClass)

	ln0, err := ld.LNByClass(scl.LLN0, "", "")
	require.NoError(t, err)
	assert.Same(t, ld.LN0, ln0)

	_, err = ld.LNByClass("GGIO", "9", "")
	assert.True(t, errors.Is(err, scl.ErrLNNotFound))
}

func TestLDeviceStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		wantOn bool
		wantOK bool
	}{
		{name: "on", status: "on", wantOn: true, wantOK: true},
		{name: "off", status: "off", wantOn: false, wantOK: true},
		{name: "missing", status: "", wantOn: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld := scltest.NewDocument().IED("IED1").LDevice("LD1", tt.status).LDevice()

			got, ok := ld.Status()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.status, got)
			assert.Equal(t, tt.wantOn, ld.IsOn())
		})
	}
}

func TestUpdateLDName(t *testing.T) {
	ld := &scl.LDevice{Inst: "LDEPF"}

	require.NoError(t, ld.UpdateLDName("IED1"))
	assert.Equal(t, "IED1LDEPF", ld.LdName)

	err := ld.UpdateLDName(strings.Repeat("X", 29))
	assert.True(t, errors.Is(err, scl.ErrLDNameTooLong))
	assert.Equal(t, "IED1LDEPF", ld.LdName)
}

func TestDOIUpdateDAI(t *testing.T) {
	doi := scltest.DOI("SrcRef", "setSrcRef", "")

	old, changed, err := doi.UpdateDAI("setSrcRef", "IED1LD/PTRC1.Tr.q")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, old)

	old, changed, err = doi.UpdateDAI("setSrcRef", "IED1LD/PTRC1.Tr.q")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "IED1LD/PTRC1.Tr.q", old)

	dai, ok := doi.FindDAI("setSrcRef")
	require.True(t, ok)
	assert.Len(t, dai.Vals, 1)

	_, _, err = doi.UpdateDAI("missing", "x")
	assert.True(t, errors.Is(err, scl.ErrDANotFound))
}

func TestLNDOIByName(t *testing.T) {
	ln := &scl.LN{LnClass: "RBDR", DOIs: []*scl.DOI{scltest.DOI("Mod", "stVal", "on")}}

	doi, err := ln.DOIByName("Mod")
	require.NoError(t, err)
	assert.Equal(t, "Mod", doi.Name)

	_, err = ln.DOIByName("LevMod")
	assert.True(t, errors.Is(err, scl.ErrDONotFound))
}

func TestDOIFindDAINested(t *testing.T) {
	doi := &scl.DOI{
		Name: "Mod",
		SDIs: []*scl.SDI{{Name: "origin", DAIs: []*scl.DAI{{Name: "orCat"}}}},
	}

	_, ok := doi.FindDAI("origin.orCat")
	assert.True(t, ok)
	_, ok = doi.FindDAI("origin.orIdent")
	assert.False(t, ok)
	_, ok = doi.FindDAI("other.orCat")
	assert.False(t, ok)
}

func TestHasControlBlock(t *testing.T) {
	ldb := scltest.NewDocument().IED("IED1").LDevice("LD1", "on")
	ldb.GSEControl("CB_G").SampledValueControl("CB_S").ReportControl("CB_R")
	ln0 := ldb.LDevice().LN0

	assert.True(t, ln0.HasControlBlock("CB_G", scl.ServiceGOOSE))
	assert.True(t, ln0.HasControlBlock("CB_S", scl.ServiceSMV))
	assert.True(t, ln0.HasControlBlock("CB_R", scl.ServiceReport))
	assert.False(t, ln0.HasControlBlock("CB_G", scl.ServiceSMV))
	assert.False(t, ln0.HasControlBlock("CB_G", scl.ServicePoll))

	cbs := ldb.LDevice().ControlBlocks()
	require.Len(t, cbs, 3)
	assert.Equal(t, scl.ServiceGOOSE, cbs[0].ServiceType)
	assert.Equal(t, "CB_R", cbs[2].Name)
}

func TestParseSubNetworkType(t *testing.T) {
	got, err := scl.ParseSubNetworkType("8-MMS")
	require.NoError(t, err)
	assert.Equal(t, scl.SubNetworkMMS, got)

	_, err = scl.ParseSubNetworkType("WIFI")
	assert.True(t, errors.Is(err, scl.ErrUnknownSubNetworkType))
}
