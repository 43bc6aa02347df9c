package extref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sct-tools/sct-go/pkg/log"
	"github.com/sct-tools/sct-go/pkg/scl"
	"github.com/sct-tools/sct-go/pkg/scl/scltest"
)

func updateFixture() (*scl.Document, *scl.ExtRef) {
	b := scltest.NewDocument()

	pub := b.IED("IED_PUB")
	pubLD := pub.LDevice("LD_PUB", scl.StatusOn).GSEControl("CB_GOOSE").ReportControl("CB_RPT")
	pubLD.LN("GGIO", "1", "", scltest.TypeGGIO)

	sub := b.IED("IED_SUB")
	e := sub.LDevice("LD_SUB", scl.StatusOn).
		ExtRef(&scl.ExtRef{Desc: "ext1", PDO: "Mod", PDA: "stVal", PServT: scl.ServiceGOOSE})

	return b.Doc(), e
}

func holderInfo() *ExtRefInfo {
	return &ExtRefInfo{
		HolderIEDName: "IED_SUB",
		HolderLDInst:  "LD_SUB",
		HolderLnClass: scl.LLN0,
		Signal:        &SignalInfo{Desc: "ext1", PDO: "Mod", PDA: "stVal", PServT: scl.ServiceGOOSE},
		Binding:       &BindingInfo{IEDName: "IED_PUB", LdInst: "LD_PUB", LnClass: "GGIO", LnInst: "1"},
	}
}

func TestUpdateBinders(t *testing.T) {
	doc, e := updateFixture()
	changes := &log.MemoryLogger{}
	svc := NewService(Config{ChangeLogger: changes})

	err := svc.UpdateBinders(doc, holderInfo())

	require.NoError(t, err)
	assert.Equal(t, "IED_PUB", e.IEDName)
	assert.Equal(t, "LD_PUB", e.LdInst)
	assert.Equal(t, scl.LNClassList{"GGIO"}, e.LnClass)
	assert.Equal(t, "1", e.LnInst)
	assert.Equal(t, "Mod", e.DoName)
	assert.Equal(t, "stVal", e.DaName)
	assert.Equal(t, scl.ServiceGOOSE, e.ServiceType)
	assert.Nil(t, e.Prefix)
	assert.NotEmpty(t, changes.Changes())

	for _, ev := range changes.Events {
		assert.Equal(t, OpUpdateBinders, ev.Operation)
		assert.Equal(t, log.CategoryBinding, ev.Category)
	}
}

func TestUpdateBindersErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(info *ExtRefInfo) *ExtRefInfo
		want   error
	}{
		{
			name:   "NilInfo",
			mutate: func(*ExtRefInfo) *ExtRefInfo { return nil },
			want:   ErrMissingSignalOrBinding,
		},
		{
			name:   "MissingBinding",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Binding = nil; return info },
			want:   ErrMissingSignalOrBinding,
		},
		{
			name:   "InvalidSignal",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Signal.PDO = " "; return info },
			want:   ErrInvalidSignal,
		},
		{
			name:   "InvalidBinding",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Binding.LnInst = ""; return info },
			want:   ErrInvalidBinding,
		},
		{
			name:   "UnknownHolderIED",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.HolderIEDName = "NOPE"; return info },
			want:   scl.ErrIEDNotFound,
		},
		{
			name:   "UnknownHolderLDevice",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.HolderLDInst = "NOPE"; return info },
			want:   scl.ErrLDeviceNotFound,
		},
		{
			name:   "UnknownExtRef",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Signal.Desc = "other"; return info },
			want:   ErrExtRefNotFound,
		},
		{
			name:   "UnknownTargetIED",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Binding.IEDName = "NOPE"; return info },
			want:   scl.ErrIEDNotFound,
		},
		{
			name:   "UnknownTargetLDevice",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Binding.LdInst = "NOPE"; return info },
			want:   scl.ErrLDeviceNotFound,
		},
		{
			name:   "UnknownTargetLN",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Binding.LnInst = "9"; return info },
			want:   scl.ErrLNNotFound,
		},
		{
			name:   "TargetLacksDataObject",
			mutate: func(info *ExtRefInfo) *ExtRefInfo { info.Binding.DoName = "Tr"; return info },
			want:   ErrInvalidBinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, e := updateFixture()
			before := *e
			changes := &log.MemoryLogger{}

			err := NewService(Config{ChangeLogger: changes}).UpdateBinders(doc, tt.mutate(holderInfo()))

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, *e, "no partial writes")
			assert.Empty(t, changes.Events)
		})
	}
}

func TestUpdateBindersAmbiguousSignal(t *testing.T) {
	doc, e := updateFixture()
	ld := doc.IEDList[1].LDevices()[0]
	clone := *e
	ld.LN0.Inputs.ExtRefs = append(ld.LN0.Inputs.ExtRefs, &clone)

	err := NewService(Config{}).UpdateBinders(doc, holderInfo())

	assert.ErrorIs(t, err, ErrExtRefNotFound)
	assert.Empty(t, e.IEDName)
}

func boundInfo(e *scl.ExtRef) *ExtRefInfo {
	e.IEDName = "IED_PUB"
	e.LdInst = "LD_PUB"
	e.LnClass = scl.LNClassList{"GGIO"}
	e.LnInst = "1"
	e.ServiceType = scl.ServiceGOOSE

	info := holderInfo()
	info.Binding.ServiceType = scl.ServiceGOOSE
	info.Source = &SourceInfo{SrcLDInst: "LD_PUB", SrcCBName: "CB_GOOSE"}
	return info
}

func TestUpdateSource(t *testing.T) {
	doc, e := updateFixture()
	info := boundInfo(e)
	changes := &log.MemoryLogger{}

	got, err := NewService(Config{ChangeLogger: changes}).UpdateSource(doc, info)

	require.NoError(t, err)
	assert.Same(t, e, got)
	assert.Equal(t, "LD_PUB", e.SrcLDInst)
	assert.Equal(t, "CB_GOOSE", e.SrcCBName)
	assert.Nil(t, e.SrcLNClass)
	assert.Nil(t, e.SrcPrefix)
	require.Len(t, changes.Changes(), 2)
	for _, ev := range changes.Events {
		assert.Equal(t, log.CategorySource, ev.Category)
	}
}

func TestUpdateSourceErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(info *ExtRefInfo)
		want   error
	}{
		{
			name:   "InvalidSignal",
			mutate: func(info *ExtRefInfo) { info.Signal = nil },
			want:   ErrInvalidSignal,
		},
		{
			name:   "InvalidBinding",
			mutate: func(info *ExtRefInfo) { info.Binding.LdInst = "" },
			want:   ErrInvalidBinding,
		},
		{
			name:   "SelfBinding",
			mutate: func(info *ExtRefInfo) { info.Binding.IEDName = "IED_SUB" },
			want:   ErrInternalBinding,
		},
		{
			name:   "PollBinding",
			mutate: func(info *ExtRefInfo) { info.Binding.ServiceType = scl.ServicePoll },
			want:   ErrInternalBinding,
		},
		{
			name:   "MissingSource",
			mutate: func(info *ExtRefInfo) { info.Source = nil },
			want:   ErrInvalidSource,
		},
		{
			name:   "InvalidSource",
			mutate: func(info *ExtRefInfo) { info.Source.SrcCBName = "" },
			want:   ErrInvalidSource,
		},
		{
			name:   "ExtRefBoundElsewhere",
			mutate: func(info *ExtRefInfo) { info.Binding.LnInst = "2" },
			want:   ErrExtRefNotFound,
		},
		{
			name:   "UnknownSourceLDevice",
			mutate: func(info *ExtRefInfo) { info.Source.SrcLDInst = "NOPE" },
			want:   scl.ErrLDeviceNotFound,
		},
		{
			name:   "UnknownControlBlock",
			mutate: func(info *ExtRefInfo) { info.Source.SrcCBName = "CB_NONE" },
			want:   ErrControlBlockNotFound,
		},
		{
			name:   "ControlBlockOfOtherKind",
			mutate: func(info *ExtRefInfo) { info.Source.SrcCBName = "CB_RPT" },
			want:   ErrControlBlockNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, e := updateFixture()
			info := boundInfo(e)
			tt.mutate(info)
			before := *e

			got, err := NewService(Config{}).UpdateSource(doc, info)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
			assert.Equal(t, before, *e, "no partial writes")
		})
	}
}
