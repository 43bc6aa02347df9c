package ldepf

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sct-tools/sct-go/pkg/scl"
	"github.com/sct-tools/sct-go/pkg/scl/scltest"
)

func intPtr(n int) *int { return &n }

func TestLoadFile(t *testing.T) {
	table, err := LoadFile(filepath.Join("testdata", "settings.yaml"))
	require.NoError(t, err)
	require.Len(t, table.Settings, 2)

	digital := table.Settings[0]
	assert.Equal(t, SignalDigital, digital.ChannelSignalType)
	require.NotNil(t, digital.ChannelDigitalNum)
	assert.Equal(t, 1, *digital.ChannelDigitalNum)
	assert.Nil(t, digital.ChannelAnalogNum)
	assert.Nil(t, digital.LnPrefix)
	assert.Equal(t, BayInternal, digital.BayScope)
	assert.True(t, digital.IsDigital())

	analog := table.Settings[1]
	require.NotNil(t, analog.LnPrefix)
	assert.Equal(t, "U01A", *analog.LnPrefix)
	assert.Equal(t, BayAll, analog.BayScope, "blank scope defaults to ALL")
	assert.True(t, analog.IsAnalog())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "bad signal type",
			yaml:    "settings:\n  - channelSignalType: BOTH\n    ldInst: LD\n    lnClass: PTRC\n    doName: Str\n",
			wantErr: ErrInvalidSignalType,
		},
		{
			name:    "bad bay scope",
			yaml:    "settings:\n  - channelSignalType: DIGITAL\n    bayScope: NEAR\n    ldInst: LD\n    lnClass: PTRC\n    doName: Str\n",
			wantErr: ErrInvalidBayScope,
		},
		{
			name:    "missing ldInst",
			yaml:    "settings:\n  - channelSignalType: DIGITAL\n    lnClass: PTRC\n    doName: Str\n",
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("settings:\n  - channelSignalType: DIGITAL\n    colour: red\n"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	table, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Settings)
}

func TestLoadKeepsBothChannels(t *testing.T) {
	table, err := Load(strings.NewReader(
		"settings:\n  - channelSignalType: DIGITAL\n    channelDigitalNum: 3\n    channelAnalogNum: 5\n    ldInst: LD\n    lnClass: PTRC\n    doName: Str\n"))
	require.NoError(t, err)
	s := table.Settings[0]
	assert.False(t, s.IsDigital())
	assert.False(t, s.IsAnalog())
}

func TestResolvedDoName(t *testing.T) {
	tests := []struct {
		doInst string
		want   string
	}{
		{"", "Mod"},
		{"  ", "Mod"},
		{"0", "Mod"},
		{"1", "Mod1"},
		{"12", "Mod12"},
	}
	for _, tt := range tests {
		s := &Setting{DoName: "Mod", DoInst: tt.doInst}
		assert.Equal(t, tt.want, s.ResolvedDoName(), "doInst %q", tt.doInst)
	}
}

func TestDescPrefix(t *testing.T) {
	s := &Setting{ChannelSignalType: SignalAnalog, ChannelAnalogNum: intPtr(7)}
	p, ok := s.DescPrefix()
	require.True(t, ok)
	assert.Equal(t, "DYN_LDEPF_ANALOG CHANNEL 7_", p)

	s = &Setting{ChannelSignalType: SignalDigital, ChannelAnalogNum: intPtr(7)}
	_, ok = s.DescPrefix()
	assert.False(t, ok)
}

func TestMatchSetting(t *testing.T) {
	first := &Setting{ChannelSignalType: SignalDigital, ChannelDigitalNum: intPtr(1), LnClass: "PTRC", DoName: "Str", DaName: "general"}
	second := &Setting{ChannelSignalType: SignalDigital, ChannelDigitalNum: intPtr(1), LnClass: "GGIO", DoName: "Ind", DoInst: "1", DaName: "stVal"}
	table := &Table{Settings: []*Setting{first, second}}

	tests := []struct {
		name   string
		extRef *scl.ExtRef
		want   *Setting
	}{
		{
			name:   "desc only picks first row",
			extRef: &scl.ExtRef{Desc: "DYN_LDEPF_DIGITAL CHANNEL 1_1_BOOLEEN_1_general_1"},
			want:   first,
		},
		{
			name:   "signal selects second row",
			extRef: &scl.ExtRef{Desc: "DYN_LDEPF_DIGITAL CHANNEL 1_x", PLN: "GGIO", PDO: "Ind1", PDA: "stVal"},
			want:   second,
		},
		{
			name:   "mismatching pDA",
			extRef: &scl.ExtRef{Desc: "DYN_LDEPF_DIGITAL CHANNEL 1_x", PLN: "PTRC", PDA: "q"},
		},
		{
			name:   "other channel",
			extRef: &scl.ExtRef{Desc: "DYN_LDEPF_DIGITAL CHANNEL 12_x"},
		},
		{
			name:   "other type",
			extRef: &scl.ExtRef{Desc: "DYN_LDEPF_ANALOG CHANNEL 1_x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.MatchSetting(tt.extRef)
			assert.Equal(t, tt.want != nil, ok)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestIEDSources(t *testing.T) {
	b := scltest.NewDocument()
	add := func(name, iedType, bay, status string) {
		ib := b.IED(name).ICDHeader(scl.ICDHeader{
			ICDSystemVersionUUID:     name + "-uuid",
			IEDName:                  name,
			IEDType:                  iedType,
			IEDRedundancy:            "A",
			IEDSystemVersionInstance: "1",
		})
		if bay != "" {
			ib.Bay(bay)
		}
		ib.LDevice("LDPX", status)
	}
	add("BCU_IN", "BCU", "bay-1", "on")
	add("BCU_OUT", "BCU", "bay-2", "on")
	add("BCU_OFF", "BCU", "bay-1", "off")
	add("SAMU_IN", "SAMU", "bay-1", "on")
	add("BCU_NOBAY", "BCU", "", "on")
	b.IED("NO_HEADER").LDevice("LDPX", "on")
	doc := b.Doc()
	bay := &scl.CompasBay{UUID: "bay-1"}
	table := &Table{}

	names := func(ieds []*scl.IED) []string {
		var out []string
		for _, ied := range ieds {
			out = append(out, ied.Name)
		}
		return out
	}

	tests := []struct {
		name    string
		setting *Setting
		want    []string
	}{
		{
			name:    "internal",
			setting: &Setting{LdInst: "LDPX", IEDType: "BCU", IEDRedundancy: "A", IEDInstance: "1", BayScope: BayInternal},
			want:    []string{"BCU_IN"},
		},
		{
			name:    "external",
			setting: &Setting{LdInst: "LDPX", IEDType: "BCU", BayScope: BayExternal},
			want:    []string{"BCU_OUT"},
		},
		{
			name:    "all with wildcard type",
			setting: &Setting{LdInst: "LDPX", BayScope: BayAll},
			want:    []string{"BCU_IN", "BCU_OUT", "SAMU_IN", "BCU_NOBAY"},
		},
		{
			name:    "instance mismatch",
			setting: &Setting{LdInst: "LDPX", IEDInstance: "2", BayScope: BayAll},
		},
		{
			name:    "missing LDevice",
			setting: &Setting{LdInst: "LDNONE", BayScope: BayAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(table.IEDSources(doc, bay, tt.setting)))
		})
	}
}
