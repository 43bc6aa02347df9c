package scl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sct-tools/sct-go/pkg/scl"
	"github.com/sct-tools/sct-go/pkg/scl/scltest"
)

func TestResolveSignal(t *testing.T) {
	tmpl := scltest.Templates()

	tests := []struct {
		name   string
		lnType string
		pDO    string
		pDA    string
		wantOK bool
		want   scl.Match
	}{
		{
			name:   "DO only",
			lnType: scltest.TypeLLN0,
			pDO:    "Mod",
			wantOK: true,
			want:   scl.Match{DoName: "Mod", CDC: "ENC"},
		},
		{
			name:   "DO and DA",
			lnType: scltest.TypePTRC,
			pDO:    "Tr",
			pDA:    "general",
			wantOK: true,
			want:   scl.Match{DoName: "Tr", DaName: "general", CDC: "ACT", FC: "ST", BType: "BOOLEAN"},
		},
		{
			name:   "structured DA",
			lnType: scltest.TypeLLN0,
			pDO:    "Mod",
			pDA:    "origin.orCat",
			wantOK: true,
			want:   scl.Match{DoName: "Mod", DaName: "origin.orCat", CDC: "ENC", FC: "ST", BType: "Enum"},
		},
		{name: "unknown DO", lnType: scltest.TypePTRC, pDO: "Str"},
		{name: "unknown DA", lnType: scltest.TypePTRC, pDO: "Tr", pDA: "phsA"},
		{name: "BDA on basic DA", lnType: scltest.TypePTRC, pDO: "Tr", pDA: "general.x"},
		{name: "unknown BDA", lnType: scltest.TypeLLN0, pDO: "Mod", pDA: "origin.nope"},
		{name: "SDO on leaf DO", lnType: scltest.TypePTRC, pDO: "Tr.phsA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := tmpl.ResolveSignal(tt.lnType, tt.pDO, tt.pDA)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveSignalErrors(t *testing.T) {
	tmpl := scltest.Templates()
	tmpl.LNodeTypes = append(tmpl.LNodeTypes, &scl.LNodeType{
		ID: "BROKEN", LnClass: "GGIO",
		DOs: []*scl.DODef{{Name: "Ind1", Type: "DO_MISSING"}},
	})

	tests := []struct {
		name   string
		lnType string
		pDO    string
		pDA    string
	}{
		{name: "blank pDO", lnType: scltest.TypeLLN0, pDO: " "},
		{name: "empty DO segment", lnType: scltest.TypeLLN0, pDO: "Mod..x"},
		{name: "empty DA segment", lnType: scltest.TypeLLN0, pDO: "Mod", pDA: "origin."},
		{name: "unknown LNodeType", lnType: "NOPE", pDO: "Mod"},
		{name: "dangling DOType", lnType: "BROKEN", pDO: "Ind1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := tmpl.ResolveSignal(tt.lnType, tt.pDO, tt.pDA)
			assert.False(t, ok)
			var resErr *scl.ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, tt.lnType, resErr.LnType)
		})
	}
}
