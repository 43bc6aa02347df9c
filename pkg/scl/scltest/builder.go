// Package scltest builds SCL documents for tests.
package scltest

import (
	"github.com/google/uuid"

	"github.com/sct-tools/sct-go/pkg/scl"
)

// LNodeType ids installed by Templates.
const (
	TypeLLN0 = "LN0_TYPE"
	TypeRBDR = "RBDR_TYPE"
	TypeRADR = "RADR_TYPE"
	TypeGGIO = "GGIO_TYPE"
	TypePTRC = "PTRC_TYPE"
)

// Builder assembles a document.
type Builder struct {
	doc *scl.Document
}

// NewDocument starts an empty document with a header and the standard
// type catalog.
func NewDocument() *Builder {
	return &Builder{doc: &scl.Document{
		Version:           "2007",
		Revision:          "B",
		Release:           "4",
		Header:            &scl.Header{ID: uuid.NewString(), Version: "1", Revision: "1"},
		DataTypeTemplates: Templates(),
	}}
}

// Doc returns the document under construction.
func (b *Builder) Doc() *scl.Document {
	return b.doc
}

// Bay adds a substation bay carrying a compas Bay private.
func (b *Builder) Bay(name, bayUUID string) *Builder {
	if len(b.doc.Substations) == 0 {
		b.doc.Substations = append(b.doc.Substations, &scl.Substation{
			Name:          "SUB1",
			VoltageLevels: []*scl.VoltageLevel{{Name: "VL1"}},
		})
	}
	vl := b.doc.Substations[0].VoltageLevels[0]
	vl.Bays = append(vl.Bays, &scl.Bay{
		Name:     name,
		Privates: []*scl.Private{{Type: scl.PrivateBay, Bay: &scl.CompasBay{UUID: bayUUID}}},
	})
	return b
}

// IED adds an IED with one access point and an empty server.
func (b *Builder) IED(name string) *IEDBuilder {
	ied := &scl.IED{
		Name:         name,
		AccessPoints: []*scl.AccessPoint{{Name: "AP1", Server: &scl.Server{}}},
	}
	b.doc.IEDList = append(b.doc.IEDList, ied)
	return &IEDBuilder{ied: ied}
}

// IEDBuilder configures one IED.
type IEDBuilder struct {
	ied *scl.IED
}

// IED returns the IED under construction.
func (ib *IEDBuilder) IED() *scl.IED {
	return ib.ied
}

// ICDHeader installs the given compas ICDHeader.
func (ib *IEDBuilder) ICDHeader(h scl.ICDHeader) *IEDBuilder {
	ib.ied.Privates = append(ib.ied.Privates, &scl.Private{Type: scl.PrivateICDHeader, ICDHeader: &h})
	return ib
}

// Identity installs an ICDHeader with a random ICDSystemVersionUUID and
// returns the UUID.
func (ib *IEDBuilder) Identity() string {
	id := uuid.NewString()
	ib.ICDHeader(scl.ICDHeader{ICDSystemVersionUUID: id, IEDName: ib.ied.Name})
	return id
}

// Bay installs a compas Bay private.
func (ib *IEDBuilder) Bay(bayUUID string) *IEDBuilder {
	ib.ied.Privates = append(ib.ied.Privates, &scl.Private{Type: scl.PrivateBay, Bay: &scl.CompasBay{UUID: bayUUID}})
	return ib
}

// LDevice adds a logical device with an LN0. A non-empty status is written
// into LN0 Mod.stVal.
func (ib *IEDBuilder) LDevice(inst, status string) *LDBuilder {
	ln0 := &scl.LN{LnClass: scl.LLN0, LnType: TypeLLN0}
	if status != "" {
		ln0.DOIs = append(ln0.DOIs, DOI("Mod", "stVal", status))
	}
	ld := &scl.LDevice{Inst: inst, LN0: ln0}
	srv := ib.ied.AccessPoints[0].Server
	srv.LDeviceList = append(srv.LDeviceList, ld)
	return &LDBuilder{ld: ld}
}

// LDBuilder configures one logical device.
type LDBuilder struct {
	ld *scl.LDevice
}

// LDevice returns the logical device under construction.
func (lb *LDBuilder) LDevice() *scl.LDevice {
	return lb.ld
}

// LN adds a plain logical node.
func (lb *LDBuilder) LN(lnClass, inst, prefix, lnType string) *scl.LN {
	ln := &scl.LN{LnClass: lnClass, Inst: inst, Prefix: prefix, LnType: lnType}
	lb.ld.LNs = append(lb.ld.LNs, ln)
	return ln
}

// ChannelLN adds an RBDR or RADR logical node carrying the attributes the
// LDEPF engine writes.
func (lb *LDBuilder) ChannelLN(lnClass, inst, prefix string) *scl.LN {
	lnType := TypeRBDR
	if lnClass == "RADR" {
		lnType = TypeRADR
	}
	ln := lb.LN(lnClass, inst, prefix, lnType)
	ln.DOIs = []*scl.DOI{
		DOI("ChNum1", "dU", ""),
		DOI("LevMod", "setVal", ""),
		DOI("Mod", "stVal", ""),
		DOI("SrcRef", "setSrcRef", ""),
	}
	return ln
}

// ExtRef appends an ExtRef to the LN0 inputs.
func (lb *LDBuilder) ExtRef(e *scl.ExtRef) *scl.ExtRef {
	in := lb.inputs()
	in.ExtRefs = append(in.ExtRefs, e)
	return e
}

// Flow appends a compas:Flow to the LN0 inputs.
func (lb *LDBuilder) Flow(f *scl.Flow) *scl.Flow {
	in := lb.inputs()
	in.Privates = append(in.Privates, &scl.Private{Type: scl.PrivateFlow, Flows: []*scl.Flow{f}})
	return f
}

// GSEControl adds a GOOSE control block to LN0.
func (lb *LDBuilder) GSEControl(name string) *LDBuilder {
	lb.ld.LN0.GSEControls = append(lb.ld.LN0.GSEControls, &scl.GSEControl{Name: name, AppID: name})
	return lb
}

// SampledValueControl adds a sampled value control block to LN0.
func (lb *LDBuilder) SampledValueControl(name string) *LDBuilder {
	lb.ld.LN0.SampledValueControls = append(lb.ld.LN0.SampledValueControls, &scl.SampledValueControl{Name: name, SmvID: name})
	return lb
}

// ReportControl adds a report control block to LN0.
func (lb *LDBuilder) ReportControl(name string) *LDBuilder {
	lb.ld.LN0.ReportControls = append(lb.ld.LN0.ReportControls, &scl.ReportControl{Name: name, RptID: name})
	return lb
}

func (lb *LDBuilder) inputs() *scl.Inputs {
	if lb.ld.LN0.Inputs == nil {
		lb.ld.LN0.Inputs = &scl.Inputs{}
	}
	return lb.ld.LN0.Inputs
}

// DOI returns a DOI holding one DAI. An empty value leaves the DAI without Val.
func DOI(doName, daName, value string) *scl.DOI {
	dai := &scl.DAI{Name: daName}
	if value != "" {
		dai.Vals = []*scl.Val{{Value: value}}
	}
	return &scl.DOI{Name: doName, DAIs: []*scl.DAI{dai}}
}

// Templates returns a small type catalog covering LLN0, the LDEPF channel
// classes and two source classes.
func Templates() *scl.DataTypeTemplates {
	return &scl.DataTypeTemplates{
		LNodeTypes: []*scl.LNodeType{
			{ID: TypeLLN0, LnClass: scl.LLN0, DOs: []*scl.DODef{
				{Name: "Mod", Type: "DO_ENC"},
				{Name: "Beh", Type: "DO_ENS"},
			}},
			{ID: TypeRBDR, LnClass: "RBDR", DOs: channelDOs()},
			{ID: TypeRADR, LnClass: "RADR", DOs: channelDOs()},
			{ID: TypeGGIO, LnClass: "GGIO", DOs: []*scl.DODef{
				{Name: "Mod", Type: "DO_ENC"},
				{Name: "Ind1", Type: "DO_SPS"},
			}},
			{ID: TypePTRC, LnClass: "PTRC", DOs: []*scl.DODef{
				{Name: "Mod", Type: "DO_ENC"},
				{Name: "Tr", Type: "DO_ACT"},
			}},
		},
		DOTypes: []*scl.DOType{
			{ID: "DO_ENC", CDC: "ENC", DAs: []*scl.DADef{
				{Name: "stVal", FC: "ST", BType: "Enum", Type: "BehaviourModeKind"},
				{Name: "q", FC: "ST", BType: "Quality"},
				{Name: "origin", FC: "ST", BType: scl.BTypeStruct, Type: "DA_Originator"},
			}},
			{ID: "DO_ENS", CDC: "ENS", DAs: []*scl.DADef{
				{Name: "stVal", FC: "ST", BType: "Enum", Type: "BehaviourModeKind"},
			}},
			{ID: "DO_SPS", CDC: "SPS", DAs: []*scl.DADef{
				{Name: "stVal", FC: "ST", BType: "BOOLEAN"},
				{Name: "q", FC: "ST", BType: "Quality"},
			}},
			{ID: "DO_ACT", CDC: "ACT", DAs: []*scl.DADef{
				{Name: "general", FC: "ST", BType: "BOOLEAN"},
				{Name: "q", FC: "ST", BType: "Quality"},
			}},
			{ID: "DO_CHNUM", CDC: "INS", DAs: []*scl.DADef{
				{Name: "stVal", FC: "ST", BType: "INT32"},
				{Name: "dU", FC: "DC", BType: "Unicode255"},
			}},
			{ID: "DO_LEVMOD", CDC: "ENG", DAs: []*scl.DADef{
				{Name: "setVal", FC: "SP", BType: "Enum", Type: "LevelModKind"},
			}},
			{ID: "DO_SRCREF", CDC: "ORG", DAs: []*scl.DADef{
				{Name: "setSrcRef", FC: "SP", BType: "ObjRef"},
			}},
		},
		DATypes: []*scl.DAType{
			{ID: "DA_Originator", BDAs: []*scl.BDADef{
				{Name: "orCat", BType: "Enum", Type: "OriginatorCategoryKind"},
				{Name: "orIdent", BType: "Octet64"},
			}},
		},
		EnumTypes: []*scl.EnumType{
			{ID: "BehaviourModeKind", EnumVals: []*scl.EnumVal{
				{Ord: 1, Value: "on"}, {Ord: 2, Value: "blocked"}, {Ord: 3, Value: "test"}, {Ord: 5, Value: "off"},
			}},
		},
	}
}

func channelDOs() []*scl.DODef {
	return []*scl.DODef{
		{Name: "Mod", Type: "DO_ENC"},
		{Name: "ChNum1", Type: "DO_CHNUM"},
		{Name: "LevMod", Type: "DO_LEVMOD"},
		{Name: "SrcRef", Type: "DO_SRCREF"},
	}
}
