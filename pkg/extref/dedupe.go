package extref

import "github.com/sct-tools/sct-go/pkg/scl"

// FilterDuplicated returns extRefs without the entries fed by the same
// control block as an earlier entry. Order is preserved.
func FilterDuplicated(extRefs []*scl.ExtRef) []*scl.ExtRef {
	out := make([]*scl.ExtRef, 0, len(extRefs))
	for _, e := range extRefs {
		dup := false
		for _, kept := range out {
			if SameControlBlock(e, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// SameControlBlock reports whether a and b are fed by the same control
// block. A missing srcLNClass stands for LLN0.
func SameControlBlock(a, b *scl.ExtRef) bool {
	return scl.EqualsOrBothBlank(a.IEDName, b.IEDName) &&
		scl.EqualsOrBothBlank(a.SrcLDInst, b.SrcLDInst) &&
		srcLNClass(a) == srcLNClass(b) &&
		scl.EqualsOrBothBlank(a.SrcLNInst, b.SrcLNInst) &&
		scl.EqualsOrBothBlank(scl.StringOf(a.SrcPrefix), scl.StringOf(b.SrcPrefix)) &&
		scl.EqualsOrBothBlank(a.SrcCBName, b.SrcCBName) &&
		a.ServiceType == b.ServiceType
}

func srcLNClass(e *scl.ExtRef) string {
	if len(e.SrcLNClass) == 0 {
		return scl.LLN0
	}
	return e.SrcLNClass[0]
}
