// Package extref resolves ExtRef bindings in an SCL document.
//
// The package offers two kinds of operations:
//
// Batch operations walk the whole document and return a list of
// report.Item diagnostics; one bad item never stops the others:
//
//	items := svc.BindAllIEDNames(doc)      // compas:Flow driven binding
//	items := svc.WireLDEPF(doc, settings)  // LDEPF channel wiring
//
// Single-item operations change one ExtRef and fail fast with an error,
// leaving the document untouched on failure:
//
//	err := svc.UpdateBinders(doc, info)
//	extRef, err := svc.UpdateSource(doc, info)
//
// Read-only helpers ValidateIEDs, FindBinders and FilterDuplicated do not
// need a Service.
//
// Every write is reported to the configured change logger as a
// log.ChangeEvent, every diagnostic as a log.DiagnosticEvent.
package extref
