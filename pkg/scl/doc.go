// Package scl implements the substation configuration model used by the
// ExtRef binding engine.
//
// # Model Hierarchy
//
// A configuration document follows the IEC 61850-6 SCL layout:
//
//	SCL
//	├── Header (history)
//	├── Substation > VoltageLevel > Bay
//	├── Communication > SubNetwork > ConnectedAP
//	├── IED (name, compas privates)
//	│   └── AccessPoint > Server > LDevice (inst)
//	│       ├── LN0 (LLN0, Inputs > ExtRef, control blocks)
//	│       └── LN  (lnClass, inst, prefix)
//	│           └── DOI > SDI* > DAI > Val
//	└── DataTypeTemplates (LNodeType, DOType, DAType, EnumType)
//
// Types in this package are plain data with navigation methods. Parent
// relations are not stored on children: helpers that need a parent take it
// as an argument, and callers walking the tree keep the chain at hand.
//
// # Optional Values
//
// Attributes whose absence carries a different meaning than an empty value
// (ExtRef prefix, ExtRef source prefix) are pointers. [StringOf] reads them
// the way the rest of the engine expects: absent and blank are both "".
//
// # Locations
//
// [IEDPath], [LDevicePath], [LNPath] and [ExtRefPath] build XPath-like
// locations such as
//
//	/SCL/IED[@name="IED1"]/AccessPoint/Server/LDevice[@inst="LDEPF"]/LN0
//
// which diagnostics carry so an entity can be found without the document.
//
// # Concurrency
//
// A Document is not safe for concurrent use. Operations read and mutate one
// document from a single goroutine.
package scl
