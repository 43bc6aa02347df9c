package extref

import "errors"

// Single-item operation errors.
var (
	ErrMissingSignalOrBinding = errors.New("ExtRef signal and/or binding information are missing")
	ErrInvalidSignal          = errors.New("invalid or missing attributes in ExtRef signal info")
	ErrInvalidBinding         = errors.New("invalid or missing attributes in ExtRef binding info")
	ErrInvalidSource          = errors.New("invalid or missing attributes in ExtRef source info")
	ErrInternalBinding        = errors.New("internal binding can't have control block")
	ErrExtRefNotFound         = errors.New("ExtRef not found")
	ErrControlBlockNotFound   = errors.New("control block not found")
)
