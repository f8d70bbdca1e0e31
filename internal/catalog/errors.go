package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrEventNotFound = errors.New("event not found in catalog")
	ErrDecode        = errors.New("catalog decode failed")
	ErrUnsupported   = errors.New("unsupported catalog file format")
)
