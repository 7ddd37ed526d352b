package prebook

import "errors"

var (
	// ErrInternal is returned on store failures.
	ErrInternal = errors.New("prebook service: internal error")
)
