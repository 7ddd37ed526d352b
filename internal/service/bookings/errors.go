package bookings

import "errors"

var (
	// ErrInternal is returned on store failures.
	ErrInternal = errors.New("bookings service: internal error")
)
