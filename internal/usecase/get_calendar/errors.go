package get_calendar

import "errors"

var (
	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("get_calendar: internal error")
)
