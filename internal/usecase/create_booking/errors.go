package create_booking

import "errors"

var (
	// ErrUnknownUser is returned when the user is not on the allowlist.
	ErrUnknownUser = errors.New("create_booking: unknown user")

	// ErrUnknownLocation is returned when the location is not configured.
	ErrUnknownLocation = errors.New("create_booking: unknown location")

	// ErrOutsideBookingWindow is returned when the requested date is not
	// one of the two standard booking days.
	ErrOutsideBookingWindow = errors.New("create_booking: date outside the booking window")

	// ErrLocationNotAllowed is returned when a restricted-group user
	// requests a location outside the group's allowed set.
	ErrLocationNotAllowed = errors.New("create_booking: location not permitted for this user's group")

	// ErrAlreadyBooked is returned when the user already holds an active
	// entry for the requested date.
	ErrAlreadyBooked = errors.New("create_booking: user already has a booking for this date")

	// ErrNoAvailability is returned when the location is at capacity.
	ErrNoAvailability = errors.New("create_booking: no availability at this location")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("create_booking: internal error")
)
