package create_booking

import (
	"fmt"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// validateRequest checks the request for malformed data and rejects
// users and locations outside the static configuration.
func validateRequest(req *Request, cfg *domain.StaticConfig) error {
	if req.UserName == "" {
		return fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !cfg.IsKnownUser(req.UserName) {
		return ErrUnknownUser
	}
	if _, ok := cfg.LocationCapacity(req.Location); !ok {
		return ErrUnknownLocation
	}
	return nil
}

// validateBookingWindow checks that the requested date is exactly one
// of the two standard booking days. Dates are compared as calendar
// days: the form date parses in UTC while the window days are local
// midnights, so comparing instants would decline valid bookings on
// any non-UTC server.
func validateBookingWindow(date, day1, day2 time.Time) error {
	if domain.SameDay(date, day1) || domain.SameDay(date, day2) {
		return nil
	}
	return ErrOutsideBookingWindow
}

// validateGroupAccess checks the restricted group's location rule.
// Users outside the group may book any configured location.
func validateGroupAccess(cfg *domain.StaticConfig, userName, location string) error {
	if !cfg.IsRestricted(userName) {
		return nil
	}
	if cfg.IsAllowedForRestricted(location) {
		return nil
	}
	return ErrLocationNotAllowed
}
