package create_booking

import "time"

// Request is a booking request for one user, location and date.
type Request struct {
	UserName string
	Location string
	Date     time.Time
}

// Response is the committed booking.
type Response struct {
	ID       int64
	UserName string
	Location string
	Date     time.Time
	Type     string

	// Converted is true when the booking reclaimed the executive's
	// cancelled slot instead of inserting a new entry.
	Converted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
