package get_calendar

import (
	"context"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// EntryRepository is the slice of the entry store the calendar needs.
type EntryRepository interface {
	ListActive(ctx context.Context, location string, date time.Time) ([]*domain.ParkingEntry, error)
}

// PrebookService materializes the executive's standing reservation
// before the calendar is read.
type PrebookService interface {
	EnsureStandingReservation(ctx context.Context, day time.Time) error
}

// TimeProvider supplies the current time (swappable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
