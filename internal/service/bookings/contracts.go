package bookings

import (
	"context"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// EntryRepository is the slice of the entry store the cancellation
// handler needs.
type EntryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingEntry, error)
	UpdateTypeAndLocation(ctx context.Context, id int64, entryType domain.EntryType, location string) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
