package prebook

import (
	"context"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// EntryRepository is the slice of the entry store the reservation
// manager needs.
type EntryRepository interface {
	GetByUserAndDate(ctx context.Context, userName string, date time.Time) (*domain.ParkingEntry, error)
	Create(ctx context.Context, e *domain.ParkingEntry) (*domain.ParkingEntry, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
