package create_booking

import (
	"context"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// EntryRepository is the slice of the entry store the allocator needs.
type EntryRepository interface {
	GetByUserAndDate(ctx context.Context, userName string, date time.Time) (*domain.ParkingEntry, error)
	CountActive(ctx context.Context, location string, date time.Time) (int, error)
	Create(ctx context.Context, e *domain.ParkingEntry) (*domain.ParkingEntry, error)
	UpdateTypeAndLocation(ctx context.Context, id int64, entryType domain.EntryType, location string) error
}

// TransactionManager runs the capacity check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
