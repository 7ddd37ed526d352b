package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	entryRepo "github.com/kokoroskosv-git/Parking-slot-app/internal/infra/storage/entry"
)

// Service handles booking cancellation.
type Service struct {
	repo   EntryRepository
	cfg    domain.StaticConfig
	logger Logger
}

// NewService creates a cancellation handler.
func NewService(repo EntryRepository, cfg domain.StaticConfig, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Cancel removes the booking with the given identifier. The executive's
// entries are never deleted: they are retyped to the tombstone so the
// standing reservation is not regenerated. Cancelling an identifier that
// no longer exists is a successful no-op.
//
// No ownership check is performed: all callers are mutually trusted
// (static allowlist, no authentication).
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, entryRepo.ErrEntryNotFound) {
			s.logger.Info("Cancel: booking id=%d not found, nothing to do", bookingID)
			return nil
		}
		s.logger.Error("Cancel: lookup failed for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if s.cfg.IsExecutive(booking.UserName) {
		if err := s.repo.UpdateTypeAndLocation(ctx, booking.ID, domain.TypeCeoCancelled, booking.Location); err != nil {
			s.logger.Error("Cancel: tombstone update failed for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Cancel: executive booking id=%d on %s retyped to %s",
			booking.ID, booking.Date.Format(domain.DateFormat), domain.TypeCeoCancelled)
		return nil
	}

	if err := s.repo.Delete(ctx, booking.ID); err != nil {
		if errors.Is(err, entryRepo.ErrEntryNotFound) {
			// Διαγράφηκε από παράλληλο αίτημα μετά το δικό μας lookup.
			return nil
		}
		s.logger.Error("Cancel: delete failed for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d for %s on %s deleted",
		booking.ID, booking.UserName, booking.Date.Format(domain.DateFormat))
	return nil
}
