package prebook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	entryRepo "github.com/kokoroskosv-git/Parking-slot-app/internal/infra/storage/entry"
)

// Service maintains the executive's standing reservation.
type Service struct {
	repo   EntryRepository
	cfg    domain.StaticConfig
	logger Logger
}

// NewService creates a standing reservation manager.
func NewService(repo EntryRepository, cfg domain.StaticConfig, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// EnsureStandingReservation materializes the executive's reservation
// for day unless one already exists or the day was explicitly
// cancelled. Idempotent: at most one insert per call, never an update
// or delete.
func (s *Service) EnsureStandingReservation(ctx context.Context, day time.Time) error {
	if !domain.IsWorkingDay(day) {
		return nil
	}
	// Το όριο συγκρίνεται ως ημερολογιακή ημέρα: το day είναι τοπικά
	// μεσάνυχτα ενώ το PrebookUntil μεσάνυχτα UTC, και η ίδια η ημέρα
	// του ορίου εξυπηρετείται ακόμα.
	if day.After(s.cfg.Executive.PrebookUntil) && !domain.SameDay(day, s.cfg.Executive.PrebookUntil) {
		return nil
	}

	existing, err := s.repo.GetByUserAndDate(ctx, s.cfg.Executive.Name, day)
	if err != nil && !errors.Is(err, entryRepo.ErrEntryNotFound) {
		s.logger.Error("EnsureStandingReservation: lookup failed for %s on %s: %v",
			s.cfg.Executive.Name, day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: EnsureStandingReservation - repository error: %v", ErrInternal, err)
	}

	// Όποια εγγραφή υπάρχει ήδη υπερισχύει: ενεργή σημαίνει ότι η θέση
	// έχει ήδη δημιουργηθεί, tombstone ότι ακυρώθηκε σκόπιμα.
	if existing != nil {
		return nil
	}

	created, err := s.repo.Create(ctx, &domain.ParkingEntry{
		UserName: s.cfg.Executive.Name,
		Date:     day,
		Type:     domain.TypePrebook,
		Location: s.cfg.Executive.HomeLocation,
	})
	if err != nil {
		// Παράλληλη προβολή του ημερολογίου δημιούργησε πρώτη την
		// κράτηση· το αποτέλεσμα είναι το ίδιο.
		if errors.Is(err, entryRepo.ErrDuplicateEntry) {
			return nil
		}
		s.logger.Error("EnsureStandingReservation: insert failed for %s on %s: %v",
			s.cfg.Executive.Name, day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: EnsureStandingReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureStandingReservation: created prebook id=%d for %s on %s at %s",
		created.ID, created.UserName, created.Date.Format(domain.DateFormat), created.Location)
	return nil
}
