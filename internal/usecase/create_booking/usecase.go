package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	entryRepo "github.com/kokoroskosv-git/Parking-slot-app/internal/infra/storage/entry"
)

// UseCase is the booking allocator: it validates a booking request
// against the booking window, group eligibility and location capacity,
// and commits it.
type UseCase struct {
	entryRepository EntryRepository
	cfg             domain.StaticConfig
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a booking allocator.
func NewUseCase(
	entryRepository EntryRepository,
	cfg domain.StaticConfig,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		entryRepository: entryRepository,
		cfg:             cfg,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the allocation sequence. The first failing check wins
// and produces a distinct sentinel error with no side effect.
//
// The existing-entry lookup, the capacity count and the write run in
// one serializable transaction, so two concurrent requests cannot both
// pass the count and jointly overshoot capacity.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, location=%s, date=%s",
		req.UserName, req.Location, req.Date.Format(domain.DateFormat))

	// 1. Έλεγχος εισόδου με βάση τη στατική διαμόρφωση.
	if err := validateRequest(req, &uc.cfg); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Η ημερομηνία πρέπει να είναι μία από τις δύο επιτρεπτές ημέρες.
	now := uc.timeProvider.Now()
	day1, day2 := domain.StandardBookingDays(now)
	if err := validateBookingWindow(req.Date, day1, day2); err != nil {
		uc.logger.Warn("CreateBooking: date %s outside window [%s, %s]",
			req.Date.Format(domain.DateFormat), day1.Format(domain.DateFormat), day2.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Οι χρήστες της περιορισμένης ομάδας κλείνουν μόνο στα
	// επιτρεπόμενα locations.
	if err := validateGroupAccess(&uc.cfg, req.UserName, req.Location); err != nil {
		uc.logger.Warn("CreateBooking: user=%s not permitted at location=%s", req.UserName, req.Location)
		return nil, err
	}

	// Κανονικοποίηση στην τοπική ημέρα του παραθύρου, ώστε η εγγραφή
	// να ταιριάζει με όσες δημιουργεί η πάγια κράτηση του executive.
	requestedDate := day1
	if domain.SameDay(req.Date, day2) {
		requestedDate = day2
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4. Μία ενεργή κράτηση ανά χρήστη ανά ημέρα. Το tombstone του
		// executive μετατρέπεται ξανά σε κράτηση επιτόπου· η διαδρομή
		// αυτή παρακάμπτει τον έλεγχο χωρητικότητας, αφού ο executive
		// ανακτά θέση που κρατούσε ήδη η πάγια κράτησή του.
		existing, err := uc.entryRepository.GetByUserAndDate(txCtx, req.UserName, requestedDate)
		if err != nil && !errors.Is(err, entryRepo.ErrEntryNotFound) {
			uc.logger.Error("CreateBooking: lookup failed for user=%s date=%s: %v",
				req.UserName, requestedDate.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to look up existing entry: %v", ErrInternal, err)
		}

		if existing != nil {
			if !existing.IsTombstone() {
				return ErrAlreadyBooked
			}

			if err := uc.entryRepository.UpdateTypeAndLocation(txCtx, existing.ID, domain.TypeBooking, req.Location); err != nil {
				uc.logger.Error("CreateBooking: tombstone conversion failed for id=%d: %v", existing.ID, err)
				return fmt.Errorf("%w: failed to convert cancelled slot: %v", ErrInternal, err)
			}

			result = &Response{
				ID:        existing.ID,
				UserName:  existing.UserName,
				Location:  req.Location,
				Date:      existing.Date,
				Type:      string(domain.TypeBooking),
				Converted: true,
				CreatedAt: existing.CreatedAt,
				UpdatedAt: now,
			}
			return nil
		}

		// 5. Έλεγχος χωρητικότητας για το location και την ημέρα.
		capacity, _ := uc.cfg.LocationCapacity(req.Location)
		used, err := uc.entryRepository.CountActive(txCtx, req.Location, requestedDate)
		if err != nil {
			uc.logger.Error("CreateBooking: count failed for location=%s date=%s: %v",
				req.Location, requestedDate.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to count active entries: %v", ErrInternal, err)
		}
		if used >= capacity {
			uc.logger.Warn("CreateBooking: no availability at %s on %s (%d/%d)",
				req.Location, requestedDate.Format(domain.DateFormat), used, capacity)
			return ErrNoAvailability
		}

		// 6. Καταχώρηση της κράτησης.
		created, err := uc.entryRepository.Create(txCtx, &domain.ParkingEntry{
			UserName: req.UserName,
			Date:     requestedDate,
			Type:     domain.TypeBooking,
			Location: req.Location,
		})
		if err != nil {
			if errors.Is(err, entryRepo.ErrDuplicateEntry) {
				// Παράλληλο αίτημα πρόλαβε να κλείσει για τον ίδιο χρήστη.
				return ErrAlreadyBooked
			}
			uc.logger.Error("CreateBooking: insert failed for user=%s: %v", req.UserName, err)
			return fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
		}

		result = &Response{
			ID:        created.ID,
			UserName:  created.UserName,
			Location:  created.Location,
			Date:      created.Date,
			Type:      string(created.Type),
			CreatedAt: created.CreatedAt,
			UpdatedAt: created.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: committed booking id=%d user=%s location=%s date=%s converted=%t",
		result.ID, result.UserName, result.Location, result.Date.Format(domain.DateFormat), result.Converted)
	return result, nil
}
