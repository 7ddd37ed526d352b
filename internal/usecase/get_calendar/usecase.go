package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
)

// UseCase assembles the two-day availability calendar. Reading the
// calendar also materializes the executive's standing reservation for
// both days, so the calendar is never missing the pre-booked slot.
type UseCase struct {
	entryRepository EntryRepository
	prebookService  PrebookService
	cfg             domain.StaticConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a calendar use case.
func NewUseCase(
	entryRepository EntryRepository,
	prebookService PrebookService,
	cfg domain.StaticConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		entryRepository: entryRepository,
		prebookService:  prebookService,
		cfg:             cfg,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute returns the calendar for the two standard booking days.
// Locations follow the configuration order and entries follow
// insertion order, so repeated reads render identically.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	day1, day2 := domain.StandardBookingDays(uc.timeProvider.Now())

	resp := &Response{Days: make([]DayView, 0, 2)}

	for _, date := range []time.Time{day1, day2} {
		if err := uc.prebookService.EnsureStandingReservation(ctx, date); err != nil {
			uc.logger.Error("GetCalendar: standing reservation failed for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to ensure standing reservation: %v", ErrInternal, err)
		}

		day := DayView{
			Date:      date,
			Locations: make([]LocationView, 0, len(uc.cfg.Locations)),
		}

		for _, loc := range uc.cfg.Locations {
			entries, err := uc.entryRepository.ListActive(ctx, loc.Name, date)
			if err != nil {
				uc.logger.Error("GetCalendar: listing %s on %s failed: %v",
					loc.Name, date.Format(domain.DateFormat), err)
				return nil, fmt.Errorf("%w: failed to list entries: %v", ErrInternal, err)
			}

			avail := domain.NewLocationAvailability(loc.Name, date, loc.Capacity, entries)
			if avail.IsFull() {
				uc.logger.Info("GetCalendar: %s full on %s (%.0f%% occupancy)",
					loc.Name, date.Format(domain.DateFormat), avail.OccupancyRate())
			}

			view := LocationView{
				Name:      avail.Location,
				Capacity:  avail.Capacity,
				Remaining: avail.Remaining,
				Entries:   make([]EntryView, 0, len(avail.Entries)),
			}
			for _, e := range avail.Entries {
				view.Entries = append(view.Entries, EntryView{
					ID:       e.ID,
					UserName: e.UserName,
					Type:     string(e.Type),
				})
			}

			day.Locations = append(day.Locations, view)
		}

		resp.Days = append(resp.Days, day)
	}

	return resp, nil
}
