package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	entryRepo "github.com/kokoroskosv-git/Parking-slot-app/internal/infra/storage/entry"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// passthroughTxManager runs the callback directly; isolation is
// exercised against a real database, not here.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	entries   map[string]*domain.ParkingEntry
	createErr error
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: make(map[string]*domain.ParkingEntry), nextID: 1}
}

func key(user string, date time.Time) string {
	return user + "|" + date.Format(domain.DateFormat)
}

func (r *fakeRepo) GetByUserAndDate(_ context.Context, userName string, date time.Time) (*domain.ParkingEntry, error) {
	if e, ok := r.entries[key(userName, date)]; ok {
		return e, nil
	}
	return nil, entryRepo.ErrEntryNotFound
}

func (r *fakeRepo) CountActive(_ context.Context, location string, date time.Time) (int, error) {
	count := 0
	for _, e := range r.entries {
		if e.Location == location && domain.SameDay(e.Date, date) && e.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) Create(_ context.Context, e *domain.ParkingEntry) (*domain.ParkingEntry, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.entries[key(e.UserName, e.Date)]; ok {
		return nil, entryRepo.ErrDuplicateEntry
	}
	stored := *e
	stored.ID = r.nextID
	r.nextID++
	r.entries[key(e.UserName, e.Date)] = &stored
	return &stored, nil
}

func (r *fakeRepo) UpdateTypeAndLocation(_ context.Context, id int64, entryType domain.EntryType, location string) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.Type = entryType
			e.Location = location
			return nil
		}
	}
	return entryRepo.ErrEntryNotFound
}

func (r *fakeRepo) add(id int64, user string, date time.Time, entryType domain.EntryType, location string) {
	r.entries[key(user, date)] = &domain.ParkingEntry{
		ID:       id,
		UserName: user,
		Date:     date,
		Type:     entryType,
		Location: location,
	}
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

func testConfig() domain.StaticConfig {
	return domain.StaticConfig{
		Users: []string{"Athanasiou", "Petris", "Kokoroskos", "Lampos"},
		Locations: []domain.Location{
			{Name: "Office", Capacity: 2},
			{Name: "Kaltezon", Capacity: 2},
		},
		RestrictedGroup: domain.RestrictedGroup{
			Members:          []string{"Kokoroskos"},
			AllowedLocations: []string{"Office"},
		},
		Executive: domain.Executive{
			Name:         "Athanasiou",
			HomeLocation: "Office",
			PrebookUntil: time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Monday 2025-10-13; booking days are Monday and Tuesday.
var today = time.Date(2025, time.October, 13, 9, 0, 0, 0, time.UTC)

func monday() time.Time {
	return time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)
}

func tuesday() time.Time {
	return time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	uc := NewUseCase(repo, testConfig(), passthroughTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     monday(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Petris", resp.UserName)
	assert.Equal(t, "Office", resp.Location)
	assert.Equal(t, string(domain.TypeBooking), resp.Type)
	assert.False(t, resp.Converted)
}

func TestExecute_AcceptsFormDateOnNonUTCServer(t *testing.T) {
	// The form date parses as UTC midnight while the booking window is
	// computed in the server's zone; same calendar day must match.
	repo := newFakeRepo()
	uc := NewUseCase(repo, testConfig(), passthroughTxManager{}, nopLogger{})
	athens := time.FixedZone("EEST", 3*60*60)
	uc.timeProvider = fixedTime{now: time.Date(2025, time.October, 13, 9, 0, 0, 0, athens)}

	formDate, err := time.Parse(domain.DateFormat, "2025-10-13")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     formDate,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-13", resp.Date.Format(domain.DateFormat))
}

func TestExecute_AcceptsFormDateWestOfUTC(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, testConfig(), passthroughTxManager{}, nopLogger{})
	ny := time.FixedZone("EST", -5*60*60)
	uc.timeProvider = fixedTime{now: time.Date(2025, time.October, 13, 9, 0, 0, 0, ny)}

	formDate, err := time.Parse(domain.DateFormat, "2025-10-14")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     formDate,
	})

	assert.NoError(t, err)
}

func TestExecute_StoresWindowDayNotFormInstant(t *testing.T) {
	// The persisted date is the window's local midnight, so the entry
	// lines up with rows the standing reservation manager creates.
	repo := newFakeRepo()
	uc := NewUseCase(repo, testConfig(), passthroughTxManager{}, nopLogger{})
	athens := time.FixedZone("EEST", 3*60*60)
	localNow := time.Date(2025, time.October, 13, 9, 0, 0, 0, athens)
	uc.timeProvider = fixedTime{now: localNow}

	formDate, err := time.Parse(domain.DateFormat, "2025-10-13")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     formDate,
	})

	require.NoError(t, err)
	localMidnight := time.Date(2025, time.October, 13, 0, 0, 0, 0, athens)
	assert.True(t, resp.Date.Equal(localMidnight))
}

func TestExecute_SecondDayAllowed(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     tuesday(),
	})

	assert.NoError(t, err)
}

func TestExecute_RejectsDateOutsideWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	wednesday := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     wednesday,
	})

	assert.ErrorIs(t, err, ErrOutsideBookingWindow)
	assert.Empty(t, repo.entries, "rejected request must not write")
}

func TestExecute_RejectsUnknownUser(t *testing.T) {
	uc := newTestUseCase(newFakeRepo())

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Stranger",
		Location: "Office",
		Date:     monday(),
	})

	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestExecute_RejectsUnknownLocation(t *testing.T) {
	uc := newTestUseCase(newFakeRepo())

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Rooftop",
		Date:     monday(),
	})

	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestExecute_RejectsEmptyInput(t *testing.T) {
	uc := newTestUseCase(newFakeRepo())

	_, err := uc.Execute(context.Background(), &Request{Location: "Office", Date: monday()})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RestrictedUserOutsideAllowedLocations(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Kokoroskos",
		Location: "Kaltezon",
		Date:     monday(),
	})

	assert.ErrorIs(t, err, ErrLocationNotAllowed)
	assert.Empty(t, repo.entries)
}

func TestExecute_RestrictedUserAllowedLocation(t *testing.T) {
	uc := newTestUseCase(newFakeRepo())

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Kokoroskos",
		Location: "Office",
		Date:     monday(),
	})

	assert.NoError(t, err)
}

func TestExecute_UnrestrictedUserAnyLocation(t *testing.T) {
	uc := newTestUseCase(newFakeRepo())

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Lampos",
		Location: "Kaltezon",
		Date:     monday(),
	})

	assert.NoError(t, err)
}

func TestExecute_RejectsDoubleBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, "Petris", monday(), domain.TypeBooking, "Office")
	uc := newTestUseCase(repo)

	// Same user, same date, different location: still rejected.
	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Kaltezon",
		Date:     monday(),
	})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_SameUserBothDays(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, "Petris", monday(), domain.TypeBooking, "Office")
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     tuesday(),
	})

	assert.NoError(t, err)
}

func TestExecute_RejectsWhenLocationFull(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, "Petris", monday(), domain.TypeBooking, "Office")
	repo.add(2, "Lampos", monday(), domain.TypeBooking, "Office")
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Kokoroskos",
		Location: "Office",
		Date:     monday(),
	})

	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestExecute_FullLocationDoesNotBlockOthers(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, "Petris", monday(), domain.TypeBooking, "Office")
	repo.add(2, "Athanasiou", monday(), domain.TypePrebook, "Office")
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Lampos",
		Location: "Kaltezon",
		Date:     monday(),
	})

	assert.NoError(t, err)
}

func TestExecute_TombstoneDoesNotCountTowardsCapacity(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, "Athanasiou", monday(), domain.TypeCeoCancelled, "Office")
	repo.add(2, "Petris", monday(), domain.TypeBooking, "Office")
	uc := newTestUseCase(repo)

	// One active booking out of two places: a second user fits.
	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Lampos",
		Location: "Office",
		Date:     monday(),
	})

	assert.NoError(t, err)
}

func TestExecute_ConvertsExecutiveTombstone(t *testing.T) {
	repo := newFakeRepo()
	repo.add(5, "Athanasiou", monday(), domain.TypeCeoCancelled, "Office")
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserName: "Athanasiou",
		Location: "Kaltezon",
		Date:     monday(),
	})

	require.NoError(t, err)
	assert.True(t, resp.Converted)
	assert.Equal(t, int64(5), resp.ID, "tombstone is retyped in place")
	assert.Equal(t, "Kaltezon", resp.Location)
	assert.Equal(t, string(domain.TypeBooking), resp.Type)
	assert.Equal(t, domain.TypeBooking, repo.entries[key("Athanasiou", monday())].Type)
}

func TestExecute_TombstoneConversionBypassesCapacity(t *testing.T) {
	repo := newFakeRepo()
	repo.add(1, "Petris", monday(), domain.TypeBooking, "Office")
	repo.add(2, "Lampos", monday(), domain.TypeBooking, "Office")
	repo.add(3, "Athanasiou", monday(), domain.TypeCeoCancelled, "Office")
	uc := newTestUseCase(repo)

	// Office is full, but the executive reclaims the cancelled slot.
	resp, err := uc.Execute(context.Background(), &Request{
		UserName: "Athanasiou",
		Location: "Office",
		Date:     monday(),
	})

	require.NoError(t, err)
	assert.True(t, resp.Converted)
}

func TestExecute_ConcurrentCreateMapsToAlreadyBooked(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = entryRepo.ErrDuplicateEntry
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserName: "Petris",
		Location: "Office",
		Date:     monday(),
	})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}
