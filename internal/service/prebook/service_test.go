package prebook

import (
	"context"
	"errors"
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

type fakeRepo struct {
	entries   map[string]*domain.ParkingEntry
	created   []*domain.ParkingEntry
	getErr    error
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
	if r.getErr != nil {
		return nil, r.getErr
	}
	if e, ok := r.entries[key(userName, date)]; ok {
		return e, nil
	}
	return nil, entryRepo.ErrEntryNotFound
}

func (r *fakeRepo) Create(_ context.Context, e *domain.ParkingEntry) (*domain.ParkingEntry, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *e
	stored.ID = r.nextID
	r.nextID++
	r.entries[key(e.UserName, e.Date)] = &stored
	r.created = append(r.created, &stored)
	return &stored, nil
}

func testConfig() domain.StaticConfig {
	return domain.StaticConfig{
		Users:     []string{"Athanasiou", "Petris"},
		Locations: []domain.Location{{Name: "Office", Capacity: 2}},
		Executive: domain.Executive{
			Name:         "Athanasiou",
			HomeLocation: "Office",
			PrebookUntil: time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func monday() time.Time {
	return time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)
}

func TestEnsureStandingReservation_CreatesPrebook(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopLogger{})

	err := svc.EnsureStandingReservation(context.Background(), monday())

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Athanasiou", repo.created[0].UserName)
	assert.Equal(t, domain.TypePrebook, repo.created[0].Type)
	assert.Equal(t, "Office", repo.created[0].Location)
	assert.Equal(t, monday(), repo.created[0].Date)
}

func TestEnsureStandingReservation_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopLogger{})

	require.NoError(t, svc.EnsureStandingReservation(context.Background(), monday()))
	require.NoError(t, svc.EnsureStandingReservation(context.Background(), monday()))

	assert.Len(t, repo.created, 1)
}

func TestEnsureStandingReservation_RespectsTombstone(t *testing.T) {
	repo := newFakeRepo()
	repo.entries[key("Athanasiou", monday())] = &domain.ParkingEntry{
		ID:       7,
		UserName: "Athanasiou",
		Date:     monday(),
		Type:     domain.TypeCeoCancelled,
		Location: "Office",
	}
	svc := NewService(repo, testConfig(), nopLogger{})

	err := svc.EnsureStandingReservation(context.Background(), monday())

	require.NoError(t, err)
	assert.Empty(t, repo.created, "cancelled reservation must not be recreated")
}

func TestEnsureStandingReservation_SkipsWeekend(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopLogger{})

	saturday := time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.EnsureStandingReservation(context.Background(), saturday))

	assert.Empty(t, repo.created)
}

func TestEnsureStandingReservation_CreatesOnCutoffDate(t *testing.T) {
	// 2026-12-31 is a Thursday. West of UTC the local midnight of the
	// cutoff date is an instant after the UTC-midnight cutoff, but the
	// cutoff date itself is still served.
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopLogger{})

	ny := time.FixedZone("EST", -5*60*60)
	cutoffDay := time.Date(2026, time.December, 31, 0, 0, 0, 0, ny)
	require.NoError(t, svc.EnsureStandingReservation(context.Background(), cutoffDay))

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.TypePrebook, repo.created[0].Type)
}

func TestEnsureStandingReservation_SkipsPastCutoff(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopLogger{})

	afterCutoff := time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC) // Monday
	require.NoError(t, svc.EnsureStandingReservation(context.Background(), afterCutoff))

	assert.Empty(t, repo.created)
}

func TestEnsureStandingReservation_ToleratesConcurrentCreate(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = entryRepo.ErrDuplicateEntry
	svc := NewService(repo, testConfig(), nopLogger{})

	assert.NoError(t, svc.EnsureStandingReservation(context.Background(), monday()))
}

func TestEnsureStandingReservation_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewService(repo, testConfig(), nopLogger{})

	err := svc.EnsureStandingReservation(context.Background(), monday())

	assert.ErrorIs(t, err, ErrInternal)
}
