package entry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/domain"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/dbmetrics"
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/psqlbuilder"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations, raised by the (user_name, entry_date) constraint.
const uniqueViolation = "23505"

// Repository is the durable store of parking entries.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an entry repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new entry and returns it with the store-assigned
// identifier and timestamps filled in. When the context carries an open
// transaction the insert runs inside it.
func (r *Repository) Create(ctx context.Context, e *domain.ParkingEntry) (*domain.ParkingEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_entries").
		Columns("user_name", "entry_date", "entry_type", "location").
		Values(e.UserName, e.Date, string(e.Type), e.Location).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// GetByID fetches an entry by its identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectEntries().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := r.scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return e, nil
}

// GetByUserAndDate fetches the single entry (any type) a user holds for
// a date. Under a transaction the row is locked FOR UPDATE, so the
// allocator's read-then-write on it is safe against concurrent requests.
func (r *Repository) GetByUserAndDate(ctx context.Context, userName string, date time.Time) (*domain.ParkingEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.selectEntries().
		Where(squirrel.Eq{"user_name": userName, "entry_date": date})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndDate - build select query: %v", ErrBuildQuery, err)
	}

	e, err := r.scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: GetByUserAndDate - scan entry: %v", ErrScanRow, err)
	}

	return e, nil
}

// ListActive returns the non-tombstone entries for a location and date,
// oldest first.
func (r *Repository) ListActive(ctx context.Context, location string, date time.Time) ([]*domain.ParkingEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectEntries().
		Where(squirrel.Eq{"location": location, "entry_date": date}).
		Where(squirrel.NotEq{"entry_type": string(domain.TypeCeoCancelled)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// CountActive counts the non-tombstone entries for a location and date.
// Run inside a serializable transaction when the count gates an insert.
func (r *Repository) CountActive(ctx context.Context, location string, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("parking_entries").
		Where(squirrel.Eq{"location": location, "entry_date": date}).
		Where(squirrel.NotEq{"entry_type": string(domain.TypeCeoCancelled)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build count query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateTypeAndLocation retypes an entry in place, moving it to the
// given location. Used for both tombstoning the executive's slot and
// converting the tombstone back into a booking.
func (r *Repository) UpdateTypeAndLocation(ctx context.Context, id int64, entryType domain.EntryType, location string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_entries").
		Set("entry_type", string(entryType)).
		Set("location", location).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTypeAndLocation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTypeAndLocation - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTypeAndLocation - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("parking_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteAll removes every entry. Used by the purge tool only.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("parking_entries").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) selectEntries() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_name",
		"entry_date",
		"entry_type",
		"location",
		"created_at",
		"updated_at",
	).From("parking_entries")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanEntry(row rowScanner) (*domain.ParkingEntry, error) {
	var (
		e         domain.ParkingEntry
		entryType string
	)

	err := row.Scan(
		&e.ID,
		&e.UserName,
		&e.Date,
		&entryType,
		&e.Location,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t, ok := domain.ParseEntryType(entryType)
	if !ok {
		return nil, fmt.Errorf("unknown entry type %q", entryType)
	}
	e.Type = t

	return &e, nil
}

func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.ParkingEntry, error) {
	entries := make([]*domain.ParkingEntry, 0)

	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
