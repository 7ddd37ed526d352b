package entry

import "errors"

var (
	// ErrEntryNotFound is returned when no matching entry exists.
	ErrEntryNotFound = errors.New("entry.repository: entry not found")

	// ErrDuplicateEntry is returned when an insert violates the
	// one-entry-per-user-per-date constraint.
	ErrDuplicateEntry = errors.New("entry.repository: entry already exists for user and date")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("entry.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("entry.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("entry.repository: failed to scan row")
)
