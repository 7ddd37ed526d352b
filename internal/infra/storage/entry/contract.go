package entry

import (
	"github.com/kokoroskosv-git/Parking-slot-app/pkg/dbmetrics"
)

// Re-exported executor interfaces so callers wire either a raw *sql.DB
// or the instrumented *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
