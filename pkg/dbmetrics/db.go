package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kokoroskosv-git/Parking-slot-app/pkg/metrics"
)

// DefaultPoolStatsInterval is how often connection pool gauges are refreshed.
const DefaultPoolStatsInterval = 15 * time.Second

// DB wraps *sql.DB and reports query latency and pool statistics to the
// metrics collector. It satisfies DBExecutor, so repositories accept it
// in place of a raw *sql.DB.
type DB struct {
	*sql.DB
	collector *metrics.Metrics
	pool      string
}

// Wrap instruments db with the given collector.
func Wrap(db *sql.DB, collector *metrics.Metrics, pool string) *DB {
	return &DB{DB: db, collector: collector, pool: pool}
}

// WrapWithDefault instruments db and starts a goroutine refreshing pool
// gauges every DefaultPoolStatsInterval until stop is closed.
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, pool string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, pool)
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stop)
	return wrapped
}

// ExecContext runs the statement and records its latency.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.DB.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery(queryOperation(query), time.Since(start))
	return res, err
}

// QueryContext runs the query and records its latency.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery(queryOperation(query), time.Since(start))
	return rows, err
}

// QueryRowContext runs the query and records its latency.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.DB.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery(queryOperation(query), time.Since(start))
	return row
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := d.DB.Stats()
			d.collector.SetDBPoolStats(d.pool, stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

// queryOperation extracts the leading SQL verb for the operation label.
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
