package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DBExecutor common interface of *sql.DB, *sql.Tx and wrappers around them
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor executor inside an open transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// QueryObserver receives timings of database calls.
type QueryObserver interface {
	ObserveQuery(operation string, d time.Duration, err error)
}

// PoolObserver receives connection pool statistics.
type PoolObserver interface {
	SetPoolStats(open, inUse, idle int)
}

// DB wraps *sql.DB and reports query timings to the observer.
// A nil observer turns reporting off.
type DB struct {
	db       *sql.DB
	observer QueryObserver
}

// Wrap wraps db. observer may be nil.
func Wrap(db *sql.DB, observer QueryObserver) *DB {
	return &DB{db: db, observer: observer}
}

// Unwrap returns the underlying *sql.DB.
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	observe(d.observer, query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	observe(d.observer, query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	observe(d.observer, query, start, row.Err())
	return row
}

// BeginTx starts a transaction whose calls are observed as well.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	observe(d.observer, "begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, observer: d.observer}, nil
}

// CollectPoolStats periodically pushes db.Stats() to the observer until stop is closed.
func (d *DB) CollectPoolStats(observer PoolObserver, interval time.Duration, stop <-chan struct{}) {
	if observer == nil {
		return
	}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			stats := d.db.Stats()
			observer.SetPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)

			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Tx observed transaction
type Tx struct {
	tx       *sql.Tx
	observer QueryObserver
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	observe(t.observer, query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	observe(t.observer, query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	observe(t.observer, query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	observe(t.observer, "commit", start, err)
	return err
}

func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return err
	}
	observe(t.observer, "rollback", start, err)
	return err
}

func observe(observer QueryObserver, query string, start time.Time, err error) {
	if observer == nil {
		return
	}
	if err == sql.ErrNoRows {
		err = nil
	}
	observer.ObserveQuery(operation(query), time.Since(start), err)
}

// operation label of a query: its leading keyword in lower case
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
