// Package postgres owns the shared database handle used by the feature
// repositories. Repositories depend on the narrow interfaces they declare;
// *DB satisfies all of them.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// RowScanner is the subset of *sql.Rows the repositories read through.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to postgres, applies the pool settings and pings the server.
func Open(ctx context.Context, dsn string, cfg PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// DB wraps *sql.DB and bounds every statement by a timeout.
type DB struct {
	db      *sql.DB
	timeout time.Duration
}

func NewDB(db *sql.DB, timeout time.Duration) *DB {
	return &DB{db: db, timeout: timeout}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	ctx, cancel := d.withTimeout(ctx)
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return &rowsWithCancel{rows: rows, cancel: cancel}, nil
}

func (d *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}

// rowsWithCancel releases the query context once the caller closes the rows.
type rowsWithCancel struct {
	rows   *sql.Rows
	cancel context.CancelFunc
}

func (r *rowsWithCancel) Next() bool {
	return r.rows.Next()
}

func (r *rowsWithCancel) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *rowsWithCancel) Err() error {
	return r.rows.Err()
}

func (r *rowsWithCancel) Close() error {
	defer r.cancel()
	return r.rows.Close()
}
