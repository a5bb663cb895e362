package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"inclusive-jobs/internal/database"

	"github.com/google/uuid"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: want %d got %d", len(r.vals), len(dest))
	}
	for i := range dest {
		if err := assign(dest[i], r.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

func assign(dest, val any) error {
	switch d := dest.(type) {
	case *int:
		v, ok := val.(int)
		if !ok {
			return fmt.Errorf("scan type mismatch int")
		}
		*d = v
	case *uuid.UUID:
		v, ok := val.(uuid.UUID)
		if !ok {
			return fmt.Errorf("scan type mismatch uuid")
		}
		*d = v
	case *time.Time:
		v, ok := val.(time.Time)
		if !ok {
			return fmt.Errorf("scan type mismatch time")
		}
		*d = v
	case *string:
		v, ok := val.(string)
		if !ok {
			return fmt.Errorf("scan type mismatch string")
		}
		*d = v
	default:
		return fmt.Errorf("unsupported scan dest %T", dest)
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{vals: r.rows[r.i-1]}.Scan(dest...)
}

type execCall struct {
	query string
	args  []any
}

// fakeDB records statements and answers them through the configured hooks.
type fakeDB struct {
	mu sync.Mutex

	calls     []execCall
	execErr   func(q string) error
	queryRow  func(q string, args []any) database.Row
	query     func(q string, args []any) (database.Rows, error)
	commits   int
	rollbacks int
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }
func (db *fakeDB) SQLDB() *sql.DB             { return nil }

func (db *fakeDB) Begin(context.Context) (database.Tx, error) {
	return &fakeTx{db: db}, nil
}

func (db *fakeDB) record(query string, args []any) string {
	db.mu.Lock()
	defer db.mu.Unlock()
	q := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	db.calls = append(db.calls, execCall{query: q, args: args})
	return q
}

func (db *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	q := db.record(query, args)
	if db.execErr != nil {
		if err := db.execErr(q); err != nil {
			return 0, err
		}
	}
	return 1, nil
}

func (db *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	q := db.record(query, args)
	if db.query == nil {
		return &fakeRows{}, nil
	}
	return db.query(q, args)
}

func (db *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	q := db.record(query, args)
	if db.queryRow == nil {
		return fakeRow{err: fmt.Errorf("unsupported queryrow")}
	}
	return db.queryRow(q, args)
}

func (db *fakeDB) statements() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]string, 0, len(db.calls))
	for _, c := range db.calls {
		out = append(out, c.query)
	}
	return out
}

type fakeTx struct {
	db   *fakeDB
	done bool
}

func (tx *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return tx.db.Exec(ctx, query, args...)
}

func (tx *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return tx.db.Query(ctx, query, args...)
}

func (tx *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return tx.db.QueryRow(ctx, query, args...)
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true
	tx.db.commits++
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true
	tx.db.rollbacks++
	return nil
}
