package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const lockKey int64 = 746295114

var ErrChecksumMismatch = errors.New("migration checksum mismatch")

// Runner applies V<n>__<name>.sql files. Dir wins over FS when both are set;
// with neither, ./migrations or the directory next to the executable is used.
type Runner struct {
	Dir    string
	FS     fs.FS
	Logger *zap.Logger
}

// Run applies pending migrations in version order and returns how many were applied.
func (r Runner) Run(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, errors.New("nil db")
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	src, where, err := r.source()
	if err != nil {
		return 0, err
	}
	migs, err := loadMigrations(src)
	if err != nil {
		return 0, err
	}
	if len(migs) == 0 {
		log.Warn("no migrations found", zap.String("source", where))
		return 0, nil
	}

	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return 0, err
	}

	// Session locks belong to one connection, so everything below runs on a pinned one.
	conn, err := db.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return 0, err
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	applied, err := getApplied(ctx, conn)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, m := range migs {
		if a, ok := applied[m.Version]; ok {
			if a.Checksum != m.Checksum {
				return n, fmt.Errorf("%w: version=%d name=%s", ErrChecksumMismatch, m.Version, m.Name)
			}
			continue
		}

		if err := applyOne(ctx, conn, m); err != nil {
			return n, err
		}
		n++
		log.Info("migration applied", zap.Int64("version", m.Version), zap.String("name", m.Name))
	}

	return n, nil
}

type Status struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
	// Modified is set when the file changed after it was applied.
	Modified bool
}

// Status reports every known migration without applying anything.
func (r Runner) Status(ctx context.Context, db *sql.DB) ([]Status, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	src, _, err := r.source()
	if err != nil {
		return nil, err
	}
	migs, err := loadMigrations(src)
	if err != nil {
		return nil, err
	}
	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return nil, err
	}
	applied, err := getApplied(ctx, db)
	if err != nil {
		return nil, err
	}
	return buildStatus(migs, applied), nil
}

func buildStatus(migs []Migration, applied map[int64]appliedMigration) []Status {
	out := make([]Status, 0, len(migs))
	for _, m := range migs {
		st := Status{Version: m.Version, Name: m.Name}
		if a, ok := applied[m.Version]; ok {
			st.Applied = true
			st.AppliedAt = a.AppliedAt
			st.Modified = a.Checksum != m.Checksum
		}
		out = append(out, st)
	}
	return out
}

func (r Runner) source() (fs.FS, string, error) {
	if strings.TrimSpace(r.Dir) == "" && r.FS != nil {
		return r.FS, "embedded", nil
	}
	dir, err := resolveDir(r.Dir)
	if err != nil {
		return nil, "", err
	}
	return os.DirFS(dir), dir, nil
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

func resolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) != "" {
		return dir, nil
	}
	if st, err := os.Stat("migrations"); err == nil && st.IsDir() {
		return "migrations", nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "migrations"), nil
}

func loadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	migs := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		m := fileRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version: %s", name)
		}

		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		sqlText := strings.TrimSpace(string(b))
		if sqlText == "" {
			return nil, fmt.Errorf("empty migration file: %s", name)
		}

		h := sha256.Sum256([]byte(sqlText))
		migs = append(migs, Migration{
			Version:  v,
			Name:     m[2],
			Filename: name,
			SQL:      sqlText,
			Checksum: hex.EncodeToString(h[:]),
		})
	}

	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d", migs[i].Version)
		}
	}

	return migs, nil
}

func ensureSchemaMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type appliedMigration struct {
	Checksum  string
	AppliedAt time.Time
}

func getApplied(ctx context.Context, q queryer) (map[int64]appliedMigration, error) {
	rows, err := q.QueryContext(ctx, `SELECT version, checksum, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]appliedMigration{}
	for rows.Next() {
		var v int64
		var a appliedMigration
		if err := rows.Scan(&v, &a.Checksum, &a.AppliedAt); err != nil {
			return nil, err
		}
		out[v] = a
	}
	return out, rows.Err()
}

func applyOne(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, $4)`,
		m.Version, m.Name, m.Checksum, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
