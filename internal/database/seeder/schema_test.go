package seeder

import (
	"context"
	"errors"
	"testing"

	"inclusive-jobs/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type columnRows struct {
	cols [][2]string
	i    int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Next() bool {
	if r.i >= len(r.cols) {
		return false
	}
	r.i++
	return true
}
func (r *columnRows) Scan(dest ...any) error {
	c := r.cols[r.i-1]
	*dest[0].(*string) = c[0]
	*dest[1].(*string) = c[1]
	return nil
}

type schemaQuerier struct {
	cols     [][2]string
	queryErr error
	tables   []string
}

func (q *schemaQuerier) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (q *schemaQuerier) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}
func (q *schemaQuerier) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	q.tables = args[0].([]string)
	return &columnRows{cols: q.cols}, nil
}

func TestCheckTables(t *testing.T) {
	t.Parallel()

	q := &schemaQuerier{cols: [][2]string{
		{"users", "id"}, {"users", "email"},
		{"jobs", "id"},
	}}

	err := checkTables(context.Background(), q, []Table{
		{Name: "users", Columns: []string{"id", "email"}},
		{Name: "jobs", Columns: []string{"id", "title", "employer_id"}},
	})
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "jobs.employer_id, jobs.title")
	assert.Equal(t, []string{"users", "jobs"}, q.tables)

	require.NoError(t, checkTables(context.Background(), q, []Table{
		{Name: "users", Columns: []string{"email"}},
	}))
}

func TestCheckTables_Edges(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkTables(context.Background(), &schemaQuerier{}, nil))
	assert.ErrorIs(t, checkTables(context.Background(), &schemaQuerier{}, []Table{{}}), ErrSchemaMismatch)

	boom := errors.New("boom")
	err := checkTables(context.Background(), &schemaQuerier{queryErr: boom}, []Table{{Name: "users"}})
	assert.ErrorIs(t, err, boom)
}

func TestDefaults_DeclareTables(t *testing.T) {
	t.Parallel()

	for _, s := range Defaults() {
		sa, ok := s.(SchemaAware)
		require.True(t, ok, s.Name())
		assert.NotEmpty(t, sa.Tables(), s.Name())
	}
}
