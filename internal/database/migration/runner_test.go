package migration

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"inclusive-jobs/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqlFile(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

func TestLoadMigrations_SortsAndSkipsUnrelatedFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__match_results.sql": sqlFile("CREATE TABLE b (id int);"),
		"V1__init.sql":          sqlFile("CREATE TABLE a (id int);"),
		"README.md":             sqlFile("notes"),
	}

	migs, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, int64(2), migs[1].Version)
	assert.Len(t, migs[0].Checksum, 64)
}

func TestLoadMigrations_RejectsDuplicatesAndEmptyFiles(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{
		"V1__a.sql": sqlFile("SELECT 1;"),
		"V1__b.sql": sqlFile("SELECT 2;"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate migration version")

	_, err = loadMigrations(fstest.MapFS{"V1__empty.sql": sqlFile("   ")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty migration file")
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(os.DirFS(filepath.Join(t.TempDir(), "nope")))
	require.NoError(t, err)
	assert.Empty(t, migs)
}

func TestLoadMigrations_EmbeddedMatchesRepository(t *testing.T) {
	embedded, err := loadMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, embedded)
	assert.Equal(t, int64(1), embedded[0].Version)

	onDisk, err := loadMigrations(os.DirFS(filepath.Join("..", "..", "..", "migrations")))
	require.NoError(t, err)
	assert.Equal(t, onDisk, embedded)
}

func TestRunner_Source(t *testing.T) {
	mem := fstest.MapFS{}

	_, where, err := Runner{FS: mem}.source()
	require.NoError(t, err)
	assert.Equal(t, "embedded", where)

	dir := t.TempDir()
	_, where, err = Runner{Dir: dir, FS: mem}.source()
	require.NoError(t, err)
	assert.Equal(t, dir, where)
}

func TestBuildStatus(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	migs := []Migration{
		{Version: 1, Name: "init", Checksum: "aaa"},
		{Version: 2, Name: "jobs", Checksum: "bbb"},
		{Version: 3, Name: "later", Checksum: "ccc"},
	}
	applied := map[int64]appliedMigration{
		1: {Checksum: "aaa", AppliedAt: at},
		2: {Checksum: "changed", AppliedAt: at},
	}

	got := buildStatus(migs, applied)
	require.Len(t, got, 3)
	assert.Equal(t, Status{Version: 1, Name: "init", Applied: true, AppliedAt: at}, got[0])
	assert.True(t, got[1].Modified)
	assert.False(t, got[2].Applied)
	assert.True(t, got[2].AppliedAt.IsZero())
}
