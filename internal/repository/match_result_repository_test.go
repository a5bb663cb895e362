package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceForCandidate_LocksDeletesThenInserts(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresMatchResultRepository(db)
	candidateID := uuid.New()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	results := []matching.MatchResult{
		{ID: uuid.New(), CandidateID: candidateID, JobID: uuid.New(), Overall: 87, Breakdown: matching.Breakdown{Skills: 67, Experience: 100, Location: 100, Accessibility: 100}},
		{CandidateID: candidateID, JobID: uuid.New(), Overall: 50, Breakdown: matching.Breakdown{Experience: 100, Location: 100, Accessibility: 50}},
	}
	require.NoError(t, repo.ReplaceForCandidate(context.Background(), candidateID, now, results))

	stmts := db.statements()
	require.Len(t, stmts, 3)
	assert.True(t, strings.HasPrefix(stmts[0], "select pg_advisory_xact_lock"))
	assert.True(t, strings.HasPrefix(stmts[1], "delete from match_results"))
	assert.True(t, strings.HasPrefix(stmts[2], "insert into match_results"))

	assert.Equal(t, snapshotLockKey(candidateID), db.calls[0].args[0])
	insertArgs := db.calls[2].args
	assert.Equal(t, candidateID, insertArgs[0])
	assert.Equal(t, now, insertArgs[1])
	ids, ok := insertArgs[2].([]string)
	require.True(t, ok)
	require.Len(t, ids, 2)
	assert.Equal(t, results[0].ID.String(), ids[0])
	generated, err := uuid.Parse(ids[1])
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, generated)
	assert.Equal(t, []string{results[0].JobID.String(), results[1].JobID.String()}, insertArgs[3])
	assert.Equal(t, []int32{87, 50}, insertArgs[4])
	assert.Equal(t, []int32{67, 0}, insertArgs[5])
	assert.Equal(t, []int32{100, 50}, insertArgs[8])
	assert.Equal(t, 1, db.commits)
}

func TestReplaceForCandidate_EmptyResultsClearsSnapshot(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresMatchResultRepository(db)

	require.NoError(t, repo.ReplaceForCandidate(context.Background(), uuid.New(), time.Now(), nil))
	stmts := db.statements()
	require.Len(t, stmts, 2)
	assert.True(t, strings.HasPrefix(stmts[1], "delete from match_results"))
	assert.Equal(t, 1, db.commits)
}

func TestReplaceForCandidate_RollsBackOnInsertFailure(t *testing.T) {
	boom := errors.New("boom")
	db := &fakeDB{execErr: func(q string) error {
		if strings.HasPrefix(q, "insert into match_results") {
			return boom
		}
		return nil
	}}
	repo := NewPostgresMatchResultRepository(db)

	err := repo.ReplaceForCandidate(context.Background(), uuid.New(), time.Now(), []matching.MatchResult{{JobID: uuid.New()}})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, db.commits)
	assert.Equal(t, 1, db.rollbacks)
}

func TestSnapshotLockKey_StablePerCandidate(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, snapshotLockKey(id), snapshotLockKey(id))
	assert.NotEqual(t, snapshotLockKey(id), snapshotLockKey(uuid.New()))
}

func TestGetByID_NotFound(t *testing.T) {
	db := &fakeDB{queryRow: func(string, []any) database.Row { return fakeRow{err: pgx.ErrNoRows} }}
	repo := NewPostgresMatchResultRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
