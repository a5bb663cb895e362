package repository

import (
	"context"
	"errors"
	"testing"

	"inclusive-jobs/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCandidateUserIDsAfter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	var gotArgs []any
	db := &fakeDB{
		query: func(_ string, args []any) (database.Rows, error) {
			gotArgs = args
			return &fakeRows{rows: [][]any{{a}, {b}}}, nil
		},
	}
	repo := NewPostgresUserQueryRepository(db)

	after := uuid.New()
	ids, err := repo.ListCandidateUserIDsAfter(context.Background(), after, 5000)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.Equal(t, []any{after, 1000}, gotArgs)
	assert.Contains(t, db.statements()[0], "cp.user_id > $1 order by cp.user_id asc")
}

func TestListCandidateUserIDsAfter_Error(t *testing.T) {
	boom := errors.New("boom")
	db := &fakeDB{query: func(string, []any) (database.Rows, error) { return nil, boom }}

	_, err := NewPostgresUserQueryRepository(db).ListCandidateUserIDsAfter(context.Background(), uuid.Nil, 10)
	assert.ErrorIs(t, err, boom)
}
