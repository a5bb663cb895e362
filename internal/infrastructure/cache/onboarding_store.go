package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"inclusive-jobs/internal/domain/onboarding"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "onboarding:draft:"

func draftKey(userID uuid.UUID) string {
	return draftKeyPrefix + userID.String()
}

// DraftStore keeps onboarding drafts in Redis. Unlike the cache helpers it
// never degrades silently: an unreachable server is an error.
type DraftStore struct {
	r *Redis
}

func NewDraftStore(r *Redis) *DraftStore {
	return &DraftStore{r: r}
}

func (s *DraftStore) Load(ctx context.Context, userID uuid.UUID) (onboarding.Draft, bool, error) {
	if !s.r.Available() {
		return onboarding.Draft{}, false, ErrUnavailable
	}
	b, err := s.r.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return onboarding.Draft{}, false, nil
		}
		return onboarding.Draft{}, false, err
	}
	var d onboarding.Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return onboarding.Draft{}, false, err
	}
	return d, true, nil
}

func (s *DraftStore) Save(ctx context.Context, d onboarding.Draft, ttl time.Duration) error {
	if !s.r.Available() {
		return ErrUnavailable
	}
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.r.client.Set(ctx, draftKey(d.UserID), b, ttl).Err()
}

func (s *DraftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if !s.r.Available() {
		return ErrUnavailable
	}
	return s.r.client.Del(ctx, draftKey(userID)).Err()
}
