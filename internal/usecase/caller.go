package usecase

import (
	"context"
	"time"

	"inclusive-jobs/internal/domain/user"

	"github.com/google/uuid"
)

// Caller is the authenticated identity a request acts as.
type Caller struct {
	UserID uuid.UUID
	Role   user.Role
}

func (c Caller) require(role user.Role) error {
	if c.UserID == uuid.Nil {
		return ErrUnauthorized
	}
	if c.Role != role {
		return ErrInvalidCaller
	}
	return nil
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func newPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// normalizePage clamps page to >= 1 and limit to [1, max], using def when limit is unset.
func normalizePage(page, limit, def, max int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return page, limit
}
