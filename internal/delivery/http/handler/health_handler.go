package handler

import (
	"context"
	"time"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type poolStatter interface {
	Stats() database.PoolStats
}

// HealthHandler reports liveness and, on /health/ready, whether the
// dependencies answer. Redis is reported but does not fail readiness since
// the service degrades without it.
type HealthHandler struct {
	db    Pinger
	redis Pinger
}

func NewHealthHandler(db Pinger, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Live)
	r.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"status": "up"})
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{
		"database": pingStatus(ctx, h.db),
		"redis":    pingStatus(ctx, h.redis),
	}
	if ps, ok := h.db.(poolStatter); ok {
		checks["database_pool"] = ps.Stats()
	}
	if checks["database"] != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
