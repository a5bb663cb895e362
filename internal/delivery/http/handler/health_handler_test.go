package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"inclusive-jobs/internal/database"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakePool struct {
	fakePinger
	stats database.PoolStats
}

func (p fakePool) Stats() database.PoolStats { return p.stats }

func TestHealthHandler_Ready(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name       string
		db         Pinger
		redis      Pinger
		wantStatus int
		wantRedis  string
	}{
		{name: "all up", db: fakePinger{}, redis: fakePinger{}, wantStatus: http.StatusOK, wantRedis: "up"},
		{name: "redis down stays ready", db: fakePinger{}, redis: fakePinger{err: down}, wantStatus: http.StatusOK, wantRedis: "down"},
		{name: "redis disabled", db: fakePinger{}, wantStatus: http.StatusOK, wantRedis: "disabled"},
		{name: "database down", db: fakePinger{err: down}, redis: fakePinger{}, wantStatus: http.StatusServiceUnavailable, wantRedis: "up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db, tt.redis)
			app := newTestApp(nil, func(app *fiber.App) { h.RegisterRoutes(app) })

			status, env := doRequest(t, app, http.MethodGet, "/health/ready", nil)
			assert.Equal(t, tt.wantStatus, status)

			var checks map[string]any
			require.NoError(t, json.Unmarshal(env.Data, &checks))
			assert.Equal(t, tt.wantRedis, checks["redis"])
		})
	}
}

func TestHealthHandler_ReadyIncludesPoolStats(t *testing.T) {
	h := NewHealthHandler(fakePool{stats: database.PoolStats{TotalConns: 3, MaxConns: 10}}, nil)
	app := newTestApp(nil, func(app *fiber.App) { h.RegisterRoutes(app) })

	status, env := doRequest(t, app, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, status)

	var checks struct {
		Pool database.PoolStats `json:"database_pool"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &checks))
	assert.Equal(t, int32(3), checks.Pool.TotalConns)
	assert.Equal(t, int32(10), checks.Pool.MaxConns)
}

func TestHealthHandler_Live(t *testing.T) {
	h := NewHealthHandler(nil, nil)
	app := newTestApp(nil, func(app *fiber.App) { h.RegisterRoutes(app) })

	status, env := doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"up"}`, string(env.Data))
}
