package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"inclusive-jobs/internal/app"
	"inclusive-jobs/internal/config"
	"inclusive-jobs/internal/database/migration"
	"inclusive-jobs/internal/database/seeder"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type matchItem struct {
	ID           uuid.UUID `json:"id"`
	OverallScore int       `json:"overallScore"`
	Job          struct {
		ID    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	} `json:"job"`
}

func TestIntegration_GenerateAndReadMatches(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := testConfig(t)
	c, err := app.NewContainer(cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, err = migration.Runner{Dir: cfg.Database.MigrationsDir}.Run(ctx, c.DB.SQLDB())
	require.NoError(t, err)
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, c.DB))

	a := app.New(c)

	email := fmt.Sprintf("it-%s@example.com", uuid.NewString()[:8])
	defer func() {
		_, _ = c.DB.Exec(context.Background(), `DELETE FROM users WHERE email = $1`, email)
	}()

	reg := call(t, a, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":     email,
		"password":  "password123",
		"role":      "pwd",
		"full_name": "Integration Candidate",
	})
	require.Equal(t, http.StatusCreated, reg.Status, reg.Message)
	var auth struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(reg.Data, &auth))
	require.NotEmpty(t, auth.AccessToken)
	tok := auth.AccessToken

	prof := call(t, a, http.MethodPut, "/api/v1/candidates/me", tok, map[string]any{
		"skills":                     []string{"SQL", "python", "Excel"},
		"experience_level":           "junior",
		"work_arrangement":           "remote",
		"preferred_employment_types": []string{"full_time"},
		"accessibility_needs": map[string]any{
			"visual": []string{"screen_reader", "high_contrast"},
		},
	})
	require.Equal(t, http.StatusOK, prof.Status, prof.Message)

	gen := call(t, a, http.MethodPost, "/api/v1/matches/generate", tok, nil)
	require.Equal(t, http.StatusOK, gen.Status, gen.Message)
	var generated struct {
		Matches           []matchItem `json:"matches"`
		TotalJobsAnalyzed int         `json:"totalJobsAnalyzed"`
	}
	require.NoError(t, json.Unmarshal(gen.Data, &generated))
	require.NotEmpty(t, generated.Matches)
	assert.GreaterOrEqual(t, generated.TotalJobsAnalyzed, len(generated.Matches))
	assertDescending(t, generated.Matches)
	// The remote junior analyst role shares every skill and visual feature.
	analyst, ok := findByTitle(generated.Matches, "Junior Data Analyst")
	require.True(t, ok)
	assert.Equal(t, 100, analyst.OverallScore)
	assert.Equal(t, 100, generated.Matches[0].OverallScore)

	// Ids in the generate response address the stored rows directly.
	byID := call(t, a, http.MethodGet, "/api/v1/matches/"+analyst.ID.String(), tok, nil)
	require.Equal(t, http.StatusOK, byID.Status, byID.Message)
	var stored matchItem
	require.NoError(t, json.Unmarshal(byID.Data, &stored))
	assert.Equal(t, analyst.ID, stored.ID)
	assert.Equal(t, analyst.OverallScore, stored.OverallScore)

	mine := call(t, a, http.MethodGet, "/api/v1/my-matches?minScore=50&limit=50", tok, nil)
	require.Equal(t, http.StatusOK, mine.Status, mine.Message)
	var listed struct {
		Matches []matchItem `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(mine.Data, &listed))
	require.NotEmpty(t, listed.Matches)
	assertDescending(t, listed.Matches)
	for _, m := range listed.Matches {
		assert.GreaterOrEqual(t, m.OverallScore, 50)
	}

	detail := call(t, a, http.MethodGet, "/api/v1/matches/"+listed.Matches[0].ID.String(), tok, nil)
	require.Equal(t, http.StatusOK, detail.Status, detail.Message)
	var d struct {
		Analysis struct {
			Summary string `json:"summary"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(detail.Data, &d))
	assert.NotEmpty(t, d.Analysis.Summary)

	stats := call(t, a, http.MethodGet, "/api/v1/matches/stats", tok, nil)
	require.Equal(t, http.StatusOK, stats.Status, stats.Message)
	var st struct {
		TotalMatches  int        `json:"totalMatches"`
		LastGenerated *time.Time `json:"lastGenerated"`
	}
	require.NoError(t, json.Unmarshal(stats.Data, &st))
	assert.Equal(t, len(generated.Matches), st.TotalMatches)
	assert.NotNil(t, st.LastGenerated)

	// A second run replaces the snapshot instead of appending to it.
	again := call(t, a, http.MethodPost, "/api/v1/generate-matches", tok, nil)
	require.Equal(t, http.StatusOK, again.Status, again.Message)
	stats = call(t, a, http.MethodGet, "/api/v1/stats", tok, nil)
	require.NoError(t, json.Unmarshal(stats.Data, &st))
	assert.Equal(t, len(generated.Matches), st.TotalMatches)
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	env := func(key string) string {
		if v := os.Getenv("INCLUSIVE_TEST_" + key); v != "" {
			return v
		}
		return os.Getenv(key)
	}

	host, port, name, user := env("DB_HOST"), env("DB_PORT"), env("DB_NAME"), env("DB_USER")
	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("set INCLUSIVE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD to run integration tests")
	}
	ssl := env("DB_SSL_MODE")
	if ssl == "" {
		ssl = "disable"
	}

	return config.Config{
		App: config.AppConfig{AppName: "inclusive-jobs-it", Environment: "test", HTTPPort: "0"},
		Database: config.DatabaseConfig{
			DBHost:         host,
			DBPort:         port,
			DBName:         name,
			DBUser:         user,
			DBPassword:     env("DB_PASSWORD"),
			DBSSLMode:      ssl,
			ConnectTimeout: 5 * time.Second,
			PoolMaxConns:   4,
			MigrationsDir:  migrationsDir(t),
		},
		JWT: config.JWTConfig{
			AccessSecret:     "it-access-secret",
			RefreshSecret:    "it-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		Redis: config.RedisConfig{
			Host: env("REDIS_HOST"),
			Port: env("REDIS_PORT"),
			TTL:  time.Minute,
		},
		Match:      config.MatchConfig{TopN: 20, RefreshWorkers: 1, StatsCacheTTL: time.Minute},
		Onboarding: config.OnboardingConfig{DraftTTL: time.Hour},
	}
}

func migrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	dir := filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..", "migrations"))
	files, _ := filepath.Glob(filepath.Join(dir, "V*__*.sql"))
	require.NotEmpty(t, files, "no migrations in %s", dir)
	return dir
}

func call(t *testing.T, a *app.App, method, path, token string, body any) envelope {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Fiber.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func assertDescending(t *testing.T, items []matchItem) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i].OverallScore, items[i-1].OverallScore, "idx %d", i)
	}
}

func findByTitle(items []matchItem, title string) (matchItem, bool) {
	for _, m := range items {
		if m.Job.Title == title {
			return m, true
		}
	}
	return matchItem{}, false
}
