package app

import (
	"context"
	"fmt"
	"strings"

	"inclusive-jobs/internal/config"
	"inclusive-jobs/internal/database/migration"
	"inclusive-jobs/internal/delivery/http/handler"
	"inclusive-jobs/internal/delivery/http/middleware"
	"inclusive-jobs/internal/delivery/http/routes"
	v1 "inclusive-jobs/internal/delivery/http/routes/v1"
	"inclusive-jobs/internal/scheduler"
	"inclusive-jobs/internal/ws"
	"inclusive-jobs/migrations"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Scheduler *scheduler.Scheduler
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{
		Fiber:     f,
		Container: c,
		Scheduler: scheduler.New(c.Config.Match.RefreshSpec, c.Refresh, c.Logger),
	}
}

// Bootstrap connects dependencies, applies pending migrations and starts the
// background loops. The returned cleanup stops them in reverse order.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	applied, err := migration.Runner{Dir: cfg.Database.MigrationsDir, FS: migrations.FS, Logger: c.Logger}.Run(ctx, c.DB.SQLDB())
	if err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	c.Logger.Info("migrations checked", zap.Int("applied", applied))

	a := New(c)
	go c.Hub.Run()

	if err := a.Scheduler.Start(ctx); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		a.Scheduler.Stop()
		return c.Close()
	}
	return a, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	u := c.Usecases
	var redisPinger handler.Pinger
	if c.Redis.Available() {
		redisPinger = c.Redis
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, redisPinger),
		ws.NewHandler(c.Hub, c.JWT, c.Logger).HandleWS,
		v1.Handlers{
			Auth:              middleware.NewAuthMiddleware(c.JWT),
			AuthHandler:       handler.NewAuthHandler(u.Auth),
			Users:             handler.NewUserHandler(u.User),
			Candidates:        handler.NewCandidateHandler(u.Candidates),
			Onboarding:        handler.NewOnboardingHandler(u.Onboarding),
			Jobs:              handler.NewJobsHandler(u.JobList, u.Jobs),
			JobRecommendation: handler.NewJobRecommendationHandler(u.JobRecommendation),
			Reviews:           handler.NewReviewHandler(u.Reviews),
			Matches:           handler.NewMatchHandler(u.Matching),
		},
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
