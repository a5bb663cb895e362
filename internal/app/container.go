package app

import (
	"context"
	"errors"
	"time"

	"inclusive-jobs/internal/config"
	"inclusive-jobs/internal/database"
	dbpostgres "inclusive-jobs/internal/database/postgres"
	"inclusive-jobs/internal/infrastructure/cache"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/pipeline"
	"inclusive-jobs/internal/pkg/jwt"
	"inclusive-jobs/internal/repository"
	"inclusive-jobs/internal/usecase"
	"inclusive-jobs/internal/ws"

	"go.uber.org/zap"
)

type Repositories struct {
	Users        *repository.PostgresUserRepository
	UserQuery    *repository.PostgresUserQueryRepository
	Candidates   *repository.PostgresCandidateRepository
	Employers    *repository.PostgresEmployerRepository
	Jobs         *repository.PostgresJobRepository
	Applications *repository.PostgresApplicationRepository
	Reviews      *repository.PostgresReviewRepository
	Matches      *repository.PostgresMatchResultRepository
}

type Usecases struct {
	Auth              *usecase.Auth
	User              *usecase.User
	Candidates        *usecase.Candidates
	Onboarding        *usecase.Onboarding
	JobList           *usecase.JobList
	Jobs              *usecase.Jobs
	JobRecommendation *usecase.JobRecommendation
	Reviews           *usecase.Reviews
	Matching          *usecase.Matching
}

// Container owns the long-lived dependencies shared by the server and the CLI.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Redis  *cache.Redis
	JWT    jwt.Service
	Hub    *ws.Hub

	Repos    Repositories
	Usecases Usecases
	Refresh  *pipeline.MatchRefresh
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  cache.NewRedis(cfg.Redis, log),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Hub: ws.NewHub(log),
	}
	c.wire()
	return c, nil
}

func (c *Container) wire() {
	db := c.DB
	c.Repos = Repositories{
		Users:        repository.NewPostgresUserRepository(db),
		UserQuery:    repository.NewPostgresUserQueryRepository(db),
		Candidates:   repository.NewPostgresCandidateRepository(db),
		Employers:    repository.NewPostgresEmployerRepository(db),
		Jobs:         repository.NewPostgresJobRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Reviews:      repository.NewPostgresReviewRepository(db),
		Matches:      repository.NewPostgresMatchResultRepository(db),
	}

	r := c.Repos
	log := c.Logger
	c.Usecases = Usecases{
		Auth:              usecase.NewAuthUsecase(r.Users, c.JWT),
		User:              usecase.NewUserUsecase(r.Users),
		Candidates:        usecase.NewCandidateUsecase(r.Candidates, log),
		Onboarding:        usecase.NewOnboardingUsecase(cache.NewDraftStore(c.Redis), r.Candidates, c.Config.Onboarding.DraftTTL, log),
		JobList:           usecase.NewJobListUsecase(r.Jobs, log),
		Jobs:              usecase.NewJobUsecase(r.Jobs, r.Employers, r.Candidates, r.Applications, log),
		JobRecommendation: usecase.NewJobRecommendationUsecase(r.Jobs, r.Candidates, r.Employers, log),
		Reviews:           usecase.NewReviewUsecase(r.Reviews, r.Employers, log),
		Matching: usecase.NewMatchUsecase(
			r.Candidates, r.Jobs, r.Matches, c.Redis, ws.NewNotifier(c.Hub), log,
			usecase.MatchOptions{TopN: c.Config.Match.TopN, StatsCacheTTL: c.Config.Match.StatsCacheTTL},
		),
	}

	c.Refresh = pipeline.NewMatchRefresh(r.UserQuery, c.Usecases.Matching, c.Config.Match.RefreshWorkers, log).
		WithLock(c.Redis, 0)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.Hub.Stop()

	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
