// Package scheduler runs the periodic snapshot refresh on a cron spec.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/pipeline"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Job interface {
	Run(ctx context.Context) (pipeline.RefreshSummary, error)
}

type Scheduler struct {
	cron    *cron.Cron
	job     Job
	spec    string
	running atomic.Bool
	logger  *zap.Logger
}

// New returns a scheduler firing job on spec, e.g. "@every 6h".
func New(spec string, job Job, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		job:    job,
		spec:   spec,
		logger: logger.OrNop(log).Named("scheduler"),
	}
}

// Start registers the refresh and starts the cron loop. An empty spec leaves
// the scheduler disabled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec == "" {
		s.logger.Info("match refresh schedule disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, func() { s.tick(ctx) }); err != nil {
		return fmt.Errorf("schedule match refresh %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.logger.Info("match refresh scheduled", zap.String("spec", s.spec))
	return nil
}

// Stop halts the cron loop and waits for a running refresh to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// tick skips a firing while the previous refresh is still running.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("match refresh still running, skipping tick")
		return
	}
	defer s.running.Store(false)

	if _, err := s.job.Run(ctx); err != nil {
		s.logger.Error("match refresh failed", zap.Error(err))
	}
}
