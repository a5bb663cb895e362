package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/logger"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run executes the seeders in order and stops at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	log := logger.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if sa, ok := s.(SchemaAware); ok {
			if err := checkTables(ctx, db, sa.Tables()); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeded", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
