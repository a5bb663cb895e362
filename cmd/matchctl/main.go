// Command matchctl runs operator tasks against the inclusive-jobs database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inclusive-jobs/internal/app"
	"inclusive-jobs/internal/config"
	"inclusive-jobs/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "matchctl",
	Short:         "Operator tooling for the inclusive-jobs backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openContainer loads configuration and connects the shared dependencies.
func openContainer() (*app.Container, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	c, err := app.NewContainer(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return c, log, nil
}
