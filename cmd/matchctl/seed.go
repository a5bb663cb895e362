package main

import (
	"fmt"

	"inclusive-jobs/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo employer and job data for local development",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	c, log, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: log}).Run(cmd.Context(), c.DB); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded demo data; employer login %s / %s\n", seeder.DemoEmployerEmail, seeder.DemoEmployerPassword)
	return nil
}
