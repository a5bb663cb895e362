package main

import (
	"fmt"
	"text/tabwriter"

	"inclusive-jobs/internal/database/migration"
	"inclusive-jobs/migrations"

	"github.com/spf13/cobra"
)

var (
	migrateDir    string
	migrateStatus bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	Long:  "Apply pending SQL migrations. Without --dir or DB_MIGRATIONS_DIR the files embedded in the binary are used.",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateDir, "dir", "d", "", "Migrations directory (defaults to DB_MIGRATIONS_DIR, then the embedded set)")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "List migrations and whether they are applied, without applying")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	c, log, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	dir := migrateDir
	if dir == "" {
		dir = c.Config.Database.MigrationsDir
	}
	r := migration.Runner{Dir: dir, FS: migrations.FS, Logger: log}

	if migrateStatus {
		sts, err := r.Status(cmd.Context(), c.DB.SQLDB())
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tSTATE\tAPPLIED AT")
		for _, s := range sts {
			state, at := "pending", "-"
			if s.Applied {
				state, at = "applied", s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
			}
			if s.Modified {
				state = "modified"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Version, s.Name, state, at)
		}
		return w.Flush()
	}

	n, err := r.Run(cmd.Context(), c.DB.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
	return nil
}
