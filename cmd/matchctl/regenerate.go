package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	regenerateAll  bool
	regenerateUser string
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Recompute match snapshots",
	Long:  "Recompute match snapshots for one candidate (--user) or for every candidate (--all) using the same engine as the API.",
	RunE:  runRegenerate,
}

func init() {
	regenerateCmd.Flags().BoolVar(&regenerateAll, "all", false, "Regenerate every candidate's snapshot")
	regenerateCmd.Flags().StringVar(&regenerateUser, "user", "", "Regenerate the snapshot of one user id")
	regenerateCmd.MarkFlagsMutuallyExclusive("all", "user")
	rootCmd.AddCommand(regenerateCmd)
}

func runRegenerate(cmd *cobra.Command, _ []string) error {
	if !regenerateAll && regenerateUser == "" {
		return errors.New("one of --all or --user is required")
	}

	var userID uuid.UUID
	if regenerateUser != "" {
		id, err := uuid.Parse(regenerateUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		userID = id
	}

	c, _, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	out := cmd.OutOrStdout()
	if regenerateAll {
		sum, err := c.Refresh.Run(cmd.Context())
		if err != nil {
			return err
		}
		if sum.Skipped {
			fmt.Fprintln(out, "refresh already running on another instance, nothing done")
			return nil
		}
		fmt.Fprintf(out, "candidates=%d failed=%d matches=%d took=%s\n", sum.Candidates, sum.Failed, sum.Matches, sum.Duration)
		return nil
	}

	res, err := c.Usecases.Matching.RegenerateForUser(cmd.Context(), userID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "user=%s jobs_analyzed=%d matches=%d\n", userID, res.TotalJobsAnalyzed, len(res.Matches))
	return nil
}
