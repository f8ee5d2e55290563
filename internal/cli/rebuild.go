package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forest0xia/ai-career-navigator/internal/cache"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

func newRebuildCommand(g *globalFlags) *cobra.Command {
	var dbPath string
	var output string

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Recompute the stats snapshot from a session database",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.engine()
			if err != nil {
				return err
			}

			repo, err := repository.NewSQLiteSessionRepo(dbPath)
			if err != nil {
				return err
			}
			defer repo.Close(cmd.Context())

			sessions, err := repo.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}

			rebuilt := stats.NewAggregator(e).Rebuild(sessions)
			if err := cache.NewFileStatsCache(output).Save(cmd.Context(), rebuilt); err != nil {
				return err
			}

			green := color.New(color.FgGreen)
			green.Fprintf(cmd.OutOrStdout(), "Rebuilt %s from %d sessions\n", output, rebuilt.N)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "navigator.db", "Path to the session database")
	cmd.Flags().StringVar(&output, "output", "stats.json", "Snapshot file to write")

	return cmd
}
