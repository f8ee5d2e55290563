package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
)

func newExportCommand() *cobra.Command {
	var dbPath string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every stored session as JSON",
		Long: `Export every session of a local database as a JSON array, oldest
first. If no output file is specified, data is written to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewSQLiteSessionRepo(dbPath)
			if err != nil {
				return err
			}
			defer repo.Close(cmd.Context())

			sessions, err := repo.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			// Ensure JSON output is [] not null
			if sessions == nil {
				sessions = make([]*model.Session, 0)
			}

			var writer io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				writer = file
			}
			return writeJSON(writer, sessions)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "navigator.db", "Path to the session database")
	cmd.Flags().StringVar(&output, "output", "", "Output file path (stdout if not specified)")

	return cmd
}
