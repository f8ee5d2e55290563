package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

func newAggregateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate [stats.json...]",
		Short: "Merge exported stats snapshots into one",
		Long: `Merge aggregate snapshots exported from several stores and write the
combined snapshot to stdout. With no files, or "-", the snapshot is
read from stdin.

Examples:
  navctl aggregate eu.json us.json > stats.json
  curl -s $HOST/v1/admin/export | jq .stats | navctl aggregate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			merged := stats.Empty()
			for _, path := range args {
				st, err := readSnapshot(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				merged = stats.Merge(merged, st)
			}
			return writeJSON(cmd.OutOrStdout(), merged)
		},
	}
}

func readSnapshot(stdin io.Reader, path string) (*model.AggregateStats, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var st model.AggregateStats
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &st, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
