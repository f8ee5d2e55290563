package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

func newStatsCommand() *cobra.Command {
	var snapshot string
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print a community summary of a stats snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := readSnapshot(cmd.InOrStdin(), snapshot)
			if err != nil {
				return err
			}
			displayStats(cmd.OutOrStdout(), st, top)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "stats.json", `Snapshot file ("-" for stdin)`)
	cmd.Flags().IntVar(&top, "top", 5, "Number of tools to list")

	return cmd
}

func displayStats(out io.Writer, st *model.AggregateStats, top int) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	community := stats.Community(st)
	cyan.Fprintln(out, "Community")
	fmt.Fprintf(out, "  Sessions:   %d\n", community.TotalSessions)
	if community.TotalSessions == 0 {
		yellow.Fprintln(out, "  No sessions recorded yet")
		return
	}
	fmt.Fprintf(out, "  Exposure:   %d avg (low %d, moderate %d, high %d)\n", community.AvgExposure,
		community.ExposureBuckets.Low, community.ExposureBuckets.Moderate, community.ExposureBuckets.High)
	fmt.Fprintf(out, "  Readiness:  %d avg (early %d, building %d, strong %d)\n", community.AvgReadiness,
		community.ReadinessBuckets.Early, community.ReadinessBuckets.Building, community.ReadinessBuckets.Strong)

	cyan.Fprintln(out, "Average scores")
	for _, axis := range model.Axes {
		fmt.Fprintf(out, "  %-12s %5.1f\n", axis, community.AvgScores[axis])
	}

	cyan.Fprintln(out, "Archetypes")
	names := make([]string, 0, len(community.ArchetypeCounts))
	for name := range community.ArchetypeCounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := community.ArchetypeCounts[names[i]], community.ArchetypeCounts[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(out, "  %-12s %d\n", name, community.ArchetypeCounts[name])
	}

	tools := stats.ToolRankings(st)
	cyan.Fprintf(out, "Top tools (%d users)\n", tools.TotalUsers)
	for i, t := range tools.Ranked {
		if i >= top {
			break
		}
		fmt.Fprintf(out, "  %-24s %3d%% (%d)\n", t.Name, t.Pct, t.Count)
	}
}
