// Package cli implements navctl, the offline tool for session stores
// and stats snapshots.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/forest0xia/ai-career-navigator/internal/app"
	"github.com/forest0xia/ai-career-navigator/internal/config"
	"github.com/forest0xia/ai-career-navigator/internal/engine"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type globalFlags struct {
	engineConfig string
	bankFile     string
}

func (g *globalFlags) engine() (*engine.Engine, error) {
	return app.BuildEngine(&config.Config{EngineConfig: g.engineConfig, BankFile: g.bankFile})
}

// NewRootCommand creates and returns the root cobra command for navctl
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "navctl",
		Short: "Offline tooling for the AI career navigator",
		Long: `navctl works on local session databases and stats snapshots.

It merges exported aggregate snapshots, rebuilds a snapshot from the
session log, exports sessions, seeds synthetic respondents through the
real scoring engine and prints community summaries.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.engineConfig, "engine-config", "", "YAML tuning file (default: built-in constants)")
	cmd.PersistentFlags().StringVar(&g.bankFile, "bank", "", "YAML question catalog (default: built-in bank)")

	cmd.AddCommand(newAggregateCommand())
	cmd.AddCommand(newRebuildCommand(g))
	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newSeedCommand(g))
	cmd.AddCommand(newStatsCommand())

	return cmd
}
