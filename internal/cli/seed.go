package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forest0xia/ai-career-navigator/internal/cache"
	"github.com/forest0xia/ai-career-navigator/internal/engine"
	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/repository"
	"github.com/forest0xia/ai-career-navigator/internal/service"
	"github.com/forest0xia/ai-career-navigator/internal/stats"
)

func newSeedCommand(g *globalFlags) *cobra.Command {
	var dbPath string
	var snapshot string
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate synthetic respondents through the scoring engine",
		Long: `Walk the branching plan with random answers, score each respondent
with the real engine and store the sessions. The snapshot file, when
given, is rebuilt from the whole database afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			e, err := g.engine()
			if err != nil {
				return err
			}

			repo, err := repository.NewSQLiteSessionRepo(dbPath)
			if err != nil {
				return err
			}
			defer repo.Close(cmd.Context())

			rng := rand.New(rand.NewSource(seed))
			start := time.Now().Add(-time.Duration(count) * time.Minute)
			if err := seedSessions(cmd.Context(), e, repo, rng, count, start); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "Seeded %d sessions into %s\n", count, dbPath)

			if snapshot == "" {
				return nil
			}
			sessions, err := repo.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			rebuilt := stats.NewAggregator(e).Rebuild(sessions)
			if err := cache.NewFileStatsCache(snapshot).Save(cmd.Context(), rebuilt); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(out, "Rebuilt %s from %d sessions\n", snapshot, rebuilt.N)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "navigator.db", "Path to the session database")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Snapshot file to rebuild afterwards")
	cmd.Flags().IntVar(&count, "count", 50, "Number of respondents")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")

	return cmd
}

func seedSessions(ctx context.Context, e *engine.Engine, repo repository.SessionRepo, rng *rand.Rand, count int, start time.Time) error {
	for i := 0; i < count; i++ {
		answers := RandomAnswers(e, rng)
		session := e.Session(answers, e.Evaluate(answers))
		session.ID = service.NewSessionID()
		session.CreatedAt = start.Add(time.Duration(i) * time.Minute).UTC()
		if err := repo.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to store session %d: %w", i, err)
		}
	}
	return nil
}

// RandomAnswers walks the plan until it is done. Respondents lean towards
// one region of the scale so tracks and archetypes spread out.
func RandomAnswers(e *engine.Engine, rng *rand.Rand) model.AnswerMap {
	bias := rng.Float64()
	answers := model.AnswerMap{}
	for plan := e.Plan(answers); !plan.Done && plan.Next != nil; plan = e.Plan(answers) {
		q := plan.Next
		n := len(q.Options)
		if q.IsMulti() {
			answers[q.ID] = randomSelection(rng, n)
			continue
		}
		idx := int(bias*float64(n)) + rng.Intn(3) - 1
		answers[q.ID] = model.Single(max(0, min(n-1, idx)))
	}
	return answers
}

// randomSelection picks one to four of the first n-1 options; the last
// option is the "none" sentinel and is picked alone one time in five
func randomSelection(rng *rand.Rand, n int) model.Answer {
	if n == 1 || rng.Intn(5) == 0 {
		return model.Multi(n - 1)
	}
	k := 1 + rng.Intn(min(4, n-1))
	picks := rng.Perm(n - 1)[:k]
	return model.Multi(picks...)
}
