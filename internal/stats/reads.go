package stats

import (
	"math"
	"sort"

	"github.com/forest0xia/ai-career-navigator/internal/bank"
	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// Community summarizes the aggregate for the renderer.
// With no sessions only TotalSessions is set.
func Community(st *model.AggregateStats) *model.CommunityStats {
	if st == nil || st.N == 0 {
		return &model.CommunityStats{}
	}
	exposure := st.ExposureBuckets
	readiness := st.ReadinessBuckets
	return &model.CommunityStats{
		TotalSessions:    st.N,
		AvgScores:        AverageScores(st),
		ArchetypeCounts:  copyCounts(st.ArchetypeCounts),
		ExposureBuckets:  &exposure,
		ReadinessBuckets: &readiness,
		TagCounts:        copyCounts(st.TagCounts),
		AvgExposure:      roundDiv(st.SumExposure, st.N),
		AvgReadiness:     roundDiv(st.SumReadiness, st.N),
	}
}

// AverageScores returns sum/n per axis, or an empty map with no sessions
func AverageScores(st *model.AggregateStats) map[model.Axis]float64 {
	out := make(map[model.Axis]float64, len(model.Axes))
	if st == nil || st.N == 0 {
		return out
	}
	for _, axis := range model.Axes {
		out[axis] = float64(st.SumScores[axis]) / float64(st.N)
	}
	return out
}

// ToolRankings sorts tools by count, breaking ties by name.
// Pct is the share of respondents who picked at least one tool.
func ToolRankings(st *model.AggregateStats) *model.ToolRankings {
	out := &model.ToolRankings{Ranked: []model.ToolRank{}}
	if st == nil {
		return out
	}
	out.TotalUsers = st.ToolUsers
	for name, count := range st.ToolCounts {
		if name == bank.NoToolSentinel {
			continue
		}
		out.Ranked = append(out.Ranked, model.ToolRank{
			Name:  name,
			Count: count,
			Pct:   pct(count, st.ToolUsers),
		})
	}
	sort.Slice(out.Ranked, func(i, j int) bool {
		if out.Ranked[i].Count != out.Ranked[j].Count {
			return out.Ranked[i].Count > out.Ranked[j].Count
		}
		return out.Ranked[i].Name < out.Ranked[j].Name
	})
	return out
}

// Distribution returns each option's share of all sessions for q.
// With no sessions the result is empty.
func Distribution(st *model.AggregateStats, q *model.Question) []model.OptionShare {
	out := []model.OptionShare{}
	if st == nil || st.N == 0 || q == nil {
		return out
	}
	counts := st.AnswerCounts[q.ID]
	for i, opt := range q.Options {
		out = append(out, model.OptionShare{
			Label: opt.Text,
			Count: counts[i],
			Pct:   pct(counts[i], st.N),
		})
	}
	return out
}

func pct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func roundDiv(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
