// Package stats maintains the running community aggregate.
// Every update is a plain sum or count, so recording order never matters
// and a rebuild from the session log reproduces the incremental value.
package stats

import (
	"github.com/forest0xia/ai-career-navigator/internal/bank"
	"github.com/forest0xia/ai-career-navigator/internal/engine"
	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// Rules maps exposure and readiness onto their named zones and filters
// answers down to what the question bank defines
type Rules interface {
	ExposureBucket(exposure int) string
	ReadinessBucket(readiness int) string
	Sanitize(answers model.AnswerMap) model.AnswerMap
}

// Aggregator applies sessions to aggregate records
type Aggregator struct {
	rules Rules
}

func NewAggregator(r Rules) *Aggregator {
	return &Aggregator{rules: r}
}

// Empty returns a zero-session aggregate with every map allocated
func Empty() *model.AggregateStats {
	st := &model.AggregateStats{
		SumScores:       make(map[model.Axis]int, len(model.Axes)),
		ArchetypeCounts: map[string]int{},
		ToolCounts:      map[string]int{},
		TagCounts:       map[string]int{},
		AnswerCounts:    map[string]map[int]int{},
	}
	for _, axis := range model.Axes {
		st.SumScores[axis] = 0
	}
	return st
}

// Normalize allocates any map a decoded snapshot left nil
func Normalize(st *model.AggregateStats) *model.AggregateStats {
	if st == nil {
		return Empty()
	}
	if st.SumScores == nil {
		st.SumScores = make(map[model.Axis]int, len(model.Axes))
	}
	for _, axis := range model.Axes {
		if _, ok := st.SumScores[axis]; !ok {
			st.SumScores[axis] = 0
		}
	}
	if st.ArchetypeCounts == nil {
		st.ArchetypeCounts = map[string]int{}
	}
	if st.ToolCounts == nil {
		st.ToolCounts = map[string]int{}
	}
	if st.TagCounts == nil {
		st.TagCounts = map[string]int{}
	}
	if st.AnswerCounts == nil {
		st.AnswerCounts = map[string]map[int]int{}
	}
	return st
}

// Apply folds one session into st in place.
// Answers the bank does not define are not counted.
func (a *Aggregator) Apply(st *model.AggregateStats, s *model.Session) {
	st.N++
	for axis, v := range s.Scores {
		st.SumScores[axis] += v
	}
	st.SumExposure += s.Exposure
	st.SumReadiness += s.Readiness
	st.ArchetypeCounts[s.Archetype]++

	switch a.rules.ExposureBucket(s.Exposure) {
	case engine.BucketLow:
		st.ExposureBuckets.Low++
	case engine.BucketModerate:
		st.ExposureBuckets.Moderate++
	default:
		st.ExposureBuckets.High++
	}
	switch a.rules.ReadinessBucket(s.Readiness) {
	case engine.BucketEarly:
		st.ReadinessBuckets.Early++
	case engine.BucketBuilding:
		st.ReadinessBuckets.Building++
	default:
		st.ReadinessBuckets.Strong++
	}

	used := false
	for _, tool := range s.ToolSelections {
		if tool == bank.NoToolSentinel {
			continue
		}
		st.ToolCounts[tool]++
		used = true
	}
	if used {
		st.ToolUsers++
	}

	for _, tag := range s.Tags {
		st.TagCounts[tag]++
	}

	for qid, ans := range a.rules.Sanitize(s.Answers) {
		counts := st.AnswerCounts[qid]
		if counts == nil {
			counts = map[int]int{}
			st.AnswerCounts[qid] = counts
		}
		for _, idx := range ans.Selected() {
			counts[idx]++
		}
	}
}

// Rebuild recomputes the aggregate from scratch over a session log
func (a *Aggregator) Rebuild(sessions []*model.Session) *model.AggregateStats {
	st := Empty()
	for _, s := range sessions {
		a.Apply(st, s)
	}
	return st
}

// Merge adds two aggregates field by field; neither input is modified
func Merge(x, y *model.AggregateStats) *model.AggregateStats {
	out := Clone(x)
	y = Normalize(Clone(y))

	out.N += y.N
	for axis, v := range y.SumScores {
		out.SumScores[axis] += v
	}
	out.SumExposure += y.SumExposure
	out.SumReadiness += y.SumReadiness
	addCounts(out.ArchetypeCounts, y.ArchetypeCounts)

	out.ExposureBuckets.Low += y.ExposureBuckets.Low
	out.ExposureBuckets.Moderate += y.ExposureBuckets.Moderate
	out.ExposureBuckets.High += y.ExposureBuckets.High
	out.ReadinessBuckets.Early += y.ReadinessBuckets.Early
	out.ReadinessBuckets.Building += y.ReadinessBuckets.Building
	out.ReadinessBuckets.Strong += y.ReadinessBuckets.Strong

	addCounts(out.ToolCounts, y.ToolCounts)
	out.ToolUsers += y.ToolUsers
	addCounts(out.TagCounts, y.TagCounts)

	for qid, counts := range y.AnswerCounts {
		dst := out.AnswerCounts[qid]
		if dst == nil {
			dst = map[int]int{}
			out.AnswerCounts[qid] = dst
		}
		for idx, n := range counts {
			dst[idx] += n
		}
	}
	return out
}

// Clone returns a deep copy with every map allocated
func Clone(st *model.AggregateStats) *model.AggregateStats {
	out := Empty()
	if st == nil {
		return out
	}
	out.N = st.N
	for axis, v := range st.SumScores {
		out.SumScores[axis] = v
	}
	out.SumExposure = st.SumExposure
	out.SumReadiness = st.SumReadiness
	addCounts(out.ArchetypeCounts, st.ArchetypeCounts)
	out.ExposureBuckets = st.ExposureBuckets
	out.ReadinessBuckets = st.ReadinessBuckets
	addCounts(out.ToolCounts, st.ToolCounts)
	out.ToolUsers = st.ToolUsers
	addCounts(out.TagCounts, st.TagCounts)
	for qid, counts := range st.AnswerCounts {
		dst := make(map[int]int, len(counts))
		for idx, n := range counts {
			dst[idx] = n
		}
		out.AnswerCounts[qid] = dst
	}
	return out
}

func addCounts(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}
