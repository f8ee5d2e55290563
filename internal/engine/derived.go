package engine

import (
	"math"
	"sort"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

const (
	BucketLow      = "low"
	BucketModerate = "moderate"
	BucketHigh     = "high"

	BucketEarly    = "early"
	BucketBuilding = "building"
	BucketStrong   = "strong"

	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Sentiment profile keys
const (
	ProfileAnxiousAchiever  = "anxious_achiever"
	ProfileCautiousObserver = "cautious_observer"
	ProfileConfidentBuilder = "confident_builder"
	ProfileSteadyOptimizer  = "steady_optimizer"
	ProfileCuriousExplorer  = "curious_explorer"
	ProfilePragmaticAdopter = "pragmatic_adopter"
)

// Exposure estimates how exposed the respondent's work is to AI:
// domain baseline plus a bump per usage-frequency level above 1
func (e *Engine) Exposure(answers model.AnswerMap) int {
	rules := e.cfg.Exposure

	domain := rules.DefaultDomain
	if opt := chosen(e.bank.Domain(), answers); opt != nil && opt.Exposure > 0 {
		domain = opt.Exposure
	}
	freq := 1.0
	if opt := chosen(e.bank.Frequency(), answers); opt != nil && opt.Level > 0 {
		freq = opt.Level
	}

	v := int(math.Round(float64(domain) + (freq-1)*rules.PerFrequencyLevel))
	return min(100, max(0, v))
}

// Readiness is the weighted axis blend, capped at 100
func (e *Engine) Readiness(axisScores map[model.Axis]int) int {
	var v float64
	for _, axis := range model.Axes {
		v += e.cfg.ReadinessWeights[axis] * float64(axisScores[axis])
	}
	return min(100, int(math.Round(v)))
}

func (e *Engine) ExposureBucket(exposure int) string {
	switch {
	case exposure < e.cfg.Buckets.ExposureModerate:
		return BucketLow
	case exposure < e.cfg.Buckets.ExposureHigh:
		return BucketModerate
	default:
		return BucketHigh
	}
}

func (e *Engine) ReadinessBucket(readiness int) string {
	switch {
	case readiness < e.cfg.Buckets.ReadinessBuilding:
		return BucketEarly
	case readiness < e.cfg.Buckets.ReadinessStrong:
		return BucketBuilding
	default:
		return BucketStrong
	}
}

// ToolSelections returns the text of every selected tool option.
// The "none" sentinel is kept; aggregation skips it.
func (e *Engine) ToolSelections(answers model.AnswerMap) []string {
	out := []string{}
	for _, q := range e.bank.ToolQuestions() {
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, idx := range ans.Selected() {
			if opt := q.OptionAt(idx); opt != nil {
				out = append(out, opt.Text)
			}
		}
	}
	return out
}

// Tags returns the domain tags of the selected domain option
func (e *Engine) Tags(answers model.AnswerMap) []string {
	opt := chosen(e.bank.Domain(), answers)
	if opt == nil {
		return []string{}
	}
	return append([]string{}, opt.Tags...)
}

// Sentiment sums the sentiment deltas of every chosen option and maps the
// totals onto a profile
func (e *Engine) Sentiment(answers model.AnswerMap) model.SentimentProfile {
	var totals model.Sentiment
	for _, q := range e.bank.All() {
		opt := chosen(q, answers)
		if opt == nil || opt.Sent == nil {
			continue
		}
		totals.Confidence += opt.Sent.Confidence
		totals.Anxiety += opt.Sent.Anxiety
		totals.Motivation += opt.Sent.Motivation
	}
	return model.SentimentProfile{Totals: totals, Profile: e.sentimentProfile(totals)}
}

func (e *Engine) sentimentProfile(s model.Sentiment) string {
	r := e.cfg.Sentiment
	switch {
	case s.Anxiety >= r.AnxietyMin:
		if s.Motivation >= r.AnxiousMotivation {
			return ProfileAnxiousAchiever
		}
		return ProfileCautiousObserver
	case s.Confidence >= r.BuilderConfidence && s.Motivation >= r.BuilderMotivation:
		return ProfileConfidentBuilder
	case s.Confidence >= r.SteadyConfidence:
		return ProfileSteadyOptimizer
	case s.Motivation >= r.CuriousMotivation:
		return ProfileCuriousExplorer
	default:
		return ProfilePragmaticAdopter
	}
}

// Signals picks the strongest axes and the bottleneck.
// Early-stage respondents never get agents or reliability as bottleneck.
func (e *Engine) Signals(axisScores map[model.Axis]int) model.Signals {
	r := e.cfg.Signals

	sorted := append([]model.Axis(nil), model.Axes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return axisScores[sorted[i]] > axisScores[sorted[j]]
	})

	strengths := []model.Axis{}
	for _, axis := range sorted {
		if len(strengths) == r.MaxStrengths {
			break
		}
		if axisScores[axis] >= r.StrengthMin {
			strengths = append(strengths, axis)
		}
	}

	var total int
	for _, axis := range model.Axes {
		total += axisScores[axis]
	}
	mean := float64(total) / float64(len(model.Axes))

	skip := map[model.Axis]bool{}
	switch {
	case mean < float64(r.SkipAdvancedBelow):
		skip[model.AxisAgents] = true
		skip[model.AxisReliability] = true
	case mean < float64(r.SkipAgentsBelow):
		skip[model.AxisAgents] = true
	}

	bottleneck := sorted[len(sorted)-1]
	for i := len(sorted) - 1; i >= 0; i-- {
		if !skip[sorted[i]] {
			bottleneck = sorted[i]
			break
		}
	}
	return model.Signals{Strengths: strengths, Bottleneck: bottleneck}
}

// Confidence grades how much the result can be trusted by answer count
func (e *Engine) Confidence(answered int) string {
	switch {
	case answered >= e.cfg.Confidence.High:
		return ConfidenceHigh
	case answered >= e.cfg.Confidence.Medium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
