// Package engine implements the adaptive assessment: branching, scoring,
// the pressure cross-check and archetype classification.
// Every function here is pure and synchronous over in-memory data.
package engine

import (
	"github.com/forest0xia/ai-career-navigator/internal/bank"
	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// Engine binds a question bank to a tuning config
type Engine struct {
	bank *bank.Bank
	cfg  *Config
}

// New creates an engine; a nil config means DefaultConfig
func New(b *bank.Bank, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{bank: b, cfg: cfg}
}

func (e *Engine) Bank() *bank.Bank {
	return e.bank
}

func (e *Engine) Config() *Config {
	return e.cfg
}

// Evaluate runs the whole pipeline over a finished answer map
func (e *Engine) Evaluate(answers model.AnswerMap) *model.Result {
	raw := e.ComputeScores(answers)
	scores, check := e.ApplyCrossCheck(raw, answers)
	class := e.Classify(scores)

	exposure := e.Exposure(answers)
	readiness := e.Readiness(scores.AxisScores)

	return &model.Result{
		Track:          e.DecideTrack(answers),
		Scores:         scores,
		CrossCheck:     check,
		Archetype:      class,
		Exposure:       exposure,
		ExposureBucket: e.ExposureBucket(exposure),
		Readiness:      readiness,
		ReadinessLevel: e.ReadinessBucket(readiness),
		ToolSelections: e.ToolSelections(answers),
		Tags:           e.Tags(answers),
		Sentiment:      e.Sentiment(answers),
		Signals:        e.Signals(scores.AxisScores),
		Confidence:     e.Confidence(scores.AnsweredCount),
	}
}

// Session builds the persisted record for a finished assessment.
// Only the answers that fit the bank are kept.
func (e *Engine) Session(answers model.AnswerMap, r *model.Result) *model.Session {
	scores := make(map[model.Axis]int, len(r.Scores.AxisScores))
	for k, v := range r.Scores.AxisScores {
		scores[k] = v
	}
	return &model.Session{
		Answers:        e.Sanitize(answers),
		Tags:           append([]string(nil), r.Tags...),
		Track:          r.Track,
		Scores:         scores,
		Overall:        r.Archetype.Score,
		Archetype:      r.Archetype.Archetype,
		Exposure:       r.Exposure,
		Readiness:      r.Readiness,
		ToolSelections: append([]string(nil), r.ToolSelections...),
	}
}

// chosen resolves a single-select answer to its option, or nil when the
// entry is missing, of the wrong kind, or out of range
func chosen(q *model.Question, answers model.AnswerMap) *model.Option {
	if q == nil || q.IsMulti() {
		return nil
	}
	ans, ok := answers[q.ID]
	if !ok || ans.IsMulti() {
		return nil
	}
	return q.OptionAt(ans.Index)
}
