package engine

import (
	"math"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// ApplyCrossCheck compares the claimed level with the pressure-scenario
// answer and discounts overall when the gap is too wide.
// The adjustment only ever lowers overall. Input scores are not modified.
func (e *Engine) ApplyCrossCheck(scores model.ScoreResult, answers model.AnswerMap) (model.ScoreResult, model.CrossCheck) {
	rules := e.cfg.CrossCheck
	out := scores
	out.AxisScores = copyScores(scores.AxisScores)
	check := model.CrossCheck{RawOverall: scores.Overall}

	opt := chosen(e.bank.Get(rules.QuestionID), answers)
	if opt == nil {
		return out, check
	}

	check.Applied = true
	check.PressureLevel = opt.Level
	check.Gap = scores.AvgLevel - opt.Level
	if check.Gap >= rules.MinGap {
		check.Penalized = true
		adjusted := int(math.Round(float64(scores.Overall) * rules.Factor))
		if adjusted < scores.Overall {
			out.Overall = adjusted
		}
	}
	return out, check
}

func copyScores(in map[model.Axis]int) map[model.Axis]int {
	out := make(map[model.Axis]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
