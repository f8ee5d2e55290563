package engine

import (
	"math"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// ComputeScores folds the answer map into per-axis percentages, the
// weighted overall and the mean option level.
// Unknown ids, stale indices and kind mismatches are skipped.
func (e *Engine) ComputeScores(answers model.AnswerMap) model.ScoreResult {
	points := make(map[model.Axis]float64, len(model.Axes))
	possible := make(map[model.Axis]float64, len(model.Axes))

	var levelSum float64
	var levelCount int
	for _, q := range e.bank.All() {
		opt := chosen(q, answers)
		if opt == nil {
			continue
		}
		idx := answers[q.ID].Index
		for axis, pts := range q.Axes {
			if !knownAxis(axis) || idx >= len(pts) {
				continue
			}
			points[axis] += pts[idx]
			possible[axis] += maxOf(pts)
		}
		if opt.Level > 0 {
			levelSum += opt.Level
			levelCount++
		}
	}

	axisScores := make(map[model.Axis]int, len(model.Axes))
	for _, axis := range model.Axes {
		axisScores[axis] = percent(points[axis], possible[axis])
	}

	var overall float64
	for _, axis := range model.Axes {
		overall += e.cfg.Weights[axis] * float64(axisScores[axis])
	}

	avg := 1.0
	if levelCount > 0 {
		avg = levelSum / float64(levelCount)
	}

	return model.ScoreResult{
		AxisScores:    axisScores,
		Overall:       int(math.Round(overall)),
		AvgLevel:      avg,
		AnsweredCount: levelCount,
	}
}

func percent(earned, possible float64) int {
	if possible <= 0 {
		return 0
	}
	return int(math.Round(clamp(100*earned/possible, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func knownAxis(a model.Axis) bool {
	for _, axis := range model.Axes {
		if axis == a {
			return true
		}
	}
	return false
}
