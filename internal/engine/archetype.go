package engine

import "github.com/forest0xia/ai-career-navigator/internal/model"

// Classify applies the guardrails to overall and looks the result up on
// the archetype ladder. It always returns a label.
func (e *Engine) Classify(scores model.ScoreResult) model.Classification {
	score := e.guardrail(scores.Overall, scores.AxisScores)

	ladder := e.cfg.Ladder
	label := ladder[0].Name
	for i := len(ladder) - 1; i >= 0; i-- {
		if score >= ladder[i].Min {
			label = ladder[i].Name
			break
		}
	}
	return model.Classification{Archetype: label, Score: score}
}

// guardrail runs in order: foundation cap, reliability floor, agents floor
func (e *Engine) guardrail(overall int, axis map[model.Axis]int) int {
	g := e.cfg.Guardrails

	if axis[model.AxisAdoption] <= g.CapAdoptionMax && axis[model.AxisCraft] <= g.CapCraftMax {
		overall = min(overall, g.CapScore)
	}
	if axis[model.AxisReliability] >= g.ReliabilityMin {
		overall = max(overall, g.ReliabilityFloor)
	}
	if axis[model.AxisAgents] >= g.AgentsMin && axis[model.AxisReliability] >= g.AgentsRelMin {
		overall = max(overall, g.AgentsFloor)
	}
	return overall
}
