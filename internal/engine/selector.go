package engine

import "github.com/forest0xia/ai-career-navigator/internal/model"

// CalibrationComplete reports whether every calibration question is answered
func (e *Engine) CalibrationComplete(answers model.AnswerMap) bool {
	for _, q := range e.bank.Calibration() {
		if !answers.Has(q.ID) {
			return false
		}
	}
	return true
}

// DecideTrack computes the branch from calibration answers alone.
// Only options that carry a level contribute to the branch key.
func (e *Engine) DecideTrack(answers model.AnswerMap) model.Track {
	rules := e.cfg.Track

	var sum float64
	var count, hits int
	for _, q := range e.bank.Calibration() {
		opt := chosen(q, answers)
		if opt == nil || opt.Level <= 0 {
			continue
		}
		sum += opt.Level
		count++
		if opt.Level >= rules.HighSignalLevel {
			hits++
		}
	}

	var avg float64
	if count > 0 {
		avg = sum / float64(count)
	}

	switch {
	case hits >= rules.HighSignalHits:
		return model.TrackAdvanced
	case avg >= rules.AdvancedAvg:
		return model.TrackAdvanced
	case avg <= rules.QuickAvg:
		return model.TrackQuick
	default:
		return model.TrackCore
	}
}

// QuestionSet assembles the ordered question list for a track:
// calibration, track body, cross-check, then tools. First occurrence wins.
func (e *Engine) QuestionSet(track model.Track) []*model.Question {
	groups := [][]*model.Question{
		e.bank.Calibration(),
		e.bank.Body(track),
		e.bank.CrossChecks(),
		e.bank.ToolQuestions(),
	}

	seen := make(map[string]bool, e.bank.Len())
	var out []*model.Question
	for _, group := range groups {
		for _, q := range group {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			out = append(out, q)
		}
	}
	return out
}

// Plan returns the question set the respondent sees for the current answers
// and the first unanswered question in it.
func (e *Engine) Plan(answers model.AnswerMap) *model.Plan {
	track := model.TrackNone
	var questions []*model.Question
	if e.CalibrationComplete(answers) {
		track = e.DecideTrack(answers)
		questions = e.QuestionSet(track)
	} else {
		questions = e.bank.Calibration()
	}

	plan := &model.Plan{
		Track:     track,
		Questions: questions,
		Remaining: []*model.Question{},
		Progress:  model.Progress{Total: len(questions)},
	}
	for _, q := range questions {
		if answers.Has(q.ID) {
			plan.Progress.Answered++
			continue
		}
		plan.Remaining = append(plan.Remaining, q)
	}
	if len(plan.Remaining) > 0 {
		plan.Next = plan.Remaining[0]
	}
	plan.Done = track != model.TrackNone && len(plan.Remaining) == 0
	return plan
}
