package engine

import "github.com/forest0xia/ai-career-navigator/internal/model"

// Sanitize returns the entries of answers that fit the bank: known
// question ids, answers of the question's kind and in-range indices.
// Out-of-range indices are dropped from a multi-select set; a set left
// empty that way is dropped entirely. The input is never modified.
func (e *Engine) Sanitize(answers model.AnswerMap) model.AnswerMap {
	out := make(model.AnswerMap, len(answers))
	for id, ans := range answers {
		q := e.bank.Get(id)
		if q == nil || q.IsMulti() != ans.IsMulti() {
			continue
		}
		if !ans.IsMulti() {
			if q.OptionAt(ans.Index) != nil {
				out[id] = ans
			}
			continue
		}
		kept := make([]int, 0, len(ans.Indices))
		for _, idx := range ans.Indices {
			if q.OptionAt(idx) != nil {
				kept = append(kept, idx)
			}
		}
		if len(kept) == 0 && len(ans.Indices) > 0 {
			continue
		}
		out[id] = model.Multi(kept...)
	}
	return out
}
