// Package bank holds the static question catalog the engine reads.
package bank

import (
	"errors"
	"fmt"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// NoToolSentinel is the tool option that means "no tool selected"
const NoToolSentinel = "None of the above"

var ErrEmptyBank = errors.New("question bank is empty")

// Bank is an ordered, read-only question catalog
type Bank struct {
	questions []*model.Question
	byID      map[string]*model.Question
}

// New builds a bank from questions in display order.
// An empty bank or a duplicate id is a programmer error.
func New(questions []model.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	b := &Bank{
		questions: make([]*model.Question, 0, len(questions)),
		byID:      make(map[string]*model.Question, len(questions)),
	}
	for i := range questions {
		q := questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("question %d has no id", i)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if q.Type == "" {
			q.Type = model.QuestionTypeSingle
		}
		for axis, points := range q.Axes {
			if len(points) != len(q.Options) {
				return nil, fmt.Errorf("question %q axis %s has %d points for %d options", q.ID, axis, len(points), len(q.Options))
			}
		}
		b.questions = append(b.questions, &q)
		b.byID[q.ID] = &q
	}
	return b, nil
}

// MustNew is New for static catalogs
func MustNew(questions []model.Question) *Bank {
	b, err := New(questions)
	if err != nil {
		panic(err)
	}
	return b
}

// All returns every question in display order
func (b *Bank) All() []*model.Question {
	return b.questions
}

// Get returns the question with the given id, or nil
func (b *Bank) Get(id string) *model.Question {
	return b.byID[id]
}

// Len returns the number of questions
func (b *Bank) Len() int {
	return len(b.questions)
}

// Filter returns the questions matching keep, in display order
func (b *Bank) Filter(keep func(q *model.Question) bool) []*model.Question {
	var out []*model.Question
	for _, q := range b.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// Calibration returns the always-shown calibration questions
func (b *Bank) Calibration() []*model.Question {
	return b.Filter(func(q *model.Question) bool { return q.Calibration })
}

// CrossChecks returns the pressure-scenario questions
func (b *Bank) CrossChecks() []*model.Question {
	return b.Filter(func(q *model.Question) bool { return q.CrossCheck && !q.Calibration })
}

// ToolQuestions returns the multi-select tool questions
func (b *Bank) ToolQuestions() []*model.Question {
	return b.Filter(func(q *model.Question) bool { return q.Tools && !q.Calibration })
}

// Body returns the track-specific and shared questions of a track
func (b *Bank) Body(t model.Track) []*model.Question {
	return b.Filter(func(q *model.Question) bool {
		if q.Calibration || q.CrossCheck || q.Tools {
			return false
		}
		if t == model.TrackAdvanced {
			return true
		}
		return q.InTrack(t)
	})
}

// Domain returns the domain-selection question, or nil
func (b *Bank) Domain() *model.Question {
	for _, q := range b.questions {
		if q.Domain {
			return q
		}
	}
	return nil
}

// Frequency returns the usage-frequency question feeding exposure, or nil
func (b *Bank) Frequency() *model.Question {
	for _, q := range b.questions {
		if q.Frequency {
			return q
		}
	}
	return nil
}
