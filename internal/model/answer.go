package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// AnswerKind tags an Answer as single- or multi-select
type AnswerKind string

const (
	AnswerSingle AnswerKind = "single"
	AnswerMulti  AnswerKind = "multi"
)

// Answer is the respondent's choice for one question.
// JSON form is a bare index for single-select and an array for multi-select.
type Answer struct {
	Kind    AnswerKind `bson:"kind"`
	Index   int        `bson:"index"`
	Indices []int      `bson:"indices,omitempty"`
}

// Single builds a single-select answer
func Single(idx int) Answer {
	return Answer{Kind: AnswerSingle, Index: idx}
}

// Multi builds a multi-select answer; indices are deduplicated and sorted
func Multi(indices ...int) Answer {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return Answer{Kind: AnswerMulti, Indices: out}
}

// IsMulti reports whether the answer is a multi-select set
func (a Answer) IsMulti() bool {
	return a.Kind == AnswerMulti
}

// Selected returns every selected index
func (a Answer) Selected() []int {
	if a.IsMulti() {
		return a.Indices
	}
	return []int{a.Index}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsMulti() {
		if a.Indices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Indices)
	}
	return json.Marshal(a.Index)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var indices []int
		if err := json.Unmarshal(data, &indices); err != nil {
			return fmt.Errorf("multi answer: %w", err)
		}
		*a = Multi(indices...)
		return nil
	}
	var idx int
	if err := json.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("single answer: %w", err)
	}
	*a = Single(idx)
	return nil
}

// AnswerMap maps question id to the respondent's answer.
// Presence of a key is the "answered" signal.
type AnswerMap map[string]Answer

// Has reports whether the question was answered
func (m AnswerMap) Has(questionID string) bool {
	_, ok := m[questionID]
	return ok
}

// Clone returns a shallow copy safe to mutate
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		if v.IsMulti() {
			v.Indices = append([]int(nil), v.Indices...)
		}
		out[k] = v
	}
	return out
}
