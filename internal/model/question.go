package model

// Axis is one named dimension of the scoring model
type Axis string

const (
	AxisAdoption    Axis = "adoption"
	AxisMindset     Axis = "mindset"
	AxisCraft       Axis = "craft"
	AxisTechDepth   Axis = "tech_depth"
	AxisReliability Axis = "reliability"
	AxisAgents      Axis = "agents"
)

// Axes lists every axis in display order
var Axes = []Axis{AxisAdoption, AxisMindset, AxisCraft, AxisTechDepth, AxisReliability, AxisAgents}

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeSingle QuestionType = "single" // One option index
	QuestionTypeMulti  QuestionType = "multi"  // Set of option indices
)

// Track is the branch chosen after calibration
type Track string

const (
	TrackNone     Track = ""         // Calibration not finished yet
	TrackQuick    Track = "quick"    // Beginner scan
	TrackCore     Track = "core"     // Default scan
	TrackAdvanced Track = "advanced" // Builder scan, full bank
)

// Sentiment holds confidence/anxiety/motivation deltas
type Sentiment struct {
	Confidence int `json:"confidence" yaml:"confidence"`
	Anxiety    int `json:"anxiety" yaml:"anxiety"`
	Motivation int `json:"motivation" yaml:"motivation"`
}

// Option is one answer choice of a question
type Option struct {
	Text     string     `json:"text" yaml:"text"`
	Level    float64    `json:"level,omitempty" yaml:"level,omitempty"` // 1-5 sophistication, 0 means no signal
	Sent     *Sentiment `json:"sent,omitempty" yaml:"sent,omitempty"`
	Tags     []string   `json:"tags,omitempty" yaml:"tags,omitempty"`         // Domain question only
	Exposure int        `json:"exposure,omitempty" yaml:"exposure,omitempty"` // Domain question only
	Category string     `json:"category,omitempty" yaml:"category,omitempty"` // Tool question only
}

// Question is an immutable catalog entry
type Question struct {
	ID          string             `json:"id" yaml:"id"`
	Section     string             `json:"section" yaml:"section"`
	Type        QuestionType       `json:"type" yaml:"type"`
	Title       string             `json:"title" yaml:"title"`
	Options     []Option           `json:"options" yaml:"options"`
	Tracks      []Track            `json:"tracks,omitempty" yaml:"tracks,omitempty"` // Empty means shared by every track
	Calibration bool               `json:"calibration,omitempty" yaml:"calibration,omitempty"`
	CrossCheck  bool               `json:"crossCheck,omitempty" yaml:"crossCheck,omitempty"`
	Sentiment   bool               `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Domain      bool               `json:"domain,omitempty" yaml:"domain,omitempty"`
	Frequency   bool               `json:"frequency,omitempty" yaml:"frequency,omitempty"` // Feeds exposure
	Tools       bool               `json:"tools,omitempty" yaml:"tools,omitempty"`
	Axes        map[Axis][]float64 `json:"axes,omitempty" yaml:"axes,omitempty"` // Points per option index
}

// IsMulti reports whether the question takes a set of indices
func (q *Question) IsMulti() bool {
	return q.Type == QuestionTypeMulti
}

// Shared reports whether the question belongs to every track body
func (q *Question) Shared() bool {
	return len(q.Tracks) == 0
}

// InTrack reports whether the question belongs to the given track body
func (q *Question) InTrack(t Track) bool {
	if q.Shared() {
		return true
	}
	for _, qt := range q.Tracks {
		if qt == t {
			return true
		}
	}
	return false
}

// OptionAt returns the option at idx, or nil for a stale index
func (q *Question) OptionAt(idx int) *Option {
	if idx < 0 || idx >= len(q.Options) {
		return nil
	}
	return &q.Options[idx]
}
