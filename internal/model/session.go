package model

import "time"

// FeedbackDims are the star-rating dimensions a respondent can rate
var FeedbackDims = []string{"accuracy", "actionability", "insight", "overall"}

// Feedback is attached to a session after results are shown
type Feedback struct {
	Ratings   map[string]*int `json:"ratings" bson:"ratings"` // 1-5, nil when unrated
	Comment   string          `json:"comment" bson:"comment"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
}

// Session is the record persisted once an assessment completes
type Session struct {
	ID             string       `json:"id" bson:"_id"`
	CreatedAt      time.Time    `json:"ts" bson:"ts"`
	Answers        AnswerMap    `json:"answers" bson:"answers"`
	Tags           []string     `json:"tags" bson:"tags"`
	Track          Track        `json:"track" bson:"track"`
	Scores         map[Axis]int `json:"scores" bson:"scores"`
	Overall        int          `json:"overall" bson:"overall"`
	Archetype      string       `json:"archetype" bson:"archetype"`
	Exposure       int          `json:"exposure" bson:"exposure"`
	Readiness      int          `json:"readiness" bson:"readiness"`
	ToolSelections []string     `json:"toolSelections" bson:"toolSelections"`
	Feedback       *Feedback    `json:"feedback" bson:"feedback"`
}

// ScatterPoint is the lightweight per-session projection used for plots
type ScatterPoint struct {
	Exposure  int `json:"exposure"`
	Readiness int `json:"readiness"`
}

// FeedbackPage is one page of sessions that carry feedback
type FeedbackPage struct {
	Rows    []*Session `json:"rows"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"perPage"`
}
