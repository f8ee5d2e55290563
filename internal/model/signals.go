package model

// ScoreResult is the Scoring Engine output
type ScoreResult struct {
	AxisScores    map[Axis]int `json:"axisScores"`
	Overall       int          `json:"overall"`
	AvgLevel      float64      `json:"avgLevel"`
	AnsweredCount int          `json:"answeredCount"`
}

// CrossCheck records the deadline-pressure consistency check
type CrossCheck struct {
	Applied       bool    `json:"applied"`       // Pressure question was answered
	Penalized     bool    `json:"penalized"`     // Gap triggered the discount
	PressureLevel float64 `json:"pressureLevel"` // Level of the chosen pressure option
	Gap           float64 `json:"gap"`           // avgLevel - pressureLevel
	RawOverall    int     `json:"rawOverall"`    // Overall before the discount
}

// Classification is the Archetype Classifier output
type Classification struct {
	Archetype string `json:"archetype"`
	Score     int    `json:"score"` // Overall after guardrails
}

// SentimentProfile summarizes the summed sentiment deltas
type SentimentProfile struct {
	Totals  Sentiment `json:"totals"`
	Profile string    `json:"profile"`
}

// Signals are the strongest axes and the bottleneck axis
type Signals struct {
	Strengths  []Axis `json:"strengths"`
	Bottleneck Axis   `json:"bottleneck"`
}

// Result is everything the renderer needs for one completed assessment
type Result struct {
	Track          Track            `json:"track"`
	Scores         ScoreResult      `json:"scores"`
	CrossCheck     CrossCheck       `json:"crossCheck"`
	Archetype      Classification   `json:"archetype"`
	Exposure       int              `json:"exposure"`
	ExposureBucket string           `json:"exposureBucket"`
	Readiness      int              `json:"readiness"`
	ReadinessLevel string           `json:"readinessBucket"`
	ToolSelections []string         `json:"toolSelections"`
	Tags           []string         `json:"tags"`
	Sentiment      SentimentProfile `json:"sentiment"`
	Signals        Signals          `json:"signals"`
	Confidence     string           `json:"confidence"` // low, medium, high
}

// Progress counts answered questions of the current phase
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// Plan is the Branching Selector output for the current answers
type Plan struct {
	Track     Track       `json:"track"`
	Questions []*Question `json:"questions"` // Full ordered set for this phase
	Remaining []*Question `json:"remaining"` // Unanswered subset, same order
	Next      *Question   `json:"next"`
	Done      bool        `json:"done"`
	Progress  Progress    `json:"progress"`
}
