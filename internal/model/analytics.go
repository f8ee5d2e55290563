package model

// ExposureBuckets counts sessions per exposure zone
type ExposureBuckets struct {
	Low      int `json:"low" bson:"low"`
	Moderate int `json:"moderate" bson:"moderate"`
	High     int `json:"high" bson:"high"`
}

// ReadinessBuckets counts sessions per readiness zone
type ReadinessBuckets struct {
	Early    int `json:"early" bson:"early"`
	Building int `json:"building" bson:"building"`
	Strong   int `json:"strong" bson:"strong"`
}

// AggregateStats is the running-total record over every recorded session.
// Every field is a plain sum or count so that any recording order
// produces the same value.
type AggregateStats struct {
	N                int                    `json:"n" bson:"n"`
	SumScores        map[Axis]int           `json:"sumScores" bson:"sumScores"`
	SumExposure      int                    `json:"sumExposure" bson:"sumExposure"`
	SumReadiness     int                    `json:"sumReadiness" bson:"sumReadiness"`
	ArchetypeCounts  map[string]int         `json:"archetypeCounts" bson:"archetypeCounts"`
	ExposureBuckets  ExposureBuckets        `json:"exposureBuckets" bson:"exposureBuckets"`
	ReadinessBuckets ReadinessBuckets       `json:"readinessBuckets" bson:"readinessBuckets"`
	ToolCounts       map[string]int         `json:"toolCounts" bson:"toolCounts"`
	ToolUsers        int                    `json:"toolUsers" bson:"toolUsers"`
	TagCounts        map[string]int         `json:"tagCounts" bson:"tagCounts"`
	AnswerCounts     map[string]map[int]int `json:"answerCounts" bson:"answerCounts"` // question -> option index -> count
}

// CommunityStats is the renderer-facing summary of AggregateStats
type CommunityStats struct {
	TotalSessions    int               `json:"totalSessions"`
	AvgScores        map[Axis]float64  `json:"avgScores,omitempty"`
	ArchetypeCounts  map[string]int    `json:"archetypeCounts,omitempty"`
	ExposureBuckets  *ExposureBuckets  `json:"exposureBuckets,omitempty"`
	ReadinessBuckets *ReadinessBuckets `json:"readinessBuckets,omitempty"`
	TagCounts        map[string]int    `json:"tagCounts,omitempty"`
	AvgExposure      int               `json:"avgExposure,omitempty"`
	AvgReadiness     int               `json:"avgReadiness,omitempty"`
}

// ToolRank is one entry of the tool popularity ranking
type ToolRank struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Pct   int    `json:"pct"` // Share of tool users who picked it
}

// ToolRankings is the ranked tool popularity list
type ToolRankings struct {
	Ranked     []ToolRank `json:"ranked"`
	TotalUsers int        `json:"totalUsers"`
}

// OptionShare is one option's share of all sessions
type OptionShare struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Pct   int    `json:"pct"`
}
