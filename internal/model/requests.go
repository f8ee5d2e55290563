package model

// AnswersRequest carries the caller-owned answer map
type AnswersRequest struct {
	Answers AnswerMap `json:"answers"`
}

// CompleteResponse is returned once an assessment is scored and recorded
type CompleteResponse struct {
	SessionID string          `json:"sessionId"`
	Result    *Result         `json:"result"`
	Community *CommunityStats `json:"community"`
	Tools     *ToolRankings   `json:"tools"`
}

// FeedbackRequest is the request body for attaching feedback
type FeedbackRequest struct {
	Ratings map[string]*int `json:"ratings"`
	Comment string          `json:"comment"`
}
