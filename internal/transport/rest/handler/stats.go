package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/forest0xia/ai-career-navigator/internal/service"
)

// StatsHandler serves the community comparison reads
type StatsHandler struct {
	statsSvc      *service.StatsService
	assessmentSvc *service.AssessmentService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsSvc *service.StatsService, assessmentSvc *service.AssessmentService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc, assessmentSvc: assessmentSvc}
}

// Community handles GET /v1/stats/community
func (h *StatsHandler) Community(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statsSvc.Community(r.Context()))
}

// Tools handles GET /v1/stats/tools
func (h *StatsHandler) Tools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statsSvc.ToolRankings(r.Context()))
}

// Distribution handles GET /v1/stats/questions/{questionId}/distribution
func (h *StatsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	shares, err := h.assessmentSvc.Distribution(r.Context(), questionID)
	if errors.Is(err, service.ErrQuestionNotFound) {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questionId":   questionID,
		"distribution": shares,
	})
}

// Scatter handles GET /v1/stats/scatter
func (h *StatsHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": h.assessmentSvc.Scatter(r.Context()),
	})
}
