package handler

import (
	"errors"
	"net/http"

	"github.com/forest0xia/ai-career-navigator/internal/service"
)

// AssessmentHandler serves the question bank and runs assessments
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Questions handles GET /v1/questions
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.assessmentSvc.Questions(),
	})
}

// Plan handles POST /v1/assessments/plan
func (h *AssessmentHandler) Plan(w http.ResponseWriter, r *http.Request) {
	answers, ok := decodeAnswers(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.assessmentSvc.Plan(answers))
}

// Complete handles POST /v1/assessments/complete
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	answers, ok := decodeAnswers(w, r)
	if !ok {
		return
	}

	resp, err := h.assessmentSvc.Complete(r.Context(), answers)
	if errors.Is(err, service.ErrAssessmentIncomplete) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
