package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/forest0xia/ai-career-navigator/internal/model"
	"github.com/forest0xia/ai-career-navigator/internal/service"
)

// SessionHandler handles share links and feedback
type SessionHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(assessmentSvc *service.AssessmentService) *SessionHandler {
	return &SessionHandler{assessmentSvc: assessmentSvc}
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.assessmentSvc.Get(r.Context(), id)
	if errors.Is(err, service.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Feedback handles POST /v1/sessions/{id}/feedback
func (h *SessionHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.FeedbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fb, err := h.assessmentSvc.AttachFeedback(r.Context(), id, &req)
	if errors.Is(err, service.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, fb)
}
