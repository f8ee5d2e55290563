package handler

import (
	"net/http"
	"strconv"

	"github.com/forest0xia/ai-career-navigator/internal/service"
	"github.com/forest0xia/ai-career-navigator/internal/transport/rest/middleware"
)

// AdminHandler handles administrator endpoints
type AdminHandler struct {
	assessmentSvc *service.AssessmentService
	statsSvc      *service.StatsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(assessmentSvc *service.AssessmentService, statsSvc *service.StatsService) *AdminHandler {
	return &AdminHandler{assessmentSvc: assessmentSvc, statsSvc: statsSvc}
}

// Export handles GET /v1/admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessions, err := h.assessmentSvc.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="sessions.json"`)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"stats":    h.statsSvc.Snapshot(r.Context()),
	})
}

// RebuildStats handles POST /v1/admin/stats/rebuild
func (h *AdminHandler) RebuildStats(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rebuilt, err := h.statsSvc.Rebuild(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rebuilt)
}

// Feedback handles GET /v1/admin/feedback?page=&perPage=
func (h *AdminHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	result, err := h.assessmentSvc.ListFeedback(r.Context(), page, perPage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
