package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/service"
	"github.com/forest0xia/ai-career-navigator/internal/transport/rest/handler"
	"github.com/forest0xia/ai-career-navigator/internal/transport/rest/middleware"
	"github.com/forest0xia/ai-career-navigator/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	StatsService      *service.StatsService
	WSHub             *ws.Hub
	Logger            *logger.Logger
	CORSOrigins       []string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	sessionHandler := handler.NewSessionHandler(c.AssessmentService)
	statsHandler := handler.NewStatsHandler(c.StatsService, c.AssessmentService)
	adminHandler := handler.NewAdminHandler(c.AssessmentService, c.StatsService)
	wsHandler := ws.NewHandler(c.WSHub, c.StatsService, c.CORSOrigins)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigins))
	if c.Logger != nil {
		r.Use(middleware.RequestLogger(c.Logger))
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", assessmentHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/plan", assessmentHandler.Plan).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/complete", assessmentHandler.Complete).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/feedback", sessionHandler.Feedback).Methods("POST", "OPTIONS")
	v1.HandleFunc("/stats/community", statsHandler.Community).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stats/tools", statsHandler.Tools).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stats/questions/{questionId}/distribution", statsHandler.Distribution).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stats/scatter", statsHandler.Scatter).Methods("GET", "OPTIONS")

	// WebSocket routes
	v1.HandleFunc("/ws/stats", wsHandler.StatsWS).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/export", adminHandler.Export).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/stats/rebuild", adminHandler.RebuildStats).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/feedback", adminHandler.Feedback).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(origins []string) mux.MiddlewareFunc {
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin := r.Header.Get("Origin"); origin != "" && containsOrigin(origins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func containsOrigin(origins []string, origin string) bool {
	for _, o := range origins {
		if strings.EqualFold(strings.TrimSpace(o), origin) {
			return true
		}
	}
	return false
}
