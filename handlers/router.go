package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/svdpmukherjee/memory-game-backend/metrics"
	"github.com/svdpmukherjee/memory-game-backend/middleware"
)

// NewRouter wires every route. Study endpoints are public (participants are
// anonymous Prolific ids); the admin surface past /api/admin/login requires
// a researcher token. CORS wraps the router rather than running as mux
// middleware: mux only applies Use middleware to matched routes, and no
// route matches OPTIONS, so preflights would otherwise 404 without the
// allow-origin header.
func NewRouter(h *Handler, m *metrics.Metrics) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging)
	r.Use(middleware.Instrument(m))

	r.Handle("/metrics", m.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public study routes
	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/sessions", h.InitializeSession).Methods("POST")
	api.HandleFunc("/sessions/complete", h.CompleteSession).Methods("POST")
	api.HandleFunc("/sessions/terminate", h.TerminateSession).Methods("POST")
	api.HandleFunc("/theory", h.GetNextTheory).Methods("GET")
	api.HandleFunc("/game-config", h.GetGameConfig).Methods("GET")
	api.HandleFunc("/actions", h.LogAction).Methods("POST")
	api.HandleFunc("/game-results", h.SaveGameResult).Methods("POST")
	api.HandleFunc("/statistics", h.GetStatistics).Methods("GET")

	// Login must be reachable without a token, so register it before the
	// guarded subrouter claims the /admin prefix.
	api.HandleFunc("/admin/login", h.AdminLogin).Methods("POST")

	// Secured admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTValidation(h.cfg.JWTSecret))
	admin.HandleFunc("/reset-counts", h.ResetCounts).Methods("POST")
	admin.HandleFunc("/sessions", h.ListSessions).Methods("GET")

	return middleware.CORS(h.cfg.AllowedOrigin)(r)
}
