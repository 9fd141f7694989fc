package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires every endpoint under /api/v1 behind CORS.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	// System
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")
	api.HandleFunc("/catalog/{kind}", h.GetCatalog).Methods("GET")

	// Drills
	api.HandleFunc("/drills", h.GetDrills).Methods("GET")
	api.HandleFunc("/drills/{mode}/start", h.StartQuiz).Methods("POST")
	api.HandleFunc("/drills/{mode}/current", h.GetCurrent).Methods("GET")
	api.HandleFunc("/drills/{mode}/answer", h.SubmitAnswer).Methods("POST")
	api.HandleFunc("/drills/{mode}/hint", h.GetHint).Methods("POST")
	api.HandleFunc("/drills/{mode}/reset", h.ResetQuiz).Methods("POST")
	api.HandleFunc("/drills/{mode}/leaderboard", h.GetLeaderboard).Methods("GET")
	api.HandleFunc("/drills/{mode}/stats", h.GetStats).Methods("GET")

	// Spaced repetition
	api.HandleFunc("/reviews/due", h.GetDueReviews).Methods("GET")

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
