package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewHealthRouter serves the HTTP health surface kept alongside the
// gRPC port for load balancers and the casino dashboard.
func NewHealthRouter(serviceName string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		meta := Metadata()
		payload := map[string]any{
			"status":  "ok",
			"service": serviceName,
			"serviceMetadata": map[string]string{
				"version":    meta["version"],
				"gameType":   meta["gameType"],
				"complexity": meta["complexity"],
				"rtp":        meta["rtp"],
				"maxPayout":  meta["maxPayout"],
				"owner":      meta["owner"],
				"technology": meta["technology"],
				"timestamp":  time.Now().UTC().Format(time.RFC3339),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
	})

	return r
}
