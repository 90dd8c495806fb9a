package rest

import "net/http"

// NewRouter mounts all REST endpoints.
func NewRouter(emergencies *EmergencyHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /emergencies", emergencies.Raise)
	mux.HandleFunc("GET /emergencies/active", emergencies.ListActive)
	mux.HandleFunc("GET /emergencies/history", emergencies.History)
	mux.HandleFunc("GET /emergencies/{id}", emergencies.Get)
	mux.HandleFunc("POST /emergencies/{id}/resolve", emergencies.Resolve)
	mux.HandleFunc("POST /emergencies/{id}/cancel", emergencies.Cancel)

	return mux
}
