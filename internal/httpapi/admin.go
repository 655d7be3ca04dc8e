package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// AdminDeps defines the operational endpoints served on the metrics listener.
type AdminDeps struct {
	HealthHandler  http.HandlerFunc
	MetricsHandler http.Handler
}

// NewAdminRouter wires /healthz and /metrics.
func NewAdminRouter(deps AdminDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	if deps.HealthHandler != nil {
		r.Get("/healthz", deps.HealthHandler)
	}
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
	return r
}
