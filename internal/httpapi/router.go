package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	TimestampHandler   http.HandlerFunc
	RequestLogger      func(http.Handler) http.Handler
	Instrument         func(http.Handler) http.Handler
	CORSAllowedOrigins []string
}

// NewRouter wires HTTP routes. Only GET / is served; chi answers everything
// else with its default 404 and 405 responses.
//
// chimiddleware.RealIP is left out on purpose: it rewrites RemoteAddr from
// X-Forwarded-For and X-Real-IP, and the timestamp payload must report the
// TCP peer.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if deps.Instrument != nil {
		r.Use(deps.Instrument)
	}
	if deps.RequestLogger != nil {
		r.Use(deps.RequestLogger)
	}
	r.Use(chimiddleware.Recoverer)
	if len(deps.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet},
			AllowedHeaders: []string{"Accept", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/", deps.TimestampHandler)

	return r
}
