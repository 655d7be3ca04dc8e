package handlers

import (
	"net/http"

	"github.com/bengobox/timestamp-service/internal/clock"
	"github.com/bengobox/timestamp-service/internal/httpapi"
)

// Health responds with basic service status. It is mounted on the admin
// listener next to /metrics, never on the public router.
func Health(c clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpapi.JSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   FormatTimestamp(c.Now()),
		})
	}
}
