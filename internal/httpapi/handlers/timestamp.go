package handlers

import (
	"net/http"
	"time"

	"github.com/bengobox/timestamp-service/internal/clock"
	"github.com/bengobox/timestamp-service/internal/httpapi"
)

// TimestampLayout renders UTC instants as ISO-8601 with microsecond precision
// and a numeric offset, e.g. 2024-01-01T00:00:00.000000+00:00.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// TimestampResponse is the body of GET /.
type TimestampResponse struct {
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
}

// TimestampHandler reports the current UTC time and the caller's peer address.
type TimestampHandler struct {
	clock clock.Clock
}

// NewTimestampHandler constructs a handler.
func NewTimestampHandler(c clock.Clock) *TimestampHandler {
	return &TimestampHandler{clock: c}
}

// Timestamp handles GET /.
func (h *TimestampHandler) Timestamp(w http.ResponseWriter, r *http.Request) {
	httpapi.JSON(w, http.StatusOK, TimestampResponse{
		Timestamp: FormatTimestamp(h.clock.Now()),
		IP:        httpapi.PeerIP(r),
	})
}

// FormatTimestamp converts t to UTC and renders it with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
