package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bengobox/timestamp-service/internal/clock"
)

func TestHealth(t *testing.T) {
	at := clock.Fixed(time.Date(2025, 3, 4, 5, 6, 7, 8000, time.UTC))

	rr := httptest.NewRecorder()
	Health(at)(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","time":"2025-03-04T05:06:07.000008+00:00"}`, rr.Body.String())
}
