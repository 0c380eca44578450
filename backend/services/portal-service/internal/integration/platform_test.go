package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/routes"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

func TestHealth(t *testing.T) {
	h, _ := newHelper(t)

	var out dtos.HealthCheckResponse
	h.DecodeJSON(h.Do(http.MethodGet, routes.Health, nil), http.StatusOK, &out)
	assert.Equal(t, "OK", out.Status)
	assert.Equal(t, 2, out.Collections["properties"])
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newHelper(t)

	var out utils.ErrorResponse
	h.DecodeJSON(h.Do(http.MethodGet, "/api/nothing-here", nil), http.StatusNotFound, &out)
	assert.Equal(t, utils.ErrCodeNotFound, out.Code)
}

func TestMetrics_ExposeRouteTemplates(t *testing.T) {
	h, _ := newHelper(t)

	h.DecodeJSON(h.Do(http.MethodGet, "/api/properties/property-1", nil), http.StatusOK, nil)
	h.DecodeJSON(h.Do(http.MethodGet, "/api/properties/property-2", nil), http.StatusOK, nil)

	resp := h.Do(http.MethodGet, routes.Metrics, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := h.ReadBody(resp)
	assert.Contains(t, body,
		`propmanpulse_http_requests_total{method="GET",path="/api/properties/{id}",status="200"} 2`)
}

func TestRequestID(t *testing.T) {
	h, _ := newHelper(t)

	req := h.BuildRequest(http.MethodGet, routes.Health, nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp := h.DoRequest(req)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}
