package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/config"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/routes"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

func TestLogin_Success(t *testing.T) {
	h, _ := newHelper(t)

	resp := h.Do(http.MethodPost, routes.AuthLogin, dtos.LoginRequest{
		Email:    "admin@propmanpulse.com",
		Password: "admin123",
	})
	body := h.ReadBody(resp)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.NotContains(t, body, "password")

	var out dtos.LoginResponse
	h.DecodeJSON(resp, http.StatusOK, &out)
	assert.Equal(t, "admin-1", out.User.ID)
	assert.Equal(t, models.UserRoleAdmin, out.User.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, _ := newHelper(t)

	for _, body := range []dtos.LoginRequest{
		{Email: "admin@propmanpulse.com", Password: "nope"},
		{Email: "ghost@propmanpulse.com", Password: "admin123"},
	} {
		var out utils.ErrorResponse
		h.DecodeJSON(h.Do(http.MethodPost, routes.AuthLogin, body), http.StatusUnauthorized, &out)
		assert.Equal(t, utils.ErrCodeInvalidCredentials, out.Code)
		assert.Equal(t, "Invalid credentials", out.Message)
	}
}

func TestLogin_BadRequest(t *testing.T) {
	h, _ := newHelper(t)

	var out utils.ErrorResponse
	h.DecodeJSON(h.Do(http.MethodPost, routes.AuthLogin, map[string]string{"email": "admin@propmanpulse.com"}),
		http.StatusBadRequest, &out)
	assert.Equal(t, utils.ErrCodeValidation, out.Code)

	h.DecodeJSON(h.Do(http.MethodPost, routes.AuthLogin, "{not json"), http.StatusBadRequest, &out)
	assert.Equal(t, utils.ErrCodeInvalidPayload, out.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	h, _ := newHelper(t, func(c *config.Config) {
		c.LoginRatePerMinute = 1
		c.LoginRateBurst = 2
	})

	attempt := func(ip string) *http.Response {
		req := h.BuildRequest(http.MethodPost, routes.AuthLogin, dtos.LoginRequest{
			Email: "admin@propmanpulse.com", Password: "wrong",
		})
		req.Header.Set("X-Forwarded-For", ip)
		return h.DoRequest(req)
	}

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, attempt("203.0.113.7").StatusCode, fmt.Sprintf("attempt %d", i))
	}
	resp := attempt("203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	assert.True(t, strings.Contains(h.ReadBody(resp), utils.ErrCodeRateLimitExceeded))

	// A fresh X-Forwarded-For per attempt does not buy a new budget.
	for i := 0; i < 3; i++ {
		resp := attempt(fmt.Sprintf("198.51.100.%d", i+1))
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode, fmt.Sprintf("spoofed attempt %d", i))
		h.ReadBody(resp)
	}
}

func TestLogin_RateLimitedBehindTrustedProxy(t *testing.T) {
	h, _ := newHelper(t, func(c *config.Config) {
		c.LoginRatePerMinute = 1
		c.LoginRateBurst = 1
		c.TrustProxyHeaders = true
	})

	attempt := func(ip string) int {
		req := h.BuildRequest(http.MethodPost, routes.AuthLogin, dtos.LoginRequest{
			Email: "admin@propmanpulse.com", Password: "wrong",
		})
		req.Header.Set("X-Forwarded-For", ip)
		resp := h.DoRequest(req)
		h.ReadBody(resp)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusUnauthorized, attempt("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, attempt("203.0.113.7"))
	assert.Equal(t, http.StatusUnauthorized, attempt("198.51.100.1"))
}
