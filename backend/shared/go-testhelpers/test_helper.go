package testhelpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHelper runs a handler behind a real listener so tests exercise the full
// middleware chain over HTTP.
type TestHelper struct {
	T       *testing.T
	Ctx     context.Context
	BaseURL string
	Server  *httptest.Server
	Client  *http.Client
}

// NewTestHelper starts handler on a loopback server that is closed when the
// test finishes.
func NewTestHelper(t *testing.T, handler http.Handler) *TestHelper {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &TestHelper{
		T:       t,
		Ctx:     context.Background(),
		BaseURL: srv.URL,
		Server:  srv,
		Client:  srv.Client(),
	}
}
