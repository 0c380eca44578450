package testhelpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"
)

// BuildRequest creates a request against the helper's server. body may be
// nil, raw []byte, or any value to be JSON encoded.
func (h *TestHelper) BuildRequest(method, path string, body any) *http.Request {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		payload = b
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(h.T, err)
	}

	req, err := http.NewRequestWithContext(h.Ctx, method, h.BaseURL+path, bytes.NewReader(payload))
	require.NoError(h.T, err)
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// DoRequest performs an HTTP request and asserts that no network-level error occurred.
func (h *TestHelper) DoRequest(req *http.Request) *http.Response {
	resp, err := h.Client.Do(req)
	require.NoError(h.T, err, "HTTP request failed")
	h.T.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// Do builds and performs a request in one call.
func (h *TestHelper) Do(method, path string, body any) *http.Response {
	return h.DoRequest(h.BuildRequest(method, path, body))
}

// ReadBody reads the response body and returns it as a string for logging or inspection.
func (h *TestHelper) ReadBody(resp *http.Response) string {
	if resp == nil || resp.Body == nil {
		return "<nil response or body>"
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	// Restore the body so it can be read again.
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	require.NoError(h.T, err, "Failed to read response body")
	return string(bodyBytes)
}

// DecodeJSON asserts the expected status and decodes the body into out.
func (h *TestHelper) DecodeJSON(resp *http.Response, wantStatus int, out any) {
	body := h.ReadBody(resp)
	require.Equal(h.T, wantStatus, resp.StatusCode, "unexpected status, body: %s", body)
	if out != nil {
		require.NoError(h.T, json.Unmarshal([]byte(body), out), "body: %s", body)
	}
}
