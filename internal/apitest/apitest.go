// Package apitest runs namespace requests against httptest servers.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/dropbox-go"
)

// NewClient returns a client whose calls, in both modes, reach handler.
func NewClient(t testing.TB, handler http.HandlerFunc, opts ...dropbox.Option) *dropbox.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	client, err := dropbox.NewClient(append([]dropbox.Option{dropbox.WithTestHosts(host, host)}, opts...)...)
	require.NoError(t, err)
	return client
}

// WriteJSON encodes v as the JSON response body.
// Panics on error - safe in tests since errors indicate test bugs.
func WriteJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("failed to encode response: " + err.Error())
	}
}

// WriteError writes a route error the way the service does.
func WriteError(w http.ResponseWriter, status int, summary, tag string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error_summary": summary,
		"error":         map[string]string{".tag": tag},
	})
}

// ReadJSON decodes the JSON request body into v.
// Panics on error - safe in tests since errors indicate test bugs.
func ReadJSON(r *http.Request, v any) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		panic("failed to decode request: " + err.Error())
	}
}

// ReadBody returns the raw request body.
func ReadBody(r *http.Request) string {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		panic("failed to read request: " + err.Error())
	}
	return string(data)
}
