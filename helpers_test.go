package dropbox_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/dropbox-go"
)

// mustEncode encodes v as JSON and writes it to w.
// Panics on error - safe in tests since errors indicate test bugs.
func mustEncode(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("failed to encode response: " + err.Error())
	}
}

// mustDecode decodes JSON from r.Body into v.
// Panics on error - safe in tests since errors indicate test bugs.
func mustDecode(r *http.Request, v interface{}) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		panic("failed to decode request: " + err.Error())
	}
}

// hostOf returns the host:port of a test server.
func hostOf(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

// countingHandler counts the requests it serves.
type countingHandler struct {
	hits    atomic.Int32
	handler http.Handler
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.hits.Add(1)
	h.handler.ServeHTTP(w, r)
}

// testServers holds the two mock servers a test client is wired to.
type testServers struct {
	sync  *countingHandler
	async *countingHandler
}

// newTestClient starts a sync and an async mock server, both serving handler,
// and returns a client rewritten onto them.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...dropbox.Option) (*dropbox.Client, *testServers) {
	t.Helper()

	servers := &testServers{
		sync:  &countingHandler{handler: handler},
		async: &countingHandler{handler: handler},
	}

	syncServer := httptest.NewServer(servers.sync)
	t.Cleanup(syncServer.Close)
	asyncServer := httptest.NewServer(servers.async)
	t.Cleanup(asyncServer.Close)

	opts = append([]dropbox.Option{
		dropbox.WithTestHosts(hostOf(syncServer), hostOf(asyncServer)),
	}, opts...)

	client, err := dropbox.NewClient(opts...)
	require.NoError(t, err)
	return client, servers
}

// deadHost returns the host:port of a server that has been shut down.
func deadHost(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	host := hostOf(server)
	server.Close()
	return host
}
