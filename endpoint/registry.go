package endpoint

import (
	"errors"
	"strings"
)

// Mode selects which URL a resolution yields.
type Mode int

const (
	// Production targets the real API hosts.
	Production Mode = iota
	// TestSync targets the loopback server for blocking calls.
	TestSync
	// TestAsync targets the loopback server for asynchronous calls.
	TestAsync
)

// String returns a lower-case name for the mode.
func (m Mode) String() string {
	switch m {
	case Production:
		return "production"
	case TestSync:
		return "test-sync"
	case TestAsync:
		return "test-async"
	}
	return "unknown"
}

// TestHosts holds the host:port pairs that replace the production hosts
// under a test configuration.
type TestHosts struct {
	// Sync receives blocking calls, e.g. "127.0.0.1:8081".
	Sync string

	// Async receives asynchronous calls, e.g. "127.0.0.1:8082".
	Async string
}

// ErrPartialTestHosts is returned by [NewRegistry] when only one of the two
// test hosts is set.
var ErrPartialTestHosts = errors.New("endpoint: test hosts require both sync and async addresses")

// Registry resolves IDs to URLs.
//
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	test *TestHosts
}

// NewRegistry creates a Registry. A nil hosts value yields a production
// registry; otherwise both addresses must be set.
func NewRegistry(hosts *TestHosts) (*Registry, error) {
	if hosts == nil {
		return &Registry{}, nil
	}
	if strings.TrimSpace(hosts.Sync) == "" || strings.TrimSpace(hosts.Async) == "" {
		return nil, ErrPartialTestHosts
	}
	h := *hosts
	return &Registry{test: &h}, nil
}

// IsTest reports whether the registry rewrites URLs onto test hosts.
func (r *Registry) IsTest() bool {
	return r.test != nil
}

// Resolution is the result of resolving an ID.
//
// Either only Production is set, or all three fields are.
type Resolution struct {
	Production string
	TestSync   string
	TestAsync  string
}

// IsTest reports whether the resolution carries test overrides.
func (r Resolution) IsTest() bool {
	return r.TestSync != ""
}

// URL returns the URL for mode. Test modes fall back to the production URL
// on a production resolution.
func (r Resolution) URL(mode Mode) string {
	if !r.IsTest() {
		return r.Production
	}
	switch mode {
	case TestSync:
		return r.TestSync
	case TestAsync:
		return r.TestAsync
	}
	return r.Production
}

// Resolve returns the resolution of id.
func (r *Registry) Resolve(id ID) Resolution {
	prod := id.ProductionURL()
	if r.test == nil {
		return Resolution{Production: prod}
	}
	return Resolution{
		Production: prod,
		TestSync:   Rewrite(prod, r.test.Sync),
		TestAsync:  Rewrite(prod, r.test.Async),
	}
}

// URL returns the URL for id under mode.
func (r *Registry) URL(id ID, mode Mode) string {
	return r.Resolve(id).URL(mode)
}

// Rewrite moves productionURL onto hostport over plain HTTP. Everything from
// the first slash after the host onwards (path and query) is kept verbatim.
//
//	Rewrite("https://api.example.com/2/foo/bar", "127.0.0.1:9000")
//	// "http://127.0.0.1:9000/2/foo/bar"
func Rewrite(productionURL, hostport string) string {
	rest := productionURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+len("://"):]
	}
	tail := ""
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		tail = rest[i:]
	}
	return "http://" + hostport + tail
}
