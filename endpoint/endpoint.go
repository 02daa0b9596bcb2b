// Package endpoint maps API operations to the URLs that serve them.
//
// Every operation the SDK can call is named by an [ID]. The catalogue of IDs is
// generated from routes.yaml, and each ID resolves to exactly one production
// URL of the form
//
//	https://<host>.dropboxapi.com/2/<route name>
//
// where host is one of the three [HostClass] values. A [Registry] built with
// [TestHosts] additionally rewrites every production URL onto two loopback
// servers, one for blocking calls and one for asynchronous calls, so that the
// two execution modes can be mocked independently.
package endpoint

//go:generate go run ../scripts/generate.go

import "fmt"

// ID names one remote operation.
//
// The zero value is a valid ID. Values outside the generated catalogue are
// invalid and must never be constructed.
type ID int

// HostClass identifies the API host that serves a route.
type HostClass int

const (
	// HostAPI serves RPC-style routes.
	HostAPI HostClass = iota
	// HostContent serves routes that upload or download file content.
	HostContent
	// HostNotify serves long-polling routes.
	HostNotify
)

// apiVersionPath is the path prefix shared by every route.
const apiVersionPath = "/2/"

var hostNames = [...]string{
	HostAPI:     "api.dropboxapi.com",
	HostContent: "content.dropboxapi.com",
	HostNotify:  "notify.dropboxapi.com",
}

// String returns the host name, e.g. "api.dropboxapi.com".
func (h HostClass) String() string {
	if h < 0 || int(h) >= len(hostNames) {
		return fmt.Sprintf("HostClass(%d)", int(h))
	}
	return hostNames[h]
}

type route struct {
	name string
	host HostClass
}

func init() {
	for id := ID(0); id < numIDs; id++ {
		if catalogue[id].name == "" {
			panic(fmt.Sprintf("endpoint: ID %d has no catalogue entry", int(id)))
		}
	}
}

// IDs returns every ID in the catalogue, in declaration order.
func IDs() []ID {
	ids := make([]ID, numIDs)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Valid reports whether id belongs to the catalogue.
func (id ID) Valid() bool {
	return id >= 0 && id < numIDs
}

// String returns the route name, e.g. "files/list_folder".
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return catalogue[id].name
}

// Host returns the class of host that serves id.
func (id ID) Host() HostClass {
	return catalogue[id].host
}

// ProductionURL returns the URL that serves id in production.
func (id ID) ProductionURL() string {
	r := catalogue[id]
	return "https://" + r.host.String() + apiVersionPath + r.name
}
