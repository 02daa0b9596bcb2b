// Package auth holds the token routes of the auth namespace.
package auth

import (
	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

var tokenRevokeRoute = dropbox.Route[dropbox.Void, dropbox.Void]{
	Endpoint: endpoint.AuthTokenRevoke,
	Headers:  header.None,
}

// TokenRevoke disables the access token used to authenticate the call.
// The result carries no data.
func TokenRevoke(token string) *dropbox.Request[dropbox.Void, dropbox.Void] {
	return tokenRevokeRoute.New(token, nil)
}
