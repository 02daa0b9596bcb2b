// Package check holds the connectivity routes of the check namespace. Both
// echo their query back and are meant for testing credentials.
package check

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

// MaxQueryLength is the longest query the echo routes accept.
const MaxQueryLength = 500

// EchoArg is the argument of App and User.
type EchoArg struct {
	// Query is returned verbatim in EchoResult.
	Query string `json:"query"`
}

// Validate validates this echo arg
func (m *EchoArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MaxLength("query", "body", m.Query, MaxQueryLength); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// EchoResult is the result of App and User.
type EchoResult struct {
	Result string `json:"result"`
}

var (
	appRoute = dropbox.Route[EchoArg, EchoResult]{
		Endpoint: endpoint.CheckApp,
		Headers:  header.JSON,
	}
	userRoute = dropbox.Route[EchoArg, EchoResult]{
		Endpoint: endpoint.CheckUser,
		Headers:  header.JSON,
	}
)

// App checks app authentication.
func App(token string, arg *EchoArg) *dropbox.Request[EchoArg, EchoResult] {
	return appRoute.New(token, arg)
}

// User checks user authentication.
func User(token string, arg *EchoArg) *dropbox.Request[EchoArg, EchoResult] {
	return userRoute.New(token, arg)
}
