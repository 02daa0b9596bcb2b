// Package dropbox provides a Go SDK for the Dropbox API v2.
//
// Every API operation is a typed [Route] declared in a namespace package
// (check, users, files, sharing, filerequests, fileproperties, auth). A route
// builds a [Request], which is sent either blocking with [Request.CallSync]
// or in the background with [Request.Call]. Both modes run the same
// pipeline and classify the same server behaviour identically.
//
// # Installation
//
//	go get github.com/tomblancdev/dropbox-go
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/tomblancdev/dropbox-go"
//	    "github.com/tomblancdev/dropbox-go/files"
//	)
//
//	func main() {
//	    client, err := dropbox.NewClient(dropbox.WithToken("sl.xxx"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := files.ListFolder("", &files.ListFolderArg{Path: ""}).
//	        CallSync(context.Background(), client)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, e := range res.Entries {
//	        fmt.Println(e.PathDisplay)
//	    }
//	}
//
// # Results
//
// A call yields exactly one of: a decoded result, no result, or an [*Error].
// "No result" is a successful response with an empty body and is reported as
// a nil result with a nil error, never as a zero value.
//
// # Asynchronous Calls
//
// Call returns a [Pending] immediately:
//
//	p, err := files.GetMetadata("", arg).Call(ctx, client)
//	if err != nil {
//	    log.Fatal(err) // arguments failed validation; nothing was sent
//	}
//	md, err := p.Await(ctx)
//
// # Error Handling
//
// Failures are one of three kinds:
//
//	_, err := check.User("", &check.EchoArg{Query: "ping"}).CallSync(ctx, client)
//	var apiErr *dropbox.Error
//	if errors.As(err, &apiErr) {
//	    switch apiErr.Kind {
//	    case dropbox.KindRequest:
//	        // could not send or complete the exchange
//	    case dropbox.KindRemote:
//	        // non-2xx status; apiErr.Status, apiErr.Summary
//	    case dropbox.KindParsing:
//	        // 2xx with a body that does not decode
//	    }
//	}
//
// Nothing is retried. Callers that want retries or backoff wrap calls
// themselves, or install an [Interceptor].
//
// # Testing
//
// [WithTestHosts] rewrites every endpoint onto two local servers, one for
// blocking calls and one for asynchronous calls, so both can be mocked
// independently.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Calls are
// independent and share nothing but the HTTP clients.
package dropbox
