package dropbox_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-openapi/swag"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/auth"
	"github.com/tomblancdev/dropbox-go/check"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/fileproperties"
	"github.com/tomblancdev/dropbox-go/filerequests"
	"github.com/tomblancdev/dropbox-go/files"
	"github.com/tomblancdev/dropbox-go/header"
	"github.com/tomblancdev/dropbox-go/users"
)

// outcome is what a caller can observe from one call.
type outcome struct {
	Result *check.EchoResult
	Kind   dropbox.Kind
	Status int
}

func observe(res *check.EchoResult, err error) outcome {
	if err == nil {
		return outcome{Result: res}
	}
	apiErr, ok := dropbox.AsError(err)
	if !ok {
		return outcome{Kind: -1}
	}
	return outcome{Kind: apiErr.Kind, Status: apiErr.Status}
}

// TestModeSymmetry verifies CallSync and Call classify every server
// behaviour identically, each on its own server.
func TestModeSymmetry(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        outcome
	}{
		{
			name:        "json result",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":"foo"}`,
			want:        outcome{Result: &check.EchoResult{Result: "foo"}},
		},
		{
			name:   "empty body",
			status: http.StatusOK,
			want:   outcome{},
		},
		{
			name:   "no content",
			status: http.StatusNoContent,
			want:   outcome{},
		},
		{
			name:        "malformed json",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":`,
			want:        outcome{Kind: dropbox.KindParsing, Status: http.StatusOK},
		},
		{
			name:        "wrong shape",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":5}`,
			want:        outcome{Kind: dropbox.KindParsing, Status: http.StatusOK},
		},
		{
			name:        "route error with result-shaped body",
			status:      http.StatusConflict,
			contentType: "application/json",
			body:        `{"result":"foo"}`,
			want:        outcome{Kind: dropbox.KindRemote, Status: http.StatusConflict},
		},
		{
			name:        "bad input",
			status:      http.StatusBadRequest,
			contentType: "text/plain; charset=utf-8",
			body:        `Error in call to API function "check/app"`,
			want:        outcome{Kind: dropbox.KindRemote, Status: http.StatusBadRequest},
		},
		{
			name:   "server error without body",
			status: http.StatusInternalServerError,
			want:   outcome{Kind: dropbox.KindRemote, Status: http.StatusInternalServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			client, servers := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			ctx := context.Background()
			arg := &check.EchoArg{Query: "foo"}

			// Act
			syncOutcome := observe(check.App("t", arg).CallSync(ctx, client))

			pending, err := check.App("t", arg).Call(ctx, client)
			require.NoError(t, err)
			asyncOutcome := observe(pending.Wait())

			// Assert
			assert.Equal(t, tt.want, syncOutcome)
			assert.Equal(t, syncOutcome, asyncOutcome)
			assert.EqualValues(t, 1, servers.sync.hits.Load())
			assert.EqualValues(t, 1, servers.async.hits.Load())
		})
	}
}

// TestCallSync_CheckApp verifies the echo scenario end to end.
func TestCallSync_CheckApp(t *testing.T) {
	// Arrange
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2/check/app", r.URL.Path)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var arg check.EchoArg
		mustDecode(r, &arg)
		assert.Equal(t, "foo", arg.Query)

		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]string{"result": "foo"})
	})

	// Act
	res, err := check.App("t", &check.EchoArg{Query: "foo"}).CallSync(context.Background(), client)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "foo", res.Result)
}

// TestEmptyBody verifies an empty 2xx body is a success without a result for
// every kind of route.
func TestEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	calls := map[string]func() (bool, error){
		"auth/token/revoke": func() (bool, error) {
			res, err := auth.TokenRevoke("t").CallSync(ctx, client)
			return res == nil, err
		},
		"users/get_current_account": func() (bool, error) {
			res, err := users.GetCurrentAccount("t").CallSync(ctx, client)
			return res == nil, err
		},
		"files/list_folder": func() (bool, error) {
			res, err := files.ListFolder("t", &files.ListFolderArg{Path: ""}).CallSync(ctx, client)
			return res == nil, err
		},
		"files/upload": func() (bool, error) {
			res, err := files.Upload("t", &files.CommitInfo{Path: "/a.txt"}, strings.NewReader("a")).CallSync(ctx, client)
			return res == nil, err
		},
		"file_requests/count": func() (bool, error) {
			p, err := filerequests.Count("t").Call(ctx, client)
			if err != nil {
				return false, err
			}
			res, err := p.Wait()
			return res == nil, err
		},
		"file_properties/properties/add": func() (bool, error) {
			res, err := fileproperties.PropertiesAdd("t", &fileproperties.AddPropertiesArg{
				Path: "/a.txt",
			}).CallSync(ctx, client)
			return res == nil, err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			isNil, err := call()
			require.NoError(t, err)
			assert.True(t, isNil, "empty body must yield no result")
		})
	}
}

// TestTransportFailure verifies a call that cannot be dispatched is a
// KindRequest error in both modes.
func TestTransportFailure(t *testing.T) {
	// Arrange
	client, err := dropbox.NewClient(dropbox.WithTestHosts(deadHost(t), deadHost(t)))
	require.NoError(t, err)
	ctx := context.Background()

	// Act
	res, syncErr := check.App("t", &check.EchoArg{Query: "foo"}).CallSync(ctx, client)

	pending, err := check.App("t", &check.EchoArg{Query: "foo"}).Call(ctx, client)
	require.NoError(t, err)
	asyncRes, asyncErr := pending.Wait()

	// Assert
	assert.Nil(t, res)
	assert.Nil(t, asyncRes)
	assert.True(t, dropbox.IsKind(syncErr, dropbox.KindRequest))
	assert.True(t, dropbox.IsKind(asyncErr, dropbox.KindRequest))
	assert.ErrorIs(t, syncErr, dropbox.ErrRequest)
}

// TestCreateFileRequestArgs_RoundTrip verifies the arguments reach the
// server unchanged.
func TestCreateFileRequestArgs_RoundTrip(t *testing.T) {
	// Arrange
	want := filerequests.CreateFileRequestArgs{
		Title:       "Homework submission",
		Destination: "/File Requests/Homework",
		Open:        swag.Bool(true),
	}

	received := make(chan filerequests.CreateFileRequestArgs, 1)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/file_requests/create", r.URL.Path)
		var got filerequests.CreateFileRequestArgs
		mustDecode(r, &got)
		received <- got

		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, filerequests.FileRequest{
			ID:          "oaCAVmEyrqYnkZX9955Y",
			URL:         "https://www.dropbox.com/request/oaCAVmEyrqYnkZX9955Y",
			Title:       got.Title,
			Created:     dropbox.NewTimestamp(time.Date(2015, 10, 5, 17, 0, 0, 0, time.UTC)),
			IsOpen:      swag.BoolValue(got.Open),
			Destination: swag.String(got.Destination),
		})
	})

	// Act
	res, err := filerequests.Create("t", &want).CallSync(context.Background(), client)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, <-received))
	assert.Equal(t, "Homework submission", res.Title)
	assert.True(t, res.IsOpen)
	assert.Equal(t, "/File Requests/Homework", swag.StringValue(res.Destination))
	assert.Equal(t, "2015-10-05T17:00:00Z", res.Created.String())
}

// TestGetThumbnailBatch_ArgHeader verifies the derived argument header
// carries the same arguments as the body.
func TestGetThumbnailBatch_ArgHeader(t *testing.T) {
	// Arrange
	arg := &files.GetThumbnailBatchArg{
		Entries: []files.ThumbnailArg{
			{
				Path:   "/image.jpg",
				Format: &files.Tagged{Tag: files.ThumbnailJPEG},
				Size:   &files.Tagged{Tag: files.ThumbnailW64H64},
				Mode:   &files.Tagged{Tag: files.ThumbnailStrict},
			},
		},
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/get_thumbnail_batch", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		headerValue := r.Header.Get(header.Arg)
		assert.Equal(t, string(body), headerValue)

		var fromHeader, fromBody files.GetThumbnailBatchArg
		assert.NoError(t, json.Unmarshal([]byte(headerValue), &fromHeader))
		assert.NoError(t, json.Unmarshal(body, &fromBody))
		assert.Empty(t, cmp.Diff(*arg, fromHeader))
		assert.Empty(t, cmp.Diff(fromBody, fromHeader))

		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]any{"entries": []map[string]any{
			{".tag": "success", "thumbnail": "aGVsbG8="},
		}})
	})

	// Act
	res, err := files.GetThumbnailBatch("t", arg).CallSync(context.Background(), client)

	// Assert
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "aGVsbG8=", res.Entries[0].Thumbnail)
}

// TestArgHeader_NoPayload verifies a derived header without payload is sent
// empty.
func TestArgHeader_NoPayload(t *testing.T) {
	route := dropbox.Route[files.GetThumbnailBatchArg, dropbox.Void]{
		Endpoint: endpoint.FilesGetThumbnailBatch,
		Headers:  header.ContentRPC,
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		values, ok := r.Header[http.CanonicalHeaderKey(header.Arg)]
		assert.True(t, ok)
		assert.Equal(t, []string{""}, values)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	})

	res, err := route.New("t", nil).CallSync(context.Background(), client)
	require.NoError(t, err)
	assert.Nil(t, res)
}

// TestUpload verifies upload routes send content as the body and the
// arguments only in the header.
func TestUpload(t *testing.T) {
	// Arrange
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/upload", r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		var commit files.CommitInfo
		assert.NoError(t, json.Unmarshal([]byte(r.Header.Get(header.Arg)), &commit))
		assert.Equal(t, "/Homework/math/Matrices.txt", commit.Path)
		assert.Equal(t, files.WriteModeAdd, commit.Mode.Tag)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "Déjà vu", string(body))

		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]any{
			".tag":         "file",
			"name":         "Matrices.txt",
			"path_display": "/Homework/math/Matrices.txt",
			"size":         8,
		})
	})

	// Act
	res, err := files.Upload("t", &files.CommitInfo{
		Path: "/Homework/math/Matrices.txt",
		Mode: &files.WriteMode{Tag: files.WriteModeAdd},
	}, strings.NewReader("Déjà vu")).CallSync(context.Background(), client)

	// Assert
	require.NoError(t, err)
	assert.True(t, res.IsFile())
	assert.EqualValues(t, 8, res.Size)
}

// TestArgHeader_NonASCII verifies non-ASCII arguments are escaped in the
// header and decode back to the same value.
func TestArgHeader_NonASCII(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(header.Arg)
		assert.Contains(t, raw, `\u00e9`)
		assert.NotContains(t, raw, "é")

		var commit files.CommitInfo
		assert.NoError(t, json.Unmarshal([]byte(raw), &commit))
		assert.Equal(t, "/Résumé.pdf", commit.Path)
		w.WriteHeader(http.StatusOK)
	})

	_, err := files.Upload("t", &files.CommitInfo{Path: "/Résumé.pdf"}, bytes.NewReader(nil)).
		CallSync(context.Background(), client)
	require.NoError(t, err)
}

// TestValidation verifies invalid arguments fail before anything is sent.
func TestValidation(t *testing.T) {
	// Arrange
	client, servers := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	arg := &check.EchoArg{Query: strings.Repeat("q", check.MaxQueryLength+1)}

	// Act
	res, syncErr := check.App("t", arg).CallSync(context.Background(), client)
	pending, asyncErr := check.App("t", arg).Call(context.Background(), client)

	// Assert
	assert.Nil(t, res)
	assert.Nil(t, pending)
	assert.True(t, dropbox.IsKind(syncErr, dropbox.KindRequest))
	assert.True(t, dropbox.IsKind(asyncErr, dropbox.KindRequest))
	assert.ErrorContains(t, syncErr, "query")
	assert.Zero(t, servers.sync.hits.Load())
	assert.Zero(t, servers.async.hits.Load())
}

// TestRemoteError_Details verifies the diagnostics carried by remote errors.
func TestRemoteError_Details(t *testing.T) {
	t.Run("route error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			mustEncode(w, map[string]any{
				"error_summary": "path/not_found/..",
				"error":         map[string]any{".tag": "path", "path": map[string]any{".tag": "not_found"}},
			})
		})

		_, err := files.GetMetadata("t", &files.GetMetadataArg{Path: "/missing"}).CallSync(context.Background(), client)

		require.Error(t, err)
		assert.ErrorIs(t, err, dropbox.ErrEndpoint)
		apiErr, ok := dropbox.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "files/get_metadata", apiErr.Endpoint)
		assert.Equal(t, "path/not_found/..", apiErr.Summary)
		assert.Contains(t, string(apiErr.Body), "not_found")
		assert.Contains(t, err.Error(), "path/not_found/..")
	})

	t.Run("rate limited", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := users.GetSpaceUsage("t").CallSync(context.Background(), client)

		assert.ErrorIs(t, err, dropbox.ErrRateLimited)
		apiErr, _ := dropbox.AsError(err)
		assert.Equal(t, 7*time.Second, apiErr.RetryAfter)
	})

	t.Run("unauthorized", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			mustEncode(w, map[string]any{"error_summary": "invalid_access_token/..."})
		})

		_, err := users.GetCurrentAccount("bad").CallSync(context.Background(), client)

		assert.ErrorIs(t, err, dropbox.ErrUnauthorized)
		assert.NotErrorIs(t, err, dropbox.ErrEndpoint)
	})
}

// TestCall_Cancel verifies cancelling a pending call ends it with a
// KindRequest error.
func TestCall_Cancel(t *testing.T) {
	// Arrange
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	pending, err := check.App("t", &check.EchoArg{Query: "slow"}).Call(context.Background(), client)
	require.NoError(t, err)
	<-started

	// Act
	pending.Cancel()
	res, err := pending.Wait()

	// Assert
	assert.Nil(t, res)
	assert.True(t, dropbox.IsKind(err, dropbox.KindRequest))
	assert.ErrorIs(t, err, context.Canceled)
	select {
	case <-pending.Done():
	default:
		t.Fatal("Done must be closed after Wait returns")
	}
}

// TestCall_Await verifies Await gives up when its context ends.
func TestCall_Await(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	pending, err := check.App("t", &check.EchoArg{Query: "slow"}).Call(context.Background(), client)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	res, err := pending.Await(ctx)

	assert.Nil(t, res)
	assert.True(t, dropbox.IsKind(err, dropbox.KindRequest))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestCall_AwaitCompleted verifies Await returns the outcome of a finished
// call even with an ended context.
func TestCall_AwaitCompleted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]string{"result": "done"})
	})

	pending, err := check.User("t", &check.EchoArg{Query: "done"}).Call(context.Background(), client)
	require.NoError(t, err)
	<-pending.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := pending.Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, "done", res.Result)
}

// TestWithTimeout verifies the configured timeout ends slow calls.
func TestWithTimeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}, dropbox.WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := check.App("t", &check.EchoArg{Query: "slow"}).CallSync(context.Background(), client)

	assert.True(t, dropbox.IsKind(err, dropbox.KindRequest))
}

// TestCompression verifies compressed responses are decoded.
func TestCompression(t *testing.T) {
	plain := []byte(`{"result":"compressed"}`)

	encoders := map[string]func([]byte) []byte{
		"gzip": func(b []byte) []byte {
			var buf bytes.Buffer
			gw := gzip.NewWriter(&buf)
			_, _ = gw.Write(b)
			_ = gw.Close()
			return buf.Bytes()
		},
		"zstd": func(b []byte) []byte {
			enc, _ := zstd.NewWriter(nil)
			defer enc.Close()
			return enc.EncodeAll(b, nil)
		},
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.Header.Get("Accept-Encoding"), name)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Content-Encoding", name)
				_, _ = w.Write(encode(plain))
			})

			res, err := check.App("t", &check.EchoArg{Query: "compressed"}).CallSync(context.Background(), client)

			require.NoError(t, err)
			assert.Equal(t, "compressed", res.Result)
		})
	}

	t.Run("corrupt", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Encoding", "gzip")
			_, _ = w.Write([]byte("not gzip"))
		})

		_, err := check.App("t", &check.EchoArg{Query: "x"}).CallSync(context.Background(), client)

		assert.ErrorIs(t, err, dropbox.ErrParsing)
	})

	t.Run("disabled", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NotContains(t, r.Header.Get("Accept-Encoding"), "zstd")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(plain)
		}, dropbox.WithCompression(false))

		res, err := check.App("t", &check.EchoArg{Query: "compressed"}).CallSync(context.Background(), client)

		require.NoError(t, err)
		assert.Equal(t, "compressed", res.Result)
	})
}

// TestEmptyBody_Encoded verifies an empty 2xx body is a success without a
// result even when a Content-Encoding is declared.
func TestEmptyBody_Encoded(t *testing.T) {
	for _, encoding := range []string{"gzip", "br", "zstd"} {
		for _, status := range []int{http.StatusOK, http.StatusNoContent} {
			t.Run(fmt.Sprintf("%s/%d", encoding, status), func(t *testing.T) {
				// Arrange
				client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Encoding", encoding)
					w.WriteHeader(status)
				})
				ctx := context.Background()

				// Act
				syncRes, syncErr := auth.TokenRevoke("t").CallSync(ctx, client)
				p, err := auth.TokenRevoke("t").Call(ctx, client)
				require.NoError(t, err)
				asyncRes, asyncErr := p.Wait()

				// Assert
				require.NoError(t, syncErr)
				require.NoError(t, asyncErr)
				assert.Nil(t, syncRes)
				assert.Nil(t, asyncRes)
			})
		}
	}
}

// TestMalformedContentType verifies a response whose Content-Type cannot be
// parsed is still classified by its status and body.
func TestMalformedContentType(t *testing.T) {
	reply := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"result":"foo"}`))
		}
	}

	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, reply(http.StatusOK))

		res, err := check.App("t", &check.EchoArg{Query: "foo"}).CallSync(context.Background(), client)

		require.NoError(t, err)
		assert.Equal(t, "foo", res.Result)
	})

	t.Run("server error", func(t *testing.T) {
		client, _ := newTestClient(t, reply(http.StatusInternalServerError))

		_, syncErr := check.App("t", &check.EchoArg{Query: "foo"}).CallSync(context.Background(), client)
		p, err := check.App("t", &check.EchoArg{Query: "foo"}).Call(context.Background(), client)
		require.NoError(t, err)
		_, asyncErr := p.Wait()

		for _, err := range []error{syncErr, asyncErr} {
			assert.True(t, dropbox.IsKind(err, dropbox.KindRemote), "got %v", err)
			assert.ErrorIs(t, err, dropbox.ErrServer)
		}
	})
}

// TestWithMaxResponseSize verifies oversized results are parsing errors.
func TestWithMaxResponseSize(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]string{"result": strings.Repeat("x", 64)})
	}, dropbox.WithMaxResponseSize(16))

	_, err := check.App("t", &check.EchoArg{Query: "big"}).CallSync(context.Background(), client)

	assert.ErrorIs(t, err, dropbox.ErrParsing)
}

// TestClientHeaders verifies the client-wide headers and token fallback.
func TestClientHeaders(t *testing.T) {
	// Arrange
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer client-token", r.Header.Get("Authorization"))
		assert.Equal(t, "dbmid:member", r.Header.Get(header.SelectUser))
		assert.Equal(t, `{".tag": "root", "root": "123"}`, r.Header.Get(header.PathRoot))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	},
		dropbox.WithToken("client-token"),
		dropbox.WithSelectUser("dbmid:member"),
		dropbox.WithPathRoot(`{".tag": "root", "root": "123"}`),
		dropbox.WithUserAgent("test-agent/1.0"),
	)

	// Act
	_, err := users.GetSpaceUsage("").CallSync(context.Background(), client)

	// Assert
	require.NoError(t, err)
}

// TestSetToken verifies the token can be replaced between calls.
func TestSetToken(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}, dropbox.WithToken("first"))

	_, err := users.GetSpaceUsage("").CallSync(context.Background(), client)
	require.NoError(t, err)
	client.SetToken("second")
	_, err = users.GetSpaceUsage("").CallSync(context.Background(), client)
	require.NoError(t, err)
	_, err = users.GetSpaceUsage("explicit").CallSync(context.Background(), client)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer first", "Bearer second", "Bearer explicit"}, seen)
	assert.Equal(t, "second", client.Token())
}

// TestNoAuthRoute verifies longpoll sends no credential.
func TestNoAuthRoute(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/list_folder/longpoll", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]any{"changes": true})
	}, dropbox.WithToken("secret"))

	res, err := files.ListFolderLongpoll(&files.ListFolderLongpollArg{Cursor: "c"}).CallSync(context.Background(), client)

	require.NoError(t, err)
	assert.True(t, res.Changes)
}

// TestInterceptors verifies ordering, call information and error mapping.
func TestInterceptors(t *testing.T) {
	t.Run("order and info", func(t *testing.T) {
		var order []string
		var infos []dropbox.CallInfo
		record := func(name string) dropbox.Interceptor {
			return func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
				order = append(order, name+":before")
				err := next(ctx, info)
				order = append(order, name+":after")
				infos = append(infos, *info)
				return err
			}
		}

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, dropbox.WithInterceptors(record("outer"), record("inner")))

		_, err := auth.TokenRevoke("t").CallSync(context.Background(), client)

		require.NoError(t, err)
		assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, order)
		require.Len(t, infos, 2)
		assert.Equal(t, "auth/token/revoke", infos[0].Endpoint)
		assert.Equal(t, http.StatusOK, infos[0].Status)
		assert.True(t, infos[0].Empty)
		assert.False(t, infos[0].Async)
		assert.True(t, strings.HasSuffix(infos[0].URL, "/2/auth/token/revoke"))
	})

	t.Run("async flag", func(t *testing.T) {
		var async bool
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, dropbox.WithInterceptors(func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
			async = info.Async
			return next(ctx, info)
		}))

		p, err := auth.TokenRevoke("t").Call(context.Background(), client)
		require.NoError(t, err)
		_, err = p.Wait()

		require.NoError(t, err)
		assert.True(t, async)
	})

	t.Run("short circuit", func(t *testing.T) {
		blocked := errors.New("blocked by policy")
		client, servers := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, dropbox.WithInterceptors(func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
			return blocked
		}))

		_, err := auth.TokenRevoke("t").CallSync(context.Background(), client)

		assert.True(t, dropbox.IsKind(err, dropbox.KindRequest))
		assert.ErrorIs(t, err, blocked)
		assert.Zero(t, servers.sync.hits.Load())
	})
}

// TestNewClient_PartialTestHosts verifies test hosts come in pairs.
func TestNewClient_PartialTestHosts(t *testing.T) {
	_, err := dropbox.NewClient(dropbox.WithTestHosts("127.0.0.1:8080", ""))

	assert.ErrorIs(t, err, endpoint.ErrPartialTestHosts)
}

// TestNewClient_Production verifies a client without test hosts resolves
// production URLs.
func TestNewClient_Production(t *testing.T) {
	client, err := dropbox.NewClient()
	require.NoError(t, err)

	assert.False(t, client.Registry().IsTest())
	assert.Equal(t, "https://content.dropboxapi.com/2/files/upload",
		client.Registry().URL(endpoint.FilesUpload, endpoint.Production))
}
