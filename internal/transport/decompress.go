// Response body decompression based on Content-Encoding.
//
// Supports zstd, brotli, and gzip.

package transport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// AcceptEncoding is the Accept-Encoding value matching DecodeBody.
const AcceptEncoding = "zstd, br, gzip"

// ErrBodyTooLarge is returned when a decoded body exceeds its size limit.
var ErrBodyTooLarge = errors.New("response body exceeds size limit")

// DecodeBody reverses encoding on raw, reading at most limit decoded bytes.
// An empty or identity encoding returns raw unchanged, as does an empty raw
// whatever its encoding.
func DecodeBody(encoding string, raw []byte, limit int64) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	var r io.Reader
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return raw, nil
	case "zstd":
		dec, err := zstd.NewReader(bytes.NewReader(raw), zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, fmt.Errorf("invalid zstd body: %w", err)
		}
		defer dec.Close()
		r = dec
	case "br":
		r = brotli.NewReader(bytes.NewReader(raw))
	case "gzip":
		gr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid gzip body: %w", err)
		}
		defer gr.Close()
		r = gr
	default:
		return nil, fmt.Errorf("unsupported Content-Encoding: %s", encoding)
	}

	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", encoding, err)
	}
	if int64(len(out)) > limit {
		return nil, ErrBodyTooLarge
	}
	return out, nil
}
