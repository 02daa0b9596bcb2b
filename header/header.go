// Package header describes the headers an operation requires.
//
// A header is either static, with a fixed value, or derived, with a value
// computed at call time from the serialized request payload. Derived headers
// carry the call arguments for routes whose body is file content rather than
// JSON.
package header

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Well-known header names.
const (
	ContentType = "Content-Type"
	Arg         = "Dropbox-API-Arg"
	SelectUser  = "Dropbox-API-Select-User"
	PathRoot    = "Dropbox-API-Path-Root"
)

// Media types attached by the predefined specs.
const (
	MediaJSON        = "application/json"
	MediaOctetStream = "application/octet-stream"
)

// Header is one header declaration: either a static name/value pair or a
// derived header whose value is computed from the payload.
type Header struct {
	Name   string
	Value  string
	derive func(payload []byte) string
}

// Static declares a header with a fixed value.
func Static(name, value string) Header {
	return Header{Name: name, Value: value}
}

// Derived declares a header whose value is fn applied to the serialized
// payload. fn receives nil when the request has no payload.
func Derived(name string, fn func(payload []byte) string) Header {
	return Header{Name: name, derive: fn}
}

// APIArg declares the Dropbox-API-Arg header, whose value is the JSON payload.
func APIArg() Header {
	return Derived(Arg, ArgValue)
}

// IsDerived reports whether the header value depends on the payload.
func (h Header) IsDerived() bool {
	return h.derive != nil
}

// Pair is a resolved header ready to be attached to a request.
type Pair struct {
	Name  string
	Value string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Value)
}

// Spec is the ordered list of headers an operation requires.
type Spec []Header

// Predefined specs.
var (
	// None declares no headers, for routes without arguments.
	None = Spec{}

	// JSON declares a JSON request body.
	JSON = Spec{Static(ContentType, MediaJSON)}

	// Upload declares a binary body with the arguments in Dropbox-API-Arg.
	Upload = Spec{Static(ContentType, MediaOctetStream), APIArg()}

	// ContentRPC declares a JSON body mirrored in Dropbox-API-Arg.
	ContentRPC = Spec{Static(ContentType, MediaJSON), APIArg()}
)

// Resolve returns the headers of s in declaration order. Derived values are
// computed once, from payload.
func (s Spec) Resolve(payload []byte) []Pair {
	pairs := make([]Pair, 0, len(s))
	for _, h := range s {
		value := h.Value
		if h.derive != nil {
			value = h.derive(payload)
		}
		pairs = append(pairs, Pair{Name: h.Name, Value: value})
	}
	return pairs
}

// ContentType returns the static Content-Type declared by s, or "".
func (s Spec) ContentType() string {
	for _, h := range s {
		if h.derive == nil && strings.EqualFold(h.Name, ContentType) {
			return h.Value
		}
	}
	return ""
}

// With returns a copy of s with extra appended.
func (s Spec) With(extra ...Header) Spec {
	out := make(Spec, 0, len(s)+len(extra))
	out = append(out, s...)
	return append(out, extra...)
}

// ArgValue renders a JSON payload for use as a header value. Characters
// outside printable ASCII are written as \uXXXX escapes, which leaves the
// JSON meaning unchanged. A nil payload yields "".
func ArgValue(payload []byte) string {
	if payload == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(len(payload))
	for i := 0; i < len(payload); {
		c := payload[i]
		if c >= 0x20 && c < 0x7f {
			b.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRune(payload[i:])
		i += size
		if r >= 0x10000 {
			r1, r2 := surrogates(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.String()
}

func surrogates(r rune) (rune, rune) {
	r -= 0x10000
	return 0xd800 + (r>>10)&0x3ff, 0xdc00 + r&0x3ff
}
