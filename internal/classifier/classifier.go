// Package classifier decides whether an inbound request carries a JSON payload.
package classifier

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// IsJSON reports whether a request declaring contentType and carrying body should be treated as JSON.
//
// A declared content type wins: it is accepted when it contains "json" in any letter case and
// rejected otherwise, whatever the body holds. Without a content type the body is sniffed and
// accepted only when it is non-empty, valid UTF-8 and a single JSON value of any kind.
func IsJSON(contentType string, body []byte) bool {
	if contentType != "" {
		return strings.Contains(strings.ToLower(contentType), "json")
	}
	if len(body) == 0 {
		return false
	}
	_, ok := Parse(body)
	return ok
}

// Parse decodes body as a single JSON value without reporting why it failed.
// It returns the compacted value and true, or nil and false when body is not valid UTF-8 JSON.
// A JSON null is a present value.
func Parse(body []byte) (json.RawMessage, bool) {
	if !utf8.Valid(body) || !json.Valid(body) {
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
