package models

import (
	"net/http"
	"strings"
)

// NormaliseHeaders flattens h into a map of lower-case header names to their first value.
func NormaliseHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		headers[strings.ToLower(k)] = v[0]
	}
	return headers
}
