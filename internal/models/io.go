// Package models provides the transport-independent request and response shapes shared by the runtimes.
package models

import "strings"

// Request represents an incoming client request containing a body and associated headers.
type Request struct {
	Body []byte
	// Headers holds the first value of each request header, keyed by lower-case name.
	Headers map[string]string
}

// Header returns the value of the named header, matching the name case-insensitively.
func (r Request) Header(name string) string {
	return r.Headers[strings.ToLower(name)]
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
