package helpers

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const requestIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RequestID returns a short random identifier used to correlate log records and archived payloads.
func RequestID() string {
	id, err := gonanoid.Generate(requestIDAlphabet, 12)
	if err != nil {
		return "unknown"
	}
	return id
}
