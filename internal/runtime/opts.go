package runtime

import (
	"log/slog"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the runtime logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithArchiver enables archiving of accepted predict payloads.
func WithArchiver(archiver Archiver) Option {
	return func(r *Runtime) {
		r.archiver = archiver
	}
}

// WithMaxBodyBytes bounds the size of request bodies. Non-positive values keep the default.
func WithMaxBodyBytes(n int64) Option {
	return func(r *Runtime) {
		if n > 0 {
			r.maxBodyBytes = n
		}
	}
}

// WithLambdaPayloadType selects the event shape decoded by Lambda.
func WithLambdaPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}
