package aws

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// WithLogger sets a custom slog.Logger instance for the Controller struct to use for logging operations.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Controller) {
		a.logger = logger
	}
}

// WithContext sets the context used while loading the AWS configuration.
func WithContext(ctx context.Context) Option {
	return func(a *Controller) {
		a.ctx = ctx
	}
}

// WithConfig uses cfg instead of the default AWS configuration chain.
func WithConfig(cfg aws.Config) Option {
	return func(a *Controller) {
		a.config = &cfg
	}
}

// WithS3Client replaces the S3 client.
func WithS3Client(client ObjectPutter) Option {
	return func(a *Controller) {
		a.s3Client = client
	}
}

// WithClock replaces the time source used to build object keys.
func WithClock(now func() time.Time) Option {
	return func(a *Controller) {
		a.now = now
	}
}
