// Package aws provides the Controller struct that wraps the AWS services used to archive accepted payloads.
package aws

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/isometry/predict-app/internal/helpers"
	"github.com/pkg/errors"
)

// ObjectPutter is the subset of the S3 client used by the Controller.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Controller wraps the S3 client with context and logging support.
type Controller struct {
	ctx    context.Context
	logger *slog.Logger
	now    func() time.Time

	config   *aws.Config
	s3Client ObjectPutter
}

// Option defines a function type used to configure an instance of the Controller struct.
type Option func(*Controller)

// NewController initializes a Controller with customizable options and default configurations if unspecified.
// The default AWS configuration is only loaded when no S3 client was supplied.
func NewController(opts ...Option) (*Controller, error) {
	_inst := &Controller{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.logger = _inst.logger.With("controller", "aws")
	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	if _inst.now == nil {
		_inst.now = time.Now
	}
	if _inst.s3Client != nil {
		return _inst, nil
	}
	if _inst.config == nil {
		_inst.logger.Debug("loading default AWS configuration...")
		cfg, err := config.LoadDefaultConfig(_inst.ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load AWS configuration")
		}
		cfg.Logger = newAWSLogger(_inst.logger)
		_inst.config = &cfg
	}

	_inst.s3Client = s3.NewFromConfig(*_inst.config)
	return _inst, nil
}

// ObjectKey returns the key under which a payload with the given id is stored.
func (a *Controller) ObjectKey(id string) string {
	return fmt.Sprintf("%s.%s.json", a.now().UTC().Format(time.RFC3339Nano), id)
}

// PutS3Object uploads a JSON object to the specified S3 bucket with a key formatted as a timestamp and the provided ID.
// An empty bucket name disables the upload.
func (a *Controller) PutS3Object(ctx context.Context, id string, bucket string, body []byte) error {
	if bucket == "" {
		return nil
	}
	key := a.ObjectKey(id)
	a.logger.Debug("uploading payload...", slog.String("bucket", bucket), slog.String("key", key))
	_, err := a.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(helpers.ContentTypeJSON),
	})
	if err != nil {
		return errors.Wrap(err, "failed to put object to S3")
	}
	return nil
}

// Archiver binds the controller to a bucket.
func (a *Controller) Archiver(bucket string) *BucketArchiver {
	return &BucketArchiver{controller: a, bucket: bucket}
}

// BucketArchiver stores accepted payloads in a single S3 bucket.
type BucketArchiver struct {
	controller *Controller
	bucket     string
}

// Archive uploads body under the given request id.
func (b *BucketArchiver) Archive(ctx context.Context, id string, body []byte) error {
	return b.controller.PutS3Object(ctx, id, b.bucket, body)
}

type awsLogger struct {
	logger *slog.Logger
}

func newAWSLogger(logger *slog.Logger) *awsLogger {
	return &awsLogger{logger}
}

func (a *awsLogger) Logf(classification logging.Classification, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if classification == logging.Warn {
		a.logger.Warn(msg, slog.String("source", "aws-sdk"))
		return
	}
	a.logger.Debug(msg, slog.String("source", "aws-sdk"))
}
