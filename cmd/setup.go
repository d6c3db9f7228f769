package cmd

import (
	"context"

	"github.com/isometry/predict-app/internal/config"
	awsctl "github.com/isometry/predict-app/internal/controllers/aws"
	"github.com/isometry/predict-app/internal/handler"
	"github.com/isometry/predict-app/internal/runtime"
	"github.com/pkg/errors"
)

// setup builds the runtime shared by every mode from the loaded configuration.
func setup(ctx context.Context) (*runtime.Runtime, error) {
	logger.Debug("creating predict handler...")
	hdl := handler.NewPredictHandler(
		handler.WithLogger(componentLogger("predict-handler")))

	opts := []runtime.Option{
		runtime.WithLogger(componentLogger("runtime")),
		runtime.WithMaxBodyBytes(config.Service.MaxBodyBytes),
		runtime.WithLambdaPayloadType(config.Lambda.PayloadType),
	}

	if archive := config.Global.Archive.S3; archive.Enabled {
		logger.Debug("creating AWS controller...")
		ctl, err := awsctl.NewController(
			awsctl.WithContext(ctx),
			awsctl.WithLogger(componentLogger("aws-controller")))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create AWS controller")
		}
		logger.Info("archiving accepted payloads", "bucket", archive.BucketName)
		opts = append(opts, runtime.WithArchiver(ctl.Archiver(archive.BucketName)))
	}

	logger.Debug("creating runtime...")
	return runtime.NewRuntime(hdl, opts...), nil
}
