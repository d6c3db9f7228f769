package cmd

import (
	"github.com/isometry/predict-app/internal/config"
	"github.com/isometry/predict-app/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'lambda' and 'service'",
		Short:       helpers.Ptr("m"),
	},
	&config.Global.Archive.S3.BucketName: {
		Name:        "archive-s3-bucket",
		Description: "The S3 bucket to archive accepted predict payloads to",
		Env:         helpers.Ptr("ARCHIVE_S3_BUCKET"),
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Global.Archive.S3.Enabled: {
		Name:        "archive-s3",
		Description: "Enable S3 archiving of accepted predict payloads",
		Env:         helpers.Ptr("ARCHIVE_S3_ENABLED"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}
