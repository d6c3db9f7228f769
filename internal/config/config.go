// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

const (
	// ModeService runs a standalone HTTP server.
	ModeService = "service"
	// ModeLambda runs as an AWS Lambda function.
	ModeLambda = "lambda"
)

// Lambda payload types.
const (
	PayloadTypeAPIGatewayV1 = "api-gateway-v1"
	PayloadTypeAPIGatewayV2 = "api-gateway-v2"
	PayloadTypeLambdaURL    = "lambda-url"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Service is a struct that contains the configuration for the service mode.
	Service service
	// Lambda is a struct that contains the configuration for the lambda mode.
	Lambda lambda
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"service"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
	// Archive is a struct that contains the configuration for archiving accepted predict payloads.
	Archive struct {
		S3 struct {
			BucketName string `yaml:"bucketName,omitempty"`
			Enabled    bool   `yaml:"enabled,omitempty"`
		} `yaml:"s3,omitempty"`
	} `yaml:"archive,omitempty"`
}

type service struct {
	Addr         string        `yaml:"addr,omitempty"`
	Port         string        `yaml:"port,omitempty" default:"8080"`
	Timeout      time.Duration `yaml:"timeout,omitempty" default:"5s"`
	MaxBodyBytes int64         `yaml:"maxBodyBytes,omitempty" default:"1048576"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v2"`
}

// SetDefaults sets the default values for the configuration.
// Fields already set, for instance from a configuration file, are left untouched.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Service),
		defaults.Set(&Lambda),
	)
}

// Validate reports configuration values the runtimes cannot work with.
func Validate() error {
	var errs []error
	switch Global.Mode {
	case ModeService, ModeLambda:
	default:
		errs = append(errs, fmt.Errorf("invalid mode: %q", Global.Mode))
	}
	switch Lambda.PayloadType {
	case PayloadTypeAPIGatewayV1, PayloadTypeAPIGatewayV2, PayloadTypeLambdaURL:
	default:
		errs = append(errs, fmt.Errorf("unsupported lambda payload type: %q", Lambda.PayloadType))
	}
	if Service.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("service max body bytes must be positive, got %d", Service.MaxBodyBytes))
	}
	if Global.Archive.S3.Enabled && Global.Archive.S3.BucketName == "" {
		errs = append(errs, errors.New("archive to S3 is enabled but no bucket name is set"))
	}
	return errors.Join(errs...)
}

// Reset clears every section back to its zero value.
func Reset() {
	Global = global{}
	Service = service{}
	Lambda = lambda{}
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global  global  `yaml:"global,omitempty"`
		Service service `yaml:"service,omitempty"`
		Lambda  lambda  `yaml:"lambda,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Service = a.Service
	Lambda = a.Lambda

	return nil
}
