// Package cmd provides the entrypoint for the predict-app cli.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/predict-app/internal/config"
	"github.com/isometry/predict-app/internal/helpers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilePath = "config.yaml"

var (
	configFilePath string
	logger         = helpers.NewNoopLogger()
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for the predict-app.
func New() *cobra.Command {
	return newRoot(os.Args[1:])
}

func newRoot(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "predict-app",
		Short:        "Serve the health and predict endpoints over HTTP or AWS Lambda",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case config.ModeService, config.ModeLambda:
				config.Global.Mode = cmd.Name()
			}
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = helpers.NewLogger(config.Global.Logging.Verbosity, config.Global.Logging.CallerTrace).
				With("mode", config.Global.Mode)
			return config.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch config.Global.Mode {
			case config.ModeService:
				return cmdService().RunE(cmd, args)
			case config.ModeLambda:
				return cmdLambda().RunE(cmd, args)
			default:
				return fmt.Errorf("invalid mode: %s", config.Global.Mode)
			}
		},
	}

	// Root command flags
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, "path to the configuration file")

	// Configuration loading & defaults
	if err := errors.Join(
		config.LoadFromFile(preloadConfigPath(args)),
		config.SetDefaults(),
	); err != nil {
		panic(err)
	}

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdLambda(),
		cmdService(),
	)

	return cmd
}

// preloadConfigPath finds the configuration file named on the command line before the flags are parsed,
// so that the file values become the defaults of the dynamic flags.
func preloadConfigPath(args []string) string {
	fs := pflag.NewFlagSet("preload", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.StringP("config", "c", defaultConfigFilePath, "")
	_ = fs.Parse(args)
	return *path
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapDuration)
	bindEnvMap(cmd, svcEnvMapInt64)
	bindEnvMap(cmd, lambdaEnvMapString)
}

func componentLogger(component string) *slog.Logger {
	return logger.With("component", component)
}
