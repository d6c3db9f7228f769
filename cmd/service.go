package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/isometry/predict-app/internal/config"
	"github.com/spf13/cobra"
)

func cmdService() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		Short:   "Run a standalone HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Info("spawning...")
			rtm, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			logger.Debug("creating HTTP server...")
			s := newServer(rtm)
			return serve(cmd.Context(), s)
		},
	}

	return cmd
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:           h,
		Addr:              net.JoinHostPort(config.Service.Addr, config.Service.Port),
		WriteTimeout:      config.Service.Timeout,
		ReadTimeout:       config.Service.Timeout,
		ReadHeaderTimeout: config.Service.Timeout,
		IdleTimeout:       config.Service.Timeout,
	}
}

// serve runs s until it fails or ctx is cancelled, in which case in-flight requests get one I/O timeout to complete.
func serve(ctx context.Context, s *http.Server) error {
	if ctx == nil {
		ctx = context.Background()
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving...", "address", s.Addr, "timeout", config.Service.Timeout.String())
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.Service.Timeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}
