package handler

import (
	"log/slog"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithPredictor replaces the prediction step run on accepted payloads.
func WithPredictor(predictor Predictor) Option {
	return func(h *Handler) {
		h.predictor = predictor
	}
}
