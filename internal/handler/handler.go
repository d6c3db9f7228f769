// Package handler implements the health and predict request handlers.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/isometry/predict-app/internal/classifier"
	"github.com/isometry/predict-app/internal/helpers"
	"github.com/isometry/predict-app/internal/models"
)

// Option configures a Handler.
type Option func(*Handler)

// Handler serves the health and predict operations. It holds no per-request state.
type Handler struct {
	logger    *slog.Logger
	predictor Predictor
}

// HealthResponse is the body of a health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// PredictResponse is the body of an accepted predict request.
type PredictResponse struct {
	Success    bool            `json:"success"`
	Input      json.RawMessage `json:"input"`
	Prediction any             `json:"prediction,omitempty"`
}

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewPredictHandler creates a Handler. Without WithPredictor the input is echoed back unchanged.
func NewPredictHandler(options ...Option) *Handler {
	_inst := &Handler{}
	for _, opt := range options {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.predictor == nil {
		_inst.predictor = NopPredictor{}
	}
	return _inst
}

// Health always reports the service as up.
func (h *Handler) Health(_ models.Request) models.Response {
	return helpers.JSONResponse(http.StatusOK, HealthResponse{Status: "ok"})
}

// Predict validates that req carries JSON, parses it and responds with the parsed input.
// The returned error describes why a request was rejected and is nil for accepted requests.
func (h *Handler) Predict(ctx context.Context, req models.Request) (models.Response, error) {
	contentType := req.Header("Content-Type")
	if !classifier.IsJSON(contentType, req.Body) {
		err := &ContentTypeRejectedError{ContentType: contentType}
		h.logger.Debug("rejecting non-JSON request", slog.String("contentType", contentType), slog.Int("size", len(req.Body)))
		return Error(http.StatusBadRequest, err), err
	}

	input, found := classifier.Parse(req.Body)
	if !found {
		err := &InvalidPayloadError{}
		h.logger.Debug("rejecting invalid JSON payload", slog.String("payload", helpers.Truncate(string(req.Body), 64)))
		return Error(http.StatusBadRequest, err), err
	}

	prediction, cause := h.predictor.Predict(ctx, input)
	if cause != nil {
		h.logger.Error("predictor failed", slog.Any("error", cause))
		err := &PredictionError{Cause: cause}
		return Error(http.StatusInternalServerError, err), err
	}

	return helpers.JSONResponse(http.StatusOK, PredictResponse{
		Success:    true,
		Input:      input,
		Prediction: prediction,
	}), nil
}

// Error builds the JSON error response for err.
func Error(statusCode int, err error) models.Response {
	return helpers.JSONResponse(statusCode, ErrorResponse{Error: err.Error()})
}
