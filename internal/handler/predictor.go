package handler

import (
	"context"
	"encoding/json"
)

// Predictor turns an accepted JSON input into a prediction.
// A nil prediction is left out of the response body.
type Predictor interface {
	Predict(ctx context.Context, input json.RawMessage) (any, error)
}

// PredictorFunc adapts a plain function to the Predictor interface.
type PredictorFunc func(ctx context.Context, input json.RawMessage) (any, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, input json.RawMessage) (any, error) {
	return f(ctx, input)
}

// NopPredictor makes no prediction; the response only echoes the input.
type NopPredictor struct{}

// Predict returns no prediction.
func (NopPredictor) Predict(context.Context, json.RawMessage) (any, error) {
	return nil, nil
}
