package handler

// ContentTypeRejectedError is returned when a request neither declares a JSON content type nor carries a sniffable JSON body.
type ContentTypeRejectedError struct {
	ContentType string
}

func (m *ContentTypeRejectedError) Error() string {
	return "Request must be JSON (Content-Type application/json)"
}

// InvalidPayloadError is returned when a request accepted as JSON does not hold a valid JSON value.
type InvalidPayloadError struct{}

func (m *InvalidPayloadError) Error() string {
	return "Invalid JSON payload"
}

// PredictionError wraps a failure reported by the configured Predictor.
type PredictionError struct {
	Cause error
}

func (m *PredictionError) Error() string {
	return "prediction failed"
}

func (m *PredictionError) Unwrap() error {
	return m.Cause
}
