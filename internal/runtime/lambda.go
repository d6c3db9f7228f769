package runtime

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isometry/predict-app/internal/config"
	"github.com/isometry/predict-app/internal/handler"
	"github.com/isometry/predict-app/internal/models"
	"github.com/pkg/errors"
)

// Lambda is the AWS Lambda handler for the runtime.
// The event is decoded according to the configured payload type and replayed through the HTTP router.
func (r *Runtime) Lambda(ctx context.Context, payload json.RawMessage) (any, error) {
	r.logger.Debug("received Lambda event", slog.String("payloadType", r.payloadType))

	switch r.payloadType {
	case config.PayloadTypeAPIGatewayV1:
		var event events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, errors.Wrap(err, "failed to decode API Gateway v1 event")
		}
		resp := r.replay(ctx, event.HTTPMethod, event.Path, event.Headers, event.Body, event.IsBase64Encoded)
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	case config.PayloadTypeAPIGatewayV2:
		var event events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, errors.Wrap(err, "failed to decode API Gateway v2 event")
		}
		resp := r.replay(ctx, event.RequestContext.HTTP.Method, event.RawPath, event.Headers, event.Body, event.IsBase64Encoded)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	case config.PayloadTypeLambdaURL:
		var event events.LambdaFunctionURLRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, errors.Wrap(err, "failed to decode Lambda function URL event")
		}
		resp := r.replay(ctx, event.RequestContext.HTTP.Method, event.RawPath, event.Headers, event.Body, event.IsBase64Encoded)
		return events.LambdaFunctionURLResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}
}

// replay runs an HTTP request rebuilt from a Lambda event through the router.
func (r *Runtime) replay(ctx context.Context, method, path string, headers map[string]string, body string, isBase64Encoded bool) models.Response {
	raw := []byte(body)
	if isBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			r.logger.Warn("failed to decode base64 request body", slog.Any("error", err))
			return handler.Error(http.StatusBadRequest, errors.New("failed to read request body"))
		}
		raw = decoded
	}
	if path == "" {
		path = "/"
	}

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(raw))
	if err != nil {
		r.logger.Warn("failed to rebuild HTTP request", slog.Any("error", err))
		return handler.Error(http.StatusBadRequest, errors.New("malformed request"))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := newResponseBuffer()
	r.ServeHTTP(rec, req)
	return rec.response()
}

// responseBuffer is an http.ResponseWriter collecting a response in memory.
type responseBuffer struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: http.Header{}}
}

func (b *responseBuffer) Header() http.Header {
	return b.header
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *responseBuffer) WriteHeader(statusCode int) {
	if b.status == 0 {
		b.status = statusCode
	}
}

func (b *responseBuffer) response() models.Response {
	headers := make(map[string]string, len(b.header))
	for k, v := range b.header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	return models.Response{
		Body:       b.body.String(),
		Headers:    headers,
		StatusCode: status,
	}
}
