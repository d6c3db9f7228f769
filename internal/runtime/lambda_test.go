package runtime_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isometry/predict-app/internal/config"
	"github.com/isometry/predict-app/internal/handler"
	"github.com/isometry/predict-app/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestRuntime_LambdaAPIGatewayV2(t *testing.T) {
	testCases := []struct {
		Name           string
		Event          events.APIGatewayV2HTTPRequest
		ExpectedStatus int
		ExpectedBody   string
	}{
		{
			Name: "health",
			Event: events.APIGatewayV2HTTPRequest{
				RawPath: "/health",
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodGet},
				},
			},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   `{"status":"ok"}`,
		},
		{
			Name: "predict_declared_json",
			Event: events.APIGatewayV2HTTPRequest{
				RawPath: "/predict",
				Headers: map[string]string{"content-type": "application/json"},
				Body:    `{"a":1}`,
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodPost},
				},
			},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   `{"success":true,"input":{"a":1}}`,
		},
		{
			Name: "predict_base64_body_sniffed",
			Event: events.APIGatewayV2HTTPRequest{
				RawPath:         "/predict",
				Body:            base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`)),
				IsBase64Encoded: true,
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodPost},
				},
			},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   `{"success":true,"input":[1,2,3]}`,
		},
		{
			Name: "predict_invalid_base64",
			Event: events.APIGatewayV2HTTPRequest{
				RawPath:         "/predict",
				Body:            "%%%",
				IsBase64Encoded: true,
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodPost},
				},
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   `{"error":"failed to read request body"}`,
		},
		{
			Name: "predict_text_plain",
			Event: events.APIGatewayV2HTTPRequest{
				RawPath: "/predict",
				Headers: map[string]string{"content-type": "text/plain"},
				Body:    `{"a":1}`,
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodPost},
				},
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   `{"error":"Request must be JSON (Content-Type application/json)"}`,
		},
		{
			Name: "unknown_path",
			Event: events.APIGatewayV2HTTPRequest{
				RawPath: "/",
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodGet},
				},
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedBody:   `{"error":"not found"}`,
		},
	}

	rtm := runtime.NewRuntime(handler.NewPredictHandler(),
		runtime.WithLambdaPayloadType(config.PayloadTypeAPIGatewayV2))
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			out, err := rtm.Lambda(context.Background(), mustMarshal(t, tc.Event))
			require.NoError(t, err)

			resp, ok := out.(events.APIGatewayV2HTTPResponse)
			require.True(t, ok, "unexpected response type %T", out)
			assert.Equal(t, tc.ExpectedStatus, resp.StatusCode)
			assert.JSONEq(t, tc.ExpectedBody, resp.Body)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		})
	}
}

func TestRuntime_LambdaAPIGatewayV1(t *testing.T) {
	rtm := runtime.NewRuntime(handler.NewPredictHandler(),
		runtime.WithLambdaPayloadType(config.PayloadTypeAPIGatewayV1))

	out, err := rtm.Lambda(context.Background(), mustMarshal(t, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/predict",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `not valid json`,
	}))
	require.NoError(t, err)

	resp, ok := out.(events.APIGatewayProxyResponse)
	require.True(t, ok, "unexpected response type %T", out)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, resp.Body)
}

func TestRuntime_LambdaFunctionURL(t *testing.T) {
	rtm := runtime.NewRuntime(handler.NewPredictHandler(),
		runtime.WithLambdaPayloadType(config.PayloadTypeLambdaURL))

	out, err := rtm.Lambda(context.Background(), mustMarshal(t, events.LambdaFunctionURLRequest{
		RawPath: "/predict",
		Body:    `"hi"`,
		RequestContext: events.LambdaFunctionURLRequestContext{
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{Method: http.MethodPost},
		},
	}))
	require.NoError(t, err)

	resp, ok := out.(events.LambdaFunctionURLResponse)
	require.True(t, ok, "unexpected response type %T", out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"input":"hi"}`, resp.Body)
}

func TestRuntime_LambdaErrors(t *testing.T) {
	testCases := []struct {
		Name        string
		PayloadType string
		Payload     json.RawMessage
	}{
		{Name: "unsupported_payload_type", PayloadType: "sqs", Payload: json.RawMessage(`{}`)},
		{Name: "malformed_v1_event", PayloadType: config.PayloadTypeAPIGatewayV1, Payload: json.RawMessage(`[]`)},
		{Name: "malformed_v2_event", PayloadType: config.PayloadTypeAPIGatewayV2, Payload: json.RawMessage(`"x"`)},
		{Name: "malformed_url_event", PayloadType: config.PayloadTypeLambdaURL, Payload: json.RawMessage(`1`)},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rtm := runtime.NewRuntime(handler.NewPredictHandler(), runtime.WithLambdaPayloadType(tc.PayloadType))
			out, err := rtm.Lambda(context.Background(), tc.Payload)
			assert.Error(t, err)
			assert.Nil(t, out)
		})
	}
}
