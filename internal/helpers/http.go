package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/isometry/predict-app/internal/models"
)

// ContentTypeJSON is the content type of every response body produced by the service.
const ContentTypeJSON = "application/json"

const marshalFailureBody = `{"error":"failed to encode response"}`

// JSONResponse encodes payload as the JSON body of a response with the given status code.
// HTML characters are not escaped so echoed values keep their original spelling.
func JSONResponse(statusCode int, payload any) models.Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	body := marshalFailureBody
	if err := enc.Encode(payload); err != nil {
		statusCode = http.StatusInternalServerError
	} else {
		body = string(bytes.TrimRight(buf.Bytes(), "\n"))
	}
	return models.Response{
		Body:       body,
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
	}
}

// RespondHTTP writes response to rw. A zero status code is sent as 200.
func RespondHTTP(response models.Response, rw http.ResponseWriter) {
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write([]byte(response.Body))
}
