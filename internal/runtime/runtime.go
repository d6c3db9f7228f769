// Package runtime exposes the handlers over HTTP and AWS Lambda.
package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/isometry/predict-app/internal/config"
	"github.com/isometry/predict-app/internal/handler"
	"github.com/isometry/predict-app/internal/helpers"
	"github.com/isometry/predict-app/internal/models"
	"golang.org/x/time/rate"
)

// DefaultMaxBodyBytes is the request body limit used when none is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

const (
	routeHealth  = "health"
	routePredict = "predict"
)

// Archiver stores the raw body of accepted predict requests.
type Archiver interface {
	Archive(ctx context.Context, id string, body []byte) error
}

// Runtime routes requests to the handler.
type Runtime struct {
	*handler.Handler
	logger       *slog.Logger
	router       *mux.Router
	archiver     Archiver
	maxBodyBytes int64
	payloadType  string
	archiveWarn  *rate.Sometimes
}

// NewRuntime creates a new runtime instance and registers its routes.
func NewRuntime(handler *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{
		Handler:      handler,
		maxBodyBytes: DefaultMaxBodyBytes,
		payloadType:  config.PayloadTypeAPIGatewayV2,
		archiveWarn:  helpers.OnceAMinute(),
	}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.router = _inst.routes()
	return _inst
}

// PayloadType returns the Lambda event shape the runtime decodes.
func (r *Runtime) PayloadType() string {
	return r.payloadType
}

func (r *Runtime) routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", r.health).Methods(http.MethodGet).Name(routeHealth)
	router.HandleFunc("/predict", r.predict).Methods(http.MethodPost).Name(routePredict)
	router.NotFoundHandler = http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		r.logger.Debug("rejecting HTTP request...", slog.String("reason", "not found"), slog.String("path", req.URL.Path))
		helpers.RespondHTTP(handler.Error(http.StatusNotFound, errors.New("not found")), rw)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		r.logger.Debug("rejecting HTTP request...", slog.String("reason", "method not allowed"), slog.String("method", req.Method), slog.String("path", req.URL.Path))
		helpers.RespondHTTP(handler.Error(http.StatusMethodNotAllowed, errors.New("method not allowed")), rw)
	})
	return router
}

// ServeHTTP is the HTTP handler for the runtime.
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel comparison mandated by net/http
			panic(rec)
		}
		r.logger.Error("recovered from panic", slog.Any("panic", rec), slog.String("path", req.URL.Path))
		helpers.RespondHTTP(handler.Error(http.StatusInternalServerError, errors.New("internal server error")), resp)
	}()
	r.router.ServeHTTP(resp, req)
}

func (r *Runtime) health(resp http.ResponseWriter, req *http.Request) {
	helpers.RespondHTTP(r.Handler.Health(models.Request{Headers: models.NormaliseHeaders(req.Header)}), resp)
}

func (r *Runtime) predict(resp http.ResponseWriter, req *http.Request) {
	requestID := helpers.RequestID()
	logger := r.logger.With(slog.String("requestId", requestID))
	logger.Debug("received HTTP request...", slog.String("requestor", req.RemoteAddr), slog.String("method", req.Method), slog.String("path", req.URL.Path))

	body, err := io.ReadAll(http.MaxBytesReader(resp, req.Body, r.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("rejecting oversized request body", slog.Int64("limit", tooLarge.Limit))
			helpers.RespondHTTP(handler.Error(http.StatusRequestEntityTooLarge, errors.New("request body too large")), resp)
			return
		}
		logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(handler.Error(http.StatusBadRequest, errors.New("failed to read request body")), resp)
		return
	}

	request := models.Request{
		Body:    body,
		Headers: models.NormaliseHeaders(req.Header),
	}
	response, err := r.Handler.Predict(req.Context(), request)
	if err != nil {
		logger.Info("rejected predict request", slog.Int("status", response.StatusCode), slog.Any("error", err))
	} else {
		logger.Info("handled predict request", slog.Int("status", response.StatusCode), slog.Int("size", len(body)))
	}

	// Extensions
	r.extensions(req.Context(), logger, requestID, request, response)
	helpers.RespondHTTP(response, resp)
}

// extensions runs the optional side effects of an accepted predict request. They never alter the response.
func (r *Runtime) extensions(ctx context.Context, logger *slog.Logger, requestID string, request models.Request, response models.Response) {
	if r.archiver == nil || response.StatusCode != http.StatusOK {
		return
	}
	if err := r.archiver.Archive(ctx, requestID, request.Body); err != nil {
		logger.Debug("failed to archive payload", slog.Any("error", err))
		r.archiveWarn.Do(func() {
			logger.Warn("failed to archive payload; further failures within a minute are logged at debug level", slog.Any("error", err))
		})
	}
}
