// Package v1handler implements the /api REST endpoints on top of the
// authentication service and the registry.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"landregistry/internal/auth"
	"landregistry/internal/registry"
	"landregistry/pkg/logger"
	"landregistry/pkg/serrors"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

type Deps struct {
	Auth     auth.Service
	Registry registry.Registry
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON body of every failed call.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	status  int
	message string
}

//nolint:gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "authentication required"},
	serrors.ErrForbidden:    {http.StatusForbidden, "access denied"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "invalid request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflicting state"},
	serrors.ErrInternal:     {http.StatusInternalServerError, "internal error"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},

	serrors.ErrMethodNotAllowed: {http.StatusMethodNotAllowed, "method not allowed"},
}

// NewError converts err into the response sent to the client. Internal
// errors are logged and never expose their cause.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	ks, ok := kindStatuses[kind]
	if !ok {
		kind, ks = serrors.ErrInternal, kindStatuses[serrors.ErrInternal]
	}

	msg := serrors.MessageOf(err)
	switch {
	case kind == serrors.ErrInternal:
		logger.Error(ctx, "request failed", zap.Error(err))
		msg = ks.message
	case ks.status >= http.StatusInternalServerError:
		logger.Warn(ctx, "request failed", zap.Error(err))
	}
	if msg == "" {
		msg = ks.message
	}

	return &ErrorStatusCode{
		StatusCode: ks.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

// reply writes v as a 200 response or err as an error response.
func reply[T any](w http.ResponseWriter, r *http.Request, v T, err error) {
	if err != nil {
		writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusOK, v)
}

func created[T any](w http.ResponseWriter, r *http.Request, v T, err error) {
	if err != nil {
		writeError(w, r, err)

		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, v)
}

func noContent(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(w, r, err)

		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type messageResponse struct {
	Message string `json:"message"`
}

// decode reads a JSON body into dst. An empty body leaves dst untouched when
// optional is set.
func decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF) && optional:
		return nil
	case errors.Is(err, io.EOF):
		return serrors.With(serrors.ErrBadRequest, "request body is required")
	case errors.As(err, &maxErr):
		return serrors.With(serrors.ErrBadRequest, "request body is too large")
	default:
		return serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON body")
	}
}

//nolint:gochecknoglobals
var (
	errRouteNotFound    = serrors.With(serrors.ErrNotFound, "no such endpoint")
	errMethodNotAllowed = serrors.With(serrors.ErrMethodNotAllowed, "method not allowed on this endpoint")
)

// methodNotAllowedWriter turns the bare 405 written by the router, which
// already carries the Allow header, into the JSON error envelope.
type methodNotAllowedWriter struct {
	http.ResponseWriter
	r        *http.Request
	replaced bool
}

func (w *methodNotAllowedWriter) WriteHeader(status int) {
	if status == http.StatusMethodNotAllowed && !w.replaced && w.Header().Get("Content-Type") == "" {
		w.replaced = true
		writeError(w.ResponseWriter, w.r, errMethodNotAllowed)

		return
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *methodNotAllowedWriter) Write(b []byte) (int, error) {
	if w.replaced {
		return len(b), nil
	}

	return w.ResponseWriter.Write(b) //nolint: wrapcheck
}

func (w *methodNotAllowedWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func withMethodNotAllowed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&methodNotAllowedWriter{ResponseWriter: w, r: r}, r)
	})
}
