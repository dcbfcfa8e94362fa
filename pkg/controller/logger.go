package controller

import (
	"context"
	"landregistry/pkg/logger"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// responseRecorder remembers the status and body size written downstream.
type responseRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rec *responseRecorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }

// ClientIP returns the originating client address: the first X-Forwarded-For
// hop, then X-Real-IP, then the connection's remote host.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestID returns the id WithLogger assigned to the request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

const maxRequestIDLen = 128

// requestID accepts a caller supplied id when it is short and printable.
func requestID(r *http.Request) string {
	id := r.Header.Get("X-Request-Id")
	if id == "" || len(id) > maxRequestIDLen || strings.IndexFunc(id, func(c rune) bool {
		return c > unicode.MaxASCII || !unicode.IsPrint(c)
	}) >= 0 {
		return uuid.NewString()
	}

	return id
}

// WithLogger gives every request an id and a logger carrying it (plus the
// trace id when a span is active), echoes the id in X-Request-Id and writes
// one access log line once the handler returns. Server errors are logged at
// error level.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestID(r)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		ctx = logger.WithFields(ctx, zap.String(string(requestIDKey), id))
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			ctx = logger.WithFields(ctx, zap.String("trace_id", sc.TraceID().String()))
		}
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status_code", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", ClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
		}
		if rec.status >= http.StatusInternalServerError {
			logger.Error(ctx, "access log", fields...)

			return
		}
		logger.Info(ctx, "access log", fields...)
	})
}
