package controller

import (
	"fmt"
	"landregistry/pkg/logger"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that turns a panic in the downstream
// handler into a logged 500 response instead of a dropped connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint: errorlint, err113
				panic(rec)
			}

			logger.Error(r.Context(), "panic in http handler",
				zap.String("panic", fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
