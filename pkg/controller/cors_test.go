package controller_test

import (
	"landregistry/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serveCORS(t *testing.T, origins []string, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	req := httptest.NewRequest(method, "/api/land-parcels", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	controller.WithCORS(origins)(next).ServeHTTP(rec, req)

	return rec, called
}

func TestWithCORS_Preflight(t *testing.T) {
	rec, called := serveCORS(t, nil, http.MethodOptions, "http://localhost:5173")

	require.False(t, called, "preflight must not reach the handler")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_AnyOrigin(t *testing.T) {
	rec, called := serveCORS(t, []string{"*"}, http.MethodGet, "https://portal.example")

	require.True(t, called)
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWithCORS_AllowList(t *testing.T) {
	origins := []string{"https://portal.landsystem.rw", "http://localhost:5173"}

	rec, called := serveCORS(t, origins, http.MethodGet, "http://localhost:5173")
	require.True(t, called)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", rec.Header().Get("Vary"))

	rec, called = serveCORS(t, origins, http.MethodGet, "https://evil.example")
	require.True(t, called, "unknown origins are served, the browser enforces the policy")
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
