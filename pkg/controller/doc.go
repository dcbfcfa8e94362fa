// Package controller holds the transport-agnostic HTTP middlewares wrapped
// around the API router: CORS (WithCORS), request ids and access logs
// (WithLogger), panic recovery (WithRecover), plus the pprof mux.
package controller
