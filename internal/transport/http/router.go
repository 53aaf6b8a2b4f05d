// Package httptransport exposes the MCP server over streamable HTTP together
// with the operational endpoints: Prometheus metrics and health probes.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"entragraph/internal/platform/health"
	"entragraph/internal/platform/middleware"
)

// NewRouter wires the MCP endpoint behind the shared middleware stack. The
// MCP handler manages its own sessions; the router only adds correlation,
// logging, and recovery around it.
func NewRouter(mcpHandler http.Handler, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))

	r.Handle("/mcp", mcpHandler)
	r.Handle("/metrics", promhttp.Handler())
	healthHandler.Register(r)

	return r
}
