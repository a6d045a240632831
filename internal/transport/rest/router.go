// Package rest serves the optional ops endpoints: liveness and prometheus
// metrics. It never touches the simulator state.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the ops handler tree.
func NewRouter(log *slog.Logger, health *HealthHandler, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Live)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(log.Handler(), slog.LevelError),
	}))

	return Chain(Recovery(log), AccessLog(log))(mux)
}
