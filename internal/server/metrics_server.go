package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/instrumentation"
)

// DefaultMetricsAddr is the default listen address for the metrics server.
const DefaultMetricsAddr = ":9090"

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP transports.
const DefaultShutdownTimeout = 30 * time.Second

// MetricsServerConfig holds configuration for the dedicated metrics server.
type MetricsServerConfig struct {
	// Addr is the listen address (default ":9090").
	Addr string

	// Enabled controls whether the metrics server should run.
	Enabled bool

	// InstrumentationProvider supplies the Prometheus registry to expose.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves Prometheus metrics on a dedicated port, isolated from
// the main MCP traffic.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
}

// NewMetricsServer creates a metrics server exposing /metrics and /healthz.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.InstrumentationProvider == nil {
		return nil, errors.New("instrumentation provider is required")
	}

	addr := config.Addr
	if addr == "" {
		addr = DefaultMetricsAddr
	}

	mux := http.NewServeMux()

	if handler := config.InstrumentationProvider.PrometheusHandler(); handler != nil {
		mux.Handle("/metrics", handler)
	} else {
		// Non-Prometheus exporters push metrics elsewhere; the endpoint
		// still responds so probes do not fail.
		mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "prometheus exporter not configured", http.StatusNotFound)
		})
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &MetricsServer{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		addr: addr,
	}, nil
}

// Addr returns the configured listen address.
func (s *MetricsServer) Addr() string {
	return s.addr
}

// Start runs the metrics server. It blocks until the server stops and
// returns http.ErrServerClosed on graceful shutdown.
func (s *MetricsServer) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
