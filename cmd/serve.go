package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/instrumentation"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/logging"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/mustgather"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/tools/analysis"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/tools/discovery"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		mustGatherPath string
		debugMode      bool
		logLevel       string

		// Transport options
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string

		// Metrics server options
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP must-gather server",
		Long: `Start the MCP must-gather server to provide diagnostic analysis tools
for OpenShift must-gather snapshots via the Model Context Protocol.

The server exposes three tools:
  - mustgather_search_analysis: search the catalog of analysis capabilities
  - mustgather_get_type_definition: expand result type definitions
  - mustgather_run_analysis: execute an analysis against the snapshot

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

A must-gather snapshot directory is required (--must-gather or the
MUST_GATHER_PATH environment variable). The server reads exclusively from
that directory and never contacts a live cluster.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Env var fallback only applies when the flag was not set.
			loadEnvIfEmpty(&mustGatherPath, "MUST_GATHER_PATH")

			config := ServeConfig{
				Transport:       transport,
				HTTPAddr:        httpAddr,
				SSEEndpoint:     sseEndpoint,
				MessageEndpoint: messageEndpoint,
				HTTPEndpoint:    httpEndpoint,
				MustGatherPath:  mustGatherPath,
				DebugMode:       debugMode,
				LogLevel:        logLevel,
				Metrics: MetricsServeConfig{
					Addr:    metricsAddr,
					Enabled: metricsEnabled,
				},
			}
			return runServe(config)
		},
	}

	// Snapshot flags
	cmd.Flags().StringVar(&mustGatherPath, "must-gather", "", "Path to the must-gather snapshot directory (can also be set via MUST_GATHER_PATH env var)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging (default: false)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, or error")

	// Transport flags
	cmd.Flags().StringVar(&transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Metrics flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", true, "Serve Prometheus metrics on a dedicated port when instrumentation is enabled")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Listen address for the dedicated metrics server")

	return cmd
}

// runServe contains the main server logic with support for multiple transports
func runServe(config ServeConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry instrumentation provider
	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := instrumentationProvider.Shutdown(context.Background()); shutdownErr != nil {
			if config.Transport != transportStdio {
				log.Printf("Error during instrumentation shutdown: %v", shutdownErr)
			}
		}
	}()

	if instrumentationProvider.Enabled() {
		log.Printf("OpenTelemetry instrumentation enabled (metrics: %s, tracing: %s)",
			instrumentationConfig.MetricsExporter, instrumentationConfig.TracingExporter)
	}

	// Open the must-gather snapshot. Open validates the directory layout and
	// resolves the image subdirectory that oc adm must-gather produces.
	snapshot, err := mustgather.Open(config.MustGatherPath)
	if err != nil {
		return fmt.Errorf("failed to open must-gather at %s: %w", config.MustGatherPath, err)
	}

	// Structured logs go to stderr; stdout is reserved for the stdio transport.
	level := config.LogLevel
	if config.DebugMode {
		level = "debug"
	}
	logger := logging.NewSlogAdapter(logging.NewLogger(os.Stderr, level))

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithSnapshot(snapshot),
		server.WithMustGatherPath(config.MustGatherPath),
		server.WithLogger(logger),
		server.WithLogLevel(level),
		server.WithInstrumentationProvider(instrumentationProvider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			// Only log shutdown errors for non-stdio transports to avoid output interference
			if config.Transport != transportStdio {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	logger.Info("must-gather snapshot loaded",
		"path", snapshot.Path(),
		"capabilities", serverContext.Registry().Len(),
		"types", serverContext.TypeGraph().Len())

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-must-gather", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	// Register all tool categories
	if err := discovery.RegisterDiscoveryTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register discovery tools: %w", err)
	}

	if err := analysis.RegisterAnalysisTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register analysis tools: %w", err)
	}

	// Start the appropriate server based on transport type
	switch config.Transport {
	case transportStdio:
		// Don't print startup message for stdio mode as it interferes with MCP communication
		return runStdioServer(shutdownCtx, mcpSrv)
	case transportSSE:
		fmt.Printf("Starting MCP must-gather server with %s transport...\n", config.Transport)
		return runSSEServer(mcpSrv, config.HTTPAddr, config.SSEEndpoint, config.MessageEndpoint, shutdownCtx, config.DebugMode)
	case transportStreamableHTTP:
		fmt.Printf("Starting MCP must-gather server with %s transport...\n", config.Transport)
		return runStreamableHTTPServer(mcpSrv, config.HTTPAddr, config.HTTPEndpoint, shutdownCtx, instrumentationProvider, serverContext, config.Metrics)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}
}
