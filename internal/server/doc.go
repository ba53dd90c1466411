// Package server provides the ServerContext abstraction for dependency
// injection and lifecycle management of the must-gather MCP server.
//
// ServerContext bundles the loaded must-gather snapshot, the analysis
// capability registry, the result type graph, logging, configuration, and
// optional OpenTelemetry instrumentation behind functional options:
//
//	serverCtx, err := server.NewServerContext(ctx,
//		server.WithSnapshot(snapshot),
//		server.WithLogger(logger),
//		server.WithMustGatherPath(path),
//	)
//	if err != nil {
//		return err
//	}
//	defer serverCtx.Shutdown()
//
// The package also ships HTTP plumbing shared by the network transports: a
// HealthChecker serving /healthz, /readyz and /healthz/detailed, and a
// MetricsServer exposing the Prometheus registry on a dedicated port.
package server
