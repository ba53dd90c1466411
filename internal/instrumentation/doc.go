// Package instrumentation provides OpenTelemetry metrics and tracing for the
// must-gather MCP server.
//
// Instrumentation is disabled by default for zero overhead. When enabled via
// configuration (INSTRUMENTATION_ENABLED=true), the Provider wires a meter
// provider and optionally a tracer provider into the global OpenTelemetry
// state. Metrics cover MCP tool invocations, capability searches, type
// definition expansions, and analysis function executions.
//
// The default metrics exporter is Prometheus, exposed through
// Provider.PrometheusHandler on a dedicated metrics server. OTLP and stdout
// exporters are available for both metrics and traces.
package instrumentation
