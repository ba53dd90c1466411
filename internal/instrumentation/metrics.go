package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrTool     = "tool"
	attrFunction = "function"
	attrStatus   = "status"
	attrMethod   = "method"
	attrPath     = "path"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// HTTP transport metrics
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	// MCP tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram

	// Discovery metrics
	searchRequestsTotal metric.Int64Counter
	searchResults       metric.Int64Histogram
	typeExpansionsTotal metric.Int64Counter

	// Analysis function metrics
	analysisRunsTotal   metric.Int64Counter
	analysisRunDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	m.searchRequestsTotal, err = meter.Int64Counter(
		"analysis_search_requests_total",
		metric.WithDescription("Total number of analysis capability searches"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis_search_requests_total counter: %w", err)
	}

	m.searchResults, err = meter.Int64Histogram(
		"analysis_search_results",
		metric.WithDescription("Number of capabilities returned per search"),
		metric.WithUnit("{capability}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 25, 50),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis_search_results histogram: %w", err)
	}

	m.typeExpansionsTotal, err = meter.Int64Counter(
		"type_expansions_total",
		metric.WithDescription("Total number of type definition expansions"),
		metric.WithUnit("{expansion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create type_expansions_total counter: %w", err)
	}

	m.analysisRunsTotal, err = meter.Int64Counter(
		"analysis_runs_total",
		metric.WithDescription("Total number of analysis function executions"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis_runs_total counter: %w", err)
	}

	m.analysisRunDuration, err = meter.Float64Histogram(
		"analysis_run_duration_seconds",
		metric.WithDescription("Analysis function execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis_run_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordToolInvocation records an MCP tool invocation with its outcome and duration.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordSearch records a capability search and the number of results it returned.
func (m *Metrics) RecordSearch(ctx context.Context, resultCount int) {
	if m.searchRequestsTotal == nil || m.searchResults == nil {
		return // Instrumentation not initialized
	}

	m.searchRequestsTotal.Add(ctx, 1)
	m.searchResults.Record(ctx, int64(resultCount))
}

// RecordTypeExpansion records a type definition expansion.
func (m *Metrics) RecordTypeExpansion(ctx context.Context, resolvedCount int) {
	if m.typeExpansionsTotal == nil {
		return // Instrumentation not initialized
	}

	m.typeExpansionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("resolved", resolvedCount),
	))
}

// RecordAnalysisRun records an analysis function execution with its outcome
// and duration. The function label is bounded by the registry catalog, so
// cardinality stays low.
func (m *Metrics) RecordAnalysisRun(ctx context.Context, function, status string, duration time.Duration) {
	if m.analysisRunsTotal == nil || m.analysisRunDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrFunction, function),
		attribute.String(attrStatus, status),
	}

	m.analysisRunsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.analysisRunDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
