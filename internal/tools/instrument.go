package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/instrumentation"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)

// WrapWithInstrumentation wraps a tool handler with tracing, metrics, and
// logging. The wrapper captures:
//   - Tool invocation timing
//   - An OpenTelemetry span per invocation
//   - Success/error status from both Go errors and MCP error results
//
// When no instrumentation provider is configured the wrapper only logs.
func WrapWithInstrumentation(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		spanCtx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		result, err := handler(spanCtx, request, sc)

		duration := time.Since(start)
		status := instrumentation.StatusSuccess

		switch {
		case err != nil:
			status = instrumentation.StatusError
			instrumentation.SetSpanError(span, err)
			sc.Logger().Error("tool invocation failed",
				"tool", toolName, "duration", duration.String(), "error", err)
		case result != nil && result.IsError:
			// MCP tool errors are returned in the result, not as Go errors
			status = instrumentation.StatusError
			sc.Logger().Warn("tool returned error result",
				"tool", toolName, "duration", duration.String())
		default:
			instrumentation.SetSpanSuccess(span)
			sc.Logger().Debug("tool invocation complete",
				"tool", toolName, "duration", duration.String())
		}

		if provider := sc.InstrumentationProvider(); provider.Enabled() {
			provider.Metrics().RecordToolInvocation(spanCtx, toolName, status, duration)
		}

		return result, err
	}
}
