package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/instrumentation"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/tools"
)

// handleRunAnalysis dispatches a registry capability to the snapshot.
func handleRunAnalysis(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	function := tools.OptionalString(args, "function")
	if function == "" {
		return mcp.NewToolResultError("function is required"), nil
	}
	if _, ok := sc.Registry().Get(function); !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown analysis function %q; valid functions: %s",
			function, strings.Join(sc.Registry().Names(), ", "))), nil
	}

	params := tools.ObjectArg(args, "parameters")
	namespace := tools.OptionalString(params, "namespace")

	spanCtx, span := instrumentation.StartAnalysisSpan(ctx, function, namespace)
	defer span.End()

	start := time.Now()
	result, err := dispatch(spanCtx, sc, function, params)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	if provider := sc.InstrumentationProvider(); provider.Enabled() {
		provider.Metrics().RecordAnalysisRun(spanCtx, function, status, duration)
	}

	if err != nil {
		instrumentation.SetSpanError(span, err)
		return mcp.NewToolResultError(fmt.Sprintf("Analysis %s failed: %v", function, err)), nil
	}
	instrumentation.SetSpanSuccess(span)

	return tools.MarshalResult(result)
}

// dispatch maps a registry function name onto the corresponding Snapshot
// method. Parameter names follow the registry descriptors.
func dispatch(ctx context.Context, sc *server.ServerContext, function string, params map[string]interface{}) (interface{}, error) {
	snapshot := sc.Snapshot()

	switch function {
	case "getDegradedOperators":
		return snapshot.DegradedOperators(ctx)

	case "getEtcdHealth":
		return snapshot.EtcdHealth(ctx)

	case "getFailingPods":
		return snapshot.FailingPods(ctx, tools.OptionalString(params, "namespace"))

	case "getNodeConditions":
		return snapshot.NodeConditions(ctx)

	case "getPodRestarts":
		minRestarts := tools.OptionalInt(params, "minRestarts", 1)
		return snapshot.PodRestarts(ctx, tools.OptionalString(params, "namespace"), minRestarts)

	case "getNodeResourceUsage":
		return snapshot.NodeResourceUsage(ctx)

	case "getClusterVersion":
		return snapshot.ClusterVersion(ctx)

	case "getNamespaceSummary":
		namespace := tools.OptionalString(params, "namespace")
		if namespace == "" {
			return nil, fmt.Errorf("namespace is required")
		}
		return snapshot.NamespaceSummary(ctx, namespace)

	case "getPodLogs":
		namespace := tools.OptionalString(params, "namespace")
		podName := tools.OptionalString(params, "podName")
		if namespace == "" || podName == "" {
			return nil, fmt.Errorf("namespace and podName are required")
		}
		logs, err := snapshot.PodLogs(ctx, namespace, podName,
			tools.OptionalString(params, "container"),
			tools.OptionalInt(params, "tailLines", 0))
		if err != nil {
			return nil, err
		}
		return logResult{Namespace: namespace, Pod: podName, Logs: logs}, nil

	case "getRecentEvents":
		return snapshot.RecentEvents(ctx,
			tools.OptionalString(params, "namespace"),
			tools.OptionalBool(params, "warningsOnly"))

	case "getOperatorLogs":
		operator := tools.OptionalString(params, "operator")
		if operator == "" {
			return nil, fmt.Errorf("operator is required")
		}
		logs, err := snapshot.OperatorLogs(ctx, operator,
			tools.OptionalInt(params, "tailLines", 0))
		if err != nil {
			return nil, err
		}
		return logResult{Operator: operator, Logs: logs}, nil

	default:
		// Unreachable while the registry and this switch stay in sync;
		// kept as a guard for descriptors added without a dispatch arm.
		return nil, fmt.Errorf("analysis function %q has no executor", function)
	}
}

// logResult wraps raw log text with the coordinates it came from.
type logResult struct {
	Namespace string `json:"namespace,omitempty"`
	Pod       string `json:"pod,omitempty"`
	Operator  string `json:"operator,omitempty"`
	Logs      string `json:"logs"`
}
