// Package analysis implements the execution tool that dispatches registry
// capabilities against the loaded must-gather snapshot.
package analysis

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/tools"
)

// RegisterAnalysisTools registers the analysis execution tool with the MCP server.
func RegisterAnalysisTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	runTool := mcp.NewTool("mustgather_run_analysis",
		mcp.WithDescription(`Execute a must-gather analysis function by name and return its findings as JSON. Discover available functions and their parameters with mustgather_search_analysis.`),
		mcp.WithString("function",
			mcp.Required(),
			mcp.Description("Name of the analysis function to execute (e.g. 'getDegradedOperators')"),
		),
		mcp.WithObject("parameters",
			mcp.Description("Arguments declared by the function's descriptor (e.g. {\"namespace\": \"openshift-etcd\", \"tailLines\": 100})"),
		),
	)

	s.AddTool(runTool, tools.WrapWithInstrumentation("mustgather_run_analysis", handleRunAnalysis, sc))

	return nil
}
