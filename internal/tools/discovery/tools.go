// Package discovery implements the progressive disclosure tools: searching
// the analysis capability catalog and expanding result type definitions.
package discovery

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/tools"
)

// RegisterDiscoveryTools registers the search and type definition tools with
// the MCP server.
func RegisterDiscoveryTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchTool := mcp.NewTool("mustgather_search_analysis",
		mcp.WithDescription(`Search the catalog of must-gather analysis functions. Returns ranked capability descriptors with their signatures and parameters. Use this first to discover what analyses are available, then execute one with mustgather_run_analysis.`),
		mcp.WithString("keyword",
			mcp.Description("Free-text term matched against function names, keywords, and descriptions (e.g. 'failing', 'etcd', 'restart')"),
		),
		mcp.WithString("component",
			mcp.Description("Filter by cluster component (e.g. 'cluster-operators', 'etcd', 'nodes', 'workloads')"),
		),
		mcp.WithString("severity",
			mcp.Description("Filter by typical finding severity"),
			mcp.Enum("critical", "warning", "info"),
		),
		mcp.WithString("scope",
			mcp.Description("Filter by the cluster level the analysis operates on"),
			mcp.Enum("cluster", "namespace", "pod", "node", "container"),
		),
		mcp.WithString("category",
			mcp.Description("Filter by the kind of question the analysis answers"),
			mcp.Enum("health", "performance", "configuration", "logs"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default 10, maximum 50)"),
		),
	)

	s.AddTool(searchTool, tools.WrapWithInstrumentation("mustgather_search_analysis", handleSearchAnalysis, sc))

	typeTool := mcp.NewTool("mustgather_get_type_definition",
		mcp.WithDescription(`Look up the definitions of result types returned by analysis functions. Referenced types are expanded transitively up to the requested depth, so nested shapes can be understood without extra round trips.`),
		mcp.WithArray("typeNames",
			mcp.Required(),
			mcp.Description("Type names to resolve (e.g. ['PodSummary']). Dotted field paths such as 'PodSummary.containers' resolve to their base type."),
		),
		mcp.WithNumber("depth",
			mcp.Description("How many levels of referenced types to include (default 1, maximum 3)"),
		),
		mcp.WithBoolean("includeExamples",
			mcp.Description("Include an example value with each definition (default: false)"),
		),
	)

	s.AddTool(typeTool, tools.WrapWithInstrumentation("mustgather_get_type_definition", handleGetTypeDefinition, sc))

	return nil
}
