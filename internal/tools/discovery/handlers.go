package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/registry"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/tools"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/typegraph"
)

// Expansion depth bounds for type definition lookups.
const (
	defaultDepth = 1
	maxDepth     = 3
)

// searchResponse is the JSON payload of mustgather_search_analysis.
type searchResponse struct {
	Count   int                   `json:"count"`
	Results []registry.Descriptor `json:"results"`
	Usage   string                `json:"usage"`
}

// typeResponse is the JSON payload of mustgather_get_type_definition.
type typeResponse struct {
	Count      int                    `json:"count"`
	Types      []typegraph.Descriptor `json:"types"`
	KnownTypes []string               `json:"knownTypes"`
}

// handleSearchAnalysis handles catalog searches.
func handleSearchAnalysis(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query := registry.Query{
		Component: tools.OptionalString(args, "component"),
		Severity:  tools.OptionalString(args, "severity"),
		Scope:     tools.OptionalString(args, "scope"),
		Category:  tools.OptionalString(args, "category"),
		Keyword:   tools.OptionalString(args, "keyword"),
		Limit:     tools.OptionalInt(args, "limit", 0),
	}

	results := sc.Registry().Search(query)

	if provider := sc.InstrumentationProvider(); provider.Enabled() {
		provider.Metrics().RecordSearch(ctx, len(results))
	}

	response := searchResponse{
		Count:   len(results),
		Results: results,
		Usage:   "Execute a capability with mustgather_run_analysis, passing its name as 'function' and any declared parameters. Inspect result shapes with mustgather_get_type_definition.",
	}

	return tools.MarshalResult(response)
}

// handleGetTypeDefinition handles type definition expansion.
func handleGetTypeDefinition(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	typeNames := tools.StringSlice(args, "typeNames")
	if len(typeNames) == 0 {
		return mcp.NewToolResultError("typeNames is required and must contain at least one type name"), nil
	}

	depth := tools.OptionalInt(args, "depth", defaultDepth)
	if depth < 1 {
		depth = defaultDepth
	}
	if depth > maxDepth {
		depth = maxDepth
	}

	includeExamples := tools.OptionalBool(args, "includeExamples")

	graph := sc.TypeGraph()
	expanded := typegraph.Expand(graph, typeNames, depth, includeExamples)

	if provider := sc.InstrumentationProvider(); provider.Enabled() {
		provider.Metrics().RecordTypeExpansion(ctx, len(expanded))
	}

	if len(expanded) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf(
			"none of the requested types %v are known; known types: %s",
			typeNames, strings.Join(graph.KnownNames(), ", "))), nil
	}

	response := typeResponse{
		Count:      len(expanded),
		Types:      expanded,
		KnownTypes: graph.KnownNames(),
	}

	return tools.MarshalResult(response)
}
