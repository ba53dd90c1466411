package discovery

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/mustgather"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	snapshot, err := mustgather.Open("../../mustgather/testdata/must-gather")
	require.NoError(t, err)

	sc, err := server.NewServerContext(context.Background(), server.WithSnapshot(snapshot))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callSearch(t *testing.T, sc *server.ServerContext, args map[string]interface{}) searchResponse {
	t.Helper()

	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handleSearchAnalysis(context.Background(), request, sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var response searchResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &response))
	return response
}

func TestSearchEmptyQueryReturnsCatalog(t *testing.T) {
	sc := newTestServerContext(t)

	response := callSearch(t, sc, map[string]interface{}{"limit": 50.0})

	assert.Equal(t, sc.Registry().Len(), response.Count)
	assert.NotEmpty(t, response.Usage)
}

func TestSearchKeywordRanksBestMatchFirst(t *testing.T) {
	sc := newTestServerContext(t)

	response := callSearch(t, sc, map[string]interface{}{"keyword": "failing"})

	require.NotZero(t, response.Count)
	assert.Equal(t, "getFailingPods", response.Results[0].Name)
}

func TestSearchCriticalClusterCapabilities(t *testing.T) {
	sc := newTestServerContext(t)

	response := callSearch(t, sc, map[string]interface{}{
		"severity": "critical",
		"scope":    "cluster",
	})

	require.Equal(t, 2, response.Count)
	names := []string{response.Results[0].Name, response.Results[1].Name}
	assert.ElementsMatch(t, []string{"getDegradedOperators", "getEtcdHealth"}, names)
}

func TestSearchUnknownComponentIsEmptyNotError(t *testing.T) {
	sc := newTestServerContext(t)

	response := callSearch(t, sc, map[string]interface{}{"component": "no-such-component"})

	assert.Zero(t, response.Count)
	assert.Empty(t, response.Results)
}

func TestSearchKeywordsNotSerialized(t *testing.T) {
	sc := newTestServerContext(t)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{"keyword": "etcd"}

	result, err := handleSearchAnalysis(context.Background(), request, sc)
	require.NoError(t, err)

	text := result.Content[0].(mcp.TextContent).Text
	assert.NotContains(t, text, `"keywords"`)
}

func callTypeDefinition(t *testing.T, sc *server.ServerContext, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()

	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handleGetTypeDefinition(context.Background(), request, sc)
	require.NoError(t, err)
	return result
}

func decodeTypeResponse(t *testing.T, result *mcp.CallToolResult) typeResponse {
	t.Helper()
	require.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var response typeResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &response))
	return response
}

func typeNames(response typeResponse) []string {
	names := make([]string, 0, len(response.Types))
	for _, d := range response.Types {
		names = append(names, d.Name)
	}
	return names
}

func TestGetTypeDefinitionRequiresTypeNames(t *testing.T) {
	sc := newTestServerContext(t)

	result := callTypeDefinition(t, sc, map[string]interface{}{})
	require.True(t, result.IsError)

	text := result.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, "typeNames is required")
}

func TestGetTypeDefinitionDefaultDepth(t *testing.T) {
	sc := newTestServerContext(t)

	response := decodeTypeResponse(t, callTypeDefinition(t, sc, map[string]interface{}{
		"typeNames": []interface{}{"PodSummary"},
	}))

	assert.Equal(t, []string{"PodSummary", "ContainerStatusSummary", "EventSummary"}, typeNames(response))
	assert.Contains(t, response.KnownTypes, "NodeSummary")
	for _, d := range response.Types {
		assert.Empty(t, d.Example, "examples should be omitted by default for %s", d.Name)
	}
}

func TestGetTypeDefinitionIncludeExamples(t *testing.T) {
	sc := newTestServerContext(t)

	response := decodeTypeResponse(t, callTypeDefinition(t, sc, map[string]interface{}{
		"typeNames":       []interface{}{"PodSummary"},
		"includeExamples": true,
	}))

	require.NotEmpty(t, response.Types)
	assert.NotEmpty(t, response.Types[0].Example)
}

func TestGetTypeDefinitionDottedPath(t *testing.T) {
	sc := newTestServerContext(t)

	response := decodeTypeResponse(t, callTypeDefinition(t, sc, map[string]interface{}{
		"typeNames": []interface{}{"PodSummary.containers"},
	}))

	require.NotEmpty(t, response.Types)
	assert.Equal(t, "PodSummary", response.Types[0].Name)
}

func TestGetTypeDefinitionDepthClamped(t *testing.T) {
	sc := newTestServerContext(t)

	// NodeSummary -> PodSummary -> ContainerStatusSummary: a large depth is
	// clamped but still resolves the full chain.
	response := decodeTypeResponse(t, callTypeDefinition(t, sc, map[string]interface{}{
		"typeNames": []interface{}{"NodeSummary"},
		"depth":     99.0,
	}))

	assert.Contains(t, typeNames(response), "ContainerStatusSummary")
}

func TestGetTypeDefinitionAllUnknown(t *testing.T) {
	sc := newTestServerContext(t)

	result := callTypeDefinition(t, sc, map[string]interface{}{
		"typeNames": []interface{}{"NoSuchType"},
	})
	require.True(t, result.IsError)

	text := result.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, "NoSuchType")
	assert.Contains(t, text, "PodSummary")
}

func TestRegisterDiscoveryTools(t *testing.T) {
	sc := newTestServerContext(t)

	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(true))
	require.NoError(t, RegisterDiscoveryTools(s, sc))
}
