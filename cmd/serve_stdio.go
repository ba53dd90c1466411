package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer runs the server with STDIO transport until stdin closes or
// the shutdown context is cancelled.
func runStdioServer(ctx context.Context, mcpSrv *mcpserver.MCPServer) error {
	stdioServer := mcpserver.NewStdioServer(mcpSrv)

	// Stdout carries the MCP stream; diagnostics must go to stderr.
	stdioServer.SetErrorLogger(log.New(os.Stderr, "", log.LstdFlags))

	err := stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	// Don't print to stdout in stdio mode as it interferes with MCP communication
	return nil
}
