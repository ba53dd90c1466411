// Package logging provides structured logging utilities for the
// mcp-must-gather application.
//
// This package centralizes logging patterns so the codebase logs with
// consistent attribute names using the standard library's slog package.
// Log output always goes to stderr: the MCP stdio transport owns stdout.
//
// Create a logger scoped to a tool:
//
//	logger := logging.WithTool(slog.Default(), "mustgather_search_analysis")
//	logger.Info("search completed",
//	    logging.Count(len(results)),
//	    logging.Status(logging.StatusSuccess))
package logging
