// Package cmd provides the command-line interface for mcp-must-gather.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// The CLI maintains backwards compatibility by running the serve command when
// no subcommand is specified, preserving the original behavior of the application.
//
// Command Structure:
//
//	mcp-must-gather [flags]                 # Starts the MCP server (default)
//	mcp-must-gather serve [flags]           # Explicitly starts the MCP server
//	mcp-must-gather version                 # Shows version information
//	mcp-must-gather self-update             # Updates to latest release
//	mcp-must-gather help [command]          # Shows help information
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-must-gather serve --must-gather ./must-gather           # Default STDIO transport
//	mcp-must-gather serve --must-gather ./must-gather --transport sse --http-addr :8080
//	mcp-must-gather serve --must-gather ./must-gather --transport streamable-http --http-endpoint /mcp
//
// The serve command requires a must-gather snapshot directory (--must-gather or
// the MUST_GATHER_PATH environment variable). All analysis tools read from that
// directory; the server never contacts a live cluster.
package cmd
