// Package registry defines the static catalog of analysis functions that can
// be run against a must-gather snapshot, and the ranked search used to
// discover them.
//
// The registry is the discovery half of the progressive disclosure surface:
// instead of registering one MCP tool per analysis function, the server
// exposes a single search tool that returns matching descriptors, each fully
// describing the function's signature, parameters, and return type. The
// catalog is fixed at startup and read-only for the process lifetime, so the
// search may be called concurrently without coordination.
package registry
