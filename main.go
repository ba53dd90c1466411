package main

import "github.com/Prashanth684/must-gather-code-execution-mcp/cmd"

// version is overridden at build time via:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
