package cmd

import (
	"fmt"
	"os"
	"strings"
)

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// MustGatherPath is the root directory of the must-gather snapshot to analyze.
	MustGatherPath string

	// Logging settings
	DebugMode bool
	LogLevel  string

	// Metrics holds the dedicated metrics server configuration.
	Metrics MetricsServeConfig
}

// MetricsServeConfig holds configuration for the dedicated metrics server.
type MetricsServeConfig struct {
	Addr    string
	Enabled bool
}

// Validate checks the serve configuration for problems that would prevent
// the server from starting. It is called before any resources are created
// so misconfiguration fails fast with a clear message.
func (c *ServeConfig) Validate() error {
	switch c.Transport {
	case transportStdio, transportSSE, transportStreamableHTTP:
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: %s, %s, %s)",
			c.Transport, transportStdio, transportSSE, transportStreamableHTTP)
	}

	if c.MustGatherPath == "" {
		return fmt.Errorf("must-gather path is required (--must-gather or MUST_GATHER_PATH)")
	}

	switch c.Transport {
	case transportSSE:
		if err := validateEndpointPath(c.SSEEndpoint, "SSE endpoint"); err != nil {
			return err
		}
		if err := validateEndpointPath(c.MessageEndpoint, "message endpoint"); err != nil {
			return err
		}
	case transportStreamableHTTP:
		if err := validateEndpointPath(c.HTTPEndpoint, "HTTP endpoint"); err != nil {
			return err
		}
	}

	if c.Transport != transportStdio && c.HTTPAddr == "" {
		return fmt.Errorf("HTTP address is required for %s transport", c.Transport)
	}

	return nil
}

// validateEndpointPath checks that an HTTP endpoint path is usable as a mux pattern.
func validateEndpointPath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s must not be empty", fieldName)
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%s must start with '/' (got: %s)", fieldName, path)
	}
	return nil
}

// loadEnvIfEmpty loads an environment variable into a string pointer if it's empty.
func loadEnvIfEmpty(target *string, envKey string) {
	if *target == "" {
		*target = os.Getenv(envKey)
	}
}
