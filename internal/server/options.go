package server

import (
	"errors"
	"log"
	"os"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/instrumentation"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/mustgather"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/registry"
	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/typegraph"
)

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithSnapshot sets the must-gather snapshot for the ServerContext.
func WithSnapshot(snapshot mustgather.Snapshot) Option {
	return func(sc *ServerContext) error {
		if snapshot == nil {
			return ErrMissingSnapshot
		}
		sc.snapshot = snapshot
		return nil
	}
}

// WithRegistry sets the analysis capability registry for the ServerContext.
func WithRegistry(reg *registry.Registry) Option {
	return func(sc *ServerContext) error {
		if reg == nil {
			return ErrMissingRegistry
		}
		sc.registry = reg
		return nil
	}
}

// WithTypeGraph sets the result type graph for the ServerContext.
func WithTypeGraph(graph *typegraph.Graph) Option {
	return func(sc *ServerContext) error {
		if graph == nil {
			return ErrMissingTypeGraph
		}
		sc.typeGraph = graph
		return nil
	}
}

// WithLogger sets the logger for the ServerContext.
func WithLogger(logger Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// WithServerName sets the server name in the configuration.
func WithServerName(name string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.ServerName = name
		return nil
	}
}

// WithMustGatherPath records the snapshot root directory in the configuration.
func WithMustGatherPath(path string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.MustGatherPath = path
		return nil
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.LogLevel = level
		return nil
	}
}

// WithInstrumentationProvider sets the OpenTelemetry instrumentation provider.
// This enables production-grade observability including metrics and tracing.
func WithInstrumentationProvider(provider *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		sc.instrumentationProvider = provider
		return nil
	}
}

// Error definitions for ServerContext validation and operations.
var (
	ErrMissingSnapshot  = errors.New("must-gather snapshot is required")
	ErrMissingRegistry  = errors.New("capability registry is required")
	ErrMissingTypeGraph = errors.New("type graph is required")
	ErrMissingLogger    = errors.New("logger is required")
	ErrMissingConfig    = errors.New("configuration is required")
	ErrServerShutdown   = errors.New("server context has been shutdown")
)

// DefaultLogger is a simple logger implementation that wraps the standard library logger.
type DefaultLogger struct {
	logger *log.Logger
	level  string
}

// NewDefaultLogger creates a new default logger with standard error output.
func NewDefaultLogger() Logger {
	return &DefaultLogger{
		logger: log.New(os.Stderr, "[mcp-must-gather] ", log.LstdFlags|log.Lshortfile),
		level:  "info",
	}
}

// Info logs an informational message.
func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	l.logger.Printf("[INFO] "+msg, args...)
}

// Debug logs a debug message.
func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	if l.level == "debug" {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

// Warn logs a warning message.
func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	l.logger.Printf("[WARN] "+msg, args...)
}

// Error logs an error message.
func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	l.logger.Printf("[ERROR] "+msg, args...)
}
