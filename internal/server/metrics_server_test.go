package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prashanth684/must-gather-code-execution-mcp/internal/instrumentation"
)

func newTestProvider(t *testing.T) *instrumentation.Provider {
	t.Helper()
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider
}

func TestNewMetricsServer(t *testing.T) {
	tests := []struct {
		name        string
		config      MetricsServerConfig
		wantErr     string
		wantAddr    string
		useProvider bool
	}{
		{
			name:    "nil instrumentation provider",
			config:  MetricsServerConfig{Addr: ":9090"},
			wantErr: "instrumentation provider is required",
		},
		{
			name:        "empty addr uses default",
			config:      MetricsServerConfig{},
			useProvider: true,
			wantAddr:    DefaultMetricsAddr,
		},
		{
			name:        "custom addr",
			config:      MetricsServerConfig{Addr: ":9091"},
			useProvider: true,
			wantAddr:    ":9091",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config
			if tt.useProvider {
				config.InstrumentationProvider = newTestProvider(t)
			}

			server, err := NewMetricsServer(config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, server.Addr())
		})
	}
}

func TestMetricsServerShutdownWithoutStart(t *testing.T) {
	server, err := NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9093",
		InstrumentationProvider: newTestProvider(t),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))
}
