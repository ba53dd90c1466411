package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSlogAdapter(t *testing.T) {
	t.Run("with nil logger uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter)
		assert.NotNil(t, adapter.Logger())
	})

	t.Run("with custom logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		adapter := NewSlogAdapter(logger)
		assert.NotNil(t, adapter)
		assert.Equal(t, logger, adapter.Logger())
	})
}

func TestSlogAdapterLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	tests := []struct {
		name string
		log  func(msg string, args ...interface{})
	}{
		{name: "Debug", log: adapter.Debug},
		{name: "Info", log: adapter.Info},
		{name: "Warn", log: adapter.Warn},
		{name: "Error", log: adapter.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log("message for "+tt.name, "key", "value")

			output := buf.String()
			assert.Contains(t, output, "message for "+tt.name)
			assert.Contains(t, output, "key")
			assert.Contains(t, output, "value")
		})
	}
}
