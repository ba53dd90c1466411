package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "ERROR", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug")

	logger.Debug("debug message", Tool("mustgather_search_analysis"))

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, KeyTool)
	assert.Contains(t, output, "mustgather_search_analysis")
}

func TestNewLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("filtered out")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestAttrHelpers(t *testing.T) {
	assert.Equal(t, slog.String(KeyOperation, "search"), Operation("search"))
	assert.Equal(t, slog.String(KeyFunction, "getEtcdHealth"), Function("getEtcdHealth"))
	assert.Equal(t, slog.String(KeyNamespace, "openshift-etcd"), Namespace("openshift-etcd"))
	assert.Equal(t, slog.String(KeySnapshot, "/tmp/mg"), Snapshot("/tmp/mg"))
	assert.Equal(t, slog.String(KeyStatus, StatusSuccess), Status(StatusSuccess))
	assert.Equal(t, slog.Int(KeyCount, 7), Count(7))
}

func TestErr(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, slog.String(KeyError, ""), Err(nil))
	})

	t.Run("non-nil error", func(t *testing.T) {
		assert.Equal(t, slog.String(KeyError, "boom"), Err(errors.New("boom")))
	})
}

func TestWithTool(t *testing.T) {
	var buf bytes.Buffer
	logger := WithTool(NewLogger(&buf, "info"), "mustgather_get_type_definition")

	logger.Info("expanded")

	assert.Contains(t, buf.String(), "mustgather_get_type_definition")
}
