package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestOptionalString(t *testing.T) {
	args := map[string]interface{}{
		"present": "value",
		"number":  42.0,
	}

	assert.Equal(t, "value", OptionalString(args, "present"))
	assert.Equal(t, "", OptionalString(args, "absent"))
	assert.Equal(t, "", OptionalString(args, "number"))
}

func TestOptionalBool(t *testing.T) {
	args := map[string]interface{}{
		"yes": true,
		"str": "true",
	}

	assert.True(t, OptionalBool(args, "yes"))
	assert.False(t, OptionalBool(args, "absent"))
	assert.False(t, OptionalBool(args, "str"))
}

func TestOptionalInt(t *testing.T) {
	args := map[string]interface{}{
		"count":    5.0,
		"fraction": 2.9,
		"str":      "7",
	}

	assert.Equal(t, 5, OptionalInt(args, "count", 0))
	assert.Equal(t, 2, OptionalInt(args, "fraction", 0))
	assert.Equal(t, 10, OptionalInt(args, "absent", 10))
	assert.Equal(t, 10, OptionalInt(args, "str", 10))
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want []string
	}{
		{
			name: "array of strings",
			args: map[string]interface{}{"names": []interface{}{"A", "B"}},
			want: []string{"A", "B"},
		},
		{
			name: "skips non-strings and empties",
			args: map[string]interface{}{"names": []interface{}{"A", 3.0, "", "B"}},
			want: []string{"A", "B"},
		},
		{
			name: "bare string",
			args: map[string]interface{}{"names": "A"},
			want: []string{"A"},
		},
		{
			name: "empty string",
			args: map[string]interface{}{"names": ""},
			want: nil,
		},
		{
			name: "absent",
			args: map[string]interface{}{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringSlice(tt.args, "names"))
		})
	}
}

func TestObjectArg(t *testing.T) {
	args := map[string]interface{}{
		"params": map[string]interface{}{"namespace": "openshift-etcd"},
		"str":    "not an object",
	}

	assert.Equal(t, "openshift-etcd", ObjectArg(args, "params")["namespace"])
	assert.Nil(t, ObjectArg(args, "str"))
	assert.Nil(t, ObjectArg(args, "absent"))
}

func TestMarshalResult(t *testing.T) {
	result, err := MarshalResult(map[string]int{"count": 3})
	require.NoError(t, err)
	require.False(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"count": 3`)
}

func TestMarshalResultUnserializable(t *testing.T) {
	result, err := MarshalResult(make(chan int))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
