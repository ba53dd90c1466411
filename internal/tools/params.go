// Package tools provides shared utilities for MCP tool implementations.
package tools

// OptionalString returns the string argument for key, or the empty string
// when absent or of the wrong type.
func OptionalString(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

// OptionalBool returns the boolean argument for key, or false when absent.
func OptionalBool(args map[string]interface{}, key string) bool {
	value, _ := args[key].(bool)
	return value
}

// OptionalInt returns the numeric argument for key. JSON numbers arrive as
// float64, so the value is truncated toward zero. Returns fallback when the
// argument is absent or not a number.
func OptionalInt(args map[string]interface{}, key string, fallback int) int {
	if value, ok := args[key].(float64); ok {
		return int(value)
	}
	return fallback
}

// StringSlice converts an array argument to []string, skipping entries that
// are not strings. A bare string argument is treated as a single-element
// slice for caller convenience.
func StringSlice(args map[string]interface{}, key string) []string {
	switch value := args[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if value == "" {
			return nil
		}
		return []string{value}
	default:
		return nil
	}
}

// ObjectArg returns the object argument for key, or nil when absent.
func ObjectArg(args map[string]interface{}, key string) map[string]interface{} {
	value, _ := args[key].(map[string]interface{})
	return value
}
