// Package values converts loosely typed configuration values.
// TOML decoding yields int64, float64, string, bool and []any; values set
// programmatically may use the native Go types. Both are accepted.
package values

import (
	"time"
)

// String returns v as a string, or "" if it is not one.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int, or 0 if it is not numeric.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Bool returns v as a bool, or false if it is not one.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// StringSlice returns v as a string slice, or nil if it is neither a slice
// nor a string. A single string becomes a one-element slice.
// Non-string elements of a []any are skipped.
func StringSlice(v any) []string {
	switch s := v.(type) {
	case string:
		return []string{s}
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Duration returns v as a duration. Strings use time.ParseDuration syntax
// and numbers are milliseconds. The boolean is false if v cannot be read.
func Duration(v any) (time.Duration, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d, true
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case int, int64, float64:
		return time.Duration(Int(d)) * time.Millisecond, true
	default:
		return 0, false
	}
}
