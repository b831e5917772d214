package driven

import "time"

// ConfigStore provides access to application configuration.
// Nested tables are addressed with dotted keys, e.g. "processors.text.delay".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice configuration value.
	// A single string is returned as a one-element slice.
	// Returns nil if key doesn't exist or is neither a slice nor a string.
	GetStringSlice(key string) []string

	// GetDuration retrieves a duration. Strings are parsed with
	// time.ParseDuration and integers are read as milliseconds.
	// The boolean is false if the key is missing or unparseable.
	GetDuration(key string) (time.Duration, bool)

	// Set stores a configuration value.
	Set(key string, value any) error

	// Path returns where the configuration lives, e.g. a TOML file path.
	Path() string
}
