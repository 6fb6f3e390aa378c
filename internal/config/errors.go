package config

import "fmt"

// ConfigError reports a setting that could not be loaded or is invalid.
type ConfigError struct {
	// Key is the configuration key, e.g. "bump_part".
	Key string
	// Message describes the problem.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key == "" {
		if e.Cause != nil {
			return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
		}
		return "configuration error: " + e.Message
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration error [%s]: %s: %v", e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error [%s]: %s", e.Key, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}
