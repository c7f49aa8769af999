package utils

import "fmt"

// ConfigurationError reports an invalid mesh or model configuration
// detected at bind/construction time. It is fatal and never retried.
type ConfigurationError struct {
	What string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.What)
}

func ConfigErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{What: fmt.Sprintf(format, args...)}
}
