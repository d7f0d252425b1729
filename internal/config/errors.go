package config

import "fmt"

// ConfigurationError reports a setting that cannot be used. It is returned
// before any file is read, so a bad run never produces partial output.
type ConfigurationError struct {
	// Field is the settings key that failed, e.g. "mode".
	Field string

	// Value is the rejected value as given.
	Value any

	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
