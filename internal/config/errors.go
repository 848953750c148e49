package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrTypeMismatch indicates a setting holds a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates a setting value is outside its allowed set.
	ErrValidationFailed = errors.New("validation failed")
)

// SettingError ties a configuration error to the setting path that caused it.
type SettingError struct {
	Path  string
	Value any
	Err   error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("config: %s = %v: %v", e.Path, e.Value, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}
