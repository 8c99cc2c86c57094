package properties

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInitialized = errors.New("properties: already initialized")
	ErrNotInitialized     = errors.New("properties: not initialized")
)

// Error types for proper error handling with errors.Is/As
type (
	// ErrUnknownProperty is returned when a property name is not in the schema.
	ErrUnknownProperty struct {
		Name Name
	}

	// ErrInvalidValue is returned when a value fails a property's domain or range check.
	ErrInvalidValue struct {
		Name   Name
		Value  any
		Reason string
		Err    error
	}

	// ErrUnsupportedFeature is returned when writing a property the Oracle client does not support.
	ErrUnsupportedFeature struct {
		Name          Name
		ClientVersion Version
		Required      Version
	}
)

func (e *ErrUnknownProperty) Error() string {
	return fmt.Sprintf("no such property name: %s", e.Name)
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid property value %v for %s: %s", e.Value, e.Name, e.Reason)
}

func (e *ErrInvalidValue) Unwrap() error {
	return e.Err
}

func (e *ErrUnsupportedFeature) Error() string {
	return fmt.Sprintf("%s is disabled on Oracle client %s, requires %s or later", e.Name, e.ClientVersion, e.Required)
}

func invalidValue(name Name, value any, err error) *ErrInvalidValue {
	return &ErrInvalidValue{Name: name, Value: value, Reason: err.Error(), Err: err}
}
