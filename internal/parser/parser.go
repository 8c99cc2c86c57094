package parser

import (
	"fmt"
)

// Parser is the core interface for coercing and validating values of type T.
// It provides a unified way to convert arbitrary input to typed values with validation.
type Parser[T any] interface {
	// Parse converts a value to type T.
	// It returns an error if the value cannot be coerced.
	Parse(value any) (T, error)

	// Validate checks if a parsed value meets additional constraints.
	// It returns an error if validation fails.
	Validate(value T) error

	// ParseAndValidate combines parsing and validation in a single step.
	// This is a convenience method that calls Parse followed by Validate.
	ParseAndValidate(value any) (T, error)
}

// BaseParser provides a foundation for implementing parsers.
// It handles the common ParseAndValidate logic.
type BaseParser[T any] struct {
	ParseFunc    func(any) (T, error)
	ValidateFunc func(T) error
}

// Parse implements the Parser interface.
func (p *BaseParser[T]) Parse(value any) (T, error) {
	if p.ParseFunc == nil {
		var zero T
		return zero, fmt.Errorf("parse function not implemented")
	}
	return p.ParseFunc(value)
}

// Validate implements the Parser interface.
func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc == nil {
		return nil // No validation if not specified
	}
	return p.ValidateFunc(value)
}

// ParseAndValidate implements the Parser interface.
func (p *BaseParser[T]) ParseAndValidate(value any) (T, error) {
	parsed, err := p.Parse(value)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := p.Validate(parsed); err != nil {
		var zero T
		return zero, err
	}

	return parsed, nil
}

// Validator is a function type for value validation.
type Validator[T any] func(value T) error
