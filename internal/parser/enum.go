package parser

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// EnumParser coerces values into enum types.
// It accepts values of T directly and string tokens matched case-insensitively.
type EnumParser[T comparable] struct {
	BaseParser[T]
	values map[string]T
}

// NewEnumParser creates a new enum parser with the given valid tokens.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	normalizedValues := make(map[string]T, len(values))
	for k, v := range values {
		normalizedValues[strings.ToUpper(k)] = v
	}

	parser := &EnumParser[T]{
		values: normalizedValues,
	}

	parser.BaseParser = BaseParser[T]{
		ParseFunc:    parser.parseEnum,
		ValidateFunc: parser.validateEnum,
	}

	return parser
}

// NewEnumParserFromValues creates an enum parser keyed by the String() form of each value.
func NewEnumParserFromValues[T interface {
	comparable
	fmt.Stringer
}](values []T) *EnumParser[T] {
	m := make(map[string]T, len(values))
	for _, v := range values {
		m[v.String()] = v
	}
	return NewEnumParser(m)
}

// Tokens returns the valid tokens in sorted order.
func (p *EnumParser[T]) Tokens() []string {
	return slices.Sorted(maps.Keys(p.values))
}

func (p *EnumParser[T]) parseEnum(value any) (T, error) {
	var zero T
	switch v := value.(type) {
	case T:
		return v, nil
	case string:
		if result, ok := p.values[strings.ToUpper(strings.TrimSpace(v))]; ok {
			return result, nil
		}
		return zero, p.invalid(value)
	case fmt.Stringer:
		if result, ok := p.values[strings.ToUpper(v.String())]; ok {
			return result, nil
		}
		return zero, p.invalid(value)
	default:
		return zero, p.invalid(value)
	}
}

func (p *EnumParser[T]) validateEnum(value T) error {
	for _, v := range p.values {
		if v == value {
			return nil
		}
	}
	return p.invalid(value)
}

func (p *EnumParser[T]) invalid(value any) error {
	return fmt.Errorf("invalid value %q, must be one of: %s", fmt.Sprint(value), strings.Join(p.Tokens(), ", "))
}
