package parser

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// TruthParser coerces any value to a boolean by truthiness.
// It never fails.
//
// Only nil, false and nil pointers, interfaces, maps, slices, funcs and
// channels are falsy. Every other value is truthy, including 0, the empty
// string and the string "false".
type TruthParser struct {
	BaseParser[bool]
}

// NewTruthParser creates a new truthiness parser.
func NewTruthParser() *TruthParser {
	return &TruthParser{
		BaseParser: BaseParser[bool]{
			ParseFunc: func(value any) (bool, error) {
				return Truthy(value), nil
			},
		},
	}
}

// Truthy reports whether v is truthy.
func Truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// IntParser coerces integer-like values with optional range validation.
//
// Signed and unsigned integers, floats and decimal strings are accepted;
// fractions are truncated toward zero. nil coerces to 0. Booleans and other
// types are rejected.
type IntParser struct {
	BaseParser[int]
	min *int
}

// NewIntParser creates a new integer parser.
func NewIntParser() *IntParser {
	return &IntParser{
		BaseParser: BaseParser[int]{
			ParseFunc: parseInt,
		},
	}
}

func parseInt(value any) (int, error) {
	switch v := value.(type) {
	case bool:
		return 0, fmt.Errorf("cannot convert %v to an integer", v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, fmt.Errorf("cannot convert an empty string to an integer")
		}
		if i, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
			return int(i), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
			return 0, fmt.Errorf("cannot convert %q to an integer", v)
		}
		return int(f), nil
	}

	i, err := cast.ToIntE(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %v (%T) to an integer: %w", value, value, err)
	}
	return i, nil
}

// WithMin adds minimum value validation.
func (p *IntParser) WithMin(min int) *IntParser {
	p.min = &min
	p.ValidateFunc = p.validateRange
	return p
}

func (p *IntParser) validateRange(value int) error {
	return CreateRangeValidator(p.min, nil)(value)
}
