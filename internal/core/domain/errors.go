package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidShape indicates a shape constructor rejected its geometry.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrUnsupportedType indicates an unknown shape kind or manifest format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Parse Errors.

	// ErrWrongFieldCount indicates a coordinate did not have exactly two fields.
	ErrWrongFieldCount = errors.New("wrong field count")

	// ErrNumericConversion indicates a coordinate field was not a number.
	ErrNumericConversion = errors.New("numeric conversion failure")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind string

// Parse error kinds.
const (
	// ParseErrorFieldCount means the input did not split into two fields.
	ParseErrorFieldCount ParseErrorKind = "wrong_field_count"

	// ParseErrorNumeric means a field could not be converted to float64.
	ParseErrorNumeric ParseErrorKind = "numeric_conversion"
)

// ParseError reports why a coordinate string could not become a Point.
// Input holds the offending text: the whole string for a field count
// failure, or the single field for a numeric failure.
type ParseError struct {
	Kind ParseErrorKind

	// Field is the axis that failed ("x" or "y"); empty for field count errors.
	Field string

	Input string

	// Err is the underlying conversion error, if any.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorFieldCount:
		return fmt.Sprintf("%s: %q is not an \"x,y\" pair", ErrWrongFieldCount, e.Input)
	case ParseErrorNumeric:
		return fmt.Sprintf("%s: cannot parse %s part %q as float64: %v", ErrNumericConversion, e.Field, e.Input, e.Err)
	default:
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to the error kind, so callers
// can use errors.Is(err, ErrWrongFieldCount) without inspecting fields.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrWrongFieldCount:
		return e.Kind == ParseErrorFieldCount
	case ErrNumericConversion:
		return e.Kind == ParseErrorNumeric
	case ErrInvalidInput:
		return true
	default:
		return false
	}
}
