package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTypeMismatch indicates a reserved field carried the wrong payload shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrPayloadMismatch indicates a value was neither a valid reference
	// object nor a decodable inline payload.
	ErrPayloadMismatch = errors.New("payload mismatch")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// TypeMismatchError reports that a reserved (fixed) field's value could not
// be decoded into its declared type. It is fatal to the enclosing object:
// decoding aborts and the error propagates to the caller.
type TypeMismatchError struct {
	// Key is the field name whose value had the wrong shape
	Key string
	// Expected is the declared payload kind (e.g., "string", "object", "array")
	Expected string
	// Value is the offending value (may be nil)
	Value any
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "type mismatch"
	if e.Key != "" {
		msg += fmt.Sprintf(" at field %q", e.Key)
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Value != nil {
			msg += fmt.Sprintf(", got %T", e.Value)
		} else {
			msg += ", got null"
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TypeMismatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// PayloadMismatchError reports that a reference-or-inline value could not be
// decoded: the value is not an object, or it claims to be a reference object
// but the locator field is not a string.
//
// Failures of the inline payload's own decoder are NOT wrapped in this type;
// they propagate unchanged so callers see the payload's original error.
type PayloadMismatchError struct {
	// Message describes the mismatch
	Message string
	// Value is the offending value (may be nil)
	Value any
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PayloadMismatchError) Error() string {
	msg := "payload mismatch"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PayloadMismatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PayloadMismatchError) Is(target error) bool {
	return target == ErrPayloadMismatch
}

// ParseError represents a failure to parse a source document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when loading exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "input_size", "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
