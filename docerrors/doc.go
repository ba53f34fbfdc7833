// Package docerrors provides structured error types for the oasdoc library.
//
// Import path: github.com/erraggy/oasdoc/docerrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Types
//
//   - [TypeMismatchError]: a reserved field's value has the wrong shape
//   - [PayloadMismatchError]: a value is neither a valid reference object nor
//     a decodable inline payload
//   - [ParseError]: JSON/YAML deserialization failures and structural issues
//   - [ResourceLimitError]: resource exhaustion (input size, nesting depth)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel for use with errors.Is():
//
//   - [ErrTypeMismatch]: matches any [TypeMismatchError]
//   - [ErrPayloadMismatch]: matches any [PayloadMismatchError]
//   - [ErrParse]: matches any [ParseError]
//   - [ErrResourceLimit]: matches any [ResourceLimitError]
//
// # Usage Examples
//
// Check the error category with errors.Is():
//
//	result, err := loader.Load(loader.WithFilePath("api.yaml"))
//	if errors.Is(err, docerrors.ErrTypeMismatch) {
//	    // A reserved field carried the wrong payload shape
//	}
//
// Extract details with errors.As():
//
//	var tmErr *docerrors.TypeMismatchError
//	if errors.As(err, &tmErr) {
//	    fmt.Printf("field %q expected %s\n", tmErr.Key, tmErr.Expected)
//	}
//
// All error types support chaining via the Cause field and Unwrap().
package docerrors
