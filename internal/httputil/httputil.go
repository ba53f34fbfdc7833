// Package httputil provides HTTP method constants and key predicates shared
// by the document model.
package httputil

import (
	"slices"
	"strings"
)

// HTTP method constants, as they appear as object keys in a path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// canonicalMethods is the fixed presentation order for operation slots.
// It is a property of the format, independent of source document order.
var canonicalMethods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// CanonicalMethods returns the supported HTTP methods in canonical order.
func CanonicalMethods() []string {
	return slices.Clone(canonicalMethods)
}

// IsMethod reports whether key names a supported HTTP method.
func IsMethod(key string) bool {
	return slices.Contains(canonicalMethods, key)
}

// IsPathKey reports whether key is a path template ("/"-prefixed).
func IsPathKey(key string) bool {
	return strings.HasPrefix(key, "/")
}

// IsExtensionKey reports whether key follows the "x-" extension convention.
// The decoder accepts any unclaimed key as an extension regardless; this
// predicate exists for callers that want to enforce the convention.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}
