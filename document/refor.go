package document

import (
	"fmt"

	"github.com/erraggy/oasdoc/docerrors"
)

// ReferenceKey is the reserved locator field name ("$ref").
const ReferenceKey = "$ref"

// Payload is implemented by record types that decode themselves from and
// encode themselves to a generic [Object]. The opaque payload kinds
// (Operation, Parameter, Server) and the records built here all implement it;
// external collaborators can implement it to participate in [RefOr].
type Payload interface {
	DecodeObject(obj *Object) error
	EncodeObject() *Object
}

// RefOr holds either a reference to a shared definition elsewhere in the
// document or the inline definition itself. Exactly one of the two is
// populated. The discriminant is committed once, at construction: [DecodeRefOr]
// derives it from object shape and the [Ref] and [Inline] constructors set it
// directly. Downstream code switches on [RefOr.IsRef] and must not re-inspect
// shapes or field contents; in particular an empty locator string is still a
// reference.
//
// Resolution (following Ref to fetch the target) is not performed here; that
// is the responsibility of a collaborator holding the full document graph.
type RefOr[T any] struct {
	// Ref is the target locator when this node is a reference.
	Ref string
	// Value is the inline payload when this node is not a reference.
	Value *T

	isRef bool
}

// Ref returns a reference node for the given target locator.
func Ref[T any](target string) *RefOr[T] {
	return &RefOr[T]{Ref: target, isRef: true}
}

// Inline returns an inline node holding value.
func Inline[T any](value *T) *RefOr[T] {
	return &RefOr[T]{Value: value}
}

// IsRef reports whether this node is a reference.
func (r *RefOr[T]) IsRef() bool {
	return r != nil && r.isRef
}

// DecodeRefOr decodes a value as either a reference or an inline T.
//
// The value is a reference iff it is an object whose key set is exactly the
// singleton {"$ref"}. Any other object shape, including one carrying "$ref"
// alongside other keys, decodes as inline via T's own decoder: the exact
// singleton rule keeps discrimination unambiguous, at the accepted cost of
// forbidding extensions on a bare reference object.
//
// It fails with a PayloadMismatchError when the value is not an object or
// when the locator is not a string. Inline decode failures propagate
// unchanged from T's decoder.
func DecodeRefOr[T any, PT interface {
	*T
	Payload
}](value any) (*RefOr[T], error) {
	obj, ok := value.(*Object)
	if !ok {
		return nil, &docerrors.PayloadMismatchError{
			Message: fmt.Sprintf("expected object, got %T", value),
			Value:   value,
		}
	}

	if obj.Len() == 1 {
		if target, ok := obj.Get(ReferenceKey); ok {
			locator, ok := target.(string)
			if !ok {
				return nil, &docerrors.PayloadMismatchError{
					Message: fmt.Sprintf("%s locator must be a string, got %T", ReferenceKey, target),
					Value:   target,
				}
			}
			return &RefOr[T]{Ref: locator, isRef: true}, nil
		}
	}

	var t T
	if err := PT(&t).DecodeObject(obj); err != nil {
		return nil, err
	}
	return &RefOr[T]{Value: &t}, nil
}

// EncodeRefOr encodes the node back to an object: a reference becomes the
// singleton locator object, an inline value delegates to T's encoder.
func EncodeRefOr[T any, PT interface {
	*T
	Payload
}](r *RefOr[T]) *Object {
	if r.IsRef() {
		obj := NewObject()
		obj.Set(ReferenceKey, r.Ref)
		return obj
	}
	return PT(r.Value).EncodeObject()
}
