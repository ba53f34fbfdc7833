package document

import (
	"github.com/erraggy/oasdoc/docerrors"
)

// Field binds a reserved key name to the decoder for its payload.
// A Decode failure is fatal to the enclosing object.
type Field struct {
	Name   string
	Decode func(value any) error
}

// Split routes every key of obj into exactly one of three buckets, first
// match wins:
//
//  1. a name in fixed: the value is decoded by that field's decoder, and any
//     failure aborts the whole object;
//  2. a key matched by dynamic: the value is handed to decodeDynamic;
//  3. anything else: the raw value is kept, order-preserved, in the returned
//     extensions object with no decoding at all.
//
// The pass is total: no key is processed twice and no key is dropped, so
// unrecognized keys are never an error. dynamic and decodeDynamic may be nil,
// in which case every non-fixed key is an extension. The returned extensions
// object is nil when no key fell through.
func Split(obj *Object, fixed []Field, dynamic func(key string) bool, decodeDynamic func(key string, value any) error) (*Object, error) {
	var byName map[string]func(any) error
	if len(fixed) > 0 {
		byName = make(map[string]func(any) error, len(fixed))
		for _, f := range fixed {
			byName[f.Name] = f.Decode
		}
	}

	var extra *Object
	for key, value := range obj.Entries() {
		if decode, ok := byName[key]; ok {
			if err := decode(value); err != nil {
				return nil, err
			}
			continue
		}
		if dynamic != nil && dynamic(key) {
			if err := decodeDynamic(key, value); err != nil {
				return nil, err
			}
			continue
		}
		if extra == nil {
			extra = NewObject()
		}
		extra.Set(key, value)
	}
	return extra, nil
}

// Builder assembles an Object bucket by bucket for encoding: fixed fields in
// declaration order, then dynamic entries, then extensions. Logically absent
// optional fields are omitted entirely rather than written as null.
type Builder struct {
	obj *Object
}

// NewBuilder returns a Builder with an empty target object.
func NewBuilder() *Builder {
	return &Builder{obj: NewObject()}
}

// Set stores value under key unconditionally.
func (b *Builder) Set(key string, value any) {
	b.obj.Set(key, value)
}

// SetIfNotEmpty stores a string field, omitting the empty string.
func (b *Builder) SetIfNotEmpty(key, value string) {
	if value != "" {
		b.obj.Set(key, value)
	}
}

// SetIfNotNil stores value unless it is nil.
func (b *Builder) SetIfNotNil(key string, value any) {
	if value != nil {
		b.obj.Set(key, value)
	}
}

// SetIfTrue stores a boolean field, omitting false.
func (b *Builder) SetIfTrue(key string, value bool) {
	if value {
		b.obj.Set(key, value)
	}
}

// Extend appends every entry of extra, in its stored order.
// A nil extra is a no-op.
func (b *Builder) Extend(extra *Object) {
	for key, value := range extra.Entries() {
		b.obj.Set(key, value)
	}
}

// Object returns the assembled object.
func (b *Builder) Object() *Object {
	return b.obj
}

// Typed decoders for fixed fields. Each returns a Field whose decoder fails
// with a TypeMismatchError naming the key and the declared kind. Every fixed
// field is optional, so an explicit null is treated as absent: the destination
// keeps its zero value and the key is dropped on re-encode.

func stringField(key string, dst *string) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "string", Value: v}
		}
		*dst = s
		return nil
	}}
}

func boolField(key string, dst *bool) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		b, ok := v.(bool)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "boolean", Value: v}
		}
		*dst = b
		return nil
	}}
}

func stringSliceField(key string, dst *[]string) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		arr, ok := v.([]any)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "array", Value: v}
		}
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return &docerrors.TypeMismatchError{Key: key, Expected: "array of strings", Value: item}
			}
			result = append(result, s)
		}
		*dst = result
		return nil
	}}
}

// objectField keeps the value as an opaque ordered object without decoding
// its contents.
func objectField(key string, dst **Object) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		obj, ok := v.(*Object)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "object", Value: v}
		}
		*dst = obj
		return nil
	}}
}

// payloadField decodes the value into a fresh T via its own decoder.
// Errors from the payload decoder propagate unchanged.
func payloadField[T any, PT interface {
	*T
	Payload
}](key string, dst **T) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		obj, ok := v.(*Object)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "object", Value: v}
		}
		var t T
		if err := PT(&t).DecodeObject(obj); err != nil {
			return err
		}
		*dst = &t
		return nil
	}}
}

// payloadListField decodes an array of inline payloads.
func payloadListField[T any, PT interface {
	*T
	Payload
}](key string, dst *[]*T) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		arr, ok := v.([]any)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "array", Value: v}
		}
		result := make([]*T, 0, len(arr))
		for _, item := range arr {
			obj, ok := item.(*Object)
			if !ok {
				return &docerrors.TypeMismatchError{Key: key, Expected: "array of objects", Value: item}
			}
			var t T
			if err := PT(&t).DecodeObject(obj); err != nil {
				return err
			}
			result = append(result, &t)
		}
		*dst = result
		return nil
	}}
}

// refOrListField decodes an array of reference-or-inline payloads.
func refOrListField[T any, PT interface {
	*T
	Payload
}](key string, dst *[]*RefOr[T]) Field {
	return Field{Name: key, Decode: func(v any) error {
		if v == nil {
			return nil
		}
		arr, ok := v.([]any)
		if !ok {
			return &docerrors.TypeMismatchError{Key: key, Expected: "array", Value: v}
		}
		result := make([]*RefOr[T], 0, len(arr))
		for _, item := range arr {
			node, err := DecodeRefOr[T, PT](item)
			if err != nil {
				return err
			}
			result = append(result, node)
		}
		*dst = result
		return nil
	}}
}
