package document

import "iter"

// Object is an ordered mapping from string keys to generic values. It is the
// decoding substrate for the whole model: values are scalars (string, bool,
// float64, int64, nil), []any, or nested *Object.
//
// Keys are unique. Insertion order is preserved and significant: iteration,
// JSON marshaling, and YAML marshaling all emit entries in the order they
// were first set. Setting an existing key replaces its value in place without
// moving the key.
//
// The zero value is not ready for use; call [NewObject].
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Len returns the number of entries. A nil Object has length zero.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value stored under key and whether the key is present.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and has its value replaced.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Entries iterates over (key, value) pairs in insertion order.
// It is safe to call on a nil Object, which yields nothing.
func (o *Object) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}
