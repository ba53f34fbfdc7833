package document

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON writes the entries in insertion order. Nested *Object values
// marshal recursively, so a whole decoded tree serializes in source order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, value := range o.Entries() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("document: marshaling value of %q: %w", key, err)
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object while preserving key order, using a
// token-level pass instead of an unordered map decode. Nested objects become
// *Object; arrays become []any; numbers decode as float64.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("document: expected JSON object, got %v", tok)
	}

	obj, err := decodeJSONObject(dec)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

// decodeJSONObject consumes the members of an object whose opening '{' has
// already been read, including the closing '}'.
func decodeJSONObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("document: expected object key, got %v", keyTok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

func decodeJSONArray(dec *json.Decoder) ([]any, error) {
	arr := make([]any, 0)
	for dec.More() {
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("document: unexpected delimiter %v", delim)
		}
	}
	// string, float64, bool, or nil
	return tok, nil
}
