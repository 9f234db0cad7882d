package jsonschema

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// UnmarshalInstance decodes a JSON document the way the validator expects:
// numbers are preserved as json.Number (so numeric comparisons stay exact)
// and duplicate object keys are rejected.
func UnmarshalInstance(data []byte) (any, error) {
	return DecodeInstance(bytes.NewReader(data))
}

// DecodeInstance reads one JSON document from r. See UnmarshalInstance.
func DecodeInstance(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonschema: trailing data after document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, bool, json.Number or nil
	}
	switch delim {
	case '{':
		obj := map[string]any{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("jsonschema: object key is not a string")
			}
			if _, dup := obj[key]; dup {
				return nil, fmt.Errorf("jsonschema: duplicate object key %q", key)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj[key] = value
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
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
	return nil, fmt.Errorf("jsonschema: unexpected token %v", tok)
}
