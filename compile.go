package jsonschema

import (
	"github.com/reoring/jsonschema/internal/compiler"
)

// Compile builds an already-decoded schema document (map[string]any or bool
// shapes, numbers as json.Number or float64) into an immutable *Schema.
// All malformed input is reported as *SchemaError.
func Compile(schema any, opts ...CompileOption) (*Schema, error) {
	cfg := newCompileConfig(opts)
	compiled, err := compiler.Compile(schema, cfg.opts)
	if err != nil {
		return nil, err
	}
	return &Schema{compiled: compiled, formats: cfg.formats}, nil
}

// CompileBytes decodes data as JSON and compiles it. Numbers are preserved
// as json.Number and duplicate object keys are rejected.
func CompileBytes(data []byte, opts ...CompileOption) (*Schema, error) {
	doc, err := UnmarshalInstance(data)
	if err != nil {
		return nil, &SchemaError{Msg: "invalid schema document", Err: err}
	}
	return Compile(doc, opts...)
}

// MustCompile is Compile panicking on error, for package-level schemas.
func MustCompile(schema any, opts ...CompileOption) *Schema {
	s, err := Compile(schema, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
