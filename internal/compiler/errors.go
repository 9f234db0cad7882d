package compiler

import (
	"errors"
	"fmt"
)

// SchemaError is the fatal compile-side error: malformed schema shape,
// unsupported $schema, unresolved reference, invalid regex, duplicate
// identifier, or a resolver failure. Validation never raises it.
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErrorf(format string, args ...any) error {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

func wrapSchemaError(err error, format string, args ...any) error {
	return &SchemaError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// ErrSchemaNotFound is the sentinel a Resolver returns to decline a URI; the
// registry then tries the next resolver in the chain.
var ErrSchemaNotFound = errors.New("jsonschema: schema not found")

// Resolver maps an absolute URI (fragment stripped) to a decoded schema
// document. Resolvers are only invoked during compilation, never during
// validation.
type Resolver func(uri string) (any, error)
