package jsonschema

import (
	"github.com/reoring/jsonschema/internal/compiler"
	"github.com/reoring/jsonschema/internal/validator"
)

// ValidationMessage is a single schema violation: where in the instance it
// happened, which keyword of which schema produced it, and a human-readable
// text. Applicators that hide branch output attach branch messages under
// Nested.
type ValidationMessage = validator.Message

// Messages is a collection of validation messages implementing error. The
// Validate method returns it when the instance is invalid.
type Messages = validator.Messages

// Reporter receives validation messages as they are produced.
type Reporter = validator.Reporter

// SchemaError is the fatal error raised from the compile path: malformed
// schema shape, unsupported $schema, unresolved reference, invalid regex,
// duplicate identifier, or a resolver failure. The validate path never
// raises it.
type SchemaError = compiler.SchemaError

// ErrSchemaNotFound is returned by a Resolver to decline a URI; the next
// resolver in the chain is tried.
var ErrSchemaNotFound = compiler.ErrSchemaNotFound

// Resolver maps an absolute URI to a decoded schema document. Resolvers are
// invoked only during Compile, never during validation.
type Resolver = compiler.Resolver
