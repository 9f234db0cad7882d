// Package jsonschema compiles JSON Schema documents (drafts 4, 6, 7,
// 2019-09 and 2020-12) into an executable validator graph and evaluates
// instance documents against it.
//
//   - Compile/CompileBytes turn a schema document into an immutable *Schema
//     handle; references across documents are resolved through
//     caller-supplied Resolver callbacks, with the five draft meta-schemas
//     bundled in.
//   - Schema.Validate streams ValidationMessage values (JSON Pointer
//     instance location, absolute schema location, keyword); Schema.IsValid
//     short-circuits at the first violation.
//   - Schema.ValidateWithPatch collects a JSON Patch injecting schema
//     defaults for missing properties; Schema.ValidateWithTrace returns a
//     structured per-keyword evaluation trace.
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed
//     implementations under internal/.
//   - Compilation failures are fatal *SchemaError values; instance
//     violations are never fatal, they flow to the reporter.
//   - A compiled Schema is immutable and safe for concurrent use; all
//     mutable validation state is local to one call.
//
// Typical usage:
//
//	s, err := jsonschema.CompileBytes(schemaJSON)
//	doc, err := jsonschema.UnmarshalInstance(instanceJSON)
//	if err := s.Validate(doc); err != nil {
//	    for _, m := range err.(jsonschema.Messages) { ... }
//	}
package jsonschema
