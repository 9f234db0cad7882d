package jsonschema

import (
	"github.com/reoring/jsonschema/internal/compiler"
	"github.com/reoring/jsonschema/internal/validator"
)

// Schema is a compiled schema handle. It is immutable after Compile and safe
// for concurrent use; every Validate call carries its own evaluation state.
type Schema struct {
	compiled *compiler.Compiled
	formats  bool
}

// Draft returns the draft the root document was compiled under.
func (s *Schema) Draft() Draft { return s.compiled.Draft }

// Validate evaluates the instance exhaustively and returns Messages when it
// is invalid, nil otherwise.
func (s *Schema) Validate(instance any) error {
	var msgs Messages
	s.compiled.Eval.Validate(instance, func(m ValidationMessage) { msgs = append(msgs, m) }, s.formats)
	if len(msgs) > 0 {
		return msgs
	}
	return nil
}

// ValidateWithReporter streams every violation to rep and reports overall
// validity.
func (s *Schema) ValidateWithReporter(instance any, rep Reporter) bool {
	return s.compiled.Eval.Validate(instance, rep, s.formats)
}

// IsValid short-circuits at the first violation.
func (s *Schema) IsValid(instance any) bool {
	return s.compiled.Eval.IsValid(instance, s.formats)
}

// ValidateWithPatch evaluates the instance and collects a JSON Patch that
// injects schema defaults for missing object properties, in the order the
// engine encountered them. The returned error is the usual Messages value
// when the instance is otherwise invalid.
func (s *Schema) ValidateWithPatch(instance any) (Patch, error) {
	var msgs Messages
	patch := s.compiled.Eval.ValidateWithPatch(instance, func(m ValidationMessage) { msgs = append(msgs, m) }, s.formats)
	if len(msgs) > 0 {
		return patch, msgs
	}
	return patch, nil
}

// ValidateWithTrace evaluates the instance exhaustively and returns the
// structured evaluation trace alongside the usual Messages error.
func (s *Schema) ValidateWithTrace(instance any) (*TraceNode, error) {
	var msgs Messages
	trace := s.compiled.Eval.ValidateWithTrace(instance, func(m ValidationMessage) { msgs = append(msgs, m) }, s.formats)
	if len(msgs) > 0 {
		return trace, msgs
	}
	return trace, nil
}

// Patch is an RFC 6902 document of "add" operations carrying schema
// defaults.
type Patch = validator.Patch

// PatchOperation is a single JSON Patch operation.
type PatchOperation = validator.PatchOperation

// TraceNode is one record of the structured evaluation trace.
type TraceNode = validator.TraceNode
