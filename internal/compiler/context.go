package compiler

import (
	"github.com/reoring/jsonschema/internal/uritools"
	"github.com/reoring/jsonschema/internal/validator"
)

// Context is the immutable compilation state threaded through the builder:
// the current base URI (for resolving relative identifiers), the absolute
// schema path (for keyword locations), and the active draft. Derivations
// construct a child; a Context is never mutated.
type Context struct {
	base  string
	path  string
	draft validator.Draft
}

// NewContext roots a compilation at the given retrieval URI.
func NewContext(retrievalURI string, draft validator.Draft) Context {
	return Context{base: retrievalURI, path: retrievalURI, draft: draft}
}

// WithID pushes a new base URI; the schema path restarts at the new base.
func (c Context) WithID(uri string) Context {
	return Context{base: uri, path: uri, draft: c.draft}
}

// WithKeyword appends keyword segments to the schema path's JSON Pointer
// fragment.
func (c Context) WithKeyword(keys ...string) Context {
	for _, k := range keys {
		c.path = uritools.AppendKeyword(c.path, k)
	}
	return c
}

// BaseURI returns the base used to resolve relative references.
func (c Context) BaseURI() string { return c.base }

// AbsoluteURI returns the canonical URI of the schema at this point.
func (c Context) AbsoluteURI() string { return c.path }

// Draft returns the active draft.
func (c Context) Draft() validator.Draft { return c.draft }

// withDraft switches the active draft; used when a subschema declares its
// own $schema.
func (c Context) withDraft(d validator.Draft) Context {
	c.draft = d
	return c
}

// at re-roots the schema path at an absolute URI inside the same document;
// used when promoting unknown-keyword subtrees.
func at(uri string, draft validator.Draft) Context {
	return Context{base: baseOf(uri), path: uri, draft: draft}
}

func baseOf(uri string) string { return uritools.Base(uri) }
