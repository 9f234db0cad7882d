package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// pendingRef is one reference awaiting linking: the absolute identifier it
// names and the validator whose target pointer must be filled.
type pendingRef struct {
	uri string
	ref *validator.RefKeyword
}

// document is one raw schema document the registry has seen, kept for
// pointer-fragment extraction during linking.
type document struct {
	raw   any
	draft validator.Draft
}

// registry is the schema dictionary built up during one compile call: nodes
// by absolute URI, the unresolved-reference list, the unknown-keyword table,
// and the raw documents by base URI. It is mutated only during compile and
// never escapes the compiled handle.
type registry struct {
	schemas    map[string]*validator.Node
	unresolved []pendingRef
	unknown    map[string]any
	documents  map[string]document
	arena      []*validator.Node

	// dynamicAnchors maps "resource#name" to the node declaring the
	// $dynamicAnchor; consumed by the evaluator's dynamic-scope lookup.
	dynamicAnchors map[string]*validator.Node
}

func newRegistry() *registry {
	return &registry{
		schemas:        make(map[string]*validator.Node),
		unknown:        make(map[string]any),
		documents:      make(map[string]document),
		dynamicAnchors: make(map[string]*validator.Node),
	}
}

// insert registers a node under an explicit identifier ($id or an anchor);
// duplicates are a schema error.
func (r *registry) insert(uri string, n *validator.Node) error {
	if _, exists := r.schemas[uri]; exists {
		return schemaErrorf("duplicate schema identifier %q", uri)
	}
	r.schemas[uri] = n
	return nil
}

// insertPath registers a node under its pointer-derived path. Overlapping
// subtrees may be compiled more than once during unknown-keyword promotion,
// so the first registration wins silently.
func (r *registry) insertPath(uri string, n *validator.Node) {
	if _, exists := r.schemas[uri]; !exists {
		r.schemas[uri] = n
	}
}

func (r *registry) save(n *validator.Node) {
	r.arena = append(r.arena, n)
}

func (r *registry) addUnresolved(uri string, ref *validator.RefKeyword) {
	r.unresolved = append(r.unresolved, pendingRef{uri: uri, ref: ref})
}

// hasPendingRef reports whether some unresolved reference names uri; used to
// promote unknown-keyword subtrees eagerly.
func (r *registry) hasPendingRef(uri string) bool {
	for _, p := range r.unresolved {
		if p.uri == uri {
			return true
		}
	}
	return false
}
