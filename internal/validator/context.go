package validator

import (
	"strconv"
	"strings"
)

// EvalContext carries the per-call mutable state of one validation: the
// dynamic-scope resource stack, the defaults patch buffer, and evaluation
// flags. It is never shared between calls.
type EvalContext struct {
	formats    bool
	exhaustive bool // a trace sink demands completeness (anyOf may not short-circuit)
	patch      *Patch
	anchors    map[string]*Node // dynamic anchors by "resource#name"
	resources  []string         // schema resources entered, outermost first
	recursive  []*Node          // nodes carrying $recursiveAnchor, outermost first
}

// NewEvalContext returns a context for one validation call. patch may be
// nil; anchors is the compiled schema's dynamic-anchor table.
func NewEvalContext(formats bool, patch *Patch, exhaustive bool, anchors map[string]*Node) *EvalContext {
	return &EvalContext{formats: formats, patch: patch, exhaustive: exhaustive, anchors: anchors}
}

// enter pushes the dynamic-scope frames n contributes: its schema resource,
// when evaluation crosses into a new one, and itself when it carries
// $recursiveAnchor. The returned function undoes the pushes.
func (ctx *EvalContext) enter(n *Node) func() {
	res := len(ctx.resources)
	rec := len(ctx.recursive)
	if len(ctx.resources) == 0 || ctx.resources[len(ctx.resources)-1] != n.resource {
		ctx.resources = append(ctx.resources, n.resource)
	}
	if n.recursiveAnchor {
		ctx.recursive = append(ctx.recursive, n)
	}
	return func() {
		ctx.resources = ctx.resources[:res]
		ctx.recursive = ctx.recursive[:rec]
	}
}

// lookupDynamic searches the entered resources, outermost first, for one
// declaring the dynamic anchor name.
func (ctx *EvalContext) lookupDynamic(name string) *Node {
	for i := 0; i < len(ctx.resources); i++ {
		if n, ok := ctx.anchors[ctx.resources[i]+"#"+name]; ok {
			return n
		}
	}
	return nil
}

// recursiveBase returns the outermost node carrying $recursiveAnchor.
func (ctx *EvalContext) recursiveBase() *Node {
	if len(ctx.recursive) == 0 {
		return nil
	}
	return ctx.recursive[0]
}

func (ctx *EvalContext) emitDefault(path string, value any) {
	if ctx.patch != nil {
		*ctx.patch = append(*ctx.patch, PatchOperation{Op: "add", Path: path, Value: value})
	}
}

// Scope tracks which property names and item indices applicators in the
// current dynamic scope have successfully evaluated. unevaluatedProperties
// and unevaluatedItems sweep whatever is left.
type Scope struct {
	props map[string]struct{}
	items map[int]struct{}
}

func newScope() *Scope { return &Scope{} }

func (s *Scope) markProp(name string) {
	if s.props == nil {
		s.props = make(map[string]struct{})
	}
	s.props[name] = struct{}{}
}

func (s *Scope) markItem(i int) {
	if s.items == nil {
		s.items = make(map[int]struct{})
	}
	s.items[i] = struct{}{}
}

func (s *Scope) hasProp(name string) bool {
	_, ok := s.props[name]
	return ok
}

func (s *Scope) hasItem(i int) bool {
	_, ok := s.items[i]
	return ok
}

// merge unions a child scope's evaluated sets into s. Called when an
// applicator branch over the same instance location succeeds.
func (s *Scope) merge(child *Scope) {
	for name := range child.props {
		s.markProp(name)
	}
	for i := range child.items {
		s.markItem(i)
	}
}

// ---- instance location (JSON Pointer) helpers ----

func childProp(loc, name string) string {
	name = strings.ReplaceAll(name, "~", "~0")
	name = strings.ReplaceAll(name, "/", "~1")
	return loc + "/" + name
}

func childIndex(loc string, i int) string {
	return loc + "/" + strconv.Itoa(i)
}
