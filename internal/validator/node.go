package validator

// Keyword is one compiled constraint. Evaluate reports messages to the sink
// and returns whether the constraint held. Keywords applying subschemas to
// the same instance location receive the current scope so evaluated sets
// propagate; keywords applying to children manage child scopes themselves.
type Keyword interface {
	Name() string
	Location() string
	Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool
}

// Node is a compiled subschema: the unit of reference. Its keyword list is
// frozen after compilation; a compiled node graph is immutable and safe for
// concurrent evaluation.
type Node struct {
	location        string
	resource        string // base URI of the schema resource owning the node
	draft           Draft
	boolean         *bool
	keywords        []Keyword
	dynamicAnchor   string
	recursiveAnchor bool
	defaultValue    any
	hasDefault      bool
	frozen          bool
}

// NewNode creates an open node with the given canonical URI, owned by the
// schema resource identified by the base URI resource.
func NewNode(location, resource string, draft Draft) *Node {
	return &Node{location: location, resource: resource, draft: draft}
}

// Resource returns the base URI of the schema resource owning the node.
func (n *Node) Resource() string { return n.resource }

// Location returns the node's canonical absolute URI.
func (n *Node) Location() string { return n.location }

// Draft returns the draft the node was compiled under.
func (n *Node) Draft() Draft { return n.draft }

// SetBoolean marks the node as a boolean shortcut schema.
func (n *Node) SetBoolean(v bool) {
	n.mustOpen()
	n.boolean = &v
}

// IsBoolean reports whether the node is a boolean shortcut schema.
func (n *Node) IsBoolean() (value, ok bool) {
	if n.boolean == nil {
		return false, false
	}
	return *n.boolean, true
}

// AppendKeyword appends one compiled keyword. The compiler appends keywords
// already ordered per the evaluation contract.
func (n *Node) AppendKeyword(k Keyword) {
	n.mustOpen()
	n.keywords = append(n.keywords, k)
}

// SetDynamicAnchor records the node's $dynamicAnchor name.
func (n *Node) SetDynamicAnchor(name string) {
	n.mustOpen()
	n.dynamicAnchor = name
}

// DynamicAnchor returns the node's $dynamicAnchor name, or "".
func (n *Node) DynamicAnchor() string { return n.dynamicAnchor }

// SetRecursiveAnchor records $recursiveAnchor: true (2019-09).
func (n *Node) SetRecursiveAnchor() {
	n.mustOpen()
	n.recursiveAnchor = true
}

// SetDefault records the raw default value attached to the schema object.
func (n *Node) SetDefault(v any) {
	n.mustOpen()
	n.defaultValue = v
	n.hasDefault = true
}

// Default returns the node's default value, if any.
func (n *Node) Default() (any, bool) { return n.defaultValue, n.hasDefault }

// Freeze seals the node; further mutation panics.
func (n *Node) Freeze() { n.frozen = true }

func (n *Node) mustOpen() {
	if n.frozen {
		panic("jsonschema: mutation of frozen schema node")
	}
}

// Evaluate runs the node against inst at instance location loc. Messages go
// to snk; trace records are appended under tr when tracing is active. The
// scope belongs to the instance location and collects evaluated names and
// indices for unevaluated-X sweeps.
func (n *Node) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	leave := ctx.enter(n)
	defer leave()

	if value, ok := n.IsBoolean(); ok {
		if !value {
			snk.report(Message{
				InstanceLocation: loc,
				SchemaLocation:   n.location,
				Keyword:          "false",
				Message:          "false schema always fails",
			})
			return false
		}
		return true
	}

	valid := true
	for _, k := range n.keywords {
		if snk.halted() {
			break
		}
		var rec *TraceNode
		sub := tr
		if tr != nil {
			rec = &TraceNode{
				SchemaLocation:   k.Location(),
				InstanceLocation: loc,
				Keyword:          k.Name(),
			}
			sub = rec
		}
		ok := k.Evaluate(ctx, snk, sub, inst, loc, scope)
		if rec != nil {
			rec.Valid = ok
			tr.add(rec)
		}
		if !ok {
			valid = false
		}
	}
	return valid
}

// Evaluator bundles the root node with the compiled schema's dynamic-anchor
// table; it is the runtime entry point for all validation modes.
type Evaluator struct {
	Root    *Node
	Anchors map[string]*Node // dynamic anchors by "resource#name"
}

// Validate is the exhaustive entry point used by the compiled-schema handle:
// it streams messages to rep and returns whether the instance is valid.
func (e *Evaluator) Validate(inst any, rep Reporter, formats bool) bool {
	ctx := NewEvalContext(formats, nil, false, e.Anchors)
	snk := &streamSink{rep: rep}
	return e.Root.Evaluate(ctx, snk, nil, inst, "", newScope())
}

// IsValid short-circuits at the first violation.
func (e *Evaluator) IsValid(inst any, formats bool) bool {
	ctx := NewEvalContext(formats, nil, false, e.Anchors)
	snk := &haltSink{}
	e.Root.Evaluate(ctx, snk, nil, inst, "", newScope())
	return snk.count() == 0
}

// ValidateWithPatch collects default-injection operations alongside the
// normal message stream.
func (e *Evaluator) ValidateWithPatch(inst any, rep Reporter, formats bool) Patch {
	patch := Patch{}
	ctx := NewEvalContext(formats, &patch, false, e.Anchors)
	snk := &streamSink{rep: rep}
	e.Root.Evaluate(ctx, snk, nil, inst, "", newScope())
	return patch
}

// ValidateWithTrace evaluates exhaustively and returns the trace tree root.
func (e *Evaluator) ValidateWithTrace(inst any, rep Reporter, formats bool) *TraceNode {
	ctx := NewEvalContext(formats, nil, true, e.Anchors)
	snk := &streamSink{rep: rep}
	root := &TraceNode{
		SchemaLocation:   e.Root.location,
		InstanceLocation: "",
	}
	root.Valid = e.Root.Evaluate(ctx, snk, root, inst, "", newScope())
	return root
}
