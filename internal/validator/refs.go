package validator

// RefKeyword is the reference variant: $ref, $dynamicRef or $recursiveRef.
// The target pointer is filled in by the reference linker after every
// document has been compiled; targets may form cycles.
type RefKeyword struct {
	keywordBase
	identifier string
	anchorName string // plain-name fragment of a $dynamicRef, else ""
	target     *Node
	dynamic    bool // bookending satisfied: dynamic-scope lookup engages
}

// NewRef creates an unlinked reference. name is the keyword spelling;
// identifier is the absolute target URI; anchorName is non-empty only for a
// $dynamicRef with a plain-name fragment.
func NewRef(name, location, identifier, anchorName string) *RefKeyword {
	return &RefKeyword{
		keywordBase: keywordBase{name, location},
		identifier:  identifier,
		anchorName:  anchorName,
	}
}

// Identifier returns the absolute URI the reference points at.
func (k *RefKeyword) Identifier() string { return k.identifier }

// Target returns the linked node, or nil before linking.
func (k *RefKeyword) Target() *Node { return k.target }

// SetTarget links the reference. For $dynamicRef, dynamic-scope lookup is
// enabled only when the statically resolved target itself declares the
// matching $dynamicAnchor (the bookending rule).
func (k *RefKeyword) SetTarget(n *Node) {
	k.target = n
	if k.anchorName != "" && n != nil && n.DynamicAnchor() == k.anchorName {
		k.dynamic = true
	}
}

func (k *RefKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	node := k.resolve(ctx)
	if node == nil {
		// The linker guarantees a target; this is unreachable on a
		// successfully compiled schema.
		return k.fail(snk, loc, "unresolved reference "+k.identifier)
	}
	child := newScope()
	if node.Evaluate(ctx, snk, tr, inst, loc, child) {
		scope.merge(child)
		return true
	}
	return false
}

func (k *RefKeyword) resolve(ctx *EvalContext) *Node {
	switch k.name {
	case "$dynamicRef":
		if k.dynamic {
			if n := ctx.lookupDynamic(k.anchorName); n != nil {
				return n
			}
		}
	case "$recursiveRef":
		if k.target != nil && k.target.recursiveAnchor {
			if n := ctx.recursiveBase(); n != nil {
				return n
			}
		}
	}
	return k.target
}
