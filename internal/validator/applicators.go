package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// allOfKeyword forwards branch messages directly; every branch applies to the
// same instance location, so evaluated sets of passing branches merge in.
type allOfKeyword struct {
	keywordBase
	branches []*Node
}

func NewAllOf(location string, branches []*Node) Keyword {
	return &allOfKeyword{keywordBase{"allOf", location}, branches}
}

func (k *allOfKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	valid := true
	for _, branch := range k.branches {
		child := newScope()
		if branch.Evaluate(ctx, snk, tr, inst, loc, child) {
			scope.merge(child)
		} else {
			valid = false
		}
	}
	return valid
}

// anyOfKeyword short-circuits on the first passing branch unless a trace sink
// demands completeness. Branch messages surface only when no branch passes.
type anyOfKeyword struct {
	keywordBase
	branches []*Node
}

func NewAnyOf(location string, branches []*Node) Keyword {
	return &anyOfKeyword{keywordBase{"anyOf", location}, branches}
}

func (k *anyOfKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	var nested []Message
	matched := false
	for _, branch := range k.branches {
		buf := &collectSink{}
		child := newScope()
		if branch.Evaluate(ctx, buf, tr, inst, loc, child) {
			scope.merge(child)
			matched = true
			if !ctx.exhaustive {
				break
			}
			continue
		}
		nested = append(nested, buf.msgs...)
	}
	if matched {
		return true
	}
	return k.fail(snk, loc, "no subschema matched", nested...)
}

// oneOfKeyword always evaluates every branch; exactly one must pass.
type oneOfKeyword struct {
	keywordBase
	branches []*Node
}

func NewOneOf(location string, branches []*Node) Keyword {
	return &oneOfKeyword{keywordBase{"oneOf", location}, branches}
}

func (k *oneOfKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	var nested []Message
	var passed []int
	var winner *Scope
	for i, branch := range k.branches {
		buf := &collectSink{}
		child := newScope()
		if branch.Evaluate(ctx, buf, tr, inst, loc, child) {
			passed = append(passed, i)
			winner = child
		} else {
			nested = append(nested, buf.msgs...)
		}
	}
	switch len(passed) {
	case 1:
		scope.merge(winner)
		return true
	case 0:
		return k.fail(snk, loc, "no subschema matched", nested...)
	default:
		return k.fail(snk, loc, fmt.Sprintf("more than one subschema matched (indices %s)", joinInts(passed)))
	}
}

// notKeyword suppresses all branch output; it fails iff the subschema passed.
type notKeyword struct {
	keywordBase
	sub *Node
}

func NewNot(location string, sub *Node) Keyword {
	return &notKeyword{keywordBase{"not", location}, sub}
}

func (k *notKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, _ *Scope) bool {
	buf := &collectSink{}
	if k.sub.Evaluate(ctx, buf, tr, inst, loc, newScope()) {
		return k.fail(snk, loc, "instance must not be valid against the subschema")
	}
	return true
}

// conditionalKeyword implements if/then/else. The condition's messages are
// suppressed; its evaluated set merges in only when the condition passes, and
// the chosen branch's merges in when that branch passes.
type conditionalKeyword struct {
	keywordBase
	ifN   *Node
	thenN *Node
	elseN *Node
}

func NewConditional(location string, ifN, thenN, elseN *Node) Keyword {
	return &conditionalKeyword{keywordBase{"if", location}, ifN, thenN, elseN}
}

func (k *conditionalKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	condScope := newScope()
	cond := k.ifN.Evaluate(ctx, &collectSink{}, tr, inst, loc, condScope)
	branch := k.thenN
	if !cond {
		branch = k.elseN
	} else {
		scope.merge(condScope)
	}
	if branch == nil {
		return true
	}
	child := newScope()
	if branch.Evaluate(ctx, snk, tr, inst, loc, child) {
		scope.merge(child)
		return true
	}
	return false
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
