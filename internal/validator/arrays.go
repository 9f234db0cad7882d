package validator

import (
	"fmt"
	"math"
)

// arrayApplicator evaluates positional and trailing item subschemas. prefix
// comes from prefixItems (2020-12) or the array form of items (earlier
// drafts); rest comes from the schema form of items or from additionalItems,
// and applies to every index past the prefix.
type arrayApplicator struct {
	keywordBase
	prefix        []*Node
	prefixKeyword string
	prefixLoc     string
	rest          *Node
	restKeyword   string
	restLoc       string
}

// NewArrayApplicator builds the item applicator; prefix may be empty and
// rest may be nil.
func NewArrayApplicator(location string, prefix []*Node, prefixKeyword, prefixLoc string,
	rest *Node, restKeyword, restLoc string) Keyword {
	name := restKeyword
	if len(prefix) > 0 {
		name = prefixKeyword
	}
	return &arrayApplicator{
		keywordBase:   keywordBase{name, location},
		prefix:        prefix,
		prefixKeyword: prefixKeyword,
		prefixLoc:     prefixLoc,
		rest:          rest,
		restKeyword:   restKeyword,
		restLoc:       restLoc,
	}
}

func (k *arrayApplicator) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	arr, ok := inst.([]any)
	if !ok {
		return true
	}
	valid := true
	for i, item := range arr {
		var sub *Node
		if i < len(k.prefix) {
			sub = k.prefix[i]
		} else {
			sub = k.rest
		}
		if sub == nil {
			continue
		}
		if sub.Evaluate(ctx, snk, tr, item, childIndex(loc, i), newScope()) {
			scope.markItem(i)
		} else {
			valid = false
		}
	}
	return valid
}

// containsKeyword counts items matching the subschema; the count must lie in
// [min, max]. min zero makes the keyword vacuously satisfiable, even by an
// empty array.
type containsKeyword struct {
	keywordBase
	sub    *Node
	min    int
	minLoc string
	max    int
	maxLoc string
}

// NewContains compiles contains with its sibling minContains/maxContains.
// Callers pass min = 1 and max = math.MaxInt when the siblings are absent.
func NewContains(location string, sub *Node, min int, minLoc string, max int, maxLoc string) Keyword {
	return &containsKeyword{keywordBase{"contains", location}, sub, min, minLoc, max, maxLoc}
}

// DefaultMaxContains is the open upper bound used when maxContains is absent.
const DefaultMaxContains = math.MaxInt

func (k *containsKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	arr, ok := inst.([]any)
	if !ok {
		return true
	}
	count := 0
	for i, item := range arr {
		if k.sub.Evaluate(ctx, &collectSink{}, tr, item, childIndex(loc, i), newScope()) {
			count++
			scope.markItem(i)
		}
	}
	if count < k.min {
		if k.min == 1 {
			return k.fail(snk, loc, "no item matched the contains schema")
		}
		snk.report(Message{
			InstanceLocation: loc,
			SchemaLocation:   k.minLoc,
			Keyword:          "minContains",
			Message:          fmt.Sprintf("expected at least %d matching items, found %d", k.min, count),
		})
		return false
	}
	if count > k.max {
		snk.report(Message{
			InstanceLocation: loc,
			SchemaLocation:   k.maxLoc,
			Keyword:          "maxContains",
			Message:          fmt.Sprintf("expected at most %d matching items, found %d", k.max, count),
		})
		return false
	}
	return true
}

// unevaluatedItemsKeyword sweeps every index not in the evaluated set.
type unevaluatedItemsKeyword struct {
	keywordBase
	sub *Node
}

func NewUnevaluatedItems(location string, sub *Node) Keyword {
	return &unevaluatedItemsKeyword{keywordBase{"unevaluatedItems", location}, sub}
}

func (k *unevaluatedItemsKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	arr, ok := inst.([]any)
	if !ok {
		return true
	}
	valid := true
	for i, item := range arr {
		if scope.hasItem(i) {
			continue
		}
		if k.sub.Evaluate(ctx, snk, tr, item, childIndex(loc, i), newScope()) {
			scope.markItem(i)
		} else {
			valid = false
		}
	}
	return valid
}
