package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Evaluation ranks. The builder sorts a node's compiled keywords by rank so
// evaluation runs simple assertions first, then in-place applicators, then
// references, then property/item applicators, and the unevaluated sweeps
// last.

// skip marks a keyword that is recognized by the draft but produces no
// validator of its own: annotations, identifiers, and keywords folded into a
// sibling's producer.
const skip = -1

const (
	rankType = iota
	rankEnum
	rankConst
	rankMinLength
	rankMaxLength
	rankPattern
	rankFormat
	rankMultipleOf
	rankMaximum
	rankExclusiveMaximum
	rankMinimum
	rankExclusiveMinimum
	rankRequired
	rankMinProperties
	rankMaxProperties
	rankMinItems
	rankMaxItems
	rankUniqueItems
	rankContentEncoding
	rankContentMediaType
	rankDependentRequired
)

const (
	rankAllOf = 30 + iota
	rankAnyOf
	rankOneOf
	rankNot
	rankIf
	rankThen
	rankElse
)

const (
	rankRef = 60 + iota
	rankDynamicRef
	rankRecursiveRef
)

const (
	rankProperties = 90 + iota
	rankPatternProperties
	rankAdditionalProperties
	rankPropertyNames
	rankDependencies
	rankDependentSchemas
	rankItems
	rankPrefixItems
	rankAdditionalItems
	rankContains
)

const rankDefs = 150

const (
	rankUnevaluatedProperties = 200 + iota
	rankUnevaluatedItems
)

// dialect is one draft's strategy: the recognized keyword set with its
// evaluation ranks, plus the handful of semantic switches that cannot be
// expressed as mere table membership.
type dialect struct {
	draft     validator.Draft
	idKeyword string
	keywords  map[string]int

	boolExclusive  bool // exclusiveMinimum/Maximum are boolean siblings (draft 4)
	minMaxContains bool // contains reads sibling minContains/maxContains
	prefixItems    bool // items array form is invalid; prefixItems instead
}

func (d *dialect) recognizes(name string) (rank int, ok bool) {
	rank, ok = d.keywords[name]
	return rank, ok
}

// dialectFor returns the dialect for a draft.
func dialectFor(draft validator.Draft) *dialect {
	switch draft {
	case validator.Draft4:
		return draft4Dialect
	case validator.Draft6:
		return draft6Dialect
	case validator.Draft7:
		return draft7Dialect
	case validator.Draft201909:
		return draft201909Dialect
	case validator.Draft202012:
		return draft202012Dialect
	}
	return nil
}

// mergeKeywords overlays deltas onto a copy of base; a skip-only sentinel
// value of -2 removes the keyword.
const removed = -2

func mergeKeywords(base map[string]int, deltas map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(deltas))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range deltas {
		if v == removed {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}
