package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Draft 2019-09 introduces $anchor, $defs, $recursiveRef/$recursiveAnchor,
// the dependent* split of dependencies, min/maxContains, unevaluated
// keywords, and $vocabulary. The items array form remains recognized
// (deprecated in the spec, not removed).
var draft201909Dialect = &dialect{
	draft:          validator.Draft201909,
	idKeyword:      "$id",
	minMaxContains: true,
	keywords: mergeKeywords(draft7Dialect.keywords, map[string]int{
		"definitions":  removed,
		"dependencies": removed,

		"$defs":                 rankDefs,
		"$anchor":               skip,
		"$recursiveRef":         rankRecursiveRef,
		"$recursiveAnchor":      skip,
		"$vocabulary":           skip,
		"deprecated":            skip,
		"contentSchema":         skip,
		"minContains":           skip, // folded into contains
		"maxContains":           skip, // folded into contains
		"dependentRequired":     rankDependentRequired,
		"dependentSchemas":      rankDependentSchemas,
		"unevaluatedProperties": rankUnevaluatedProperties,
		"unevaluatedItems":      rankUnevaluatedItems,
	}),
}
