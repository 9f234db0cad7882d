package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Draft 2020-12 replaces $recursiveRef/$recursiveAnchor with
// $dynamicRef/$dynamicAnchor, and the items array form with prefixItems;
// items keeps only the schema form and additionalItems is gone.
var draft202012Dialect = &dialect{
	draft:          validator.Draft202012,
	idKeyword:      "$id",
	minMaxContains: true,
	prefixItems:    true,
	keywords: mergeKeywords(draft201909Dialect.keywords, map[string]int{
		"$recursiveRef":    removed,
		"$recursiveAnchor": removed,
		"additionalItems":  removed,

		"$dynamicRef":    rankDynamicRef,
		"$dynamicAnchor": skip,
		"prefixItems":    rankPrefixItems,
	}),
}
