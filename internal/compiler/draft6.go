package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Draft 6 extends draft 4 with $id, const, contains, propertyNames,
// examples, and numeric exclusiveMinimum/Maximum.
var draft6Dialect = &dialect{
	draft:     validator.Draft6,
	idKeyword: "$id",
	keywords: mergeKeywords(draft4Dialect.keywords, map[string]int{
		"id":               removed,
		"$id":              skip,
		"examples":         skip,
		"const":            rankConst,
		"contains":         rankContains,
		"propertyNames":    rankPropertyNames,
		"exclusiveMaximum": rankExclusiveMaximum,
		"exclusiveMinimum": rankExclusiveMinimum,
	}),
}
