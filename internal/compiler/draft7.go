package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Draft 7 extends draft 6 with if/then/else, content keywords, $comment,
// and the readOnly/writeOnly annotations.
var draft7Dialect = &dialect{
	draft:     validator.Draft7,
	idKeyword: "$id",
	keywords: mergeKeywords(draft6Dialect.keywords, map[string]int{
		"$comment":         skip,
		"readOnly":         skip,
		"writeOnly":        skip,
		"if":               rankIf,
		"then":             rankThen,
		"else":             rankElse,
		"contentEncoding":  rankContentEncoding,
		"contentMediaType": rankContentMediaType,
	}),
}
