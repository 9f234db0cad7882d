package jsonschema

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Draft identifies a supported JSON Schema specification version.
type Draft = validator.Draft

const (
	Draft4      = validator.Draft4
	Draft6      = validator.Draft6
	Draft7      = validator.Draft7
	Draft201909 = validator.Draft201909
	Draft202012 = validator.Draft202012
)

// DraftFromURI maps a $schema value to its draft; the match is exact.
func DraftFromURI(uri string) (Draft, bool) {
	return validator.DraftFromURI(uri)
}
