package compiler

import (
	"github.com/reoring/jsonschema/internal/validator"
)

// Draft 4: legacy "id" identifier, boolean exclusiveMinimum/Maximum
// siblings, no const/contains/propertyNames, no conditional applicators.
var draft4Dialect = &dialect{
	draft:         validator.Draft4,
	idKeyword:     "id",
	boolExclusive: true,
	keywords: map[string]int{
		// core
		"$schema":     skip,
		"id":          skip,
		"$ref":        rankRef,
		"definitions": rankDefs,
		"title":       skip,
		"description": skip,
		"default":     skip,
		"format":      rankFormat,

		// assertions
		"type":             rankType,
		"enum":             rankEnum,
		"multipleOf":       rankMultipleOf,
		"maximum":          rankMaximum,
		"exclusiveMaximum": skip, // boolean sibling of maximum
		"minimum":          rankMinimum,
		"exclusiveMinimum": skip, // boolean sibling of minimum
		"maxLength":        rankMaxLength,
		"minLength":        rankMinLength,
		"pattern":          rankPattern,
		"maxItems":         rankMaxItems,
		"minItems":         rankMinItems,
		"uniqueItems":      rankUniqueItems,
		"maxProperties":    rankMaxProperties,
		"minProperties":    rankMinProperties,
		"required":         rankRequired,

		// applicators
		"allOf":                rankAllOf,
		"anyOf":                rankAnyOf,
		"oneOf":                rankOneOf,
		"not":                  rankNot,
		"properties":           rankProperties,
		"patternProperties":    rankPatternProperties,
		"additionalProperties": rankAdditionalProperties,
		"dependencies":         rankDependencies,
		"items":                rankItems,
		"additionalItems":      rankAdditionalItems,
	},
}
