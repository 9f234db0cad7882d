package jsonschema_test

import (
	"strings"
	"testing"

	"github.com/reoring/jsonschema"
)

func TestMultipleOfUsesExactArithmetic(t *testing.T) {
	s := mustCompile(t, `{"multipleOf": 0.01}`)
	// 19.99 / 0.01 is not exact in binary floating point; the rational
	// check must still accept it.
	if !s.IsValid(mustInstance(t, `19.99`)) {
		t.Errorf("19.99 is a multiple of 0.01")
	}
	if s.IsValid(mustInstance(t, `19.995`)) {
		t.Errorf("19.995 is not a multiple of 0.01")
	}
}

func TestNumericComparisonIgnoresStorageType(t *testing.T) {
	s := mustCompile(t, `{"maximum": 10}`)
	if !s.IsValid(mustInstance(t, `10.0`)) {
		t.Errorf("10.0 equals the maximum")
	}
	if s.IsValid(mustInstance(t, `10.5`)) {
		t.Errorf("10.5 exceeds the maximum")
	}
	integerOnly := mustCompile(t, `{"type": "integer"}`)
	if !integerOnly.IsValid(mustInstance(t, `1.0`)) {
		t.Errorf("1.0 has zero fractional part and counts as integer")
	}
}

func TestUniqueItemsStructuralEquality(t *testing.T) {
	s := mustCompile(t, `{"uniqueItems": true}`)
	if s.IsValid(mustInstance(t, `[1, 1.0]`)) {
		t.Errorf("1 and 1.0 are equal by canonical form")
	}
	if !s.IsValid(mustInstance(t, `[1, 2, "1"]`)) {
		t.Errorf("number and string are distinct")
	}
	if s.IsValid(mustInstance(t, `[{"a": 1, "b": 2}, {"b": 2.0, "a": 1}]`)) {
		t.Errorf("object key order is ignored")
	}
}

func TestContainsBounds(t *testing.T) {
	s := mustCompile(t, `{
	  "contains": { "type": "integer" },
	  "minContains": 2,
	  "maxContains": 3
	}`)
	if s.IsValid(mustInstance(t, `[1, "x"]`)) {
		t.Errorf("one match is below minContains")
	}
	if !s.IsValid(mustInstance(t, `[1, 2, "x"]`)) {
		t.Errorf("two matches satisfy the bounds")
	}
	if s.IsValid(mustInstance(t, `[1, 2, 3, 4]`)) {
		t.Errorf("four matches exceed maxContains")
	}

	vacuous := mustCompile(t, `{"contains": {"type": "integer"}, "minContains": 0}`)
	if !vacuous.IsValid(mustInstance(t, `[]`)) {
		t.Errorf("minContains 0 makes contains satisfiable by an empty array")
	}
	defaulted := mustCompile(t, `{"contains": {"type": "integer"}}`)
	if defaulted.IsValid(mustInstance(t, `[]`)) {
		t.Errorf("contains defaults to at least one match")
	}
}

func TestOneOfReportsMatchedIndices(t *testing.T) {
	s := mustCompile(t, `{"oneOf": [ { "type": "number" }, { "type": "integer" } ]}`)
	msgs := messagesOf(t, s, mustInstance(t, `1`))
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if !strings.Contains(msgs[0].Message, "indices 0, 1") {
		t.Errorf("message %q does not name the matching branches", msgs[0].Message)
	}

	none := messagesOf(t, s, mustInstance(t, `"s"`))
	if len(none) != 1 || len(none[0].Nested) == 0 {
		t.Errorf("no-match failure should nest the branch messages: %v", none)
	}
}

func TestNotSuppressesInnerErrors(t *testing.T) {
	s := mustCompile(t, `{"not": {"type": "string"}}`)
	msgs := messagesOf(t, s, mustInstance(t, `"text"`))
	if len(msgs) != 1 || msgs[0].Keyword != "not" {
		t.Fatalf("expected a single not failure, got %v", msgs)
	}
	if !s.IsValid(mustInstance(t, `5`)) {
		t.Errorf("non-string must pass")
	}
}

func TestIfThenElse(t *testing.T) {
	s := mustCompile(t, `{
	  "if": { "properties": { "kind": { "const": "card" } }, "required": [ "kind" ] },
	  "then": { "required": [ "number" ] },
	  "else": { "required": [ "iban" ] }
	}`)
	if !s.IsValid(mustInstance(t, `{"kind": "card", "number": "4111"}`)) {
		t.Errorf("then branch satisfied")
	}
	if s.IsValid(mustInstance(t, `{"kind": "card"}`)) {
		t.Errorf("then branch requires number")
	}
	if !s.IsValid(mustInstance(t, `{"kind": "transfer", "iban": "DE"}`)) {
		t.Errorf("else branch satisfied")
	}
	if s.IsValid(mustInstance(t, `{"kind": "transfer"}`)) {
		t.Errorf("else branch requires iban")
	}
}

func TestUnevaluatedItems(t *testing.T) {
	s := mustCompile(t, `{
	  "$schema": "https://json-schema.org/draft/2020-12/schema",
	  "prefixItems": [ { "type": "string" } ],
	  "allOf": [
	    { "prefixItems": [ true, { "type": "number" } ] }
	  ],
	  "unevaluatedItems": false
	}`)
	if !s.IsValid(mustInstance(t, `["a", 1]`)) {
		t.Errorf("both positions evaluated")
	}
	msgs := messagesOf(t, s, mustInstance(t, `["a", 1, "extra"]`))
	if len(msgs) != 1 || msgs[0].InstanceLocation != "/2" {
		t.Fatalf("expected 1 message at /2, got %v", msgs)
	}
}

func TestPatternAndPatternProperties(t *testing.T) {
	s := mustCompile(t, `{
	  "patternProperties": {
	    "^x-": { "type": "string" }
	  },
	  "additionalProperties": false
	}`)
	if !s.IsValid(mustInstance(t, `{"x-token": "v"}`)) {
		t.Errorf("matching property should validate against the pattern schema")
	}
	if s.IsValid(mustInstance(t, `{"x-token": 1}`)) {
		t.Errorf("pattern-matched value must satisfy the subschema")
	}
	if s.IsValid(mustInstance(t, `{"other": "v"}`)) {
		t.Errorf("unmatched property hits additionalProperties: false")
	}
}

func TestPropertyNames(t *testing.T) {
	s := mustCompile(t, `{"propertyNames": { "maxLength": 3 }}`)
	if !s.IsValid(mustInstance(t, `{"abc": 1}`)) {
		t.Errorf("short names pass")
	}
	if s.IsValid(mustInstance(t, `{"abcd": 1}`)) {
		t.Errorf("long names fail")
	}
}

func TestFormatAssertions(t *testing.T) {
	cases := []struct {
		format string
		good   string
		bad    string
	}{
		{"date-time", `"2024-03-01T10:00:00Z"`, `"2024-03-01 10:00"`},
		{"date", `"2024-03-01"`, `"03/01/2024"`},
		{"time", `"10:00:00Z"`, `"25:00:00Z"`},
		{"email", `"dev@example.com"`, `"not-an-email"`},
		{"hostname", `"example.com"`, `"-bad-.com"`},
		{"ipv4", `"192.168.0.1"`, `"999.1.1.1"`},
		{"ipv6", `"::1"`, `"192.168.0.1"`},
		{"regex", `"^a+$"`, `"("`},
	}
	for _, tc := range cases {
		s := mustCompile(t, `{"format": "`+tc.format+`"}`)
		if !s.IsValid(mustInstance(t, tc.good)) {
			t.Errorf("format %s: %s should be valid", tc.format, tc.good)
		}
		if s.IsValid(mustInstance(t, tc.bad)) {
			t.Errorf("format %s: %s should be invalid", tc.format, tc.bad)
		}
	}

	relaxed := mustCompile(t, `{"format": "ipv4"}`, jsonschema.WithFormatAssertions(false))
	if !relaxed.IsValid(mustInstance(t, `"999.1.1.1"`)) {
		t.Errorf("disabled format assertions must not fire")
	}

	unknown := mustCompile(t, `{"format": "fantasy"}`)
	if !unknown.IsValid(mustInstance(t, `"whatever"`)) {
		t.Errorf("formats outside the fixed list are annotations")
	}
}

func TestContentKeywords(t *testing.T) {
	s := mustCompile(t, `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "contentEncoding": "base64",
	  "contentMediaType": "application/json"
	}`)
	if !s.IsValid(mustInstance(t, `"eyJhIjogMX0="`)) { // {"a": 1}
		t.Errorf("valid base64-wrapped JSON should pass")
	}
	if s.IsValid(mustInstance(t, `"%%%"`)) {
		t.Errorf("invalid base64 should fail")
	}
}

func TestEvaluatedSetSoundness(t *testing.T) {
	// properties, patternProperties and additionalProperties together cover
	// every member, so unevaluatedProperties has nothing left to reject.
	s := mustCompile(t, `{
	  "$schema": "https://json-schema.org/draft/2019-09/schema",
	  "properties": { "a": true },
	  "patternProperties": { "^x-": true },
	  "additionalProperties": true,
	  "unevaluatedProperties": false
	}`)
	if !s.IsValid(mustInstance(t, `{"a": 1, "x-b": 2, "c": 3}`)) {
		t.Errorf("every property is evaluated by a sibling applicator")
	}
}
