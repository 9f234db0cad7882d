package validator

import (
	"encoding/json"
	"testing"
)

func TestCanonicalEqualNumbers(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{json.Number("1"), json.Number("1.0"), true},
		{json.Number("1"), float64(1), true},
		{json.Number("0.1"), json.Number("0.10"), true},
		{json.Number("1"), json.Number("2"), false},
		{json.Number("1"), "1", false},
	}
	for _, tc := range cases {
		if got := canonicalEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("canonicalEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCanonicalEqualStructures(t *testing.T) {
	a := map[string]any{"x": json.Number("1"), "y": []any{true, nil}}
	b := map[string]any{"y": []any{true, nil}, "x": json.Number("1.0")}
	if !canonicalEqual(a, b) {
		t.Errorf("key order and number storage must not matter")
	}
	c := map[string]any{"x": json.Number("1")}
	if canonicalEqual(a, c) {
		t.Errorf("differing key sets are unequal")
	}
	if canonicalEqual([]any{json.Number("1")}, []any{json.Number("1"), json.Number("2")}) {
		t.Errorf("differing lengths are unequal")
	}
}

func TestJSONTypeOf(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"s", "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
		{json.Number("3"), "integer"},
		{json.Number("3.5"), "number"},
		{json.Number("3.0"), "integer"},
	}
	for _, tc := range cases {
		if got := jsonTypeOf(tc.v); got != tc.want {
			t.Errorf("jsonTypeOf(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
