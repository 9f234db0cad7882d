package jsonschema_test

import (
	"testing"

	"github.com/reoring/jsonschema"
)

func collectKeywords(tr *jsonschema.TraceNode, into map[string]int) {
	if tr.Keyword != "" {
		into[tr.Keyword]++
	}
	for _, child := range tr.Children {
		collectKeywords(child, into)
	}
}

func TestTraceMirrorsEvaluation(t *testing.T) {
	s := mustCompile(t, `{
	  "type": "object",
	  "properties": {
	    "a": { "type": "string" },
	    "b": { "anyOf": [ { "type": "string" }, { "type": "integer" } ] }
	  }
	}`)

	trace, err := s.ValidateWithTrace(mustInstance(t, `{"a": "x", "b": "y"}`))
	if err != nil {
		t.Fatalf("unexpected messages: %v", err)
	}
	if !trace.Valid {
		t.Fatalf("trace root should be valid")
	}
	seen := map[string]int{}
	collectKeywords(trace, seen)
	if seen["type"] == 0 || seen["anyOf"] == 0 {
		t.Errorf("trace misses keyword records: %v", seen)
	}
	// A trace sink demands completeness: both anyOf branches evaluate even
	// though the first one already passes for "y".
	if seen["type"] < 4 {
		t.Errorf("expected type records for root, a, and both anyOf branches, got %d", seen["type"])
	}
}

func TestTraceRecordsFailures(t *testing.T) {
	s := mustCompile(t, `{"type": "object"}`)
	trace, err := s.ValidateWithTrace(mustInstance(t, `42`))
	if err == nil {
		t.Fatalf("expected messages")
	}
	if trace.Valid {
		t.Fatalf("trace root should be invalid")
	}
	if len(trace.Children) == 0 || trace.Children[0].Valid {
		t.Fatalf("type record should be present and invalid: %+v", trace)
	}
	if trace.Children[0].InstanceLocation != "" {
		t.Errorf("root-level record location = %q, want root pointer", trace.Children[0].InstanceLocation)
	}
}
