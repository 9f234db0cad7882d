package jsonschema_test

import (
	"encoding/json"
	"testing"
)

func TestDefaultsPatch(t *testing.T) {
	s := mustCompile(t, `{
	  "properties": {
	    "bar": { "type": "string", "minLength": 4, "default": "bad" }
	  }
	}`)

	instance := mustInstance(t, `{}`)
	patch, err := s.ValidateWithPatch(instance)
	if err != nil {
		t.Fatalf("unexpected messages: %v", err)
	}
	if len(patch) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(patch))
	}
	op := patch[0]
	if op.Op != "add" || op.Path != "/bar" || op.Value != "bad" {
		t.Fatalf("operation = %+v, want add /bar \"bad\"", op)
	}

	patched, err := patch.Apply(instance)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	obj, ok := patched.(map[string]any)
	if !ok || obj["bar"] != "bad" {
		t.Fatalf("patched instance = %v, want {\"bar\":\"bad\"}", patched)
	}
}

func TestDefaultsPatchNestedAndPresent(t *testing.T) {
	s := mustCompile(t, `{
	  "properties": {
	    "outer": {
	      "type": "object",
	      "properties": {
	        "inner": { "type": "integer", "default": 7 }
	      }
	    },
	    "present": { "type": "string", "default": "unused" }
	  }
	}`)

	instance := mustInstance(t, `{"outer": {}, "present": "here"}`)
	patch, err := s.ValidateWithPatch(instance)
	if err != nil {
		t.Fatalf("unexpected messages: %v", err)
	}
	if len(patch) != 1 {
		t.Fatalf("expected 1 operation, got %d: %v", len(patch), patch)
	}
	if patch[0].Path != "/outer/inner" {
		t.Errorf("path = %q, want /outer/inner", patch[0].Path)
	}

	patched, err := patch.Apply(instance)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	outer := patched.(map[string]any)["outer"].(map[string]any)
	if n, ok := outer["inner"].(json.Number); !ok || n.String() != "7" {
		t.Errorf("inner = %v, want 7", outer["inner"])
	}
}

func TestPatchSkippedWithoutSink(t *testing.T) {
	s := mustCompile(t, `{
	  "properties": { "bar": { "type": "string", "default": "x" } },
	  "required": [ "bar" ]
	}`)
	// Plain validation does not inject defaults: bar stays missing.
	if err := s.Validate(mustInstance(t, `{}`)); err == nil {
		t.Fatalf("required must still fail without a patch sink")
	}
}
