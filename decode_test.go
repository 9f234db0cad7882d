package jsonschema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/reoring/jsonschema"
)

func TestUnmarshalInstancePreservesNumbers(t *testing.T) {
	v, err := jsonschema.UnmarshalInstance([]byte(`{"n": 19.99}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, ok := v.(map[string]any)["n"].(json.Number)
	if !ok {
		t.Fatalf("number decoded as %T, want json.Number", v.(map[string]any)["n"])
	}
	if n.String() != "19.99" {
		t.Errorf("number text = %q", n.String())
	}
}

func TestUnmarshalInstanceRejectsDuplicateKeys(t *testing.T) {
	_, err := jsonschema.UnmarshalInstance([]byte(`{"a": 1, "a": 2}`))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate-key error, got %v", err)
	}
}

func TestUnmarshalInstanceRejectsTrailingData(t *testing.T) {
	_, err := jsonschema.UnmarshalInstance([]byte(`{} []`))
	if err == nil {
		t.Fatalf("expected trailing-data error")
	}
}
