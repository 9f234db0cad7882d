package jsonschema_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/reoring/jsonschema"
)

func wantSchemaError(t *testing.T, schema string, fragment string, opts ...jsonschema.CompileOption) {
	t.Helper()
	_, err := jsonschema.CompileBytes([]byte(schema), opts...)
	if err == nil {
		t.Fatalf("expected schema error, got none")
	}
	var se *jsonschema.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if fragment != "" && !strings.Contains(err.Error(), fragment) {
		t.Errorf("error %q does not mention %q", err.Error(), fragment)
	}
}

func TestUnsupportedSchemaVersion(t *testing.T) {
	wantSchemaError(t, `{"$schema": "http://json-schema.org/draft-03/schema#"}`, "Unsupported schema version")
}

func TestMalformedKeywordShapes(t *testing.T) {
	wantSchemaError(t, `{"maxLength": "ten"}`, "maxLength")
	wantSchemaError(t, `{"pattern": "("}`, "invalid regex")
	wantSchemaError(t, `{"multipleOf": 0}`, "multipleOf")
	wantSchemaError(t, `{"type": "sting"}`, "unknown type")
	wantSchemaError(t, `{"enum": 3}`, "enum")
}

func TestDuplicateIdentifier(t *testing.T) {
	wantSchemaError(t, `{
	  "$id": "http://example.com/s",
	  "$defs": { "a": { "$id": "http://example.com/s" } }
	}`, "duplicate")
}

func TestUndefinedReference(t *testing.T) {
	wantSchemaError(t, `{"$ref": "http://example.com/missing"}`, "undefined reference")
}

func TestItemsArrayRejectedUnder202012(t *testing.T) {
	wantSchemaError(t, `{
	  "$schema": "https://json-schema.org/draft/2020-12/schema",
	  "items": [ { "type": "string" } ]
	}`, "prefixItems")
}

func TestDynamicRefUnknownUnderDraft7(t *testing.T) {
	// $dynamicRef is outside the draft-7 vocabulary: preserved as an
	// unknown keyword, no binding, no error.
	s := mustCompile(t, `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "$dynamicRef": "#items"
	}`)
	if !s.IsValid(mustInstance(t, `[1, 2, 3]`)) {
		t.Errorf("unknown keyword must not constrain instances")
	}
}

func TestInternalRefsDoNotInvokeResolvers(t *testing.T) {
	called := false
	resolver := func(uri string) (any, error) {
		called = true
		return nil, jsonschema.ErrSchemaNotFound
	}
	s := mustCompile(t, fruitsSchema, jsonschema.WithResolver(resolver))
	if called {
		t.Fatalf("resolver invoked for a schema with only internal refs")
	}
	if !s.IsValid(mustInstance(t, `{"fruits": []}`)) {
		t.Errorf("instance should be valid")
	}
}

func TestResolverErrorSurfacesAsSchemaError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := jsonschema.CompileBytes([]byte(`{"$ref": "http://example.com/remote"}`),
		jsonschema.WithResolver(func(uri string) (any, error) { return nil, boom }))
	var se *jsonschema.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("resolver cause not preserved: %v", err)
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	instances := []string{
		`{"fruits": ["a"], "vegetables": []}`,
		`{"fruits": [1]}`,
		`{"vegetables": [{"veggieName": "x", "veggieLike": true}]}`,
		`{"vegetables": [{"veggieName": "x"}]}`,
		`[]`,
	}
	s1 := mustCompile(t, fruitsSchema)
	s2 := mustCompile(t, fruitsSchema)
	for _, doc := range instances {
		inst := mustInstance(t, doc)
		if s1.IsValid(inst) != s2.IsValid(inst) {
			t.Errorf("verdicts differ for %s", doc)
		}
	}
}

func TestValidationIsDeterministicAcrossGoroutines(t *testing.T) {
	s := mustCompile(t, fruitsSchema)
	instance := mustInstance(t, `{
	  "fruits": [1, 2],
	  "vegetables": [ { "veggieName": "x" } ]
	}`)
	want := messagesOf(t, s, instance)
	if len(want) == 0 {
		t.Fatalf("instance should be invalid")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				err := s.Validate(instance)
				got, _ := err.(jsonschema.Messages)
				if len(got) != len(want) {
					t.Errorf("message count changed: %d vs %d", len(got), len(want))
					return
				}
				for k := range got {
					if got[k].InstanceLocation != want[k].InstanceLocation || got[k].Keyword != want[k].Keyword {
						t.Errorf("message %d differs: %v vs %v", k, got[k], want[k])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestSchemaValidationAgainstMetaSchema(t *testing.T) {
	// Tolerated by the builder (title is an annotation) but rejected by the
	// meta-schema.
	schema := `{
	  "$schema": "https://json-schema.org/draft/2020-12/schema",
	  "title": 123
	}`
	if _, err := jsonschema.CompileBytes([]byte(schema)); err != nil {
		t.Fatalf("compile without meta validation: %v", err)
	}
	wantSchemaError(t, schema, "meta-schema", jsonschema.WithSchemaValidation(true))

	if _, err := jsonschema.CompileBytes([]byte(fruitsSchema), jsonschema.WithSchemaValidation(true)); err != nil {
		t.Fatalf("conforming schema rejected: %v", err)
	}
}

func TestBooleanRootSchemas(t *testing.T) {
	yes, err := jsonschema.Compile(true)
	if err != nil {
		t.Fatalf("compile true: %v", err)
	}
	if !yes.IsValid(mustInstance(t, `{"anything": [1, 2]}`)) {
		t.Errorf("true schema must accept everything")
	}
	no, err := jsonschema.Compile(false)
	if err != nil {
		t.Fatalf("compile false: %v", err)
	}
	msgs := messagesOf(t, no, mustInstance(t, `0`))
	if len(msgs) != 1 || msgs[0].Message != "false schema always fails" {
		t.Fatalf("false schema message = %v", msgs)
	}
}

func TestDefaultDraftOption(t *testing.T) {
	// dependentRequired is 2019-09 vocabulary; under draft 7 it is an
	// unknown keyword and must not constrain anything.
	schema := `{"dependentRequired": {"a": ["b"]}}`
	instance := mustInstance(t, `{"a": 1}`)

	modern := mustCompile(t, schema)
	if modern.IsValid(instance) {
		t.Errorf("2020-12 default: dependentRequired should fire")
	}
	legacy := mustCompile(t, schema, jsonschema.WithDefaultDraft(jsonschema.Draft7))
	if !legacy.IsValid(instance) {
		t.Errorf("draft-7: dependentRequired is unknown and must not fire")
	}
}

func TestDraft4BooleanExclusiveMinimum(t *testing.T) {
	s := mustCompile(t, `{
	  "$schema": "http://json-schema.org/draft-04/schema#",
	  "minimum": 3,
	  "exclusiveMinimum": true
	}`)
	if s.IsValid(mustInstance(t, `3`)) {
		t.Errorf("3 should fail an exclusive minimum of 3")
	}
	if !s.IsValid(mustInstance(t, `4`)) {
		t.Errorf("4 should pass")
	}
}

func TestLegacyDependencies(t *testing.T) {
	s := mustCompile(t, `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "dependencies": {
	    "credit_card": [ "billing_address" ],
	    "shipping": { "properties": { "address": { "type": "string" } }, "required": [ "address" ] }
	  }
	}`)
	if !s.IsValid(mustInstance(t, `{"name": "x"}`)) {
		t.Errorf("no trigger properties, should be valid")
	}
	if s.IsValid(mustInstance(t, `{"credit_card": "4111"}`)) {
		t.Errorf("array dependency should require billing_address")
	}
	if s.IsValid(mustInstance(t, `{"shipping": true}`)) {
		t.Errorf("schema dependency should require address")
	}
	if !s.IsValid(mustInstance(t, `{"credit_card": "4111", "billing_address": "a", "shipping": 1, "address": "b"}`)) {
		t.Errorf("satisfied dependencies should be valid")
	}
}
