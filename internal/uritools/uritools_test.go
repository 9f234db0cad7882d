package uritools

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"http://localhost:1234/object", "name.json#/definitions/orNull", "http://localhost:1234/name.json#/definitions/orNull"},
		{"https://example.com/schema", "schema/foo", "https://example.com/schema/foo"},
		{"https://example.com/root", "#items", "https://example.com/root#items"},
		{"https://example.com/a/b", "/c", "https://example.com/c"},
		{"https://example.com/a", "https://other.org/x", "https://other.org/x"},
		{"", "name.json#/a", "name.json#/a"},
	}
	for _, tc := range cases {
		got, err := Resolve(tc.base, tc.ref)
		if err != nil {
			t.Errorf("Resolve(%q, %q): %v", tc.base, tc.ref, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tc.base, tc.ref, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		uri  string
		want FragmentKind
	}{
		{"https://example.com/s", FragmentNone},
		{"https://example.com/s#", FragmentNone},
		{"https://example.com/s#/a/b", FragmentPointer},
		{"https://example.com/s#items", FragmentPlainName},
		{"#name", FragmentPlainName},
		{"#/properties/x", FragmentPointer},
	}
	for _, tc := range cases {
		if got := Classify(tc.uri); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.uri, got, tc.want)
		}
	}
}

func TestAppendKeyword(t *testing.T) {
	cases := []struct {
		uri, key, want string
	}{
		{"https://example.com/s", "properties", "https://example.com/s#/properties"},
		{"https://example.com/s#/properties", "a~b", "https://example.com/s#/properties/a~0b"},
		{"https://example.com/s#/p", "a/b", "https://example.com/s#/p/a~1b"},
		{"", "items", "#/items"},
	}
	for _, tc := range cases {
		if got := AppendKeyword(tc.uri, tc.key); got != tc.want {
			t.Errorf("AppendKeyword(%q, %q) = %q, want %q", tc.uri, tc.key, got, tc.want)
		}
	}
}

func TestNormalizeStripsEmptyFragment(t *testing.T) {
	if got := Normalize("http://json-schema.org/draft-07/schema#"); got != "http://json-schema.org/draft-07/schema" {
		t.Errorf("Normalize = %q", got)
	}
	if !Equal("http://a/b#", "http://a/b") {
		t.Errorf("empty fragment should compare equal to none")
	}
}
