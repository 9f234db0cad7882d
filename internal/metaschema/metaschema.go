// Package metaschema bundles the meta-schema documents for the five
// supported drafts and serves them as decoded JSON. The documents are the
// resource-provider side of the built-in meta resolver; callers treat them
// as opaque, read-only values.
package metaschema

import (
	"bytes"
	"embed"
	"sync"

	"github.com/goccy/go-json"
)

//go:embed *.json
var metaFS embed.FS

// Keyed by the base URI of the draft's $schema value (fragment stripped).
var files = map[string]string{
	"http://json-schema.org/draft-04/schema":      "draft04.json",
	"http://json-schema.org/draft-06/schema":      "draft06.json",
	"http://json-schema.org/draft-07/schema":      "draft07.json",
	"https://json-schema.org/draft/2019-09/schema": "draft201909.json",
	"https://json-schema.org/draft/2020-12/schema": "draft202012.json",
}

var (
	mu    sync.Mutex
	cache = make(map[string]any)
)

// Get returns the decoded meta-schema for a draft base URI, or false when
// the URI is not one of the five bundled drafts. The returned document is
// shared and must not be mutated.
func Get(uri string) (any, bool) {
	name, ok := files[uri]
	if !ok {
		return nil, false
	}
	mu.Lock()
	defer mu.Unlock()
	if doc, ok := cache[uri]; ok {
		return doc, true
	}
	data, err := metaFS.ReadFile(name)
	if err != nil {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}
	cache[uri] = doc
	return doc, true
}
