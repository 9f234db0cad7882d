package validator

import (
	"fmt"

	"github.com/xeipuuv/gojsonpointer"
)

// PatchOperation is a single JSON Patch operation. The engine only ever emits
// "add" operations carrying schema defaults for missing properties.
type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Patch is an RFC 6902 document collected during validation with defaults
// enabled. Operations appear in the order the engine encountered the missing
// properties.
type Patch []PatchOperation

// Apply applies the patch to doc and returns the patched document. doc is the
// decoded instance (map[string]any / []any shapes); containers are modified
// in place where possible.
func (p Patch) Apply(doc any) (any, error) {
	for _, op := range p {
		if op.Op != "add" {
			return nil, fmt.Errorf("unsupported patch op %q", op.Op)
		}
		if op.Path == "" {
			doc = op.Value
			continue
		}
		parent, last, err := splitPointer(op.Path)
		if err != nil {
			return nil, err
		}
		target := doc
		if parent != "" {
			ptr, err := gojsonpointer.NewJsonPointer(parent)
			if err != nil {
				return nil, fmt.Errorf("invalid patch path %q: %w", op.Path, err)
			}
			target, _, err = ptr.Get(doc)
			if err != nil {
				return nil, fmt.Errorf("patch path %q: %w", op.Path, err)
			}
		}
		obj, ok := target.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("patch path %q does not address an object member", op.Path)
		}
		obj[last] = op.Value
	}
	return doc, nil
}

// splitPointer splits a JSON Pointer into its parent pointer and the final,
// unescaped reference token.
func splitPointer(ptr string) (parent, last string, err error) {
	if ptr == "" || ptr[0] != '/' {
		return "", "", fmt.Errorf("invalid json pointer %q", ptr)
	}
	idx := -1
	for i := len(ptr) - 1; i >= 0; i-- {
		if ptr[i] == '/' {
			idx = i
			break
		}
	}
	parent = ptr[:idx]
	last = unescapeToken(ptr[idx+1:])
	return parent, last, nil
}

func unescapeToken(tok string) string {
	out := make([]byte, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		if tok[i] == '~' && i+1 < len(tok) {
			switch tok[i+1] {
			case '0':
				out = append(out, '~')
				i++
				continue
			case '1':
				out = append(out, '/')
				i++
				continue
			}
		}
		out = append(out, tok[i])
	}
	return string(out)
}
