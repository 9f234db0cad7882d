// Package uritools implements the identifier scope used by the schema
// compiler: resolving relative identifiers against a base, classifying
// fragments, and appending keyword segments to JSON Pointer fragments.
//
// Registry keys are canonical strings produced by Normalize; the fragment is
// significant (a document and an anchored subschema are distinct entries).
package uritools

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xeipuuv/gojsonreference"
)

// FragmentKind classifies the fragment of an identifier.
type FragmentKind int

const (
	FragmentNone FragmentKind = iota
	FragmentPointer
	FragmentPlainName
)

// Resolve resolves ref against base and returns the canonical absolute form.
// base must already be absolute (or empty, in which case ref is taken as-is).
func Resolve(base, ref string) (string, error) {
	if base == "" {
		return Normalize(ref), nil
	}
	b, err := gojsonreference.NewJsonReference(base)
	if err != nil {
		return "", fmt.Errorf("invalid base uri %q: %w", base, err)
	}
	r, err := gojsonreference.NewJsonReference(ref)
	if err != nil {
		return "", fmt.Errorf("invalid uri reference %q: %w", ref, err)
	}
	out, err := b.Inherits(r)
	if err != nil {
		return "", err
	}
	return Normalize(out.String()), nil
}

// Normalize returns the canonical string form used for registry keys: the
// part before '#' as net/url re-serialises it (percent escapes there are kept
// as written, unreserved characters included), the fragment with every
// percent escape decoded, and an empty trailing fragment removed.
func Normalize(uri string) string {
	frag := ""
	base := uri
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		base = uri[:i]
		frag = uri[i+1:]
	}
	if u, err := url.Parse(base); err == nil {
		base = u.String()
	}
	if frag == "" {
		return base
	}
	if f, err := url.PathUnescape(frag); err == nil {
		frag = f
	}
	return base + "#" + frag
}

// Base returns the identifier with any fragment stripped.
func Base(uri string) string {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[:i]
	}
	return uri
}

// Fragment returns the fragment as written, without the leading '#'. It is
// decoded only when uri came from Normalize.
func Fragment(uri string) string {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[i+1:]
	}
	return ""
}

// Classify reports the kind of fragment the identifier carries. An empty
// fragment ("" or a bare "#") counts as none; a fragment starting with '/'
// is a JSON Pointer; anything else is a plain-name anchor.
func Classify(uri string) FragmentKind {
	i := strings.IndexByte(uri, '#')
	if i < 0 || i == len(uri)-1 {
		return FragmentNone
	}
	if uri[i+1] == '/' {
		return FragmentPointer
	}
	return FragmentPlainName
}

// HasPlainNameFragment reports whether uri ends in a plain-name anchor.
func HasPlainNameFragment(uri string) bool { return Classify(uri) == FragmentPlainName }

// WithFragment replaces the fragment of uri with frag (no leading '#').
func WithFragment(uri, frag string) string {
	if frag == "" {
		return Base(uri)
	}
	return Base(uri) + "#" + frag
}

// AppendKeyword appends one keyword segment to the identifier's JSON Pointer
// fragment, starting a fresh pointer when the identifier has no fragment.
// Pointer tokens are escaped per RFC 6901.
func AppendKeyword(uri, key string) string {
	frag := Fragment(uri)
	if frag != "" && !strings.HasPrefix(frag, "/") {
		// A plain-name anchor cannot be extended with pointer tokens;
		// restart from the document root.
		frag = ""
	}
	return Base(uri) + "#" + frag + "/" + EscapeToken(key)
}

// EscapeToken escapes a single JSON Pointer reference token.
func EscapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// Equal reports whether two identifiers are the same after normalisation.
func Equal(a, b string) bool { return Normalize(a) == Normalize(b) }
