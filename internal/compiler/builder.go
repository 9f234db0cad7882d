package compiler

import (
	"encoding/json"
	"math/big"
	"sort"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/reoring/jsonschema/internal/uritools"
	"github.com/reoring/jsonschema/internal/validator"
)

// builder walks raw schema JSON and emits compiled nodes, registering every
// subschema with the compiler's registry. One builder exists per draft; all
// drafts share the producer logic below, gated by the dialect table.
type builder struct {
	c *Compiler
	d *dialect
}

// produceState tracks producers that compile several sibling keywords
// jointly so they run exactly once per schema object.
type produceState struct {
	objectDone bool
	arrayDone  bool
}

// makeSchemaValidator compiles one subschema. keys extends the schema path
// with the ancestor keyword segments.
func (b *builder) makeSchemaValidator(ctx Context, sch any, keys ...string) (*validator.Node, error) {
	ctx = ctx.WithKeyword(keys...)
	switch s := sch.(type) {
	case bool:
		node := validator.NewNode(ctx.AbsoluteURI(), ctx.BaseURI(), b.d.draft)
		node.SetBoolean(s)
		node.Freeze()
		b.c.reg.save(node)
		b.c.reg.insertPath(ctx.AbsoluteURI(), node)
		return node, nil
	case map[string]any:
		return b.makeObjectSchema(ctx, s)
	default:
		return nil, schemaErrorf("schema at %q must be an object or a boolean", ctx.AbsoluteURI())
	}
}

func (b *builder) makeObjectSchema(ctx Context, obj map[string]any) (*validator.Node, error) {
	// A subschema may carry its own $schema and switch drafts for its
	// subtree (cross-draft documents under $defs).
	if raw, present := obj["$schema"]; present {
		s, ok := raw.(string)
		if !ok {
			return nil, schemaErrorf("$schema must be a string")
		}
		draft, known := validator.DraftFromURI(s)
		if !known {
			return nil, schemaErrorf("Unsupported schema version %s", s)
		}
		if draft != b.d.draft {
			return b.c.builderFor(draft).makeObjectSchema(ctx.withDraft(draft), obj)
		}
	}

	// Identifier: $id (or legacy id) establishes a new base unless it is a
	// bare plain-name fragment, which registers an anchor alias instead.
	anchorFromID := ""
	explicitID := false
	if raw, present := obj[b.d.idKeyword]; present {
		id, ok := raw.(string)
		if !ok {
			return nil, schemaErrorf("%s must be a string", b.d.idKeyword)
		}
		if uritools.Base(id) == "" && uritools.HasPlainNameFragment(id) {
			anchorFromID = uritools.Fragment(id)
		} else if id != "" {
			abs, err := uritools.Resolve(ctx.BaseURI(), id)
			if err != nil {
				return nil, wrapSchemaError(err, "invalid %s %q", b.d.idKeyword, id)
			}
			ctx = ctx.WithID(abs)
			explicitID = true
		}
	}

	node := validator.NewNode(ctx.AbsoluteURI(), ctx.BaseURI(), b.d.draft)
	b.c.reg.save(node)
	if explicitID {
		if err := b.c.reg.insert(ctx.AbsoluteURI(), node); err != nil {
			return nil, err
		}
	} else {
		b.c.reg.insertPath(ctx.AbsoluteURI(), node)
	}

	if anchorFromID != "" {
		if err := b.registerAnchor(ctx, anchorFromID, node); err != nil {
			return nil, err
		}
	}
	if _, known := b.d.keywords["$anchor"]; known {
		if raw, present := obj["$anchor"]; present {
			name, ok := raw.(string)
			if !ok {
				return nil, schemaErrorf("$anchor must be a string")
			}
			if err := b.registerAnchor(ctx, name, node); err != nil {
				return nil, err
			}
		}
	}
	if _, known := b.d.keywords["$dynamicAnchor"]; known {
		if raw, present := obj["$dynamicAnchor"]; present {
			name, ok := raw.(string)
			if !ok {
				return nil, schemaErrorf("$dynamicAnchor must be a string")
			}
			node.SetDynamicAnchor(name)
			if err := b.registerAnchor(ctx, name, node); err != nil {
				return nil, err
			}
			b.c.reg.dynamicAnchors[uritools.WithFragment(ctx.BaseURI(), name)] = node
		}
	}
	if _, known := b.d.keywords["$recursiveAnchor"]; known {
		if raw, present := obj["$recursiveAnchor"]; present {
			v, ok := raw.(bool)
			if !ok {
				return nil, schemaErrorf("$recursiveAnchor must be a boolean")
			}
			if v {
				node.SetRecursiveAnchor()
			}
		}
	}
	if raw, present := obj["default"]; present {
		node.SetDefault(raw)
	}

	type compiledKeyword struct {
		rank, ord int
		k         validator.Keyword
	}
	var ks []compiledKeyword
	st := &produceState{}
	for ord, name := range sortedKeys(obj) {
		rank, known := b.d.recognizes(name)
		if !known {
			if err := b.insertUnknownKeyword(ctx, ctx.AbsoluteURI(), name, obj[name]); err != nil {
				return nil, err
			}
			continue
		}
		if rank == skip {
			continue
		}
		k, err := b.produce(name, ctx, obj, st)
		if err != nil {
			return nil, err
		}
		if k != nil {
			ks = append(ks, compiledKeyword{rank: rank, ord: ord, k: k})
		}
	}
	sort.Slice(ks, func(i, j int) bool {
		if ks[i].rank != ks[j].rank {
			return ks[i].rank < ks[j].rank
		}
		return ks[i].ord < ks[j].ord
	})
	for _, e := range ks {
		node.AppendKeyword(e.k)
	}
	node.Freeze()
	return node, nil
}

func (b *builder) registerAnchor(ctx Context, name string, node *validator.Node) error {
	alias := uritools.WithFragment(ctx.BaseURI(), name)
	return b.c.reg.insert(alias, node)
}

// insertUnknownKeyword records the subtree under an unrecognized keyword so
// later references into it can promote it to a real schema. Subtrees already
// awaited by a pending reference compile immediately.
func (b *builder) insertUnknownKeyword(ctx Context, parentURI, key string, value any) error {
	uri := uritools.AppendKeyword(parentURI, key)
	if uritools.Classify(uri) != uritools.FragmentPointer {
		return nil
	}
	if b.c.reg.hasPendingRef(uri) {
		if _, err := b.makeSchemaValidator(at(uri, b.d.draft), value); err != nil {
			return err
		}
	} else if _, taken := b.c.reg.schemas[uri]; !taken {
		b.c.reg.unknown[uri] = value
	}
	if m, ok := value.(map[string]any); ok {
		for _, name := range sortedKeys(m) {
			if err := b.insertUnknownKeyword(ctx, uri, name, m[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

// produce dispatches one recognized keyword to its producer.
func (b *builder) produce(name string, ctx Context, obj map[string]any, st *produceState) (validator.Keyword, error) {
	value := obj[name]
	loc := uritools.AppendKeyword(ctx.AbsoluteURI(), name)
	switch name {
	case "type":
		return b.makeType(loc, value)
	case "enum":
		arr, ok := value.([]any)
		if !ok {
			return nil, schemaErrorf("enum must be an array")
		}
		return validator.NewEnum(loc, arr), nil
	case "const":
		return validator.NewConst(loc, value), nil
	case "minLength":
		n, err := asCount(value, "minLength")
		if err != nil {
			return nil, err
		}
		return validator.NewMinLength(loc, n), nil
	case "maxLength":
		n, err := asCount(value, "maxLength")
		if err != nil {
			return nil, err
		}
		return validator.NewMaxLength(loc, n), nil
	case "pattern":
		src, ok := value.(string)
		if !ok {
			return nil, schemaErrorf("pattern must be a string")
		}
		re, err := regexp2.Compile(src, regexp2.ECMAScript)
		if err != nil {
			return nil, wrapSchemaError(err, "invalid regex %q", src)
		}
		return validator.NewPattern(loc, src, re), nil
	case "format":
		s, ok := value.(string)
		if !ok {
			return nil, schemaErrorf("format must be a string")
		}
		return validator.NewFormat(loc, s, validator.FormatCheck(s)), nil
	case "multipleOf":
		r, text, err := asRat(value, "multipleOf")
		if err != nil {
			return nil, err
		}
		if r.Sign() <= 0 {
			return nil, schemaErrorf("multipleOf must be greater than 0")
		}
		return validator.NewMultipleOf(loc, r, text), nil
	case "maximum":
		r, text, err := asRat(value, "maximum")
		if err != nil {
			return nil, err
		}
		if b.d.boolExclusive && siblingTrue(obj, "exclusiveMaximum") {
			return validator.NewExclusiveMaximum(loc, r, text), nil
		}
		return validator.NewMaximum(loc, r, text), nil
	case "minimum":
		r, text, err := asRat(value, "minimum")
		if err != nil {
			return nil, err
		}
		if b.d.boolExclusive && siblingTrue(obj, "exclusiveMinimum") {
			return validator.NewExclusiveMinimum(loc, r, text), nil
		}
		return validator.NewMinimum(loc, r, text), nil
	case "exclusiveMaximum":
		r, text, err := asRat(value, "exclusiveMaximum")
		if err != nil {
			return nil, err
		}
		return validator.NewExclusiveMaximum(loc, r, text), nil
	case "exclusiveMinimum":
		r, text, err := asRat(value, "exclusiveMinimum")
		if err != nil {
			return nil, err
		}
		return validator.NewExclusiveMinimum(loc, r, text), nil
	case "required":
		names, err := asStringSlice(value, "required")
		if err != nil {
			return nil, err
		}
		return validator.NewRequired(loc, names), nil
	case "minProperties":
		n, err := asCount(value, "minProperties")
		if err != nil {
			return nil, err
		}
		return validator.NewMinProperties(loc, n), nil
	case "maxProperties":
		n, err := asCount(value, "maxProperties")
		if err != nil {
			return nil, err
		}
		return validator.NewMaxProperties(loc, n), nil
	case "minItems":
		n, err := asCount(value, "minItems")
		if err != nil {
			return nil, err
		}
		return validator.NewMinItems(loc, n), nil
	case "maxItems":
		n, err := asCount(value, "maxItems")
		if err != nil {
			return nil, err
		}
		return validator.NewMaxItems(loc, n), nil
	case "uniqueItems":
		v, ok := value.(bool)
		if !ok {
			return nil, schemaErrorf("uniqueItems must be a boolean")
		}
		return validator.NewUniqueItems(loc, v), nil
	case "contentEncoding":
		s, ok := value.(string)
		if !ok {
			return nil, schemaErrorf("contentEncoding must be a string")
		}
		return validator.NewContentEncoding(loc, s), nil
	case "contentMediaType":
		s, ok := value.(string)
		if !ok {
			return nil, schemaErrorf("contentMediaType must be a string")
		}
		encoding, _ := obj["contentEncoding"].(string)
		return validator.NewContentMediaType(loc, s, encoding), nil
	case "allOf", "anyOf", "oneOf":
		return b.makeCombining(ctx, name, loc, value)
	case "not":
		sub, err := b.makeSchemaValidator(ctx, value, "not")
		if err != nil {
			return nil, err
		}
		return validator.NewNot(loc, sub), nil
	case "if":
		return b.makeConditional(ctx, loc, obj)
	case "then", "else":
		if _, present := obj["if"]; present {
			return nil, nil // compiled by the if producer
		}
		// Still a schema: compile it so references into it resolve.
		_, err := b.makeSchemaValidator(ctx, value, name)
		return nil, err
	case "$ref", "$dynamicRef", "$recursiveRef":
		return b.makeReference(ctx, name, loc, value)
	case "properties", "patternProperties", "additionalProperties":
		if st.objectDone {
			return nil, nil
		}
		st.objectDone = true
		return b.makeObjectApplicator(ctx, obj)
	case "propertyNames":
		sub, err := b.makeSchemaValidator(ctx, value, "propertyNames")
		if err != nil {
			return nil, err
		}
		return validator.NewPropertyNames(loc, sub), nil
	case "dependencies":
		return b.makeDependencies(ctx, loc, value)
	case "dependentRequired":
		deps, err := asStringSliceMap(value, "dependentRequired")
		if err != nil {
			return nil, err
		}
		return validator.NewDependentRequired(loc, deps), nil
	case "dependentSchemas":
		m, ok := value.(map[string]any)
		if !ok {
			return nil, schemaErrorf("dependentSchemas must be an object")
		}
		deps := make(map[string]*validator.Node, len(m))
		for _, dep := range sortedKeys(m) {
			sub, err := b.makeSchemaValidator(ctx, m[dep], "dependentSchemas", dep)
			if err != nil {
				return nil, err
			}
			deps[dep] = sub
		}
		return validator.NewDependentSchemas(loc, deps), nil
	case "items", "prefixItems", "additionalItems":
		if st.arrayDone {
			return nil, nil
		}
		st.arrayDone = true
		return b.makeArrayApplicator(ctx, obj)
	case "contains":
		return b.makeContains(ctx, loc, obj)
	case "definitions", "$defs":
		m, ok := value.(map[string]any)
		if !ok {
			return nil, schemaErrorf("%s must be an object", name)
		}
		for _, defName := range sortedKeys(m) {
			if _, err := b.makeSchemaValidator(ctx, m[defName], name, defName); err != nil {
				return nil, err
			}
		}
		return nil, nil
	case "unevaluatedProperties":
		sub, err := b.makeSchemaValidator(ctx, value, "unevaluatedProperties")
		if err != nil {
			return nil, err
		}
		return validator.NewUnevaluatedProperties(loc, sub), nil
	case "unevaluatedItems":
		sub, err := b.makeSchemaValidator(ctx, value, "unevaluatedItems")
		if err != nil {
			return nil, err
		}
		return validator.NewUnevaluatedItems(loc, sub), nil
	}
	return nil, nil
}

var typeNames = map[string]bool{
	"null": true, "boolean": true, "object": true, "array": true,
	"string": true, "integer": true, "number": true,
}

func (b *builder) makeType(loc string, value any) (validator.Keyword, error) {
	var types []string
	switch v := value.(type) {
	case string:
		types = []string{v}
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, schemaErrorf("type array entries must be strings")
			}
			types = append(types, s)
		}
	default:
		return nil, schemaErrorf("type must be a string or an array of strings")
	}
	for _, t := range types {
		if !typeNames[t] {
			return nil, schemaErrorf("unknown type name %q", t)
		}
	}
	return validator.NewType(loc, types), nil
}

func (b *builder) makeCombining(ctx Context, name, loc string, value any) (validator.Keyword, error) {
	arr, ok := value.([]any)
	if !ok {
		return nil, schemaErrorf("%s must be an array of schemas", name)
	}
	branches := make([]*validator.Node, 0, len(arr))
	for i, sub := range arr {
		n, err := b.makeSchemaValidator(ctx, sub, name, strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		branches = append(branches, n)
	}
	switch name {
	case "allOf":
		return validator.NewAllOf(loc, branches), nil
	case "anyOf":
		return validator.NewAnyOf(loc, branches), nil
	default:
		return validator.NewOneOf(loc, branches), nil
	}
}

func (b *builder) makeConditional(ctx Context, loc string, obj map[string]any) (validator.Keyword, error) {
	ifN, err := b.makeSchemaValidator(ctx, obj["if"], "if")
	if err != nil {
		return nil, err
	}
	var thenN, elseN *validator.Node
	if v, present := obj["then"]; present {
		if thenN, err = b.makeSchemaValidator(ctx, v, "then"); err != nil {
			return nil, err
		}
	}
	if v, present := obj["else"]; present {
		if elseN, err = b.makeSchemaValidator(ctx, v, "else"); err != nil {
			return nil, err
		}
	}
	return validator.NewConditional(loc, ifN, thenN, elseN), nil
}

func (b *builder) makeReference(ctx Context, name, loc string, value any) (validator.Keyword, error) {
	refstr, ok := value.(string)
	if !ok {
		return nil, schemaErrorf("%s must be a string", name)
	}
	target, err := uritools.Resolve(ctx.BaseURI(), refstr)
	if err != nil {
		return nil, wrapSchemaError(err, "invalid reference %q", refstr)
	}
	anchor := ""
	if name == "$dynamicRef" && uritools.HasPlainNameFragment(target) {
		anchor = uritools.Fragment(target)
	}
	ref := validator.NewRef(name, loc, target, anchor)
	if err := b.c.wireOrDefer(b, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (b *builder) makeObjectApplicator(ctx Context, obj map[string]any) (validator.Keyword, error) {
	var (
		props    map[string]*validator.Node
		propsLoc string
	)
	if raw, present := obj["properties"]; present {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, schemaErrorf("properties must be an object")
		}
		props = make(map[string]*validator.Node, len(m))
		propsLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "properties")
		for _, name := range sortedKeys(m) {
			sub, err := b.makeSchemaValidator(ctx, m[name], "properties", name)
			if err != nil {
				return nil, err
			}
			props[name] = sub
		}
	}

	var (
		patterns    []validator.PatternProperty
		patternsLoc string
	)
	if raw, present := obj["patternProperties"]; present {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, schemaErrorf("patternProperties must be an object")
		}
		patternsLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "patternProperties")
		for _, src := range sortedKeys(m) {
			re, err := regexp2.Compile(src, regexp2.ECMAScript)
			if err != nil {
				return nil, wrapSchemaError(err, "invalid regex %q", src)
			}
			sub, err := b.makeSchemaValidator(ctx, m[src], "patternProperties", src)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, validator.PatternProperty{Source: src, Regexp: re, Schema: sub})
		}
	}

	var (
		additional    *validator.Node
		additionalLoc string
	)
	if raw, present := obj["additionalProperties"]; present {
		sub, err := b.makeSchemaValidator(ctx, raw, "additionalProperties")
		if err != nil {
			return nil, err
		}
		additional = sub
		additionalLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "additionalProperties")
	}

	return validator.NewObjectApplicator(ctx.AbsoluteURI(), props, propsLoc, patterns, patternsLoc, additional, additionalLoc), nil
}

func (b *builder) makeArrayApplicator(ctx Context, obj map[string]any) (validator.Keyword, error) {
	var (
		prefix        []*validator.Node
		prefixKeyword string
		prefixLoc     string
		rest          *validator.Node
		restKeyword   string
		restLoc       string
	)
	if b.d.prefixItems {
		if raw, present := obj["prefixItems"]; present {
			arr, ok := raw.([]any)
			if !ok {
				return nil, schemaErrorf("prefixItems must be an array of schemas")
			}
			prefixKeyword = "prefixItems"
			prefixLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "prefixItems")
			for i, sub := range arr {
				n, err := b.makeSchemaValidator(ctx, sub, "prefixItems", strconv.Itoa(i))
				if err != nil {
					return nil, err
				}
				prefix = append(prefix, n)
			}
		}
		if raw, present := obj["items"]; present {
			if _, isArray := raw.([]any); isArray {
				return nil, schemaErrorf("items given as an array is not valid in draft 2020-12; use prefixItems")
			}
			n, err := b.makeSchemaValidator(ctx, raw, "items")
			if err != nil {
				return nil, err
			}
			rest = n
			restKeyword = "items"
			restLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "items")
		}
	} else if raw, present := obj["items"]; present {
		if arr, isArray := raw.([]any); isArray {
			prefixKeyword = "items"
			prefixLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "items")
			for i, sub := range arr {
				n, err := b.makeSchemaValidator(ctx, sub, "items", strconv.Itoa(i))
				if err != nil {
					return nil, err
				}
				prefix = append(prefix, n)
			}
			if extra, present := obj["additionalItems"]; present {
				n, err := b.makeSchemaValidator(ctx, extra, "additionalItems")
				if err != nil {
					return nil, err
				}
				rest = n
				restKeyword = "additionalItems"
				restLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "additionalItems")
			}
		} else {
			n, err := b.makeSchemaValidator(ctx, raw, "items")
			if err != nil {
				return nil, err
			}
			rest = n
			restKeyword = "items"
			restLoc = uritools.AppendKeyword(ctx.AbsoluteURI(), "items")
		}
	}
	if len(prefix) == 0 && rest == nil {
		return nil, nil
	}
	return validator.NewArrayApplicator(ctx.AbsoluteURI(), prefix, prefixKeyword, prefixLoc, rest, restKeyword, restLoc), nil
}

func (b *builder) makeContains(ctx Context, loc string, obj map[string]any) (validator.Keyword, error) {
	sub, err := b.makeSchemaValidator(ctx, obj["contains"], "contains")
	if err != nil {
		return nil, err
	}
	min, max := 1, validator.DefaultMaxContains
	minLoc := uritools.AppendKeyword(ctx.AbsoluteURI(), "minContains")
	maxLoc := uritools.AppendKeyword(ctx.AbsoluteURI(), "maxContains")
	if b.d.minMaxContains {
		if raw, present := obj["minContains"]; present {
			if min, err = asCount(raw, "minContains"); err != nil {
				return nil, err
			}
		}
		if raw, present := obj["maxContains"]; present {
			if max, err = asCount(raw, "maxContains"); err != nil {
				return nil, err
			}
		}
	}
	return validator.NewContains(loc, sub, min, minLoc, max, maxLoc), nil
}

func (b *builder) makeDependencies(ctx Context, loc string, value any) (validator.Keyword, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, schemaErrorf("dependencies must be an object")
	}
	deps := make(map[string]validator.Dependency, len(m))
	for _, name := range sortedKeys(m) {
		depLoc := uritools.AppendKeyword(loc, name)
		switch entry := m[name].(type) {
		case []any:
			names, err := asStringSlice(entry, "dependencies")
			if err != nil {
				return nil, err
			}
			deps[name] = validator.Dependency{Location: depLoc, Required: names}
		case map[string]any, bool:
			sub, err := b.makeSchemaValidator(ctx, entry, "dependencies", name)
			if err != nil {
				return nil, err
			}
			deps[name] = validator.Dependency{Location: depLoc, Schema: sub}
		default:
			return nil, schemaErrorf("dependencies entries must be arrays or schemas")
		}
	}
	return validator.NewDependencies(loc, deps), nil
}

// ---- shape helpers ----

func siblingTrue(obj map[string]any, name string) bool {
	v, ok := obj[name].(bool)
	return ok && v
}

func asCount(v any, keyword string) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return 0, schemaErrorf("%s must be a non-negative integer", keyword)
		}
		return int(i), nil
	case float64:
		if n < 0 || n != float64(int(n)) {
			return 0, schemaErrorf("%s must be a non-negative integer", keyword)
		}
		return int(n), nil
	case int:
		if n < 0 {
			return 0, schemaErrorf("%s must be a non-negative integer", keyword)
		}
		return n, nil
	}
	return 0, schemaErrorf("%s must be a number value", keyword)
}

func asRat(v any, keyword string) (*big.Rat, string, error) {
	switch n := v.(type) {
	case json.Number:
		if r, ok := new(big.Rat).SetString(n.String()); ok {
			return r, n.String(), nil
		}
	case float64:
		r := new(big.Rat).SetFloat64(n)
		return r, strconv.FormatFloat(n, 'g', -1, 64), nil
	case int:
		return new(big.Rat).SetInt64(int64(n)), strconv.Itoa(n), nil
	}
	return nil, "", schemaErrorf("%s must be a number value", keyword)
}

func asStringSlice(v any, keyword string) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, schemaErrorf("%s must be an array of strings", keyword)
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, schemaErrorf("%s must be an array of strings", keyword)
		}
		out = append(out, s)
	}
	return out, nil
}

func asStringSliceMap(v any, keyword string) (map[string][]string, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErrorf("%s must be an object", keyword)
	}
	out := make(map[string][]string, len(m))
	for name, entry := range m {
		names, err := asStringSlice(entry, keyword)
		if err != nil {
			return nil, err
		}
		out[name] = names
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
