package compiler

import (
	"errors"
	"sync"

	"github.com/xeipuuv/gojsonpointer"

	"github.com/reoring/jsonschema/internal/metaschema"
	"github.com/reoring/jsonschema/internal/uritools"
	"github.com/reoring/jsonschema/internal/validator"
)

// Options configures one compile call.
type Options struct {
	// DefaultDraft applies when the root document has no $schema.
	// Zero means draft 2020-12.
	DefaultDraft validator.Draft
	// RetrievalURI is the base for resolving relative identifiers in the
	// root document.
	RetrievalURI string
	// Resolvers load external documents, tried in order after the built-in
	// meta resolver; the first that does not return ErrSchemaNotFound wins.
	Resolvers []Resolver
	// ValidateSchema validates the schema document against its draft's
	// meta-schema before compiling.
	ValidateSchema bool
}

// Compiled is the immutable result of a compile: the evaluator (root node
// plus dynamic-anchor table) and the arena keeping every node of the graph
// alive.
type Compiled struct {
	Eval  *validator.Evaluator
	Draft validator.Draft

	nodes []*validator.Node
}

// Nodes returns the arena; every reference target lives here.
func (c *Compiled) Nodes() []*validator.Node { return c.nodes }

// Compiler drives one compile call. It is not reused.
type Compiler struct {
	opts      Options
	reg       *registry
	resolvers []Resolver
}

// Compile builds, resolves and links a schema document into an immutable
// node graph. All malformed input surfaces as *SchemaError.
func Compile(schema any, opts Options) (*Compiled, error) {
	if opts.DefaultDraft == 0 {
		opts.DefaultDraft = validator.Draft202012
	}
	c := &Compiler{
		opts:      opts,
		reg:       newRegistry(),
		resolvers: append([]Resolver{MetaResolver}, opts.Resolvers...),
	}
	draft, err := c.detectDraft(schema)
	if err != nil {
		return nil, err
	}
	if opts.ValidateSchema {
		if err := validateAgainstMeta(schema, draft); err != nil {
			return nil, err
		}
	}
	retrieval := uritools.Normalize(opts.RetrievalURI)
	c.reg.documents[uritools.Base(retrieval)] = document{raw: schema, draft: draft}
	root, err := c.builderFor(draft).makeSchemaValidator(NewContext(retrieval, draft), schema)
	if err != nil {
		return nil, err
	}
	c.aliasDocument(uritools.Base(retrieval), schema, root)
	if err := c.resolveAndLink(); err != nil {
		return nil, err
	}
	eval := &validator.Evaluator{Root: root, Anchors: c.reg.dynamicAnchors}
	return &Compiled{Eval: eval, Draft: draft, nodes: c.reg.arena}, nil
}

func (c *Compiler) builderFor(draft validator.Draft) *builder {
	return &builder{c: c, d: dialectFor(draft)}
}

// aliasDocument makes a document root reachable under its retrieval base
// and records the raw document under the root's own base when $id moved it,
// so in-document references never trigger the resolver chain.
func (c *Compiler) aliasDocument(base string, raw any, root *validator.Node) {
	if _, taken := c.reg.schemas[base]; !taken {
		c.reg.schemas[base] = root
	}
	if res := root.Resource(); res != base {
		if _, loaded := c.reg.documents[res]; !loaded {
			c.reg.documents[res] = document{raw: raw, draft: root.Draft()}
		}
	}
}

func (c *Compiler) detectDraft(schema any) (validator.Draft, error) {
	obj, ok := schema.(map[string]any)
	if !ok {
		return c.opts.DefaultDraft, nil
	}
	raw, present := obj["$schema"]
	if !present {
		return c.opts.DefaultDraft, nil
	}
	s, ok := raw.(string)
	if !ok {
		return 0, schemaErrorf("$schema must be a string")
	}
	draft, known := validator.DraftFromURI(s)
	if !known {
		return 0, schemaErrorf("Unsupported schema version %s", s)
	}
	return draft, nil
}

// wireOrDefer implements get-or-create for references: wire immediately when
// the target is registered, promote an unknown-keyword subtree when one is
// recorded under the identifier, otherwise append to the unresolved list.
func (c *Compiler) wireOrDefer(b *builder, ref *validator.RefKeyword) error {
	uri := ref.Identifier()
	if n, ok := c.reg.schemas[uri]; ok {
		ref.SetTarget(n)
		return nil
	}
	if uritools.Classify(uri) == uritools.FragmentPointer {
		if raw, ok := c.reg.unknown[uri]; ok {
			delete(c.reg.unknown, uri)
			n, err := b.makeSchemaValidator(at(uri, b.d.draft), raw)
			if err != nil {
				return err
			}
			ref.SetTarget(n)
			return nil
		}
	}
	c.reg.addUnresolved(uri, ref)
	return nil
}

// resolveAndLink runs the fixed-point loop: load external documents for
// unresolved identifiers via the resolver chain, promote referenced
// unknown-keyword subtrees, and finally link every reference. Linking only
// stores pointers, so cyclic graphs are fine.
func (c *Compiler) resolveAndLink() error {
	for {
		progress := 0

		// Link and promote everything reachable in-registry first, so only
		// genuinely external identifiers hit the resolver chain.
		pending := c.reg.unresolved
		c.reg.unresolved = nil
		for _, p := range pending {
			if n, ok := c.reg.schemas[p.uri]; ok {
				p.ref.SetTarget(n)
				progress++
				continue
			}
			n, promoted, err := c.promote(p.uri)
			if err != nil {
				return err
			}
			if promoted {
				p.ref.SetTarget(n)
				progress++
				continue
			}
			c.reg.addUnresolved(p.uri, p.ref)
		}

		for _, uri := range c.pendingURIs() {
			base := uritools.Base(uri)
			if _, loaded := c.reg.documents[base]; loaded {
				continue
			}
			doc, err := c.fetch(base)
			if errors.Is(err, ErrSchemaNotFound) {
				continue
			}
			if err != nil {
				return wrapSchemaError(err, "resolving external schema %q", base)
			}
			draft, err := c.detectDraft(doc)
			if err != nil {
				return err
			}
			c.reg.documents[base] = document{raw: doc, draft: draft}
			docRoot, err := c.builderFor(draft).makeSchemaValidator(NewContext(base, draft), doc)
			if err != nil {
				return err
			}
			c.aliasDocument(base, doc, docRoot)
			progress++
		}

		if progress == 0 {
			break
		}
	}

	for _, p := range c.reg.unresolved {
		if n, ok := c.reg.schemas[p.uri]; ok {
			p.ref.SetTarget(n)
			continue
		}
		return schemaErrorf("undefined reference %q", p.uri)
	}
	c.reg.unresolved = nil
	return nil
}

func (c *Compiler) pendingURIs() []string {
	uris := make([]string, 0, len(c.reg.unresolved))
	seen := make(map[string]bool, len(c.reg.unresolved))
	for _, p := range c.reg.unresolved {
		if !seen[p.uri] {
			seen[p.uri] = true
			uris = append(uris, p.uri)
		}
	}
	return uris
}

// promote compiles a referenced subtree that was not registered as a schema:
// either an unknown-keyword entry or a pointer into a loaded raw document.
// Only JSON Pointer fragments can be promoted; plain-name anchors cannot.
func (c *Compiler) promote(uri string) (*validator.Node, bool, error) {
	if uritools.Classify(uri) != uritools.FragmentPointer {
		return nil, false, nil
	}
	base := uritools.Base(uri)
	doc, loaded := c.reg.documents[base]
	draft := c.opts.DefaultDraft
	if loaded {
		draft = doc.draft
	}
	if raw, ok := c.reg.unknown[uri]; ok {
		delete(c.reg.unknown, uri)
		n, err := c.builderFor(draft).makeSchemaValidator(at(uri, draft), raw)
		return n, true, err
	}
	if !loaded {
		return nil, false, nil
	}
	ptr, err := gojsonpointer.NewJsonPointer(uritools.Fragment(uri))
	if err != nil {
		return nil, false, nil
	}
	raw, _, err := ptr.Get(doc.raw)
	if err != nil {
		return nil, false, nil
	}
	n, err := c.builderFor(draft).makeSchemaValidator(at(uri, draft), raw)
	return n, true, err
}

func (c *Compiler) fetch(base string) (any, error) {
	for _, resolve := range c.resolvers {
		doc, err := resolve(base)
		if err == nil {
			return doc, nil
		}
		if errors.Is(err, ErrSchemaNotFound) {
			continue
		}
		return nil, err
	}
	return nil, ErrSchemaNotFound
}

// MetaResolver serves the bundled meta-schema documents for the five
// supported draft URIs. It always runs before user resolvers.
func MetaResolver(uri string) (any, error) {
	if doc, ok := metaschema.Get(uri); ok {
		return doc, nil
	}
	return nil, ErrSchemaNotFound
}

// ---- meta-schema conformance ----

var metaCompiled sync.Map // validator.Draft -> *Compiled

func compiledMeta(draft validator.Draft) (*Compiled, error) {
	if v, ok := metaCompiled.Load(draft); ok {
		return v.(*Compiled), nil
	}
	doc, ok := metaschema.Get(uritools.Base(draft.URI()))
	if !ok {
		return nil, schemaErrorf("no bundled meta-schema for %s", draft)
	}
	cs, err := Compile(doc, Options{DefaultDraft: draft})
	if err != nil {
		return nil, err
	}
	metaCompiled.Store(draft, cs)
	return cs, nil
}

func validateAgainstMeta(schema any, draft validator.Draft) error {
	meta, err := compiledMeta(draft)
	if err != nil {
		return err
	}
	var msgs validator.Messages
	meta.Eval.Validate(schema, func(m validator.Message) { msgs = append(msgs, m) }, false)
	if len(msgs) > 0 {
		return &SchemaError{Msg: "schema does not conform to its meta-schema", Err: msgs}
	}
	return nil
}
