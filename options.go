package jsonschema

import (
	"github.com/reoring/jsonschema/internal/compiler"
)

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

type compileConfig struct {
	opts    compiler.Options
	formats bool
}

func newCompileConfig(opts []CompileOption) *compileConfig {
	cfg := &compileConfig{formats: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDefaultDraft sets the draft used when the schema has no $schema
// keyword. The default is draft 2020-12.
func WithDefaultDraft(d Draft) CompileOption {
	return func(cfg *compileConfig) { cfg.opts.DefaultDraft = d }
}

// WithRetrievalURI sets the base URI for resolving relative identifiers in
// the root document.
func WithRetrievalURI(uri string) CompileOption {
	return func(cfg *compileConfig) { cfg.opts.RetrievalURI = uri }
}

// WithResolver appends a resolver to the chain used for external documents.
// Resolvers run in registration order after the built-in meta resolver; the
// first that does not return ErrSchemaNotFound wins.
func WithResolver(r Resolver) CompileOption {
	return func(cfg *compileConfig) { cfg.opts.Resolvers = append(cfg.opts.Resolvers, r) }
}

// WithFormatAssertions enables or disables format checking at validation
// time. Enabled by default; only the fixed format list asserts either way.
func WithFormatAssertions(enabled bool) CompileOption {
	return func(cfg *compileConfig) { cfg.formats = enabled }
}

// WithSchemaValidation validates the schema document itself against its
// draft's meta-schema before compiling.
func WithSchemaValidation(enabled bool) CompileOption {
	return func(cfg *compileConfig) { cfg.opts.ValidateSchema = enabled }
}
