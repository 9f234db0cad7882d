package validator

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/goccy/go-json"
)

// keywordBase carries the pieces every keyword shares: its name and the
// absolute schema-path URI used in messages.
type keywordBase struct {
	name     string
	location string
}

func (k keywordBase) Name() string     { return k.name }
func (k keywordBase) Location() string { return k.location }

func (k keywordBase) fail(snk sink, loc, text string, nested ...Message) bool {
	snk.report(Message{
		InstanceLocation: loc,
		SchemaLocation:   k.location,
		Keyword:          k.name,
		Message:          text,
		Nested:           nested,
	})
	return false
}

// ---- type ----

type typeKeyword struct {
	keywordBase
	types []string
}

// NewType compiles the type keyword; types holds the expected names.
func NewType(location string, types []string) Keyword {
	return &typeKeyword{keywordBase{"type", location}, types}
}

func (k *typeKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	actual := jsonTypeOf(inst)
	for _, want := range k.types {
		if actual == want {
			return true
		}
		if want == "number" && (actual == "integer" || actual == "number") {
			return true
		}
		if want == "integer" && isIntegerValue(inst) {
			return true
		}
	}
	return k.fail(snk, loc, fmt.Sprintf("expected %s, found %s", strings.Join(k.types, " or "), actual))
}

// ---- const / enum ----

type constKeyword struct {
	keywordBase
	value any
}

func NewConst(location string, value any) Keyword {
	return &constKeyword{keywordBase{"const", location}, value}
}

func (k *constKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	if canonicalEqual(inst, k.value) {
		return true
	}
	return k.fail(snk, loc, "instance does not match the constant value")
}

type enumKeyword struct {
	keywordBase
	values []any
}

func NewEnum(location string, values []any) Keyword {
	return &enumKeyword{keywordBase{"enum", location}, values}
}

func (k *enumKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	for _, v := range k.values {
		if canonicalEqual(inst, v) {
			return true
		}
	}
	return k.fail(snk, loc, "instance is not one of the enumerated values")
}

// ---- string constraints ----

type minLengthKeyword struct {
	keywordBase
	min int
}

func NewMinLength(location string, min int) Keyword {
	return &minLengthKeyword{keywordBase{"minLength", location}, min}
}

func (k *minLengthKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	s, ok := inst.(string)
	if !ok {
		return true
	}
	if n := utf8.RuneCountInString(s); n < k.min {
		return k.fail(snk, loc, fmt.Sprintf("expected a minimum length of %d, actual length %d", k.min, n))
	}
	return true
}

type maxLengthKeyword struct {
	keywordBase
	max int
}

func NewMaxLength(location string, max int) Keyword {
	return &maxLengthKeyword{keywordBase{"maxLength", location}, max}
}

func (k *maxLengthKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	s, ok := inst.(string)
	if !ok {
		return true
	}
	if n := utf8.RuneCountInString(s); n > k.max {
		return k.fail(snk, loc, fmt.Sprintf("expected a maximum length of %d, actual length %d", k.max, n))
	}
	return true
}

type patternKeyword struct {
	keywordBase
	source string
	re     *regexp2.Regexp
}

// NewPattern compiles the pattern keyword. The regexp uses ECMA-262
// semantics and was validated at compile time.
func NewPattern(location, source string, re *regexp2.Regexp) Keyword {
	return &patternKeyword{keywordBase{"pattern", location}, source, re}
}

func (k *patternKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	s, ok := inst.(string)
	if !ok {
		return true
	}
	if m, err := k.re.MatchString(s); err == nil && m {
		return true
	}
	return k.fail(snk, loc, fmt.Sprintf("string %q does not match pattern %q", s, k.source))
}

type formatKeyword struct {
	keywordBase
	format string
	check  FormatFunc
}

// NewFormat compiles the format keyword; check is nil for names outside the
// supported list, which makes the keyword an annotation.
func NewFormat(location, format string, check FormatFunc) Keyword {
	return &formatKeyword{keywordBase{"format", location}, format, check}
}

func (k *formatKeyword) Evaluate(ctx *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	if !ctx.formats || k.check == nil {
		return true
	}
	s, ok := inst.(string)
	if !ok {
		return true
	}
	if k.check(s) {
		return true
	}
	return k.fail(snk, loc, fmt.Sprintf("%q is not a valid %q", s, k.format))
}

// ---- numeric constraints ----

type boundKeyword struct {
	keywordBase
	bound     *big.Rat
	text      string
	cmpFails  func(c int) bool
	violation string
}

func newBound(name, location string, bound *big.Rat, text string, cmpFails func(int) bool, violation string) Keyword {
	return &boundKeyword{keywordBase{name, location}, bound, text, cmpFails, violation}
}

// NewMaximum compiles maximum; text preserves the schema's source form for
// messages.
func NewMaximum(location string, bound *big.Rat, text string) Keyword {
	return newBound("maximum", location, bound, text, func(c int) bool { return c > 0 }, "exceeds maximum")
}

func NewExclusiveMaximum(location string, bound *big.Rat, text string) Keyword {
	return newBound("exclusiveMaximum", location, bound, text, func(c int) bool { return c >= 0 }, "must be less than")
}

func NewMinimum(location string, bound *big.Rat, text string) Keyword {
	return newBound("minimum", location, bound, text, func(c int) bool { return c < 0 }, "is below minimum")
}

func NewExclusiveMinimum(location string, bound *big.Rat, text string) Keyword {
	return newBound("exclusiveMinimum", location, bound, text, func(c int) bool { return c <= 0 }, "must be greater than")
}

func (k *boundKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	r, ok := ratOf(inst)
	if !ok {
		return true
	}
	if k.cmpFails(r.Cmp(k.bound)) {
		return k.fail(snk, loc, fmt.Sprintf("%s %s %s", numText(inst), k.violation, k.text))
	}
	return true
}

type multipleOfKeyword struct {
	keywordBase
	divisor *big.Rat
	text    string
}

// NewMultipleOf compiles multipleOf; divisibility is checked with exact
// rational arithmetic regardless of the operands' storage types.
func NewMultipleOf(location string, divisor *big.Rat, text string) Keyword {
	return &multipleOfKeyword{keywordBase{"multipleOf", location}, divisor, text}
}

func (k *multipleOfKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	r, ok := ratOf(inst)
	if !ok {
		return true
	}
	if new(big.Rat).Quo(r, k.divisor).IsInt() {
		return true
	}
	return k.fail(snk, loc, fmt.Sprintf("%s is not a multiple of %s", numText(inst), k.text))
}

// ---- object shape assertions ----

type requiredKeyword struct {
	keywordBase
	names []string
}

func NewRequired(location string, names []string) Keyword {
	return &requiredKeyword{keywordBase{"required", location}, names}
}

func (k *requiredKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, name := range k.names {
		if _, present := obj[name]; !present {
			k.fail(snk, loc, fmt.Sprintf("required property %q not found", name))
			valid = false
		}
	}
	return valid
}

type minPropertiesKeyword struct {
	keywordBase
	min int
}

func NewMinProperties(location string, min int) Keyword {
	return &minPropertiesKeyword{keywordBase{"minProperties", location}, min}
}

func (k *minPropertiesKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	if len(obj) < k.min {
		return k.fail(snk, loc, fmt.Sprintf("expected at least %d properties, found %d", k.min, len(obj)))
	}
	return true
}

type maxPropertiesKeyword struct {
	keywordBase
	max int
}

func NewMaxProperties(location string, max int) Keyword {
	return &maxPropertiesKeyword{keywordBase{"maxProperties", location}, max}
}

func (k *maxPropertiesKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	if len(obj) > k.max {
		return k.fail(snk, loc, fmt.Sprintf("expected at most %d properties, found %d", k.max, len(obj)))
	}
	return true
}

type dependentRequiredKeyword struct {
	keywordBase
	deps map[string][]string
}

// NewDependentRequired compiles dependentRequired. The array entries of
// legacy dependencies are checked by the dependencies keyword instead.
func NewDependentRequired(location string, deps map[string][]string) Keyword {
	return &dependentRequiredKeyword{keywordBase{"dependentRequired", location}, deps}
}

func (k *dependentRequiredKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, trigger := range sortedKeys(k.deps) {
		if _, present := obj[trigger]; !present {
			continue
		}
		for _, name := range k.deps[trigger] {
			if _, present := obj[name]; !present {
				k.fail(snk, loc, fmt.Sprintf("property %q requires property %q", trigger, name))
				valid = false
			}
		}
	}
	return valid
}

// ---- array shape assertions ----

type minItemsKeyword struct {
	keywordBase
	min int
}

func NewMinItems(location string, min int) Keyword {
	return &minItemsKeyword{keywordBase{"minItems", location}, min}
}

func (k *minItemsKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	arr, ok := inst.([]any)
	if !ok {
		return true
	}
	if len(arr) < k.min {
		return k.fail(snk, loc, fmt.Sprintf("expected at least %d items, found %d", k.min, len(arr)))
	}
	return true
}

type maxItemsKeyword struct {
	keywordBase
	max int
}

func NewMaxItems(location string, max int) Keyword {
	return &maxItemsKeyword{keywordBase{"maxItems", location}, max}
}

func (k *maxItemsKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	arr, ok := inst.([]any)
	if !ok {
		return true
	}
	if len(arr) > k.max {
		return k.fail(snk, loc, fmt.Sprintf("expected at most %d items, found %d", k.max, len(arr)))
	}
	return true
}

type uniqueItemsKeyword struct {
	keywordBase
	unique bool
}

func NewUniqueItems(location string, unique bool) Keyword {
	return &uniqueItemsKeyword{keywordBase{"uniqueItems", location}, unique}
}

func (k *uniqueItemsKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	arr, ok := inst.([]any)
	if !ok || !k.unique {
		return true
	}
	for i := 1; i < len(arr); i++ {
		for j := 0; j < i; j++ {
			if canonicalEqual(arr[i], arr[j]) {
				return k.fail(snk, loc, fmt.Sprintf("items at %d and %d are equal", j, i))
			}
		}
	}
	return true
}

// ---- content ----

type contentEncodingKeyword struct {
	keywordBase
	encoding string
}

func NewContentEncoding(location, encoding string) Keyword {
	return &contentEncodingKeyword{keywordBase{"contentEncoding", location}, encoding}
}

func (k *contentEncodingKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	s, ok := inst.(string)
	if !ok || k.encoding != "base64" {
		return true
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return k.fail(snk, loc, "string is not valid base64")
	}
	return true
}

type contentMediaTypeKeyword struct {
	keywordBase
	mediaType string
	encoding  string
}

// NewContentMediaType compiles contentMediaType; encoding carries the
// sibling contentEncoding so JSON content inside base64 is decoded first.
func NewContentMediaType(location, mediaType, encoding string) Keyword {
	return &contentMediaTypeKeyword{keywordBase{"contentMediaType", location}, mediaType, encoding}
}

func (k *contentMediaTypeKeyword) Evaluate(_ *EvalContext, snk sink, _ *TraceNode, inst any, loc string, _ *Scope) bool {
	s, ok := inst.(string)
	if !ok || k.mediaType != "application/json" {
		return true
	}
	data := []byte(s)
	if k.encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return true // contentEncoding reports this one
		}
		data = decoded
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return k.fail(snk, loc, fmt.Sprintf("content is not valid %q", k.mediaType))
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
