package validator

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// PatternProperty pairs a compiled pattern with its subschema.
type PatternProperty struct {
	Source string
	Regexp *regexp2.Regexp
	Schema *Node
}

// objectApplicator evaluates properties, patternProperties and
// additionalProperties together so that "additional" is known exactly.
// The applicator reports no message of its own: failures come from the
// matching part's subschema, whose location lies under that part's keyword.
// Its own keyword name is always "properties".
type objectApplicator struct {
	keywordBase
	properties    map[string]*Node
	propertiesLoc string
	patterns      []PatternProperty
	patternsLoc   string
	additional    *Node
	additionalLoc string
}

// NewObjectApplicator builds the combined object applicator; any of the three
// parts may be absent.
func NewObjectApplicator(location string, properties map[string]*Node, propertiesLoc string,
	patterns []PatternProperty, patternsLoc string, additional *Node, additionalLoc string) Keyword {
	return &objectApplicator{
		keywordBase:   keywordBase{"properties", location},
		properties:    properties,
		propertiesLoc: propertiesLoc,
		patterns:      patterns,
		patternsLoc:   patternsLoc,
		additional:    additional,
		additionalLoc: additionalLoc,
	}
}

func (k *objectApplicator) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, name := range sortedKeys(obj) {
		value := obj[name]
		childLoc := childProp(loc, name)
		matched := false
		if sub, found := k.properties[name]; found {
			matched = true
			if sub.Evaluate(ctx, snk, tr, value, childLoc, newScope()) {
				scope.markProp(name)
			} else {
				valid = false
			}
		}
		for _, pp := range k.patterns {
			if m, err := pp.Regexp.MatchString(name); err != nil || !m {
				continue
			}
			matched = true
			if pp.Schema.Evaluate(ctx, snk, tr, value, childLoc, newScope()) {
				scope.markProp(name)
			} else {
				valid = false
			}
		}
		if !matched && k.additional != nil {
			if k.additional.Evaluate(ctx, snk, tr, value, childLoc, newScope()) {
				scope.markProp(name)
			} else {
				valid = false
			}
		}
	}
	if ctx.patch != nil {
		k.injectDefaults(ctx, obj, loc, scope)
	}
	return valid
}

// injectDefaults emits one "add" operation per missing property whose schema
// carries a default, and treats the property as evaluated for this node.
func (k *objectApplicator) injectDefaults(ctx *EvalContext, obj map[string]any, loc string, scope *Scope) {
	for _, name := range sortedKeys(k.properties) {
		if _, present := obj[name]; present {
			continue
		}
		if value, ok := k.properties[name].Default(); ok {
			ctx.emitDefault(childProp(loc, name), value)
			scope.markProp(name)
		}
	}
}

// propertyNamesKeyword validates every property name, as a string, against
// the subschema.
type propertyNamesKeyword struct {
	keywordBase
	sub *Node
}

func NewPropertyNames(location string, sub *Node) Keyword {
	return &propertyNamesKeyword{keywordBase{"propertyNames", location}, sub}
}

func (k *propertyNamesKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, _ *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, name := range sortedKeys(obj) {
		if !k.sub.Evaluate(ctx, snk, tr, name, childProp(loc, name), newScope()) {
			valid = false
		}
	}
	return valid
}

// Dependency is one entry of the legacy dependencies keyword: either a
// required-names list or a subschema, addressed by its own schema location.
type Dependency struct {
	Location string
	Required []string
	Schema   *Node
}

// dependenciesKeyword implements draft-4/6/7 dependencies: array entries act
// like dependentRequired, object entries like dependentSchemas.
type dependenciesKeyword struct {
	keywordBase
	deps map[string]Dependency
}

func NewDependencies(location string, deps map[string]Dependency) Keyword {
	return &dependenciesKeyword{keywordBase{"dependencies", location}, deps}
}

func (k *dependenciesKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, trigger := range sortedKeys(k.deps) {
		if _, present := obj[trigger]; !present {
			continue
		}
		dep := k.deps[trigger]
		for _, name := range dep.Required {
			if _, present := obj[name]; !present {
				snk.report(Message{
					InstanceLocation: loc,
					SchemaLocation:   dep.Location,
					Keyword:          k.name,
					Message:          fmt.Sprintf("property %q requires property %q", trigger, name),
				})
				valid = false
			}
		}
		if dep.Schema != nil {
			child := newScope()
			if dep.Schema.Evaluate(ctx, snk, tr, inst, loc, child) {
				scope.merge(child)
			} else {
				valid = false
			}
		}
	}
	return valid
}

// dependentSchemasKeyword applies a subschema to the whole object when the
// trigger property is present.
type dependentSchemasKeyword struct {
	keywordBase
	deps map[string]*Node
}

func NewDependentSchemas(location string, deps map[string]*Node) Keyword {
	return &dependentSchemasKeyword{keywordBase{"dependentSchemas", location}, deps}
}

func (k *dependentSchemasKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, trigger := range sortedKeys(k.deps) {
		if _, present := obj[trigger]; !present {
			continue
		}
		child := newScope()
		if k.deps[trigger].Evaluate(ctx, snk, tr, inst, loc, child) {
			scope.merge(child)
		} else {
			valid = false
		}
	}
	return valid
}

// unevaluatedPropertiesKeyword sweeps every property not in the evaluated
// set. It runs last; all sibling and referenced applicators have already
// contributed their evaluated names.
type unevaluatedPropertiesKeyword struct {
	keywordBase
	sub *Node
}

func NewUnevaluatedProperties(location string, sub *Node) Keyword {
	return &unevaluatedPropertiesKeyword{keywordBase{"unevaluatedProperties", location}, sub}
}

func (k *unevaluatedPropertiesKeyword) Evaluate(ctx *EvalContext, snk sink, tr *TraceNode, inst any, loc string, scope *Scope) bool {
	obj, ok := inst.(map[string]any)
	if !ok {
		return true
	}
	valid := true
	for _, name := range sortedKeys(obj) {
		if scope.hasProp(name) {
			continue
		}
		if k.sub.Evaluate(ctx, snk, tr, obj[name], childProp(loc, name), newScope()) {
			scope.markProp(name)
		} else {
			valid = false
		}
	}
	return valid
}
