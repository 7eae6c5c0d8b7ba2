// Package metadata walks an engine's registered-function surface and
// produces one hierarchical, schema-stable description of it, for
// documentation generators and editor tooling. Normalization is total:
// every raw descriptor yields a record, with fixed defaulting rules
// filling whatever the origin left out.
package metadata

import (
	"strings"

	"quill/internal/object"
)

// Serialized spellings of the function-type tag
const (
	fnTypeScript = "script"
	fnTypeNative = "native"
)

// TypePlaceholder stands in for parameter and return types of
// compiled-script functions, which carry no annotations at this stage
const TypePlaceholder = "any"

// FnParam is one normalized parameter: its name and, when a ":Type"
// annotation was present, its declared type
type FnParam struct {
	Name string  `json:"name" yaml:"name"`
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// FnMetadata is the canonical record for one function, host or script
// origin. Optional fields are omitted from the serialized document
// rather than emitted empty; DocComments distinguishes absent (nil)
// from present-but-empty.
type FnMetadata struct {
	Namespace   string    `json:"namespace" yaml:"namespace"`
	Access      string    `json:"access" yaml:"access"`
	Name        string    `json:"name" yaml:"name"`
	Type        string    `json:"type" yaml:"type"`
	NumParams   int       `json:"numParams" yaml:"numParams"`
	Params      []FnParam `json:"params,omitempty" yaml:"params,omitempty"`
	ReturnType  *string   `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	DocComments []string  `json:"docComments,omitzero" yaml:"docComments,omitempty"`
}

// ModuleMetadata is one level of the exported document: sub-modules
// keyed by name (sorted on output) plus the level's own functions in
// registration order
type ModuleMetadata struct {
	Modules   map[string]*ModuleMetadata `json:"modules,omitempty" yaml:"modules,omitempty"`
	Functions []FnMetadata               `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// namespaceName translates the namespace tag to its serialized
// spelling
func namespaceName(ns object.FnNamespace) string {
	switch ns {
	case object.NamespaceGlobal:
		return "global"
	default:
		return "internal"
	}
}

// accessName translates the access tag to its serialized spelling
func accessName(access object.FnAccess) string {
	switch access {
	case object.AccessPrivate:
		return "private"
	default:
		return "public"
	}
}

// parseParam splits one raw parameter entry on its first colon. An
// empty name falls back to the "_" placeholder; the type is present
// only when a colon was.
func parseParam(raw string) FnParam {
	seg := strings.SplitN(raw, ":", 2)

	param := FnParam{Name: strings.TrimSpace(seg[0])}
	if param.Name == "" {
		param.Name = "_"
	}
	if len(seg) > 1 {
		typ := strings.TrimSpace(seg[1])
		param.Type = &typ
	}
	return param
}

// normalizeFuncInfo converts a raw descriptor into its canonical
// record. It never fails.
//
// ParamNames may carry one trailing entry beyond the declared arity:
// registration reuses it to record the return type, so only the first
// Arity entries are parameters and the last entry, verbatim, is the
// return type. A present-but-empty list still yields a return type,
// the unit token "()"; only a wholly absent list leaves it out.
func normalizeFuncInfo(info *object.FuncInfo) FnMetadata {
	meta := FnMetadata{
		Namespace: namespaceName(info.Namespace),
		Access:    accessName(info.Access),
		Name:      info.Name,
		Type:      fnTypeNative,
		NumParams: info.Arity,
	}
	if info.IsScript() {
		meta.Type = fnTypeScript
	}

	if info.ParamNames != nil {
		n := info.Arity
		if n > len(info.ParamNames) {
			n = len(info.ParamNames)
		}
		for _, raw := range info.ParamNames[:n] {
			meta.Params = append(meta.Params, parseParam(raw))
		}

		var ret string
		if len(info.ParamNames) > 0 {
			ret = info.ParamNames[len(info.ParamNames)-1]
		} else {
			ret = "()"
		}
		meta.ReturnType = &ret
	}

	if info.IsScript() {
		docs := info.Script.Comments
		if docs == nil {
			docs = []string{}
		}
		meta.DocComments = docs
	}

	return meta
}

// normalizeScriptFn converts a function taken straight from a compiled
// script's function table. Script-level functions always live in the
// global namespace, and their parameters carry no annotations yet, so
// every type is the fixed placeholder. Documentation is attached only
// when non-empty.
func normalizeScriptFn(def *object.ScriptFnDef) FnMetadata {
	meta := FnMetadata{
		Namespace: namespaceName(object.NamespaceGlobal),
		Access:    accessName(def.Access),
		Name:      def.Name,
		Type:      fnTypeScript,
		NumParams: len(def.Params),
	}

	for _, name := range def.Params {
		typ := TypePlaceholder
		meta.Params = append(meta.Params, FnParam{Name: name, Type: &typ})
	}
	ret := TypePlaceholder
	meta.ReturnType = &ret

	if len(def.Comments) > 0 {
		meta.DocComments = def.Comments
	}

	return meta
}

// moduleMetadata builds the metadata node for one module, depth-first
func moduleMetadata(m *object.Module) *ModuleMetadata {
	meta := &ModuleMetadata{}

	subModules := m.IterSubModules()
	if len(subModules) > 0 {
		meta.Modules = make(map[string]*ModuleMetadata, len(subModules))
		for name, sub := range subModules {
			meta.Modules[name] = moduleMetadata(sub)
		}
	}

	for _, info := range m.IterFuncs() {
		meta.Functions = append(meta.Functions, normalizeFuncInfo(info))
	}

	return meta
}
