package metadata

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"quill/internal/engine"
	"quill/internal/object"
)

// Generate walks the engine's registered-function surface and builds
// the metadata document. It never fails.
//
// Functions from the following sources are included:
//  1. Installed host packages, in registration order (optional)
//  2. Globally registered sub-modules, recursively
//  3. The engine's global function namespace
//  4. A compiled script's own function table (if provided)
func Generate(e *engine.Engine, script *object.Script, includePackages bool) *ModuleMetadata {
	root := &ModuleMetadata{}

	if includePackages {
		for _, pkg := range e.Packages() {
			for _, info := range pkg.IterFuncs() {
				root.Functions = append(root.Functions, normalizeFuncInfo(info))
			}
		}
	}

	subModules := e.GlobalSubModules()
	if len(subModules) > 0 {
		root.Modules = make(map[string]*ModuleMetadata, len(subModules))
		for name, mod := range subModules {
			root.Modules[name] = moduleMetadata(mod)
		}
	}

	for _, info := range e.GlobalNamespace().IterFuncs() {
		root.Functions = append(root.Functions, normalizeFuncInfo(info))
	}

	if script != nil {
		for _, def := range script.IterFuncs() {
			root.Functions = append(root.Functions, normalizeScriptFn(def))
		}
	}

	return root
}

// GenerateJSON builds the metadata document and serializes it as
// indented JSON. Sub-module keys come out sorted; empty collections
// are omitted at every level. Only the encoding step can fail.
func GenerateJSON(e *engine.Engine, script *object.Script, includePackages bool) (string, error) {
	out, err := json.MarshalIndent(Generate(e, script, includePackages), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// GenerateYAML builds the metadata document and serializes it as YAML,
// for documentation pipelines that prefer it over JSON
func GenerateYAML(e *engine.Engine, script *object.Script, includePackages bool) (string, error) {
	out, err := yaml.Marshal(Generate(e, script, includePackages))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
