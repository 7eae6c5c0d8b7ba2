// Package engine holds the host-facing surface of the Quill engine:
// the global function namespace, registered sub-modules and packages,
// and the attached module resolver. Script execution itself lives in
// the evaluator; this package is what host applications configure.
package engine

import (
	"quill/internal/errors"
	"quill/internal/object"
	"quill/internal/resolver"
)

// Engine is the configured state of one Quill engine instance
type Engine struct {
	globalNamespace  *object.Module
	globalSubModules map[string]*object.Module
	packages         []*object.Module
	resolver         resolver.ModuleResolver
}

// New creates an engine with an empty global namespace and no resolver
func New() *Engine {
	return &Engine{
		globalNamespace:  object.NewModule(),
		globalSubModules: make(map[string]*object.Module),
	}
}

// SetModuleResolver attaches the resolver consulted for every import
// statement. Passing nil detaches resolution entirely.
func (e *Engine) SetModuleResolver(r resolver.ModuleResolver) {
	e.resolver = r
}

// ModuleResolver returns the currently attached resolver, if any
func (e *Engine) ModuleResolver() resolver.ModuleResolver {
	return e.resolver
}

// ResolveModule resolves an import path through the attached resolver.
// The engine never touches a concrete resolver type here.
func (e *Engine) ResolveModule(path string, pos errors.SourceLocation) (*object.Module, error) {
	if e.resolver == nil {
		return nil, errors.NewModuleNotFound(path, pos)
	}
	return e.resolver.Resolve(e, path, pos)
}

// RegisterFn registers a host function into the engine's global
// namespace. params holds one "name" or "name: Type" entry per
// argument; returnType records the declared return type.
func (e *Engine) RegisterFn(name string, params []string, returnType string, fn object.NativeFn) *object.FuncInfo {
	info := e.globalNamespace.SetNativeFn(name, params, returnType, fn)
	info.Namespace = object.NamespaceGlobal
	return info
}

// RegisterSubModule registers a module globally under the given name,
// replacing any previous entry
func (e *Engine) RegisterSubModule(name string, mod *object.Module) {
	e.globalSubModules[name] = mod
}

// RegisterPackage appends a host package's module to the engine.
// Package order is preserved for introspection.
func (e *Engine) RegisterPackage(mod *object.Module) {
	e.packages = append(e.packages, mod)
}

// GlobalNamespace returns the engine's global function namespace
func (e *Engine) GlobalNamespace() *object.Module {
	return e.globalNamespace
}

// GlobalSubModules returns the globally registered sub-modules. The
// returned map is shared; callers must not modify it.
func (e *Engine) GlobalSubModules() map[string]*object.Module {
	return e.globalSubModules
}

// GlobalSubModule returns the module registered globally under name.
// Part of the resolver.Context contract.
func (e *Engine) GlobalSubModule(name string) (*object.Module, bool) {
	mod, ok := e.globalSubModules[name]
	return mod, ok
}

// Packages returns the installed host packages in registration order.
// The returned slice is shared; callers must not modify it.
func (e *Engine) Packages() []*object.Module {
	return e.packages
}
