// Package resolver turns import paths encountered during script
// execution into loaded modules. The engine only ever talks to the
// ModuleResolver interface; which concrete resolver (or chain of
// resolvers) sits behind it is the host application's choice.
package resolver

import (
	"quill/internal/errors"
	"quill/internal/object"
)

// Context is the read-only view of the host engine handed to a
// resolver. A resolver may consult it but must not execute script code
// through it.
type Context interface {
	// GlobalSubModule returns a module registered globally on the
	// engine under the given name.
	GlobalSubModule(name string) (*object.Module, bool)
}

// ModuleResolver resolves an import path into a module, or fails with
// a ModuleNotFoundError carrying the path and the position of the
// import statement.
//
// Implementations must be queryable independently of evaluation state
// and may be invoked reentrantly: resolving one module can trigger
// nested resolution calls for its own imports. A resolver must not
// assume it is the only one attached to an engine.
type ModuleResolver interface {
	Resolve(ctx Context, path string, pos errors.SourceLocation) (*object.Module, error)
}
