package resolver

import (
	"quill/internal/errors"
	"quill/internal/object"
)

// StaticResolver serves modules out of an in-memory table keyed by
// import path. A host application populates it before running scripts
// and attaches it to the engine.
//
// The resolver performs no internal locking; concurrent mutation
// requires external synchronization by the host.
type StaticResolver struct {
	modules map[string]*object.Module
}

// NewStaticResolver creates an empty static resolver
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		modules: make(map[string]*object.Module),
	}
}

// Insert stores a module under the given path, silently replacing any
// previous entry
func (r *StaticResolver) Insert(path string, mod *object.Module) {
	r.modules[path] = mod
}

// Remove deletes the module at the given path and returns it, or
// (nil, false) if no such path exists
func (r *StaticResolver) Remove(path string) (*object.Module, bool) {
	mod, ok := r.modules[path]
	if ok {
		delete(r.modules, path)
	}
	return mod, ok
}

// ContainsPath reports whether a module is stored under the path
func (r *StaticResolver) ContainsPath(path string) bool {
	_, ok := r.modules[path]
	return ok
}

// Get returns the stored module itself, for in-place mutation by the
// host. Whether mutations become visible through previously resolved
// copies follows the sharing rules of Resolve.
func (r *StaticResolver) Get(path string) (*object.Module, bool) {
	mod, ok := r.modules[path]
	return mod, ok
}

// Iter calls fn for every (path, module) pair. Iteration order is
// unspecified. Returning false stops the walk.
func (r *StaticResolver) Iter(fn func(path string, mod *object.Module) bool) {
	for path, mod := range r.modules {
		if !fn(path, mod) {
			return
		}
	}
}

// Paths returns all stored module paths in unspecified order
func (r *StaticResolver) Paths() []string {
	paths := make([]string, 0, len(r.modules))
	for path := range r.modules {
		paths = append(paths, path)
	}
	return paths
}

// Modules returns all stored modules in unspecified order
func (r *StaticResolver) Modules() []*object.Module {
	mods := make([]*object.Module, 0, len(r.modules))
	for _, mod := range r.modules {
		mods = append(mods, mod)
	}
	return mods
}

// Clear removes all modules
func (r *StaticResolver) Clear() {
	r.modules = make(map[string]*object.Module)
}

// Len returns the number of stored modules
func (r *StaticResolver) Len() int {
	return len(r.modules)
}

// IsEmpty reports whether the resolver holds no modules
func (r *StaticResolver) IsEmpty() bool {
	return len(r.modules) == 0
}

// Merge moves every entry of other into this resolver; on a path
// present in both, other's module wins. other is drained and left
// empty.
func (r *StaticResolver) Merge(other *StaticResolver) {
	if other == nil || other.IsEmpty() {
		return
	}
	for path, mod := range other.modules {
		r.modules[path] = mod
	}
	other.Clear()
}

// Resolve returns a logical copy of the module stored at path, or a
// ModuleNotFoundError carrying the path and position. Callers must not
// rely on mutations of the stored entry being visible through an
// already-resolved copy, or the reverse.
func (r *StaticResolver) Resolve(_ Context, path string, pos errors.SourceLocation) (*object.Module, error) {
	mod, ok := r.modules[path]
	if !ok {
		return nil, errors.NewModuleNotFound(path, pos)
	}
	return mod.Clone(), nil
}
