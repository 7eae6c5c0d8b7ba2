package object

// FnNamespace marks where a function is visible once its owning module
// is imported: Global functions are pulled into the caller's namespace,
// Internal functions stay behind the module's name.
type FnNamespace int

const (
	NamespaceInternal FnNamespace = iota
	NamespaceGlobal
)

// String returns the canonical spelling of the namespace tag
func (n FnNamespace) String() string {
	switch n {
	case NamespaceGlobal:
		return "global"
	default:
		return "internal"
	}
}

// FnAccess marks whether a function may be called from outside the
// module that declares it.
type FnAccess int

const (
	AccessPublic FnAccess = iota
	AccessPrivate
)

// String returns the canonical spelling of the access tag
func (a FnAccess) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	default:
		return "public"
	}
}

// ScriptFnDef is a script-defined function as produced by the parser:
// its signature plus any documentation comments that preceded it. Body
// is an opaque handle to the parsed definition; this layer never looks
// inside it.
type ScriptFnDef struct {
	Name     string
	Access   FnAccess
	Params   []string
	Comments []string
	Body     interface{}
}

// FuncInfo is the raw descriptor for one registered function, host or
// script origin. ParamNames, when present, carries one entry per
// declared parameter ("name" or "name: Type") plus an optional trailing
// entry recording the return type; a nil ParamNames means no
// annotations were recorded at all.
type FuncInfo struct {
	Name       string
	Namespace  FnNamespace
	Access     FnAccess
	Arity      int
	ParamNames []string
	Script     *ScriptFnDef
	Native     NativeFn
}

// IsScript reports whether the function is script-defined
func (f *FuncInfo) IsScript() bool {
	return f.Script != nil
}

// Module is a named collection of functions, variables and nested
// sub-modules. The function table preserves registration order.
type Module struct {
	funcs      []*FuncInfo
	subModules map[string]*Module
	vars       map[string]Value
}

// NewModule creates a new empty module
func NewModule() *Module {
	return &Module{
		subModules: make(map[string]*Module),
		vars:       make(map[string]Value),
	}
}

// AddFunc appends a raw function descriptor to the module's table
func (m *Module) AddFunc(info *FuncInfo) *FuncInfo {
	m.funcs = append(m.funcs, info)
	return info
}

// SetNativeFn registers a host function. params holds one "name" or
// "name: Type" entry per argument; returnType records the declared
// return type alongside them.
func (m *Module) SetNativeFn(name string, params []string, returnType string, fn NativeFn) *FuncInfo {
	names := make([]string, 0, len(params)+1)
	names = append(names, params...)
	names = append(names, returnType)

	return m.AddFunc(&FuncInfo{
		Name:       name,
		Namespace:  NamespaceInternal,
		Access:     AccessPublic,
		Arity:      len(params),
		ParamNames: names,
		Native:     fn,
	})
}

// SetScriptFn registers a script-defined function from its parsed
// definition
func (m *Module) SetScriptFn(def *ScriptFnDef) *FuncInfo {
	return m.AddFunc(&FuncInfo{
		Name:       def.Name,
		Namespace:  NamespaceInternal,
		Access:     def.Access,
		Arity:      len(def.Params),
		ParamNames: append([]string{}, def.Params...),
		Script:     def,
	})
}

// SetSubModule stores a nested sub-module under the given name,
// replacing any previous entry
func (m *Module) SetSubModule(name string, sub *Module) {
	m.subModules[name] = sub
}

// SubModule returns the named sub-module
func (m *Module) SubModule(name string) (*Module, bool) {
	sub, ok := m.subModules[name]
	return sub, ok
}

// SetVar stores a module-level variable
func (m *Module) SetVar(name string, val Value) {
	m.vars[name] = val
}

// Var returns a module-level variable
func (m *Module) Var(name string) (Value, bool) {
	val, ok := m.vars[name]
	return val, ok
}

// IterFuncs returns the module's function table in registration order.
// The returned slice is shared; callers must not modify it.
func (m *Module) IterFuncs() []*FuncInfo {
	return m.funcs
}

// IterSubModules returns the module's sub-module map. The returned map
// is shared; callers must not modify it.
func (m *Module) IterSubModules() map[string]*Module {
	return m.subModules
}

// NumFuncs returns the number of directly declared functions
func (m *Module) NumFuncs() int {
	return len(m.funcs)
}

// Clone returns a logical copy of the module: fresh tables so later
// mutation of either side's tables is invisible to the other, while
// function descriptors, sub-modules and variable values stay shared.
func (m *Module) Clone() *Module {
	dup := &Module{
		funcs:      make([]*FuncInfo, len(m.funcs)),
		subModules: make(map[string]*Module, len(m.subModules)),
		vars:       make(map[string]Value, len(m.vars)),
	}
	copy(dup.funcs, m.funcs)
	for name, sub := range m.subModules {
		dup.subModules[name] = sub
	}
	for name, val := range m.vars {
		dup.vars[name] = val
	}
	return dup
}

// Script is a compiled script unit: the ordered table of functions it
// defines. Compilation itself happens in the parser/compiler; this
// layer only walks the result.
type Script struct {
	funcs []*ScriptFnDef
}

// NewScript creates an empty compiled script unit
func NewScript() *Script {
	return &Script{}
}

// AddFn appends a function definition to the script's table
func (s *Script) AddFn(def *ScriptFnDef) {
	s.funcs = append(s.funcs, def)
}

// IterFuncs returns the script's function table in definition order
func (s *Script) IterFuncs() []*ScriptFnDef {
	return s.funcs
}
