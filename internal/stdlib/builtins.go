// Package stdlib builds the builtin Quill modules and wires them into
// an engine or a module resolver. Each builtin function is registered
// with full parameter and return-type annotations so a stock engine
// exports complete metadata.
package stdlib

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"quill/internal/engine"
	"quill/internal/object"
	"quill/internal/resolver"
)

// RegisterBuiltins registers every builtin module as a global
// sub-module of the engine
func RegisterBuiltins(e *engine.Engine) {
	e.RegisterSubModule("math", MathModule())
	e.RegisterSubModule("strings", StringsModule())
	e.RegisterSubModule("arrays", ArraysModule())
	e.RegisterSubModule("json", JSONModule())
}

// DefaultResolver returns a static resolver pre-seeded with the
// builtin modules, so scripts can import them by path
func DefaultResolver() *resolver.StaticResolver {
	r := resolver.NewStaticResolver()
	r.Insert("math", MathModule())
	r.Insert("strings", StringsModule())
	r.Insert("arrays", ArraysModule())
	r.Insert("json", JSONModule())
	return r
}

func checkArity(name string, args []object.Value, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

// MathModule creates the math module
func MathModule() *object.Module {
	m := object.NewModule()

	m.SetVar("PI", math.Pi)
	m.SetVar("E", math.E)

	m.SetNativeFn("abs", []string{"x: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("abs", args, 1); err != nil {
			return nil, err
		}
		return math.Abs(object.ToNumber(args[0])), nil
	})
	m.SetNativeFn("floor", []string{"x: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("floor", args, 1); err != nil {
			return nil, err
		}
		return math.Floor(object.ToNumber(args[0])), nil
	})
	m.SetNativeFn("ceil", []string{"x: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("ceil", args, 1); err != nil {
			return nil, err
		}
		return math.Ceil(object.ToNumber(args[0])), nil
	})
	m.SetNativeFn("sqrt", []string{"x: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("sqrt", args, 1); err != nil {
			return nil, err
		}
		return math.Sqrt(object.ToNumber(args[0])), nil
	})
	m.SetNativeFn("pow", []string{"base: Float", "exp: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("pow", args, 2); err != nil {
			return nil, err
		}
		return math.Pow(object.ToNumber(args[0]), object.ToNumber(args[1])), nil
	})
	m.SetNativeFn("min", []string{"a: Float", "b: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("min", args, 2); err != nil {
			return nil, err
		}
		return math.Min(object.ToNumber(args[0]), object.ToNumber(args[1])), nil
	})
	m.SetNativeFn("max", []string{"a: Float", "b: Float"}, "Float", func(args []object.Value) (object.Value, error) {
		if err := checkArity("max", args, 2); err != nil {
			return nil, err
		}
		return math.Max(object.ToNumber(args[0]), object.ToNumber(args[1])), nil
	})

	return m
}

// StringsModule creates the strings module
func StringsModule() *object.Module {
	m := object.NewModule()

	m.SetNativeFn("upper", []string{"s: String"}, "String", func(args []object.Value) (object.Value, error) {
		if err := checkArity("upper", args, 1); err != nil {
			return nil, err
		}
		return strings.ToUpper(object.ToString(args[0])), nil
	})
	m.SetNativeFn("lower", []string{"s: String"}, "String", func(args []object.Value) (object.Value, error) {
		if err := checkArity("lower", args, 1); err != nil {
			return nil, err
		}
		return strings.ToLower(object.ToString(args[0])), nil
	})
	m.SetNativeFn("trim", []string{"s: String"}, "String", func(args []object.Value) (object.Value, error) {
		if err := checkArity("trim", args, 1); err != nil {
			return nil, err
		}
		return strings.TrimSpace(object.ToString(args[0])), nil
	})
	m.SetNativeFn("split", []string{"s: String", "sep: String"}, "Array", func(args []object.Value) (object.Value, error) {
		if err := checkArity("split", args, 2); err != nil {
			return nil, err
		}
		parts := strings.Split(object.ToString(args[0]), object.ToString(args[1]))
		out := make([]object.Value, len(parts))
		for i, p := range parts {
			out[i] = p
		}
		return out, nil
	})
	m.SetNativeFn("contains", []string{"s: String", "sub: String"}, "Bool", func(args []object.Value) (object.Value, error) {
		if err := checkArity("contains", args, 2); err != nil {
			return nil, err
		}
		return strings.Contains(object.ToString(args[0]), object.ToString(args[1])), nil
	})
	m.SetNativeFn("replace", []string{"s: String", "old: String", "new: String"}, "String", func(args []object.Value) (object.Value, error) {
		if err := checkArity("replace", args, 3); err != nil {
			return nil, err
		}
		return strings.ReplaceAll(object.ToString(args[0]), object.ToString(args[1]), object.ToString(args[2])), nil
	})

	return m
}

// ArraysModule creates the arrays module
func ArraysModule() *object.Module {
	m := object.NewModule()

	m.SetNativeFn("len", []string{"arr: Array"}, "Int", func(args []object.Value) (object.Value, error) {
		if err := checkArity("len", args, 1); err != nil {
			return nil, err
		}
		arr, ok := args[0].([]object.Value)
		if !ok {
			return nil, fmt.Errorf("len expects an array, got %s", object.ValueType(args[0]))
		}
		return len(arr), nil
	})
	m.SetNativeFn("reverse", []string{"arr: Array"}, "Array", func(args []object.Value) (object.Value, error) {
		if err := checkArity("reverse", args, 1); err != nil {
			return nil, err
		}
		arr, ok := args[0].([]object.Value)
		if !ok {
			return nil, fmt.Errorf("reverse expects an array, got %s", object.ValueType(args[0]))
		}
		out := make([]object.Value, len(arr))
		for i, v := range arr {
			out[len(arr)-1-i] = v
		}
		return out, nil
	})
	m.SetNativeFn("join", []string{"arr: Array", "sep: String"}, "String", func(args []object.Value) (object.Value, error) {
		if err := checkArity("join", args, 2); err != nil {
			return nil, err
		}
		arr, ok := args[0].([]object.Value)
		if !ok {
			return nil, fmt.Errorf("join expects an array, got %s", object.ValueType(args[0]))
		}
		parts := make([]string, len(arr))
		for i, v := range arr {
			parts[i] = object.ToString(v)
		}
		return strings.Join(parts, object.ToString(args[1])), nil
	})
	m.SetNativeFn("sort", []string{"arr: Array"}, "Array", func(args []object.Value) (object.Value, error) {
		if err := checkArity("sort", args, 1); err != nil {
			return nil, err
		}
		arr, ok := args[0].([]object.Value)
		if !ok {
			return nil, fmt.Errorf("sort expects an array, got %s", object.ValueType(args[0]))
		}
		out := make([]object.Value, len(arr))
		copy(out, arr)
		sort.Slice(out, func(i, j int) bool {
			return object.ToString(out[i]) < object.ToString(out[j])
		})
		return out, nil
	})

	return m
}

// JSONModule creates the json module
func JSONModule() *object.Module {
	m := object.NewModule()

	m.SetNativeFn("encode", []string{"value: any"}, "String", func(args []object.Value) (object.Value, error) {
		if err := checkArity("encode", args, 1); err != nil {
			return nil, err
		}
		out, err := json.Marshal(args[0])
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		return string(out), nil
	})
	m.SetNativeFn("decode", []string{"text: String"}, "any", func(args []object.Value) (object.Value, error) {
		if err := checkArity("decode", args, 1); err != nil {
			return nil, err
		}
		var out object.Value
		if err := json.Unmarshal([]byte(object.ToString(args[0])), &out); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return out, nil
	})

	return m
}
