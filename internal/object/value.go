package object

import (
	"fmt"
	"strings"
)

// Value is any value a Quill program can produce or consume.
type Value interface{}

// NativeFn is the signature of a host-registered function.
type NativeFn func(args []Value) (Value, error)

// ValueType returns the type of a value as a string
func ValueType(val Value) string {
	switch val.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int, int64, float64:
		return "number"
	case string:
		return "string"
	case []Value:
		return "array"
	case map[string]Value:
		return "map"
	case *ScriptFnDef:
		return "function"
	case NativeFn:
		return "native_function"
	case *Module:
		return "module"
	default:
		return "unknown"
	}
}

// IsTruthy returns whether a value is considered true
func IsTruthy(val Value) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0.0
	case string:
		return v != ""
	case []Value:
		return len(v) > 0
	case map[string]Value:
		return len(v) > 0
	default:
		return true
	}
}

// ToNumber converts a value to float64
func ToNumber(val Value) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToString converts a value to a string representation
func ToString(val Value) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case string:
		return v
	case []Value:
		elems := make([]string, len(v))
		for i, elem := range v {
			elems[i] = ToString(elem)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case map[string]Value:
		pairs := make([]string, 0, len(v))
		for k, item := range v {
			pairs = append(pairs, fmt.Sprintf("%s: %s", k, ToString(item)))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	case *ScriptFnDef:
		return fmt.Sprintf("<fn %s>", v.Name)
	case *Module:
		return "<module>"
	default:
		return fmt.Sprintf("%v", v)
	}
}
