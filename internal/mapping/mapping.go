// Package mapping converts raw JSON value trees into normalized field sets
// using declarative per-entity schemas. Each field declares its key, expected
// kind, default, and an optional coercion hook; the engine applies them
// uniformly so the strict/lenient policy and error paths live in one place
// instead of being scattered across entity constructors.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// Mode selects how unrecognized input keys are treated.
type Mode int

const (
	// Lenient ignores keys the schema does not declare.
	Lenient Mode = iota
	// Strict rejects any undeclared key with an UnexpectedFieldError.
	Strict
)

// Kind is the declared type of a schema field.
type Kind int

const (
	String Kind = iota
	Bool
	Int
	Float
	StringList
	// Enum is a string constrained to a fixed token set.
	Enum
	// Extensions is an opaque key to arbitrary-JSON map, passed through
	// without validation.
	Extensions
	// Object is a nested record mapped with its own schema.
	Object
	// ObjectList is an ordered sequence of nested records.
	ObjectList
)

// Coercion rewrites a raw value before type checking. Returning ok=false
// discards the value, so the field is treated as absent.
type Coercion func(raw any) (rewritten any, ok bool)

// Field declares how one key of a raw object maps into the entity.
type Field struct {
	Key  string
	Kind Kind
	// Optional fields stay nil when absent instead of taking a default.
	Optional bool
	// Required fields fail the mapping when absent. Fields that are
	// neither Optional nor Required take Default (or an empty composite).
	Required bool
	// Default is the value used for an absent scalar field.
	Default any
	// Tokens is the legal value set for Enum fields.
	Tokens []string
	// Coerce, when set, runs on the raw value before validation.
	Coerce Coercion
	// Schema describes the nested record for Object and ObjectList fields.
	Schema *Schema
}

// Schema is the declarative field table for one entity.
type Schema struct {
	Name   string
	Fields []Field
}

// Apply maps a raw JSON value against the schema. It returns the normalized
// field values on success, or the first mapping error encountered, tagged
// with the dotted path of the offending field. Mapping is all-or-nothing:
// no partial result is ever returned alongside an error.
func Apply(raw any, s *Schema, mode Mode) (Values, error) {
	return apply(raw, s, mode, "")
}

func apply(raw any, s *Schema, mode Mode, path string) (Values, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &types.TypeMismatchError{Path: path, Expected: "object", Actual: typeName(raw)}
	}

	if mode == Strict {
		if err := checkUnknownKeys(obj, s, path); err != nil {
			return nil, err
		}
	}

	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v, present := obj[f.Key]
		fieldPath := childPath(path, f.Key)

		// JSON null is indistinguishable from absence for our purposes.
		if present && v == nil {
			present = false
		}
		if present && f.Coerce != nil {
			rewritten, keep := f.Coerce(v)
			if !keep {
				present = false
			} else {
				v = rewritten
			}
		}

		if !present {
			if f.Required {
				return nil, &types.TypeMismatchError{Path: fieldPath, Expected: expectedName(f), Actual: "absent"}
			}
			out[f.Key] = defaultValue(f)
			continue
		}

		converted, err := convert(v, f, mode, fieldPath)
		if err != nil {
			return nil, err
		}
		out[f.Key] = converted
	}
	return out, nil
}

// checkUnknownKeys rejects undeclared keys deterministically: when several
// are present, the lexicographically first one is reported.
func checkUnknownKeys(obj map[string]any, s *Schema, path string) error {
	declared := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Key] = true
	}
	var unknown []string
	for k := range obj {
		if !declared[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &types.UnexpectedFieldError{Path: childPath(path, unknown[0])}
}

func convert(v any, f Field, mode Mode, path string) (any, error) {
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(path, "string", v)
		}
		return s, nil

	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, mismatch(path, "bool", v)
		}
		return b, nil

	case Int:
		n, ok := v.(float64)
		if !ok || n != float64(int(n)) {
			return nil, mismatch(path, "integer", v)
		}
		return int(n), nil

	case Float:
		n, ok := v.(float64)
		if !ok {
			return nil, mismatch(path, "number", v)
		}
		return n, nil

	case StringList:
		list, ok := v.([]any)
		if !ok {
			return nil, mismatch(path, "array of string", v)
		}
		out := make([]string, len(list))
		for i, elem := range list {
			s, ok := elem.(string)
			if !ok {
				return nil, mismatch(fmt.Sprintf("%s[%d]", path, i), "string", elem)
			}
			out[i] = s
		}
		return out, nil

	case Enum:
		s, ok := v.(string)
		if !ok || !tokenAllowed(s, f.Tokens) {
			return nil, mismatch(path, expectedName(f), v)
		}
		return s, nil

	case Extensions:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(path, "object", v)
		}
		return m, nil

	case Object:
		return apply(v, f.Schema, mode, path)

	case ObjectList:
		list, ok := v.([]any)
		if !ok {
			return nil, mismatch(path, "array of object", v)
		}
		out := make([]Values, len(list))
		for i, elem := range list {
			nested, err := apply(elem, f.Schema, mode, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = nested
		}
		return out, nil
	}
	return nil, mismatch(path, "value", v)
}

// defaultValue produces the stored value for an absent field. Composite
// kinds always allocate fresh so no default is ever shared between records.
func defaultValue(f Field) any {
	if f.Optional {
		return nil
	}
	switch f.Kind {
	case StringList:
		return []string{}
	case Extensions:
		return map[string]any{}
	case ObjectList:
		return []Values{}
	case Object, Enum:
		return nil
	default:
		return f.Default
	}
}

func expectedName(f Field) string {
	if f.Kind == Enum {
		return "one of " + strings.Join(f.Tokens, ", ")
	}
	switch f.Kind {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "integer"
	case Float:
		return "number"
	case StringList:
		return "array of string"
	case Extensions, Object:
		return "object"
	case ObjectList:
		return "array of object"
	}
	return "value"
}

func tokenAllowed(s string, tokens []string) bool {
	for _, t := range tokens {
		if s == t {
			return true
		}
	}
	return false
}

func mismatch(path, expected string, v any) error {
	return &types.TypeMismatchError{Path: path, Expected: expected, Actual: typeName(v)}
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// typeName names a raw JSON value's type for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
