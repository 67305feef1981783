// Package valuetree holds the example value trees that schemas are inferred from.
//
// A tree is an ordered mapping whose values are scalars, sequences, tuples,
// sets or further mappings. Mapping order is significant: it becomes the
// field order of the inferred records.
package valuetree

import (
	"math/big"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered mapping with string keys.
type Map = orderedmap.OrderedMap[string, any]

// NewMap creates an empty Map.
func NewMap() *Map {
	return orderedmap.New[string, any]()
}

// Tuple is a fixed-position sequence. Element types are inferred per position.
type Tuple []any

// Set is an unordered collection of distinct values.
type Set []any

// FrozenSet is an immutable Set.
type FrozenSet []any

// Kind is the runtime category of a value in the tree.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindTuple
	KindSet
	KindFrozenSet
	KindMap
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindNull:      "null",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindString:    "string",
	KindList:      "list",
	KindTuple:     "tuple",
	KindSet:       "set",
	KindFrozenSet: "frozenset",
	KindMap:       "mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindOf classifies a value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case []any:
		return KindList
	case Tuple:
		return KindTuple
	case Set:
		return KindSet
	case FrozenSet:
		return KindFrozenSet
	case *Map:
		return KindMap
	default:
		return KindUnknown
	}
}

// TypeName returns the Python runtime type name of the kind.
// Unknown values have no builtin type and report "Any".
func (k Kind) TypeName() string {
	switch k {
	case KindNull:
		return "NoneType"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindSet:
		return "set"
	case KindFrozenSet:
		return "frozenset"
	case KindMap:
		return "dict"
	default:
		return "Any"
	}
}

// Builtin reports whether the kind's type lives in the builtins namespace.
func (k Kind) Builtin() bool {
	return k != KindUnknown
}

// Elements returns the items of a sequence-like value (list, tuple, set, frozenset).
func Elements(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case Tuple:
		return val, true
	case Set:
		return val, true
	case FrozenSet:
		return val, true
	}
	return nil, false
}
