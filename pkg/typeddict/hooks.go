package typeddict

import (
	"errors"
	"fmt"

	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// ErrUnsupportedLiteral is returned by LiteralHook for values that have no
// literal type form.
var ErrUnsupportedLiteral = errors.New("value cannot be expressed as a literal type")

// Hook refines the declared runtime type of a value using the value itself.
type Hook func(declared Ident, v any) (Type, error)

// Hooks maps a value kind to the hook applied to values of that kind.
type Hooks map[valuetree.Kind]Hook

// BuiltinHooks returns the container hooks: lists and sets are
// parameterised by their distinct element types, tuples by each element's
// type in position.
func BuiltinHooks() Hooks {
	return Hooks{
		valuetree.KindList:      DistinctElementsHook,
		valuetree.KindSet:       DistinctElementsHook,
		valuetree.KindFrozenSet: DistinctElementsHook,
		valuetree.KindTuple:     PositionalElementsHook,
	}
}

// LiteralHooks returns hooks that fold int, str and bool leaves into
// literal types fixed to the sampled value.
func LiteralHooks() Hooks {
	return Hooks{
		valuetree.KindInt:    LiteralHook,
		valuetree.KindString: LiteralHook,
		valuetree.KindBool:   LiteralHook,
	}
}

// ResolveHooks builds the effective hook set.
// With includeBuiltin, every builtin hook whose kind custom does not
// override is added. Without it, the result is exactly custom.
// custom is never modified.
func ResolveHooks(custom Hooks, includeBuiltin bool) Hooks {
	out := make(Hooks, len(custom)+4)
	for k, h := range custom {
		out[k] = h
	}
	if !includeBuiltin {
		return out
	}
	for k, h := range BuiltinHooks() {
		if _, ok := out[k]; !ok {
			out[k] = h
		}
	}
	return out
}

// Merge returns a new set with the hooks of h overlaid by other.
func (h Hooks) Merge(other Hooks) Hooks {
	out := make(Hooks, len(h)+len(other))
	for k, fn := range h {
		out[k] = fn
	}
	for k, fn := range other {
		out[k] = fn
	}
	return out
}

// DistinctElementsHook parameterises a container by the set of distinct
// runtime types among its elements, in order of first appearance.
func DistinctElementsHook(declared Ident, v any) (Type, error) {
	items, ok := valuetree.Elements(v)
	if !ok {
		return Type{}, fmt.Errorf("%s hook: value of kind %s is not a container", declared.Name, valuetree.KindOf(v))
	}
	params := make([]Ident, 0, 2)
	seen := make(map[Ident]bool)
	for _, item := range items {
		id := IdentOfValue(item)
		if seen[id] {
			continue
		}
		seen[id] = true
		params = append(params, id)
	}
	return ParametricOf(declared, params...), nil
}

// PositionalElementsHook parameterises a container by every element's
// runtime type, keeping positions and duplicates.
func PositionalElementsHook(declared Ident, v any) (Type, error) {
	items, ok := valuetree.Elements(v)
	if !ok {
		return Type{}, fmt.Errorf("%s hook: value of kind %s is not a container", declared.Name, valuetree.KindOf(v))
	}
	params := make([]Ident, len(items))
	for i, item := range items {
		params[i] = IdentOfValue(item)
	}
	return ParametricOf(declared, params...), nil
}

// LiteralHook replaces the declared type with a literal fixed to v.
// Only integers, strings, booleans and null have literal forms.
func LiteralHook(_ Ident, v any) (Type, error) {
	switch valuetree.KindOf(v) {
	case valuetree.KindInt, valuetree.KindString, valuetree.KindBool, valuetree.KindNull:
		return LiteralOf(v), nil
	default:
		return Type{}, fmt.Errorf("%w: %s", ErrUnsupportedLiteral, valuetree.KindOf(v))
	}
}
