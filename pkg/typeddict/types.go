// Package typeddict infers TypedDict-style record schemas from example value trees.
package typeddict

import "github.com/seven7ty/typeshi/pkg/valuetree"

// Version tags generated output.
const Version = "1.0.0"

// Well-known module names.
const (
	BuiltinsModule = "builtins"
	TypingModule   = "typing"
	// MainModule names types defined by the program's entry module. It is
	// not importable and is remapped when rendering.
	MainModule = "__main__"
)

// Ident names a type by its display name and defining module.
type Ident struct {
	Name   string `json:"name"`
	Module string `json:"module"`
}

// Builtin reports whether the type needs no import.
func (i Ident) Builtin() bool {
	return i.Module == "" || i.Module == BuiltinsModule
}

// Qualified returns "module.Name", or just the name for builtins.
func (i Ident) Qualified() string {
	if i.Builtin() {
		return i.Name
	}
	return i.Module + "." + i.Name
}

var (
	NoneType    = Ident{Name: "NoneType", Module: BuiltinsModule}
	AnyType     = Ident{Name: "Any", Module: TypingModule}
	LiteralType = Ident{Name: "Literal", Module: TypingModule}
	TypedDict   = Ident{Name: "TypedDict", Module: TypingModule}
)

// IdentOf returns the runtime type of values of the given kind.
func IdentOf(k valuetree.Kind) Ident {
	if !k.Builtin() {
		return AnyType
	}
	return Ident{Name: k.TypeName(), Module: BuiltinsModule}
}

// IdentOfValue returns the runtime type of v.
func IdentOfValue(v any) Ident {
	return IdentOf(valuetree.KindOf(v))
}

// TypeKind selects the active variant of a Type.
type TypeKind int

const (
	Plain TypeKind = iota
	Parametric
	Literal
	RecordRef
)

func (k TypeKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Parametric:
		return "parametric"
	case Literal:
		return "literal"
	case RecordRef:
		return "record"
	default:
		return "unknown"
	}
}

// Type is the inferred type of one field.
//
//   - Plain: Ident is the bare type.
//   - Parametric: Ident is the container, Params its element types.
//   - Literal: Value is the sampled scalar; Ident is typing.Literal.
//   - RecordRef: Record is the nested record.
type Type struct {
	Kind   TypeKind
	Ident  Ident
	Params []Ident
	Value  any
	Record *Record
}

// PlainOf returns a Plain type.
func PlainOf(id Ident) Type {
	return Type{Kind: Plain, Ident: id}
}

// ParametricOf returns container parameterised by params, in the given order.
func ParametricOf(container Ident, params ...Ident) Type {
	return Type{Kind: Parametric, Ident: container, Params: params}
}

// LiteralOf returns a Literal type fixed to v.
func LiteralOf(v any) Type {
	return Type{Kind: Literal, Ident: LiteralType, Value: v}
}

// RecordOf returns a reference to r.
func RecordOf(r *Record) Type {
	return Type{Kind: RecordRef, Ident: Ident{Name: r.Name}, Record: r}
}

// Field is one named entry of a record.
type Field struct {
	Name string
	Type Type
}

// Record is an inferred structural type: an ordered list of fields.
// Total reports whether every field is required.
type Record struct {
	Name   string
	Fields []Field
	Total  bool
}

// Children returns the records referenced directly by r's fields, in field order.
func (r *Record) Children() []*Record {
	var out []*Record
	for _, f := range r.Fields {
		if f.Type.Kind == RecordRef && f.Type.Record != nil {
			out = append(out, f.Type.Record)
		}
	}
	return out
}

// Field looks up a field by name.
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Walk visits r and every nested record depth-first, children before parents.
func (r *Record) Walk(fn func(*Record)) {
	for _, c := range r.Children() {
		c.Walk(fn)
	}
	fn(r)
}
