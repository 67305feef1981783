// Package jsonschema exports inferred record schemas as JSON Schema
// (Draft 2020-12) and validates sample documents against them.
package jsonschema

import (
	"github.com/invopop/jsonschema"

	"github.com/seven7ty/typeshi/pkg/typeddict"
)

// Draft is the JSON Schema dialect of exported schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// FromRecord converts root into a JSON Schema document. Every nested record
// is emitted once under $defs and referenced by $ref. Required lists every
// field of a total record.
func FromRecord(root *typeddict.Record) *jsonschema.Schema {
	defs := jsonschema.Definitions{}
	schema := objectSchema(root, defs)
	schema.Version = Draft
	schema.Title = root.Name
	if len(defs) > 0 {
		schema.Definitions = defs
	}
	return schema
}

func objectSchema(rec *typeddict.Record, defs jsonschema.Definitions) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	for _, f := range rec.Fields {
		schema.Properties.Set(f.Name, typeSchema(f.Type, defs))
		if rec.Total {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema
}

func typeSchema(t typeddict.Type, defs jsonschema.Definitions) *jsonschema.Schema {
	switch t.Kind {
	case typeddict.RecordRef:
		if t.Record == nil {
			return &jsonschema.Schema{}
		}
		if _, ok := defs[t.Record.Name]; !ok {
			defs[t.Record.Name] = objectSchema(t.Record, defs)
		}
		return &jsonschema.Schema{Ref: "#/$defs/" + t.Record.Name}

	case typeddict.Literal:
		if t.Value == nil {
			return &jsonschema.Schema{Type: "null"}
		}
		return &jsonschema.Schema{Const: t.Value}

	case typeddict.Parametric:
		return containerSchema(t.Ident, t.Params)

	default:
		return identSchema(t.Ident)
	}
}

func containerSchema(container typeddict.Ident, params []typeddict.Ident) *jsonschema.Schema {
	schema := identSchema(container)
	if schema.Type != "array" {
		return schema
	}

	if container.Builtin() && container.Name == "tuple" {
		n := uint64(len(params))
		schema.MinItems = &n
		schema.MaxItems = &n
		for _, p := range params {
			schema.PrefixItems = append(schema.PrefixItems, identSchema(p))
		}
		return schema
	}

	if container.Builtin() && (container.Name == "set" || container.Name == "frozenset") {
		schema.UniqueItems = true
	}
	switch len(params) {
	case 0:
	case 1:
		schema.Items = identSchema(params[0])
	default:
		anyOf := make([]*jsonschema.Schema, 0, len(params))
		for _, p := range params {
			anyOf = append(anyOf, identSchema(p))
		}
		schema.Items = &jsonschema.Schema{AnyOf: anyOf}
	}
	return schema
}

// identSchema maps a bare type to its JSON type. Types without a JSON
// counterpart accept anything and carry their qualified name as description.
func identSchema(id typeddict.Ident) *jsonschema.Schema {
	if !id.Builtin() {
		if id == typeddict.AnyType {
			return &jsonschema.Schema{}
		}
		return &jsonschema.Schema{Description: id.Qualified()}
	}
	switch id.Name {
	case "NoneType":
		return &jsonschema.Schema{Type: "null"}
	case "bool":
		return &jsonschema.Schema{Type: "boolean"}
	case "int":
		return &jsonschema.Schema{Type: "integer"}
	case "float":
		return &jsonschema.Schema{Type: "number"}
	case "str":
		return &jsonschema.Schema{Type: "string"}
	case "list", "tuple", "set", "frozenset":
		return &jsonschema.Schema{Type: "array"}
	case "dict":
		return &jsonschema.Schema{Type: "object"}
	default:
		return &jsonschema.Schema{Description: id.Name}
	}
}
