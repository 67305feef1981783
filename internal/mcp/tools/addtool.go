package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool is sdkmcp.AddTool guarded by CheckOutputSchema.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	CheckOutputSchema[Out](t.Name)
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutputSchema panics at registration time if an Out the SDK would
// reject at call time is easy to produce. Two shapes are caught:
//
//   - json.RawMessage anywhere in Out. The SDK infers an integer array for
//     it, but it encodes as arbitrary JSON.
//   - a zero Out that fails its own inferred schema, which is what a nil
//     slice without omitzero does.
//
// T = any is never checked. Schema inference errors surface later from the
// SDK itself.
func CheckOutputSchema[T any](toolName string) {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if paths := findRawMessages(rt); len(paths) > 0 {
		panic(fmt.Sprintf("tool %q: %s holds json.RawMessage (%s); declare those fields as any",
			toolName, rt, strings.Join(paths, ", ")))
	}
	if data, err := zeroValueViolation(rt); err != nil {
		panic(fmt.Sprintf("tool %q: zero %s encodes as %s, which its schema rejects: %v; tag slice fields omitzero",
			toolName, rt, data, err))
	}
}

// zeroValueViolation validates the JSON encoding of rt's zero value
// against the schema inferred for rt. It returns the encoding alongside
// the validation error; any failure before validation counts as a pass.
func zeroValueViolation(rt reflect.Type) ([]byte, error) {
	schema, err := jsonschema.ForType(rt, &jsonschema.ForOptions{})
	if err != nil {
		return nil, nil
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return nil, nil
	}

	data, err := json.Marshal(reflect.Zero(rt).Interface())
	if err != nil {
		return nil, nil
	}
	var instance map[string]any
	if json.Unmarshal(data, &instance) != nil {
		return nil, nil
	}
	return data, resolved.Validate(&instance)
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// findRawMessages lists the dotted paths at which rt reaches a
// json.RawMessage. Slice elements show as "[]" and map values as "[value]".
func findRawMessages(rt reflect.Type) []string {
	w := rawWalker{onPath: map[reflect.Type]bool{}}
	w.walk(rt, nil)
	return w.found
}

type rawWalker struct {
	onPath map[reflect.Type]bool
	found  []string
}

func (w *rawWalker) walk(rt reflect.Type, path []string) {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == rawMessageType {
		w.found = append(w.found, strings.Join(path, "."))
		return
	}
	// recursive types
	if w.onPath[rt] {
		return
	}
	w.onPath[rt] = true
	defer delete(w.onPath, rt)

	child := func(seg string) []string {
		return append(path[:len(path):len(path)], seg)
	}
	switch rt.Kind() {
	case reflect.Struct:
		for i := range rt.NumField() {
			if f := rt.Field(i); f.IsExported() {
				w.walk(f.Type, child(f.Name))
			}
		}
	case reflect.Slice, reflect.Array:
		w.walk(rt.Elem(), child("[]"))
	case reflect.Map:
		w.walk(rt.Elem(), child("[value]"))
	}
}
