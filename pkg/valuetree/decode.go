package valuetree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping is returned when a document's root value is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
	// ErrSyntax is returned for documents that do not parse.
	ErrSyntax = errors.New("malformed document")
)

const maxYAMLDepth = 512

// DecodeJSON decodes a JSON document into an ordered tree.
// Object keys keep their document order; a repeated key keeps its first
// position and its last value. Numbers written without fraction or exponent
// decode as integers (big integers stay exact), all others as float64.
func DecodeJSON(data []byte) (*Map, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrSyntax)
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, dataType)
	}

	return decodeJSONObject(value)
}

func decodeJSONObject(data []byte) (*Map, error) {
	m := NewMap()
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		v, err := decodeJSONValue(value, dataType)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		m.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSONArray(data []byte) ([]any, error) {
	items := make([]any, 0)
	var firstErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = err
			return
		}
		v, err := decodeJSONValue(value, dataType)
		if err != nil {
			firstErr = fmt.Errorf("index %d: %w", len(items), err)
			return
		}
		items = append(items, v)
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return items, nil
}

func decodeJSONValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Object:
		return decodeJSONObject(value)
	case jsonparser.Array:
		return decodeJSONArray(value)
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		return parseJSONNumber(value)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected JSON value type %s", dataType)
	}
}

func parseJSONNumber(raw []byte) (any, error) {
	if bytes.ContainsAny(raw, ".eE") {
		f, err := strconv.ParseFloat(string(raw), 64)
		// out-of-range literals such as 1e400 become ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return f, err
	}
	i, err := strconv.ParseInt(string(raw), 10, 64)
	if err == nil {
		return i, nil
	}
	if bi, ok := new(big.Int).SetString(string(raw), 10); ok {
		return bi, nil
	}
	return nil, fmt.Errorf("invalid number %q", raw)
}

// DecodeYAML decodes a YAML document into an ordered tree.
// Mappings tagged !!set decode as Set values.
func DecodeYAML(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrNotMapping)
	}

	v, err := fromYAMLNode(doc.Content[0], 0)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, KindOf(v))
	}
	return m, nil
}

func fromYAMLNode(n *yaml.Node, depth int) (any, error) {
	if depth > maxYAMLDepth {
		return nil, fmt.Errorf("line %d: nesting deeper than %d", n.Line, maxYAMLDepth)
	}

	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias, depth+1)

	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.MappingNode:
		if n.ShortTag() == "!!set" {
			set := make(Set, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				v, err := fromYAMLNode(n.Content[i], depth+1)
				if err != nil {
					return nil, err
				}
				set = append(set, v)
			}
			return set, nil
		}

		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := fromYAMLNode(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, v)
		}
		return m, nil

	case yaml.ScalarNode:
		return yamlScalar(n)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		if bi, ok := new(big.Int).SetString(n.Value, 0); ok {
			return bi, nil
		}
		return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
