package valuetree

import "math/big"

// ToPlain converts a tree value into the unordered map[string]any / []any
// form understood by generic JSON tooling. Tuples and sets become []any and
// sized integers widen to int or *big.Int.
func ToPlain(v any) any {
	switch val := v.(type) {
	case *Map:
		out := make(map[string]any, val.Len())
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = ToPlain(pair.Value)
		}
		return out
	case []any, Tuple, Set, FrozenSet:
		items, _ := Elements(val)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToPlain(item)
		}
		return out
	case int8:
		return int(val)
	case int16:
		return int(val)
	case int32:
		return int(val)
	case int64:
		return int(val)
	case uint:
		return new(big.Int).SetUint64(uint64(val))
	case uint8:
		return int(val)
	case uint16:
		return int(val)
	case uint32:
		return int(val)
	case uint64:
		return new(big.Int).SetUint64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}

// At walks a path of mapping keys and sequence indices from root.
func At(root any, steps []any) (any, bool) {
	cur := root
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			m, ok := cur.(*Map)
			if !ok {
				return nil, false
			}
			if cur, ok = m.Get(s); !ok {
				return nil, false
			}
		case int:
			items, ok := Elements(cur)
			if !ok {
				return nil, false
			}
			if s < 0 {
				s += len(items)
			}
			if s < 0 || s >= len(items) {
				return nil, false
			}
			cur = items[s]
		default:
			return nil, false
		}
	}
	return cur, true
}
