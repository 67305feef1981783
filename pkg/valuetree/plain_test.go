package valuetree

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPlain(t *testing.T) {
	inner := NewMap()
	inner.Set("n", int32(7))

	tree := NewMap()
	tree.Set("inner", inner)
	tree.Set("pair", Tuple{"a", uint64(1)})
	tree.Set("tags", Set{"x"})
	tree.Set("ratio", float32(0.5))
	tree.Set("none", nil)

	assert.Equal(t, map[string]any{
		"inner": map[string]any{"n": 7},
		"pair":  []any{"a", big.NewInt(1)},
		"tags":  []any{"x"},
		"ratio": float64(0.5),
		"none":  nil,
	}, ToPlain(tree))
}

func TestAt_Plain(t *testing.T) {
	tree, err := DecodeJSON([]byte(`{"data": {"items": [{"id": 1}, {"id": 2}]}}`))
	assert.NoError(t, err)

	v, ok := At(tree, []any{"data", "items", 1, "id"})
	assert.True(t, ok)
	assert.True(t, Equal(int64(2), v))

	v, ok = At(tree, []any{"data", "items", -1})
	assert.True(t, ok)
	assert.IsType(t, &Map{}, v)

	for _, steps := range [][]any{
		{"missing"},
		{"data", "items", 5},
		{"data", 0},
		{"data", "items", "id"},
		{"data", 1.5},
	} {
		_, ok := At(tree, steps)
		assert.False(t, ok, "%v", steps)
	}
}
