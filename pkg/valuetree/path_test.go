package valuetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, s string) *Map {
	t.Helper()
	m, err := DecodeJSON([]byte(s))
	require.NoError(t, err)
	return m
}

func TestFullPath(t *testing.T) {
	tree := mustJSON(t, `{
		"id": 1,
		"user": {"name": "Ann", "address": {"city": "Oslo", "zip": "0150"}},
		"meta": {"city": "Bergen"}
	}`)

	tests := []struct {
		name string
		key  string
		want Path
		ok   bool
	}{
		{"top level", "id", Path{"id"}, true},
		{"nested", "name", Path{"user", "name"}, true},
		{"deep", "zip", Path{"user", "address", "zip"}, true},
		{"first occurrence wins", "city", Path{"user", "address", "city"}, true},
		{"mapping key", "address", Path{"user", "address"}, true},
		{"missing", "nope", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FullPath(tree, tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFullPathWithValue(t *testing.T) {
	tree := mustJSON(t, `{
		"a": {"city": "Oslo"},
		"b": {"city": "Bergen"}
	}`)

	p, ok := FullPathWithValue(tree, "city", "Bergen")
	require.True(t, ok)
	assert.Equal(t, Path{"b", "city"}, p)
	assert.Equal(t, "b.city", p.String())

	_, ok = FullPathWithValue(tree, "city", "Trondheim")
	assert.False(t, ok)
}

func TestFullPathWithValue_NullConstraint(t *testing.T) {
	tree := mustJSON(t, `{"x": {"v": 1}, "y": {"v": null}}`)

	p, ok := FullPathWithValue(tree, "v", nil)
	require.True(t, ok)
	assert.Equal(t, Path{"y", "v"}, p)
}

func TestFullPath_ItemCheckedBeforeDescent(t *testing.T) {
	// "k" inside "first" is reached before the later top-level "k"
	// because each item is checked and then descended into in order.
	tree := mustJSON(t, `{"first": {"k": 1}, "k": 2}`)

	p, ok := FullPath(tree, "k")
	require.True(t, ok)
	assert.Equal(t, Path{"first", "k"}, p)
}

func TestFullPath_NilTree(t *testing.T) {
	_, ok := FullPath(nil, "a")
	assert.False(t, ok)
}

func TestAt(t *testing.T) {
	tree := mustJSON(t, `{"data": {"items": [{"id": 1}, {"id": 2}]}}`)

	v, ok := At(tree, []any{"data", "items", 1, "id"})
	require.True(t, ok)
	assert.Equal(t, int64(2), v)

	v, ok = At(tree, []any{"data", "items", -1})
	require.True(t, ok)
	assert.Equal(t, KindMap, KindOf(v))

	_, ok = At(tree, []any{"data", "missing"})
	assert.False(t, ok)

	_, ok = At(tree, []any{"data", "items", 5})
	assert.False(t, ok)
}
