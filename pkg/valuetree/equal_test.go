package valuetree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	m1 := mustJSON(t, `{"a": 1, "b": [1, 2]}`)
	m2 := mustJSON(t, `{"b": [1, 2], "a": 1.0}`)
	m3 := mustJSON(t, `{"a": 1, "b": [2, 1]}`)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"int float", int64(1), 1.0, true},
		{"bool int", true, int64(1), true},
		{"false zero", false, 0, true},
		{"different numbers", int64(1), 1.5, false},
		{"nan", math.NaN(), math.NaN(), false},
		{"strings", "a", "a", true},
		{"string vs int", "1", int64(1), false},
		{"nulls", nil, nil, true},
		{"null vs zero", nil, int64(0), false},
		{"lists", []any{int64(1), "x"}, []any{1, "x"}, true},
		{"list order", []any{1, 2}, []any{2, 1}, false},
		{"list vs tuple", []any{1}, Tuple{1}, false},
		{"sets unordered", Set{1, 2}, Set{2, 1}, true},
		{"set frozenset", Set{1}, FrozenSet{1}, true},
		{"maps ignore order", m1, m2, true},
		{"maps compare values", m1, m3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestKindOf(t *testing.T) {
	type custom struct{}

	assert.Equal(t, KindInt, KindOf(uint8(3)))
	assert.Equal(t, KindFloat, KindOf(float32(1)))
	assert.Equal(t, KindTuple, KindOf(Tuple{}))
	assert.Equal(t, KindFrozenSet, KindOf(FrozenSet{}))
	assert.Equal(t, KindUnknown, KindOf(custom{}))

	assert.Equal(t, "NoneType", KindNull.TypeName())
	assert.Equal(t, "str", KindString.TypeName())
	assert.Equal(t, "dict", KindMap.TypeName())
	assert.Equal(t, "Any", KindUnknown.TypeName())
	assert.False(t, KindUnknown.Builtin())
	assert.Equal(t, "frozenset", KindFrozenSet.String())
}
