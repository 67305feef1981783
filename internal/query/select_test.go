package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seven7ty/typeshi/pkg/valuetree"
)

const doc = `{
	"meta": {"page": 1},
	"data": {
		"items": [
			{"zeta": 1, "alpha": "a", "mid": true},
			{"zeta": 2, "alpha": "b", "mid": false}
		],
		"owner": {"name": "Ann"}
	}
}`

func tree(t *testing.T) *valuetree.Map {
	t.Helper()
	m, err := valuetree.DecodeJSON([]byte(doc))
	require.NoError(t, err)
	return m
}

func keys(m *valuetree.Map) []string {
	var out []string
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func TestSelect_KeepsKeyOrder(t *testing.T) {
	m, err := Select(tree(t), ".data.items[0]")
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys(m))
}

func TestSelect_ReturnsSubtreeOfInput(t *testing.T) {
	root := tree(t)
	m, err := Select(root, ".data | .owner")
	require.NoError(t, err)

	data, _ := root.Get("data")
	owner, _ := data.(*valuetree.Map).Get("owner")
	assert.Same(t, owner, m)
}

func TestSelect_Identity(t *testing.T) {
	root := tree(t)
	m, err := Select(root, ".")
	require.NoError(t, err)
	assert.Same(t, root, m)
}

func TestSelect_NegativeIndexAndFilter(t *testing.T) {
	m, err := Select(tree(t), ".data.items[-1]")
	require.NoError(t, err)
	v, _ := m.Get("alpha")
	assert.Equal(t, "b", v)

	m, err = Select(tree(t), `.data.items[] | select(.mid == false)`)
	require.NoError(t, err)
	v, _ = m.Get("zeta")
	assert.Equal(t, int64(2), v)
}

func TestSelect_Errors(t *testing.T) {
	_, err := Select(tree(t), ".meta.page")
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = Select(tree(t), ".data.items[]? | select(.zeta > 10)")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Select(tree(t), ".missing")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Select(tree(t), ".data[")
	assert.ErrorIs(t, err, ErrInvalidExpression)

	_, err = Select(tree(t), "1 + 1")
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(".a.b[0]"))
	assert.ErrorIs(t, Validate(".a["), ErrInvalidExpression)
}
