package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seven7ty/typeshi/pkg/typeddict"
	"github.com/seven7ty/typeshi/pkg/valuetree"
)

func TestVerify_SourceDocumentMatches(t *testing.T) {
	docs := []string{
		`{"user": {"name": "Ann", "age": 30, "tags": ["a", "b", "a"]}}`,
		`{"a": null, "b": [1, "x", null], "c": {"d": {"e": 2.5}}}`,
		`{}`,
	}
	for _, doc := range docs {
		tree, rec := inferDoc(t, doc)
		res, err := Verify(FromRecord(rec), tree)
		require.NoError(t, err)
		assert.True(t, res.Valid, "%s: %v", doc, res.Errors)
	}
}

func TestVerify_LiteralsMatchSource(t *testing.T) {
	tree, rec := inferDoc(t, `{"status": "ok", "on": true}`, typeddict.WithHooks(typeddict.LiteralHooks()))

	res, err := Verify(FromRecord(rec), tree)
	require.NoError(t, err)
	assert.True(t, res.Valid, res.Errors)

	other, err := valuetree.DecodeJSON([]byte(`{"status": "failed", "on": true}`))
	require.NoError(t, err)
	res, err = Verify(FromRecord(rec), other)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestVerify_Mismatches(t *testing.T) {
	_, rec := inferDoc(t, `{"user": {"name": "Ann", "age": 30}}`)
	schema := FromRecord(rec)

	tests := []struct {
		name   string
		sample string
	}{
		{"wrong type", `{"user": {"name": "Ann", "age": "thirty"}}`},
		{"missing field", `{"user": {"name": "Ann"}}`},
		{"wrong nested shape", `{"user": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample, err := valuetree.DecodeJSON([]byte(tt.sample))
			require.NoError(t, err)

			res, err := Verify(schema, sample)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.NotEmpty(t, res.Errors)
		})
	}
}

func TestVerify_PlainSample(t *testing.T) {
	_, rec := inferDoc(t, `{"n": 1}`)

	res, err := Verify(FromRecord(rec), map[string]any{"n": 2})
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestVerify_UnmarshalableSample(t *testing.T) {
	_, rec := inferDoc(t, `{"n": 1}`)

	_, err := Verify(FromRecord(rec), map[string]any{"n": make(chan int)})
	assert.Error(t, err)
}
