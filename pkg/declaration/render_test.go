package declaration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seven7ty/typeshi/pkg/typeddict"
	"github.com/seven7ty/typeshi/pkg/valuetree"
)

func infer(t *testing.T, doc string, opts ...typeddict.Option) *typeddict.Record {
	t.Helper()
	tree, err := valuetree.DecodeJSON([]byte(doc))
	require.NoError(t, err)
	rec, err := typeddict.Infer("Root", tree, opts...)
	require.NoError(t, err)
	return rec
}

func TestRender_UserScenario(t *testing.T) {
	rec := infer(t, `{"user": {"name": "Ann", "age": 30, "tags": ["a", "b", "a"]}}`)

	out, err := Render(rec, DefaultOptions())
	require.NoError(t, err)

	want := `# typeshi (1.0.0)

from typing import TypedDict


class User(TypedDict):
    name: str
    age: int
    tags: list[str]


class Root(TypedDict):
    user: User
`
	assert.Equal(t, want, out)
}

func TestRender_LiteralScenario(t *testing.T) {
	rec := infer(t, `{"status": "ok", "code": 7, "on": false}`, typeddict.WithHooks(typeddict.LiteralHooks()))

	out, err := Render(rec, DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "from typing import TypedDict, Literal\n")
	assert.Contains(t, out, "    status: Literal['ok']\n")
	assert.Contains(t, out, "    code: Literal[7]\n")
	assert.Contains(t, out, "    on: Literal[False]\n")
	assert.NotContains(t, out, "status: str")
}

func TestRender_NoHeaderNoBaseNoTrailingNewline(t *testing.T) {
	rec := infer(t, `{"a": 1}`)

	opts := DefaultOptions()
	opts.Header = false
	opts.Base = nil
	opts.EndWithNewline = false

	out, err := Render(rec, opts)
	require.NoError(t, err)
	assert.Equal(t, "class Root:\n    a: int", out)
}

func TestRender_CustomNewline(t *testing.T) {
	rec := infer(t, `{"a": {"b": null}}`)

	opts := DefaultOptions()
	opts.Newline = "\r\n"

	out, err := Render(rec, opts)
	require.NoError(t, err)
	assert.Equal(t, "# typeshi (1.0.0)\r\n\r\nfrom typing import TypedDict\r\n\r\n\r\n"+
		"class A(TypedDict):\r\n    b: None\r\n\r\n\r\n"+
		"class Root(TypedDict):\r\n    a: A\r\n", out)
}

func TestRender_NotTotal(t *testing.T) {
	rec := infer(t, `{"a": {}}`, typeddict.WithTotal(false))

	out, err := Render(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "class A(TypedDict, total=False):\n    pass")
	assert.Contains(t, out, "class Root(TypedDict, total=False):\n    a: A")
}

func TestRender_NumericFieldNames(t *testing.T) {
	rec := infer(t, `{"200": "ok", "v2": 1, "٣": 3}`)

	out, err := Render(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "    _200: str\n")
	assert.Contains(t, out, "    v2: int\n")
	assert.Contains(t, out, "    _٣: int\n")
}

func TestRender_ParametricText(t *testing.T) {
	tree := valuetree.NewMap()
	tree.Set("mixed", []any{int64(1), "a", int64(2), nil})
	tree.Set("pos", valuetree.Tuple{"a", int64(1), "a"})
	tree.Set("empty", []any{})
	tree.Set("dicts", []any{valuetree.NewMap()})

	rec, err := typeddict.Infer("Root", tree)
	require.NoError(t, err)

	out, err := Render(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "    mixed: list[int, str, None]\n")
	assert.Contains(t, out, "    pos: tuple[str, int, str]\n")
	assert.Contains(t, out, "    empty: list\n")
	assert.Contains(t, out, "    dicts: list[dict]\n")
}

func TestRender_ChildrenBeforeParents(t *testing.T) {
	rec := infer(t, `{"a": {"b": {"c": {}}}, "d": {"e": 1}}`)

	m, err := Build(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "AB", "A", "D", "Root"}, m.Names())

	// every referenced record is declared before its first use
	declared := map[string]bool{}
	for _, d := range m.Declarations {
		for _, line := range strings.Split(d.Text, "\n")[1:] {
			typ := strings.TrimSpace(line[strings.Index(line, ":")+1:])
			if typ != "" && typ[0] >= 'A' && typ[0] <= 'Z' {
				assert.True(t, declared[typ], "%s used before declaration", typ)
			}
		}
		declared[d.Name] = true
	}
}

func TestRender_DedupSameName(t *testing.T) {
	rec := infer(t, `{"a": {"x": {"v": 1}}, "b": {"x": {"v": 1}}}`)

	m, err := Build(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"AX", "A", "B", "Root"}, m.Names())
}

func TestRender_StructurallyEqualDifferentNamesKept(t *testing.T) {
	rec := infer(t, `{"a": {"v": 1}, "b": {"v": 2}}`)

	m, err := Build(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Root"}, m.Names())
}

func TestRender_NameCollision(t *testing.T) {
	rec := infer(t, `{"a": {"v": 1}, "b": {"w": "x"}}`, typeddict.WithNameHook(func(valuetree.Path) string {
		return "Same"
	}))

	_, err := Render(rec, DefaultOptions())
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestRender_WrapWidthValidation(t *testing.T) {
	rec := infer(t, `{"a": "x"}`)

	for _, w := range []int{1, 40, 78, -5} {
		opts := DefaultOptions()
		opts.LiteralWrapWidth = w
		_, err := Render(rec, opts)
		assert.ErrorIs(t, err, ErrWrapWidth, "width %d", w)
	}

	for _, w := range []int{0, 79, 200} {
		opts := DefaultOptions()
		opts.LiteralWrapWidth = w
		_, err := Render(rec, opts)
		assert.NoError(t, err, "width %d", w)
	}
}

func TestRender_ImportsAndHomeModule(t *testing.T) {
	tree := valuetree.NewMap()
	tree.Set("amount", "12.50")
	tree.Set("owner", "x")
	tree.Set("when", "2024-01-01")

	hooks := typeddict.Hooks{
		valuetree.KindString: func(_ typeddict.Ident, v any) (typeddict.Type, error) {
			switch v {
			case "12.50":
				return typeddict.PlainOf(typeddict.Ident{Name: "Decimal", Module: "decimal"}), nil
			case "x":
				return typeddict.PlainOf(typeddict.Ident{Name: "Owner", Module: typeddict.MainModule}), nil
			default:
				return typeddict.ParametricOf(
					typeddict.Ident{Name: "Sequence", Module: "collections.abc"},
					typeddict.Ident{Name: "date", Module: "datetime"},
				), nil
			}
		},
	}
	rec, err := typeddict.Infer("Root", tree, typeddict.WithHooks(hooks))
	require.NoError(t, err)

	_, err = Render(rec, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoHomeModule)

	opts := DefaultOptions()
	opts.HomeModule = "app.models"
	m, err := Build(rec, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"from typing import TypedDict",
		"from decimal import Decimal",
		"from app.models import Owner",
		"from collections.abc import Sequence",
		"from datetime import date",
	}, m.Imports.Lines())
	assert.Contains(t, m.Text(), "    when: Sequence[date]\n")
}

func TestRender_AnyImportedFromTyping(t *testing.T) {
	type opaque struct{}
	tree := valuetree.NewMap()
	tree.Set("x", opaque{})
	tree.Set("y", opaque{})
	rec, err := typeddict.Infer("Root", tree)
	require.NoError(t, err)

	m, err := Build(rec, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"TypedDict", "Any"}, m.Imports.Names("typing"))
}

func TestRender_Deterministic(t *testing.T) {
	rec := infer(t, `{"l": [1, "a", 2.5, null], "s": {"t": [true]}}`)

	first, err := Render(rec, DefaultOptions())
	require.NoError(t, err)
	for range 5 {
		again, err := Render(rec, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_InvalidIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"newline in key", `{"x\nz": 1}`},
		{"quote in key", `{"a\"b": 1}`},
		{"space in key", `{"first name": "x"}`},
		{"keyword key", `{"class": "x"}`},
		{"empty key", `{"": 1}`},
		{"hyphenated record", `{"home-addr": {"street": "x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := infer(t, tt.doc)
			_, err := Render(rec, DefaultOptions())
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
		})
	}

	rec := infer(t, `{"_private": 1, "ñame": "x", "v2": true, "200": 0}`)
	_, err := Render(rec, DefaultOptions())
	assert.NoError(t, err)
}

func TestIsIdentifier(t *testing.T) {
	for _, s := range []string{"a", "_", "_200", "café", "x_1", "Root"} {
		assert.True(t, IsIdentifier(s), s)
	}
	for _, s := range []string{"", "1a", "a b", "a-b", "a\nb", "pass", "None", "a.b"} {
		assert.False(t, IsIdentifier(s), s)
	}
}
