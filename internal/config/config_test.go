package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seven7ty/typeshi/pkg/declaration"
	"github.com/seven7ty/typeshi/pkg/typeddict"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "Root", cfg.ToplevelName)
	assert.True(t, cfg.Literals)
	assert.True(t, cfg.Header)
	assert.Equal(t, "typing.TypedDict", cfg.BaseClass)
	assert.Equal(t, 119, cfg.LiteralWrapWidth)
	assert.Empty(t, cfg.HomeModule)
	assert.True(t, cfg.Total)
	assert.Equal(t, DefaultWorkersValue, cfg.Workers)
	assert.Equal(t, 8<<20, cfg.MaxInputBytes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TYPESHI_TOPLEVEL_NAME", "Payload")
	t.Setenv("TYPESHI_LITERALS", "off")
	t.Setenv("TYPESHI_LITERAL_WRAP_WIDTH", "0")
	t.Setenv("TYPESHI_WORKERS", "nope")
	t.Setenv("TYPESHI_BASE_CLASS", "none")

	cfg := Load()
	assert.Equal(t, "Payload", cfg.ToplevelName)
	assert.False(t, cfg.Literals)
	assert.Equal(t, 0, cfg.LiteralWrapWidth)
	assert.Equal(t, DefaultWorkersValue, cfg.Workers, "unparsable ints keep the default")

	opts, err := cfg.GenerateOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.Render.Base)
	assert.False(t, opts.Literals)
	assert.Equal(t, "Payload", opts.ToplevelName)
}

func TestGenerateOptions_InvalidWidth(t *testing.T) {
	t.Setenv("TYPESHI_LITERAL_WRAP_WIDTH", "40")

	_, err := Load().GenerateOptions()
	assert.ErrorIs(t, err, declaration.ErrWrapWidth)
}

func TestParseBaseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    *typeddict.Ident
		wantErr bool
	}{
		{"typing.TypedDict", &typeddict.TypedDict, false},
		{"typing_extensions.TypedDict", &typeddict.Ident{Name: "TypedDict", Module: "typing_extensions"}, false},
		{"dict", &typeddict.Ident{Name: "dict", Module: typeddict.BuiltinsModule}, false},
		{"None", nil, false},
		{"", nil, false},
		{"typing.", nil, true},
		{".X", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBaseClass(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
