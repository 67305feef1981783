package prompts

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptText(t *testing.T, res *sdkmcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleTypedDictFromSample(t *testing.T) {
	handler := HandleTypedDictFromSample(&Config{Literals: true})

	res, err := handler(context.Background(), &sdkmcp.GetPromptRequest{
		Params: &sdkmcp.GetPromptParams{
			Name:      "typeddict_from_sample",
			Arguments: map[string]string{"name": "UserResponse", "select": ".data"},
		},
	})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, `typeshi_generate(document: <payload>, name: "UserResponse", select: ".data")`)
	assert.Contains(t, text, "Folding is ON")
	assert.Contains(t, text, "home_module")
}

func TestHandleTypedDictFromSample_NoArguments(t *testing.T) {
	handler := HandleTypedDictFromSample(&Config{HomeModule: "app.types"})

	res, err := handler(context.Background(), &sdkmcp.GetPromptRequest{Params: &sdkmcp.GetPromptParams{}})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "typeshi_generate(document: <payload>)\n")
	assert.Contains(t, text, "Folding is OFF")
	assert.NotContains(t, text, "home module error")
}

func TestHandleUsageGuide(t *testing.T) {
	res, err := HandleUsageGuide(&Config{LiteralWrapWidth: 119})(context.Background(), &sdkmcp.GetPromptRequest{})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "server default: 119")
	assert.Contains(t, text, "typeshi://module/{key}")

	res, err = HandleUsageGuide(&Config{})(context.Background(), &sdkmcp.GetPromptRequest{})
	require.NoError(t, err)
	assert.Contains(t, promptText(t, res), "server default: disabled")
}
