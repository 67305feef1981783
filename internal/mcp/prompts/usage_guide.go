package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleUsageGuide serves the tool reference.
func HandleUsageGuide(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# typeshi Tool Reference\n\n")

		sb.WriteString("## Options\n\n")
		sb.WriteString("| Option | Effect |\n")
		sb.WriteString("|--------|--------|\n")
		sb.WriteString("| `format` | `json` or `yaml`; detected from content when omitted |\n")
		sb.WriteString("| `name` | Class name of the top-level record |\n")
		sb.WriteString("| `select` | jq path to a nested object, e.g. `.data.items[0]` |\n")
		sb.WriteString("| `literals` | Fold int, str and bool values into `Literal[...]` |\n")
		sb.WriteString("| `total` | `false` adds `total=False` to every class |\n")
		sb.WriteString("| `base_class` | Dotted base class, or `none` for bare classes |\n")
		sb.WriteString("| `home_module` | Import path for types defined in `__main__` |\n")
		if cfg.LiteralWrapWidth == 0 {
			sb.WriteString("| `wrap_width` | Wrap long string literals; 0 disables (server default: disabled) |\n")
		} else {
			sb.WriteString(fmt.Sprintf("| `wrap_width` | Wrap long string literals; 0 disables (server default: %d) |\n", cfg.LiteralWrapWidth))
		}

		sb.WriteString("\n## Type Mapping\n")
		sb.WriteString("- Objects become nested TypedDict classes, named after their key path\n")
		sb.WriteString("- Arrays become `list[...]` of the distinct element types in order of appearance\n")
		sb.WriteString("- `null` becomes `None`; decimals beyond float range stay `float`\n")
		sb.WriteString("- Numeric keys get a `_` prefix (`\"200\"` -> `_200`)\n")

		sb.WriteString("\n## Resources\n")
		sb.WriteString("- `typeshi_generate` returns a `resource_uri` for whole-document results\n")
		sb.WriteString("- Read `typeshi://module/{key}` to fetch the module again without regenerating\n")

		sb.WriteString("\n## Error Codes\n")
		sb.WriteString("- `INVALID_INPUT`: malformed document, non-object root, bad option or select expression\n")
		sb.WriteString("- `GENERATION_FAILED`: a type hook failed or two records claimed the same name\n")
		sb.WriteString("- `NOT_FOUND`: the module resource expired from the cache\n")

		return &sdkmcp.GetPromptResult{
			Description: "Reference for the typeshi tools",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
