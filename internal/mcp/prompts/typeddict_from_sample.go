package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleTypedDictFromSample implements the sample-to-TypedDict workflow.
func HandleTypedDictFromSample(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var name, selectExpr string
		if req != nil && req.Params != nil && req.Params.Arguments != nil {
			name = req.Params.Arguments["name"]
			selectExpr = req.Params.Arguments["select"]
		}

		var sb strings.Builder

		sb.WriteString("# TypedDict Declarations from an Example Payload\n\n")
		sb.WriteString("You are a Python typing expert. Produce TypedDict declarations that describe the payload the user provides, ")
		sb.WriteString("using the typeshi tools rather than writing classes by hand.\n\n")

		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **Get a representative sample** - Ask for one real JSON or YAML document if none was given\n")
		sb.WriteString("   - The top-level value must be an object; wrap arrays or pick one element with `select`\n")
		sb.WriteString("   - Prefer a sample where optional fields are present\n\n")
		sb.WriteString("2. **Decide on literals** - Literal folding pins each int, str and bool value\n")
		if cfg.Literals {
			sb.WriteString("   - Folding is ON by default on this server; pass `literals: false` for reusable types\n")
		} else {
			sb.WriteString("   - Folding is OFF by default on this server; pass `literals: true` for enum-like payloads\n")
		}
		sb.WriteString("   - Keep it on for status codes or discriminator fields, turn it off for user data\n\n")
		sb.WriteString("3. **Generate** - Call `typeshi_generate` and review the `records` list\n")
		sb.WriteString("   - Nested records are named from their key path in PascalCase (`user.address` -> `UserAddress`)\n")
		sb.WriteString("   - Records are declared before the classes that use them\n\n")
		sb.WriteString("4. **Cross-check** - Call `typeshi_json_schema` with the same arguments\n")
		sb.WriteString("   - `valid: true` confirms the sample matches the inferred shape\n\n")

		sb.WriteString("## Suggested Tools\n\n")
		sb.WriteString("```\n")
		args := []string{"document: <payload>"}
		if name != "" {
			args = append(args, fmt.Sprintf("name: %q", name))
		}
		if selectExpr != "" {
			args = append(args, fmt.Sprintf("select: %q", selectExpr))
		}
		sb.WriteString(fmt.Sprintf("typeshi_generate(%s)\n", strings.Join(args, ", ")))
		sb.WriteString(fmt.Sprintf("typeshi_json_schema(%s)\n", strings.Join(args, ", ")))
		sb.WriteString("```\n\n")

		sb.WriteString("## Output Guidelines\n\n")
		sb.WriteString("- Return the `module` text unchanged inside a ```python block\n")
		sb.WriteString("- Mention any field typed `Any`: the sample did not reveal its type\n")
		if cfg.HomeModule == "" {
			sb.WriteString("- If generation fails with a home module error, ask where custom types live and pass `home_module`\n")
		}

		return &sdkmcp.GetPromptResult{
			Description: "Generate TypedDict declarations from an example payload",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
