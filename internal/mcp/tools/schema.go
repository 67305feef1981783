package tools

import (
	"context"
	"fmt"
	"slices"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/pkg/jsonschema"
	"github.com/seven7ty/typeshi/pkg/typeddict"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// JSONSchemaInput is the input for typeshi_json_schema.
type JSONSchemaInput struct {
	Document string `json:"document" jsonschema:"Example JSON or YAML document. Its top-level value must be an object."`
	Format   string `json:"format,omitempty" jsonschema:"Document format: json or yaml (default: detected from content)"`
	Name     string `json:"name,omitempty" jsonschema:"Title of the schema and name of the top-level record (default: Root)"`
	Select   string `json:"select,omitempty" jsonschema:"jq path expression selecting the object to describe, e.g. .data.items[0]"`
	Literals *bool  `json:"literals,omitempty" jsonschema:"Pin int, str and bool values with const (default: server setting)"`
	Total    *bool  `json:"total,omitempty" jsonschema:"List every property as required (default: true)"`
}

// JSONSchemaOutput is the output of typeshi_json_schema.
type JSONSchemaOutput struct {
	Schema  any      `json:"schema"`
	Records []string `json:"records,omitzero"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors,omitzero"`
}

// ToolJSONSchema exports the inferred record schema of a document as JSON
// Schema and checks that the document itself validates against it.
func ToolJSONSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input JSONSchemaInput) (*sdkmcp.CallToolResult, JSONSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input JSONSchemaInput) (*sdkmcp.CallToolResult, JSONSchemaOutput, error) {
		data, format, err := d.loadDocument(input.Document, input.Format)
		if err != nil {
			return nil, JSONSchemaOutput{}, err
		}

		opts, err := d.options(overrides{name: input.Name, literals: input.Literals, total: input.Total})
		if err != nil {
			return nil, JSONSchemaOutput{}, err
		}

		tree, err := d.tree(data, format, input.Select)
		if err != nil {
			return nil, JSONSchemaOutput{}, err
		}

		rec, err := typeshi.Infer(tree, opts)
		if err != nil {
			return nil, JSONSchemaOutput{}, WrapGenerationError("failed to infer schema", err)
		}

		schema := jsonschema.FromRecord(rec)
		result, err := jsonschema.Verify(schema, tree)
		if err != nil {
			return nil, JSONSchemaOutput{}, WrapGenerationError("failed to validate document", err)
		}

		schemaAny, err := toAny(schema)
		if err != nil {
			return nil, JSONSchemaOutput{}, fmt.Errorf("serializing schema: %w", err)
		}

		var records []string
		rec.Walk(func(r *typeddict.Record) {
			if !slices.Contains(records, r.Name) {
				records = append(records, r.Name)
			}
		})

		return nil, JSONSchemaOutput{
			Schema:  schemaAny,
			Records: records,
			Valid:   result.Valid,
			Errors:  result.Errors,
		}, nil
	}
}
