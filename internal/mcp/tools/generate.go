package tools

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/internal/cache"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// ModuleURIPrefix prefixes the resource URIs of cached modules.
const ModuleURIPrefix = "typeshi://module/"

// GenerateInput is the input for typeshi_generate.
type GenerateInput struct {
	Document   string `json:"document" jsonschema:"Example JSON or YAML document. Its top-level value must be an object."`
	Format     string `json:"format,omitempty" jsonschema:"Document format: json or yaml (default: detected from content)"`
	Name       string `json:"name,omitempty" jsonschema:"Class name of the top-level record (default: Root)"`
	Select     string `json:"select,omitempty" jsonschema:"jq path expression selecting the object to describe, e.g. .data.items[0]"`
	Literals   *bool  `json:"literals,omitempty" jsonschema:"Fold int, str and bool values into Literal types (default: true)"`
	Total      *bool  `json:"total,omitempty" jsonschema:"Mark every field as required (default: true)"`
	BaseClass  string `json:"base_class,omitempty" jsonschema:"Dotted base class of every declaration, or none (default: typing.TypedDict)"`
	HomeModule string `json:"home_module,omitempty" jsonschema:"Module path used to import types defined in __main__"`
	WrapWidth  *int   `json:"wrap_width,omitempty" jsonschema:"Line width at which long string literals wrap; 0 disables, minimum 79 (default: 119)"`
}

func (in GenerateInput) overrides() overrides {
	return overrides{
		name:       in.Name,
		literals:   in.Literals,
		total:      in.Total,
		baseClass:  in.BaseClass,
		homeModule: in.HomeModule,
		wrapWidth:  in.WrapWidth,
	}
}

// GenerateOutput is the output of typeshi_generate.
type GenerateOutput struct {
	Module      string   `json:"module"`
	Records     []string `json:"records,omitzero"`
	Imports     []string `json:"imports,omitzero"`
	Cached      bool     `json:"cached"`
	ResourceURI string   `json:"resource_uri,omitempty"`
}

// ToolGenerate renders the TypedDict declaration module of a document.
// Whole-document results are cached and exposed as module resources.
func ToolGenerate(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateInput) (*sdkmcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateInput) (*sdkmcp.CallToolResult, GenerateOutput, error) {
		data, format, err := d.loadDocument(input.Document, input.Format)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		opts, err := d.options(input.overrides())
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		var (
			res    *typeshi.Result
			cached bool
			uri    string
		)
		if input.Select == "" {
			res, cached, err = d.Cache.Generate(data, format, opts)
			if err != nil {
				return nil, GenerateOutput{}, WrapGenerationError("failed to generate module", err)
			}
			if key, ok := cache.Key(data, format, opts); ok {
				uri = ModuleURIPrefix + key
			}
		} else {
			tree, err := d.tree(data, format, input.Select)
			if err != nil {
				return nil, GenerateOutput{}, err
			}
			res, err = typeshi.Generate(tree, opts)
			if err != nil {
				return nil, GenerateOutput{}, WrapGenerationError("failed to generate module", err)
			}
		}

		slog.Debug("module generated",
			slog.Int("records", len(res.Module.Declarations)),
			slog.Bool("cached", cached),
		)

		return nil, GenerateOutput{
			Module:      res.Text,
			Records:     res.Module.Names(),
			Imports:     res.Module.Imports.Lines(),
			Cached:      cached,
			ResourceURI: uri,
		}, nil
	}
}
