package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var sampleArgs = []*sdkmcp.PromptArgument{
	{Name: "name", Description: "Class name of the top-level record, e.g. UserResponse"},
	{Name: "select", Description: "jq path to the part of the payload to type, e.g. .data.items[0]"},
}

// Register adds typeddict_from_sample and usage_guide to srv.
func Register(srv *sdkmcp.Server, cfg *Config) {
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "typeddict_from_sample",
		Title:       "TypedDict from a sample payload",
		Description: "Start here: walks from an example API payload to Python TypedDict declarations, covering selection, literal folding and record names.",
		Arguments:   sampleArgs,
	}, HandleTypedDictFromSample(cfg))

	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "usage_guide",
		Title:       "typeshi tool reference",
		Description: "Options, output fields and error codes of typeshi_generate and typeshi_json_schema.",
	}, HandleUsageGuide(cfg))
}
