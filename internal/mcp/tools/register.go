package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "typeshi_generate",
		Description: "Generate a Python module of TypedDict declarations describing an example JSON or YAML document. Nested objects become their own classes named after their path (user.home_address -> UserHomeAddress), declared before the classes that use them. Returns {module, records, imports, cached, resource_uri}. Use select to describe only part of the document. Use typeshi_json_schema for the same structure as JSON Schema.",
	}, ToolGenerate(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "typeshi_json_schema",
		Description: "Infer the record structure of an example JSON or YAML document and return it as a JSON Schema (Draft 2020-12) with nested records under $defs. Also validates the document against the schema and returns {schema, records, valid, errors}.",
	}, ToolJSONSchema(d))
}
