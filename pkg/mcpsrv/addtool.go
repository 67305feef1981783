package mcpsrv

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/internal/mcp/tools"
)

// AddTool is [sdkmcp.AddTool] plus a startup check that a zero Out
// satisfies its own output schema. A nil slice field, which encodes as
// null, makes it panic with the field name.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools.AddTool(srv, t, h)
}
