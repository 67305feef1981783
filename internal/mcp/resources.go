package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/internal/mcp/tools"
)

// Resource URI scheme: typeshi://
// Supported URIs:
//   typeshi://module/{key}

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: tools.ModuleURIPrefix + "{key}",
		Name:        "Declaration Module",
		Description: "Python module text generated by typeshi_generate. Available while the result stays in the server's cache.",
		MIMEType:    tools.MimePython,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant", "user"},
			Priority: 0.5,
		},
	}, s.handleResourceModule)
}

func (s *Server) handleResourceModule(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	key, err := parseModuleURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	res, ok := s.deps.Cache.Get(key)
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: tools.MimePython,
				Text:     res.Text,
			},
		},
	}, nil
}

// parseModuleURI extracts the cache key from a typeshi://module/ URI.
func parseModuleURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, "typeshi://") {
		return "", tools.ErrInvalidInput("invalid URI scheme: expected typeshi://")
	}
	key, ok := strings.CutPrefix(uri, tools.ModuleURIPrefix)
	if !ok {
		return "", tools.ErrInvalidInput("unknown resource type: " + strings.TrimPrefix(uri, "typeshi://"))
	}
	if key == "" || strings.Contains(key, "/") {
		return "", tools.ErrInvalidInput("module URI requires a single key")
	}
	return key, nil
}
