// Package mcp assembles the typeshi MCP server.
package mcp

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/internal/mcp/prompts"
	"github.com/seven7ty/typeshi/internal/mcp/tools"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// Server is the typeshi MCP server: the generation tools, the module
// resources they publish and the prompts describing them.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
	setup     []func(*Server)
}

// ServerOption configures what a Server registers.
type ServerOption func(*Server)

// WithBuiltinTools registers typeshi_generate, typeshi_json_schema and the
// typeshi://module/{key} resource template.
func WithBuiltinTools() ServerOption {
	return func(s *Server) {
		s.setup = append(s.setup, func(s *Server) {
			tools.Register(s.mcpServer, s.deps)
			s.registerResources()
		})
	}
}

// WithBuiltinPrompts registers the typeshi prompts, tuned to the server's
// generation defaults.
func WithBuiltinPrompts() ServerOption {
	return func(s *Server) {
		s.setup = append(s.setup, func(s *Server) {
			prompts.Register(s.mcpServer, &prompts.Config{
				Literals:         s.deps.Options.Literals,
				HomeModule:       s.deps.Options.Render.HomeModule,
				LiteralWrapWidth: s.deps.Options.Render.LiteralWrapWidth,
			})
		})
	}
}

// WithCustomRegistration runs fn against the underlying MCP server after
// the builtins are registered.
func WithCustomRegistration(fn func(*sdkmcp.Server)) ServerOption {
	return func(s *Server) {
		s.setup = append(s.setup, func(s *Server) { fn(s.mcpServer) })
	}
}

// NewServer creates the MCP server. Registrations run in option order.
func NewServer(deps *tools.Deps, opts ...ServerOption) (*Server, error) {
	if deps == nil {
		return nil, errors.New("deps is required")
	}

	s := &Server{
		deps: deps,
		mcpServer: sdkmcp.NewServer(&sdkmcp.Implementation{
			Name:    "typeshi",
			Version: typeshi.Version,
		}, nil),
	}
	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())

	for _, opt := range opts {
		opt(s)
	}
	for _, fn := range s.setup {
		fn(s)
	}
	return s, nil
}

// Run serves MCP over stdin/stdout until ctx is done or the client leaves.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
