package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/internal/config"
	"github.com/seven7ty/typeshi/internal/logging"
	"github.com/seven7ty/typeshi/internal/mcp"
	"github.com/seven7ty/typeshi/internal/mcp/tools"
)

// Server serves typeshi generation over MCP.
type Server struct {
	inner      *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer builds a server from the TYPESHI_* environment, adjusted by
// opts. Logging is configured as a side effect; Close undoes it.
func NewServer(opts ...Option) (*Server, error) {
	set := &settings{config: config.Load()}
	for _, opt := range opts {
		opt(set)
	}
	cfg := set.resolve()

	logCleanup, err := logging.Setup(logging.FromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	toolDeps, err := tools.NewDeps(cfg, set.hooks)
	if err != nil {
		_ = logCleanup()
		return nil, err
	}
	deps := &Deps{Config: toolDeps.Config, Cache: toolDeps.Cache, Options: toolDeps.Options}

	var serverOpts []mcp.ServerOption
	if !set.noTools {
		serverOpts = append(serverOpts, mcp.WithBuiltinTools())
	}
	if !set.noPrompts {
		serverOpts = append(serverOpts, mcp.WithBuiltinPrompts())
	}
	for _, ext := range set.extensions {
		serverOpts = append(serverOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			ext(srv, deps)
		}))
	}

	inner, err := mcp.NewServer(toolDeps, serverOpts...)
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return &Server{inner: inner, deps: deps, logCleanup: logCleanup}, nil
}

// Run serves over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.inner.Run(ctx)
}

// Close flushes and closes the log file, if any.
func (s *Server) Close() error {
	if s.logCleanup == nil {
		return nil
	}
	return s.logCleanup()
}

// Deps exposes the configuration, module cache and generation options the
// builtin tools use.
func (s *Server) Deps() *Deps {
	return s.deps
}

// MCPServer returns the underlying SDK server, e.g. to connect a transport
// other than stdio.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.inner.MCPServer()
}
