package mcpsrv

import (
	"context"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seven7ty/typeshi/internal/config"
	"github.com/seven7ty/typeshi/pkg/typeddict"
)

// settings collects what the options ask for before NewServer builds
// anything.
type settings struct {
	config    *config.Config
	overrides []func(*config.Config)
	hooks     typeddict.Hooks

	noTools   bool
	noPrompts bool

	// extensions run in option order once Deps exist
	extensions []func(*mcp.Server, *Deps)
}

// Option configures the server.
type Option func(*settings)

func (s *settings) extend(fn func(*mcp.Server, *Deps)) {
	s.extensions = append(s.extensions, fn)
}

// resolve returns the configuration with every override applied. The
// configuration passed to WithConfig is only copied when something
// overrides it.
func (s *settings) resolve() *config.Config {
	if len(s.overrides) == 0 {
		return s.config
	}
	cfg := *s.config
	for _, fn := range s.overrides {
		fn(&cfg)
	}
	return &cfg
}

// WithConfig uses cfg instead of the TYPESHI_* environment.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithLogLevel overrides LOG_LEVEL.
func WithLogLevel(level string) Option {
	return func(s *settings) {
		s.overrides = append(s.overrides, func(c *config.Config) { c.LogLevel = level })
	}
}

// WithLogFile sends logs to a rotated file next to stderr.
func WithLogFile(path string) Option {
	return func(s *settings) {
		s.overrides = append(s.overrides, func(c *config.Config) { c.LogFile = path })
	}
}

// WithLiterals turns literal inference for scalar leaves on or off.
func WithLiterals(on bool) Option {
	return func(s *settings) {
		s.overrides = append(s.overrides, func(c *config.Config) { c.Literals = on })
	}
}

// WithHomeModule names the module that __main__ types are imported from.
func WithHomeModule(module string) Option {
	return func(s *settings) {
		s.overrides = append(s.overrides, func(c *config.Config) { c.HomeModule = module })
	}
}

// WithCacheSize bounds how many generated modules stay readable as
// typeshi://module resources.
func WithCacheSize(n int) Option {
	return func(s *settings) {
		s.overrides = append(s.overrides, func(c *config.Config) { c.CacheMaxItems = n })
	}
}

// WithHooks adds type hooks to every generation. For a kind hooked twice
// the later hook wins.
func WithHooks(hooks typeddict.Hooks) Option {
	return func(s *settings) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithoutBuiltinTools leaves out typeshi_generate, typeshi_json_schema and
// the module resources.
func WithoutBuiltinTools() Option {
	return func(s *settings) { s.noTools = true }
}

// WithoutBuiltinPrompts leaves out the typeshi prompts.
func WithoutBuiltinPrompts() Option {
	return func(s *settings) { s.noPrompts = true }
}

// WithTool adds a tool whose input and output schemas are inferred from In
// and Out.
func WithTool[In, Out any](tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(s *settings) {
		s.extend(func(srv *mcp.Server, _ *Deps) {
			AddTool(srv, tool, handler)
		})
	}
}

// WithDepsTool is WithTool for handlers that need the server's Deps. build
// runs once, after the module cache and generation options exist.
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "uncached_generate"},
//	    func(d *mcpsrv.Deps) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error) {
//	        return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
//	            res, err := typeshi.GenerateFromBytes([]byte(in.Document), contenttype.Unknown, d.Options)
//	            if err != nil {
//	                return nil, Out{}, err
//	            }
//	            return nil, Out{Module: res.Text}, nil
//	        }
//	    },
//	)
func WithDepsTool[In, Out any](tool *mcp.Tool, build func(*Deps) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(s *settings) {
		s.extend(func(srv *mcp.Server, d *Deps) {
			AddTool(srv, tool, build(d))
		})
	}
}

// WithPrompt adds a prompt.
func WithPrompt(prompt *mcp.Prompt, handler func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error)) Option {
	return func(s *settings) {
		s.extend(func(srv *mcp.Server, _ *Deps) { srv.AddPrompt(prompt, handler) })
	}
}

// WithResourceTemplate adds a resource template.
func WithResourceTemplate(template *mcp.ResourceTemplate, handler func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)) Option {
	return func(s *settings) {
		s.extend(func(srv *mcp.Server, _ *Deps) { srv.AddResourceTemplate(template, handler) })
	}
}
