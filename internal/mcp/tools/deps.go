package tools

import (
	"fmt"

	"github.com/seven7ty/typeshi/internal/cache"
	"github.com/seven7ty/typeshi/internal/config"
	"github.com/seven7ty/typeshi/pkg/typeddict"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config *config.Config
	Cache  *cache.ModuleCache

	// Options are the generation defaults derived from Config. Tool inputs
	// override them per call.
	Options typeshi.Options
}

// NewDeps builds handler dependencies from cfg. hooks, when non-empty, are
// applied to every generation.
func NewDeps(cfg *config.Config, hooks typeddict.Hooks) (*Deps, error) {
	opts, err := cfg.GenerateOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}
	opts.Hooks = hooks

	moduleCache, err := cache.NewModuleCache(cfg.CacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create module cache: %w", err)
	}

	return &Deps{
		Config:  cfg,
		Cache:   moduleCache,
		Options: opts,
	}, nil
}
