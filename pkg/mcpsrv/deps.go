package mcpsrv

import (
	"github.com/seven7ty/typeshi/internal/cache"
	"github.com/seven7ty/typeshi/internal/config"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Config *config.Config
	Cache  *cache.ModuleCache

	// Options are the server's generation defaults, hooks included.
	Options typeshi.Options
}
