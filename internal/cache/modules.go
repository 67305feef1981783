// Package cache memoizes generated declaration modules.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/seven7ty/typeshi/pkg/contenttype"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// ModuleCache provides thread-safe LRU caching of generation results keyed
// by document content and options.
type ModuleCache struct {
	cache *lru.Cache[string, *typeshi.Result]
}

// NewModuleCache creates a new LRU cache with the specified maximum number of items.
func NewModuleCache(maxItems int) (*ModuleCache, error) {
	c, err := lru.New[string, *typeshi.Result](maxItems)
	if err != nil {
		return nil, err
	}
	return &ModuleCache{cache: c}, nil
}

// Key derives the cache key of a document. Options carrying caller hooks or
// a custom name hook are not cacheable since functions have no identity to
// hash; ok is false for them.
func Key(data []byte, format contenttype.Category, opts typeshi.Options) (key string, ok bool) {
	if len(opts.Hooks) > 0 || opts.NameHook != nil {
		return "", false
	}

	h := sha256.New()
	h.Write(data)

	r := opts.Render
	base := "-"
	if r.Base != nil {
		base = r.Base.Qualified()
	}
	fmt.Fprintf(h, "\x00%s|%s|%t|%t|%t|%t|%q|%t|%t|%s|%d|%q",
		format, opts.ToplevelName, opts.Literals, opts.NoBuiltinHooks, opts.Total,
		r.Header, r.Newline, r.EndWithNewline, r.Base != nil, base, r.LiteralWrapWidth, r.HomeModule)

	return hex.EncodeToString(h.Sum(nil)), true
}

// Get retrieves a result by key.
func (c *ModuleCache) Get(key string) (*typeshi.Result, bool) {
	return c.cache.Get(key)
}

// Put adds or updates a result.
func (c *ModuleCache) Put(key string, res *typeshi.Result) {
	c.cache.Add(key, res)
}

// Len returns the current number of items in the cache.
func (c *ModuleCache) Len() int {
	return c.cache.Len()
}

// Generate returns the cached result for data, generating and storing it on
// a miss. hit reports whether the result came from the cache.
func (c *ModuleCache) Generate(data []byte, format contenttype.Category, opts typeshi.Options) (res *typeshi.Result, hit bool, err error) {
	key, cacheable := Key(data, format, opts)
	if cacheable {
		if res, ok := c.Get(key); ok {
			return res, true, nil
		}
	}

	res, err = typeshi.GenerateFromBytes(data, format, opts)
	if err != nil {
		return nil, false, err
	}
	if cacheable {
		c.Put(key, res)
	}
	return res, false, nil
}
