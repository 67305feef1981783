// Package config provides configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seven7ty/typeshi/pkg/declaration"
	"github.com/seven7ty/typeshi/pkg/typeddict"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// Processing defaults
const (
	DefaultWorkersValue       = 4
	DefaultMaxInputBytesValue = 8 << 20
	DefaultCacheMaxItemsValue = 256
)

// Config holds all configuration for the CLI and the MCP server.
type Config struct {
	ToplevelName     string // TYPESHI_TOPLEVEL_NAME, default "Root"
	Literals         bool   // TYPESHI_LITERALS, default true
	Header           bool   // TYPESHI_HEADER, default true
	BaseClass        string // TYPESHI_BASE_CLASS, default "typing.TypedDict" ("none" disables)
	LiteralWrapWidth int    // TYPESHI_LITERAL_WRAP_WIDTH, default 119 (0 disables)
	HomeModule       string // TYPESHI_HOME_MODULE, default ""
	Total            bool   // TYPESHI_TOTAL, default true
	NoNonPyWarning   bool   // TYPESHI_NO_NONPY_WARNING, default false

	// Processing limits
	Workers       int // TYPESHI_WORKERS, default 4
	MaxInputBytes int // TYPESHI_MAX_INPUT_BYTES, default 8 MiB
	CacheMaxItems int // TYPESHI_CACHE_MAX_ITEMS, default 256

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFormat     string // LOG_FORMAT, default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ToplevelName:     getEnvString("TYPESHI_TOPLEVEL_NAME", "Root"),
		Literals:         getEnvBool("TYPESHI_LITERALS", true),
		Header:           getEnvBool("TYPESHI_HEADER", true),
		BaseClass:        getEnvString("TYPESHI_BASE_CLASS", typeddict.TypedDict.Qualified()),
		LiteralWrapWidth: getEnvInt("TYPESHI_LITERAL_WRAP_WIDTH", declaration.DefaultWrapWidth),
		HomeModule:       getEnvString("TYPESHI_HOME_MODULE", ""),
		Total:            getEnvBool("TYPESHI_TOTAL", true),
		NoNonPyWarning:   getEnvBool("TYPESHI_NO_NONPY_WARNING", false),

		Workers:       getEnvInt("TYPESHI_WORKERS", DefaultWorkersValue),
		MaxInputBytes: getEnvInt("TYPESHI_MAX_INPUT_BYTES", DefaultMaxInputBytesValue),
		CacheMaxItems: getEnvInt("TYPESHI_CACHE_MAX_ITEMS", DefaultCacheMaxItemsValue),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// GenerateOptions converts the configuration into generation options.
func (c *Config) GenerateOptions() (typeshi.Options, error) {
	opts := typeshi.DefaultOptions()
	opts.ToplevelName = c.ToplevelName
	opts.Literals = c.Literals
	opts.Total = c.Total
	opts.NoNonPyWarning = c.NoNonPyWarning
	opts.MaxInputBytes = c.MaxInputBytes
	opts.Render.Header = c.Header
	opts.Render.LiteralWrapWidth = c.LiteralWrapWidth
	opts.Render.HomeModule = c.HomeModule

	base, err := ParseBaseClass(c.BaseClass)
	if err != nil {
		return typeshi.Options{}, err
	}
	opts.Render.Base = base

	if err := opts.Render.Validate(); err != nil {
		return typeshi.Options{}, err
	}
	return opts, nil
}

// ParseBaseClass parses a dotted "module.Name" reference. A name without a
// module is a builtin. "" and "none" mean no base class.
func ParseBaseClass(s string) (*typeddict.Ident, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}

	i := strings.LastIndex(s, ".")
	if i == len(s)-1 || i == 0 {
		return nil, fmt.Errorf("invalid base class %q", s)
	}
	if i < 0 {
		return &typeddict.Ident{Name: s, Module: typeddict.BuiltinsModule}, nil
	}
	return &typeddict.Ident{Name: s[i+1:], Module: s[:i]}, nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
