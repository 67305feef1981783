// Package prompts contains MCP prompt implementations for typeshi.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	Literals         bool
	HomeModule       string
	LiteralWrapWidth int
}
