// Package contenttype classifies example documents by format.
package contenttype

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Category represents an input document format.
type Category string

const (
	JSON    Category = "json"
	YAML    Category = "yaml"
	Unknown Category = "unknown"
)

// Classify returns the format for a content-type header value.
// Uses mime.ParseMediaType to strip parameters (charset etc.) before
// matching. Falls back to strings.ToLower for malformed values.
func Classify(contentType string) Category {
	if contentType == "" {
		return Unknown
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	// application/json, application/vnd.*+json, application/x-ndjson
	if strings.Contains(mediaType, "json") {
		return JSON
	}

	// application/yaml, text/yaml, application/x-yaml
	if strings.Contains(mediaType, "yaml") {
		return YAML
	}

	return Unknown
}

// FromPath returns the format implied by a file extension.
func FromPath(path string) Category {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return Unknown
	}
}

// Sniff guesses the format from the document bytes. Text starting with '{'
// is JSON, any other text is treated as YAML. Empty or non-UTF-8 input is
// Unknown.
func Sniff(data []byte) Category {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 || !utf8.Valid(trimmed) {
		return Unknown
	}
	if trimmed[0] == '{' {
		return JSON
	}
	return YAML
}

// Detect resolves the format of a document read from path: the extension
// wins, content sniffing is the fallback.
func Detect(path string, data []byte) Category {
	if c := FromPath(path); c != Unknown {
		return c
	}
	return Sniff(data)
}

// Parse converts a user-supplied format name ("json", "yaml", "yml", "")
// to a Category. Empty and unrecognized names are Unknown.
func Parse(name string) Category {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON
	case "yaml", "yml":
		return YAML
	default:
		return Unknown
	}
}
