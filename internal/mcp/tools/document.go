// Package tools contains the MCP tool implementations for typeshi.
package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/seven7ty/typeshi/internal/config"
	"github.com/seven7ty/typeshi/internal/query"
	"github.com/seven7ty/typeshi/pkg/contenttype"
	"github.com/seven7ty/typeshi/pkg/typeshi"
	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// MIME type constants.
const (
	MimeJSON   = "application/json"
	MimePython = "text/x-python"
)

// loadDocument checks the size of a document sent by the client and
// resolves its format. An empty format is left for content sniffing.
func (d *Deps) loadDocument(text, format string) ([]byte, contenttype.Category, error) {
	if text == "" {
		return nil, "", ErrInvalidInput("document is required")
	}
	if limit := d.Config.MaxInputBytes; limit > 0 && len(text) > limit {
		return nil, "", ErrInvalidInput(fmt.Sprintf("document is %d bytes, limit is %d", len(text), limit))
	}

	category := contenttype.Unknown
	if format != "" {
		category = contenttype.Parse(format)
		if category == contenttype.Unknown {
			return nil, "", ErrInvalidInput("format must be 'json' or 'yaml'")
		}
	}
	return []byte(text), category, nil
}

// tree decodes data and narrows it to the mapping selected by expr.
func (d *Deps) tree(data []byte, format contenttype.Category, expr string) (*valuetree.Map, error) {
	tree, err := typeshi.Decode(data, format)
	if err != nil {
		return nil, WrapGenerationError("failed to decode document", err)
	}
	if expr == "" {
		return tree, nil
	}

	selected, err := query.Select(tree, expr)
	if err != nil {
		return nil, WrapGenerationError("failed to select subtree", err)
	}
	slog.Debug("selected subtree", slog.String("expression", expr), slog.Int("keys", selected.Len()))
	return selected, nil
}

// overrides are the per-call generation settings a tool input may carry.
// Zero values keep the server defaults.
type overrides struct {
	name       string
	literals   *bool
	total      *bool
	baseClass  string
	homeModule string
	wrapWidth  *int
}

// options layers o over the server's default options.
func (d *Deps) options(o overrides) (typeshi.Options, error) {
	opts := d.Options
	if o.name != "" {
		opts.ToplevelName = o.name
	}
	if o.literals != nil {
		opts.Literals = *o.literals
	}
	if o.total != nil {
		opts.Total = *o.total
	}
	if o.baseClass != "" {
		base, err := config.ParseBaseClass(o.baseClass)
		if err != nil {
			return typeshi.Options{}, ErrInvalidInput(err.Error())
		}
		opts.Render.Base = base
	}
	if o.homeModule != "" {
		opts.Render.HomeModule = o.homeModule
	}
	if o.wrapWidth != nil {
		opts.Render.LiteralWrapWidth = *o.wrapWidth
	}

	if err := opts.Render.Validate(); err != nil {
		return typeshi.Options{}, WrapGenerationError("invalid options", err)
	}
	return opts, nil
}

// toAny converts v to its generic JSON form.
func toAny(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
