package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/seven7ty/typeshi/internal/query"
	"github.com/seven7ty/typeshi/pkg/contenttype"
	"github.com/seven7ty/typeshi/pkg/typeshi"
	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// stdinPath is the input argument that reads from standard input.
const stdinPath = "-"

// readInput reads the document at path, or stdin for "-", enforcing the
// configured size limit.
func (a *app) readInput(path string, stdin io.Reader) ([]byte, error) {
	var r io.Reader = stdin
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := typeshi.ReadDocument(r, a.cfg.MaxInputBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// loadTree reads, decodes and optionally narrows one input document.
// format overrides detection when not Unknown.
func (a *app) loadTree(path string, stdin io.Reader, format contenttype.Category, selectExpr string) (*valuetree.Map, error) {
	data, err := a.readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	if format == contenttype.Unknown && path != stdinPath {
		format = contenttype.Detect(path, data)
	}

	tree, err := typeshi.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if selectExpr == "" {
		return tree, nil
	}
	tree, err = query.Select(tree, selectExpr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// parseFormat converts the --format flag value.
func parseFormat(name string) (contenttype.Category, error) {
	if name == "" {
		return contenttype.Unknown, nil
	}
	c := contenttype.Parse(name)
	if c == contenttype.Unknown {
		return c, fmt.Errorf("%w: %q (want json or yaml)", typeshi.ErrUnknownFormat, name)
	}
	return c, nil
}

// moduleFileName derives a Python module file name from an input path:
// "api-response.v2.json" becomes "api_response_v2.py".
func moduleFileName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', ' ':
			return '_'
		}
		return r
	}, stem)
	return stem + ".py"
}
