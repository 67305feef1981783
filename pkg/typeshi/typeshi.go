// Package typeshi generates Python TypedDict declaration modules from
// example JSON or YAML documents.
//
// A document is decoded into an ordered value tree, its record schema is
// inferred (see package typeddict) and rendered as module source (see
// package declaration):
//
//	res, err := typeshi.GenerateFromBytes(data, contenttype.JSON, typeshi.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	fmt.Print(res.Text)
package typeshi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/seven7ty/typeshi/pkg/contenttype"
	"github.com/seven7ty/typeshi/pkg/declaration"
	"github.com/seven7ty/typeshi/pkg/typeddict"
	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// Version is the generator version written into module headers.
const Version = typeddict.Version

// ErrUnknownFormat is returned when the input format cannot be determined.
var ErrUnknownFormat = errors.New("unknown input format")

// ErrInputTooLarge is returned by ReadDocument for documents over the limit.
var ErrInputTooLarge = errors.New("document too large")

// Options configures generation. Start from DefaultOptions.
type Options struct {
	// ToplevelName names the record of the document root.
	ToplevelName string

	// Literals folds int, str and bool leaves into Literal types.
	Literals bool

	// Hooks are extra type hooks. They override Literals and the builtin
	// container hooks for the kinds they cover.
	Hooks typeddict.Hooks

	// NoBuiltinHooks disables the builtin container hooks.
	NoBuiltinHooks bool

	// NameHook names nested records; nil means typeddict.PascalName.
	NameHook typeddict.NameHook

	// Total marks every field as required.
	Total bool

	Render declaration.Options

	// NoNonPyWarning silences the warning WriteDeclarationModule logs for
	// output paths not ending in .py.
	NoNonPyWarning bool

	// MaxInputBytes caps the documents SaveDeclarationModule reads. 0 means
	// no limit.
	MaxInputBytes int
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		ToplevelName: "Root",
		Literals:     true,
		Total:        true,
		Render:       declaration.DefaultOptions(),
	}
}

// Result holds everything produced for one document.
type Result struct {
	Record *typeddict.Record
	Module *declaration.Module
	Text   string
}

// hooks returns the caller hooks layered over the literal hooks when
// Literals is set.
func (o Options) hooks() typeddict.Hooks {
	if !o.Literals {
		return o.Hooks
	}
	return typeddict.LiteralHooks().Merge(o.Hooks)
}

// Infer builds the record schema of tree.
func Infer(tree *valuetree.Map, opts Options) (*typeddict.Record, error) {
	name := opts.ToplevelName
	if name == "" {
		name = "Root"
	}
	return typeddict.Infer(name, tree,
		typeddict.WithTotal(opts.Total),
		typeddict.WithNameHook(opts.NameHook),
		typeddict.WithHooks(opts.hooks()),
		typeddict.WithBuiltinHooks(!opts.NoBuiltinHooks),
	)
}

// Generate infers and renders the declaration module for tree.
func Generate(tree *valuetree.Map, opts Options) (*Result, error) {
	if err := opts.Render.Validate(); err != nil {
		return nil, err
	}

	rec, err := Infer(tree, opts)
	if err != nil {
		return nil, fmt.Errorf("inferring schema: %w", err)
	}

	mod, err := declaration.Build(rec, opts.Render)
	if err != nil {
		return nil, fmt.Errorf("rendering declarations: %w", err)
	}

	return &Result{Record: rec, Module: mod, Text: mod.Text()}, nil
}

// Decode parses data as format. contenttype.Unknown sniffs the content.
func Decode(data []byte, format contenttype.Category) (*valuetree.Map, error) {
	if format == contenttype.Unknown {
		format = contenttype.Sniff(data)
	}
	switch format {
	case contenttype.JSON:
		return valuetree.DecodeJSON(data)
	case contenttype.YAML:
		return valuetree.DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// GenerateFromBytes decodes data and generates its declaration module.
func GenerateFromBytes(data []byte, format contenttype.Category, opts Options) (*Result, error) {
	tree, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Generate(tree, opts)
}

// ReadDocument reads all of r, failing with ErrInputTooLarge once more
// than limit bytes arrive. limit <= 0 reads without a limit.
func ReadDocument(r io.Reader, limit int) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if limit > 0 && len(data) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}

// WriteDeclarationModule writes res to outPath, warning first when outPath
// does not end in .py unless opts.NoNonPyWarning is set.
func WriteDeclarationModule(outPath string, res *Result, opts Options) error {
	if !opts.NoNonPyWarning && !strings.HasSuffix(outPath, ".py") {
		slog.Warn("declaration path is not a Python file", slog.String("path", outPath))
	}
	if err := os.WriteFile(outPath, []byte(res.Text), 0o644); err != nil {
		return fmt.Errorf("writing declaration module: %w", err)
	}
	return nil
}

// SaveDeclarationModule reads the document at inPath, generates its
// declaration module and writes it to outPath. Parent directories of
// outPath are not created.
func SaveDeclarationModule(ctx context.Context, inPath, outPath string, opts Options) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	data, err := ReadDocument(f, opts.MaxInputBytes)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(inPath), err)
	}

	res, err := GenerateFromBytes(data, contenttype.Detect(inPath, data), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(inPath), err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := WriteDeclarationModule(outPath, res, opts); err != nil {
		return err
	}

	slog.Debug("declaration module written",
		slog.String("input", inPath),
		slog.String("output", outPath),
		slog.Int("records", len(res.Module.Declarations)),
	)
	return nil
}
