package typeddict

import (
	"fmt"
	"log/slog"

	"github.com/seven7ty/typeshi/pkg/valuetree"
)

// inferConfig holds the options for a single Infer call.
type inferConfig struct {
	total          bool
	nameHook       NameHook
	hooks          Hooks
	includeBuiltin bool
}

// Option configures Infer.
type Option func(*inferConfig)

// WithTotal sets the totality flag of every inferred record. Default: true.
func WithTotal(total bool) Option {
	return func(c *inferConfig) {
		c.total = total
	}
}

// WithNameHook sets the function naming nested records from their path.
// Default: PascalName.
func WithNameHook(fn NameHook) Option {
	return func(c *inferConfig) {
		c.nameHook = fn
	}
}

// WithHooks sets caller-supplied type hooks. Builtin hooks are still added
// for kinds the caller does not cover unless WithBuiltinHooks(false) is set.
func WithHooks(h Hooks) Option {
	return func(c *inferConfig) {
		c.hooks = h
	}
}

// WithBuiltinHooks toggles merging of BuiltinHooks. Default: true.
func WithBuiltinHooks(include bool) Option {
	return func(c *inferConfig) {
		c.includeBuiltin = include
	}
}

// Infer builds the record schema of tree, naming the top-level record name.
//
// Nested mappings become nested records named by the name hook applied to
// the key's path in tree (not in the local subtree), so equal names mean
// equal locations. Other values are typed by the hook registered for their
// kind, or by their plain runtime type. Hook errors abort inference and are
// returned wrapped with the field path.
func Infer(name string, tree *valuetree.Map, opts ...Option) (*Record, error) {
	cfg := inferConfig{
		total:          true,
		nameHook:       PascalName,
		includeBuiltin: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nameHook == nil {
		cfg.nameHook = PascalName
	}
	if tree == nil {
		tree = valuetree.NewMap()
	}

	e := &engine{
		root:     tree,
		total:    cfg.total,
		nameHook: cfg.nameHook,
		hooks:    ResolveHooks(cfg.hooks, cfg.includeBuiltin),
	}
	return e.record(name, tree, nil)
}

type engine struct {
	root     *valuetree.Map
	total    bool
	nameHook NameHook
	hooks    Hooks
}

func (e *engine) record(name string, m *valuetree.Map, local valuetree.Path) (*Record, error) {
	rec := &Record{
		Name:   name,
		Fields: make([]Field, 0, m.Len()),
		Total:  e.total,
	}

	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		fieldPath := append(local[:len(local):len(local)], pair.Key)

		if child, ok := pair.Value.(*valuetree.Map); ok {
			childRec, err := e.record(e.nestedName(pair.Key, child, fieldPath), child, fieldPath)
			if err != nil {
				return nil, err
			}
			rec.Fields = append(rec.Fields, Field{Name: pair.Key, Type: RecordOf(childRec)})
			continue
		}

		t, err := e.leafType(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fieldPath, err)
		}
		rec.Fields = append(rec.Fields, Field{Name: pair.Key, Type: t})
	}

	return rec, nil
}

// nestedName resolves the path of key within the outermost tree. The local
// path is the fallback for the rare case where the resolver finds nothing.
func (e *engine) nestedName(key string, child *valuetree.Map, local valuetree.Path) string {
	path, ok := valuetree.FullPathWithValue(e.root, key, child)
	if !ok {
		slog.Debug("nested record path not found in root tree, using local path",
			slog.String("key", key),
			slog.String("path", local.String()),
		)
		path = local
	}
	return e.nameHook(path)
}

func (e *engine) leafType(v any) (Type, error) {
	kind := valuetree.KindOf(v)
	declared := IdentOf(kind)
	if hook, ok := e.hooks[kind]; ok && hook != nil {
		return hook(declared, v)
	}
	return PlainOf(declared), nil
}
