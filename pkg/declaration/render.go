// Package declaration renders inferred record schemas as a Python module of
// TypedDict class declarations.
package declaration

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seven7ty/typeshi/pkg/typeddict"
)

// MinWrapWidth is the smallest accepted literal wrap width (PEP 8 line length).
const MinWrapWidth = 79

// DefaultWrapWidth is the default literal wrap width.
const DefaultWrapWidth = 119

const (
	indent = "    "
	// literalMargin is the fixed part of a literal field line:
	// the indent, ": Literal[" and the closing bracket.
	literalMargin = len(indent) + len(": Literal[") + len("]")
)

var (
	// ErrWrapWidth is returned for a literal wrap width below MinWrapWidth.
	ErrWrapWidth = errors.New("literal wrap width too small")
	// ErrNameCollision is returned when two different records share a name.
	ErrNameCollision = errors.New("record name collision")
	// ErrNoHomeModule is returned when a type from the main module must be
	// imported but no home module is configured.
	ErrNoHomeModule = errors.New("home module not configured")
	// ErrInvalidIdentifier is returned for a record or field name that is
	// not a Python identifier, e.g. a key containing a space or newline.
	ErrInvalidIdentifier = errors.New("not a Python identifier")
)

// Options controls rendering.
type Options struct {
	Newline        string // line separator, default "\n"
	EndWithNewline bool   // terminate the module with Newline
	Header         bool   // emit the "# typeshi (<version>)" header

	// Base is the class every declaration inherits from; nil for none.
	Base *typeddict.Ident

	// LiteralWrapWidth is the line length at which string literals wrap.
	// 0 disables wrapping; other values below MinWrapWidth are rejected.
	LiteralWrapWidth int

	// HomeModule is the import path used for types defined by the main module.
	HomeModule string
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	base := typeddict.TypedDict
	return Options{
		Newline:          "\n",
		EndWithNewline:   true,
		Header:           true,
		Base:             &base,
		LiteralWrapWidth: DefaultWrapWidth,
	}
}

// Validate reports configuration errors.
func (o Options) Validate() error {
	if o.LiteralWrapWidth != 0 && o.LiteralWrapWidth < MinWrapWidth {
		return fmt.Errorf("%w: %d (minimum %d)", ErrWrapWidth, o.LiteralWrapWidth, MinWrapWidth)
	}
	return nil
}

// Module is a rendered declaration module.
type Module struct {
	Imports      *ImportTable
	Declarations []Declaration

	newline        string
	endWithNewline bool
	header         bool
}

// Text assembles the module source: header, imports, then the declarations
// separated by two blank lines.
func (m *Module) Text() string {
	nl := m.newline
	var b strings.Builder

	if m.header {
		b.WriteString(Header())
		b.WriteString(nl + nl)
	}
	for _, line := range m.Imports.Lines() {
		b.WriteString(line)
		b.WriteString(nl)
	}
	if m.Imports.Len() > 0 {
		b.WriteString(nl + nl)
	}

	texts := make([]string, len(m.Declarations))
	for i, d := range m.Declarations {
		texts[i] = d.Text
	}
	b.WriteString(strings.Join(texts, nl+nl+nl))

	if m.endWithNewline {
		b.WriteString(nl)
	}
	return b.String()
}

// Names returns the declared record names in output order.
func (m *Module) Names() []string {
	out := make([]string, len(m.Declarations))
	for i, d := range m.Declarations {
		out[i] = d.Name
	}
	return out
}

// Header returns the version header line.
func Header() string {
	return "# typeshi (" + typeddict.Version + ")"
}

// Render renders root and every nested record as module source.
func Render(root *typeddict.Record, opts Options) (string, error) {
	m, err := Build(root, opts)
	if err != nil {
		return "", err
	}
	return m.Text(), nil
}

// Build renders the declarations of root without assembling the final text.
// Nested records are declared before the records that reference them.
func Build(root *typeddict.Record, opts Options) (*Module, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("nil record")
	}
	if opts.Newline == "" {
		opts.Newline = "\n"
	}

	r := &renderer{
		opts:    opts,
		imports: NewImportTable(),
	}
	if opts.Base != nil {
		if err := r.require(*opts.Base); err != nil {
			return nil, err
		}
		r.suffix = opts.Base.Name
	}

	if err := r.declare(root); err != nil {
		return nil, err
	}

	decls, err := Dedup(r.decls)
	if err != nil {
		return nil, err
	}

	return &Module{
		Imports:        r.imports,
		Declarations:   decls,
		newline:        opts.Newline,
		endWithNewline: opts.EndWithNewline,
		header:         opts.Header,
	}, nil
}

type renderer struct {
	opts    Options
	imports *ImportTable
	suffix  string
	decls   []Declaration
}

func (r *renderer) declare(rec *typeddict.Record) error {
	nl := r.opts.Newline
	if err := checkIdentifier("record name", rec.Name); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("class " + rec.Name + r.classArgs(rec) + ":")

	for _, f := range rec.Fields {
		name := FieldName(f.Name)
		if err := checkIdentifier("field", name); err != nil {
			return fmt.Errorf("record %s: %w", rec.Name, err)
		}
		text, err := r.typeText(name, f.Type)
		if err != nil {
			return fmt.Errorf("record %s field %q: %w", rec.Name, f.Name, err)
		}
		b.WriteString(nl + indent + name + ": " + text)

		if f.Type.Kind == typeddict.RecordRef && f.Type.Record != nil {
			if err := r.declare(f.Type.Record); err != nil {
				return err
			}
		}
	}
	if len(rec.Fields) == 0 {
		b.WriteString(nl + indent + "pass")
	}

	r.decls = append(r.decls, Declaration{Name: rec.Name, Text: b.String()})
	return nil
}

func (r *renderer) classArgs(rec *typeddict.Record) string {
	if r.suffix == "" {
		return ""
	}
	if !rec.Total {
		return "(" + r.suffix + ", total=False)"
	}
	return "(" + r.suffix + ")"
}

func (r *renderer) typeText(fieldName string, t typeddict.Type) (string, error) {
	switch t.Kind {
	case typeddict.Plain:
		if err := r.require(t.Ident); err != nil {
			return "", err
		}
		return displayName(t.Ident), nil

	case typeddict.Parametric:
		if err := r.require(t.Ident); err != nil {
			return "", err
		}
		if len(t.Params) == 0 {
			return displayName(t.Ident), nil
		}
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			if err := r.require(p); err != nil {
				return "", err
			}
			params[i] = displayName(p)
		}
		return displayName(t.Ident) + "[" + strings.Join(params, ", ") + "]", nil

	case typeddict.Literal:
		if err := r.require(t.Ident); err != nil {
			return "", err
		}
		return r.literalText(fieldName, t.Value), nil

	case typeddict.RecordRef:
		if t.Record == nil {
			return "", errors.New("record reference without record")
		}
		return t.Record.Name, nil

	default:
		return "", fmt.Errorf("unknown type kind %d", t.Kind)
	}
}

// literalText renders Literal[<value>]. A string too long for the wrap
// width is split at word boundaries into adjacent string literals, each
// continuation aligned one column past "Literal[".
func (r *renderer) literalText(fieldName string, v any) string {
	single := "Literal[" + pyRepr(v) + "]"

	s, ok := v.(string)
	width := r.opts.LiteralWrapWidth
	if !ok || width == 0 {
		return single
	}
	if utf8.RuneCountInString(pyStringRepr(s)) <= width-utf8.RuneCountInString(fieldName)-literalMargin {
		return single
	}

	col := utf8.RuneCountInString(indent + fieldName + ": Literal[")
	segments := wrapWords(s, width-col-1)
	if len(segments) < 2 {
		return single
	}

	pad := strings.Repeat(" ", col)
	var b strings.Builder
	b.WriteString("Literal[")
	for i, seg := range segments {
		if i > 0 {
			b.WriteString(r.opts.Newline + pad)
		}
		b.WriteString(pyStringRepr(seg))
	}
	b.WriteString("]")
	return b.String()
}

// require adds id to the import table unless it is a builtin.
func (r *renderer) require(id typeddict.Ident) error {
	if id.Builtin() {
		return nil
	}
	module := id.Module
	if module == typeddict.MainModule {
		if r.opts.HomeModule == "" {
			return fmt.Errorf("%w: cannot import %s from %s", ErrNoHomeModule, id.Name, typeddict.MainModule)
		}
		module = r.opts.HomeModule
	}
	r.imports.Add(module, id.Name)
	return nil
}

func displayName(id typeddict.Ident) string {
	if id == typeddict.NoneType {
		return "None"
	}
	return id.Name
}

// FieldName returns name as a valid identifier: purely numeric names get
// an underscore prefix.
func FieldName(name string) string {
	if name == "" {
		return name
	}
	for _, r := range name {
		if !unicode.IsNumber(r) {
			return name
		}
	}
	return "_" + name
}
