package declaration

import (
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ImportTable collects the names a module must import, grouped by the
// module they come from. Modules and names keep first-seen order.
type ImportTable struct {
	modules *orderedmap.OrderedMap[string, []string]
}

// NewImportTable creates an empty table.
func NewImportTable() *ImportTable {
	return &ImportTable{modules: orderedmap.New[string, []string]()}
}

// Add records that name must be imported from module. Repeats are ignored.
func (t *ImportTable) Add(module, name string) {
	names, _ := t.modules.Get(module)
	if slices.Contains(names, name) {
		return
	}
	t.modules.Set(module, append(names, name))
}

// Len returns the number of modules in the table.
func (t *ImportTable) Len() int {
	return t.modules.Len()
}

// Names returns the names imported from module.
func (t *ImportTable) Names(module string) []string {
	names, _ := t.modules.Get(module)
	return names
}

// Modules returns the modules in first-seen order.
func (t *ImportTable) Modules() []string {
	out := make([]string, 0, t.modules.Len())
	for pair := t.modules.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Lines renders one "from <module> import <names>" statement per module.
func (t *ImportTable) Lines() []string {
	lines := make([]string, 0, t.modules.Len())
	for pair := t.modules.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, "from "+pair.Key+" import "+strings.Join(pair.Value, ", "))
	}
	return lines
}
