package declaration

import "fmt"

// Declaration is the rendered class block of one record.
type Declaration struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Dedup returns decls without repeated blocks, keeping the first occurrence
// of each in its original position. Records reached at several places of
// the tree under the same name collapse into one declaration. Two different
// blocks claiming the same name are reported as ErrNameCollision, since
// fields of the dropped one would point at the wrong shape.
func Dedup(decls []Declaration) ([]Declaration, error) {
	out := make([]Declaration, 0, len(decls))
	seen := make(map[string]string, len(decls))
	for _, d := range decls {
		if text, ok := seen[d.Name]; ok {
			if text != d.Text {
				return nil, fmt.Errorf("%w: %q is declared with two different shapes", ErrNameCollision, d.Name)
			}
			continue
		}
		seen[d.Name] = d.Text
		out = append(out, d)
	}
	return out, nil
}
