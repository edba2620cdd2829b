package document

import (
	"strings"

	"hyprconf/internal/parser"
	"hyprconf/pkg/section"
)

// Get returns the value of name in category, or "" when it is set nowhere.
// An empty result cannot be told apart from an explicitly empty value; use
// Lookup when that matters.
func (d *Document) Get(category, name string) string {
	v, _ := d.Lookup(category, name)
	return v
}

// Lookup resolves name within category. A qualified name such as
// "touchpad.natural_scroll" is read from the touchpad block inside category
// when that block exists; otherwise the whole name is the key, which is how
// dotted keys like "col.active_border" are found. The primary document is
// searched first, then each sourced document in registration order.
func (d *Document) Lookup(category, name string) (string, bool) {
	if _, err := section.Split(category); err != nil || name == "" {
		return "", false
	}
	for _, t := range d.scopes() {
		for _, c := range candidates(t.index, category, name) {
			if v, ok := t.value(c.path, c.key); ok {
				return v, true
			}
		}
	}
	return "", false
}

// Value returns key from the section at path, with the same sourced
// fallback as Lookup.
func (d *Document) Value(path, key string) (string, bool) {
	for _, t := range d.scopes() {
		if v, ok := t.value(path, key); ok {
			return v, true
		}
	}
	return "", false
}

type candidate struct {
	path string
	key  string
}

// candidates lists the (section, key) readings of name, most specific
// subsection first, ending with name as a literal key.
func candidates(index *parser.Index, category, name string) []candidate {
	var out []candidate
	for i := strings.LastIndex(name, section.Separator); i > 0; i = strings.LastIndex(name[:i], section.Separator) {
		sub, key := name[:i], name[i+1:]
		if key == "" {
			continue
		}
		path := section.Join(category, sub)
		if index.Has(path) {
			out = append(out, candidate{path: path, key: key})
		}
	}
	return append(out, candidate{path: category, key: name})
}

// target is one searchable document: the primary or a sourced one.
type target struct {
	line  func(int) string
	index *parser.Index
}

func (d *Document) scopes() []target {
	out := []target{{line: d.buf.Line, index: d.index}}
	for _, s := range d.sources.sources {
		out = append(out, target{line: s.buf.Line, index: s.index})
	}
	return out
}

// value scans the occurrences of path, last first, so a later assignment
// wins as it does when Hyprland reads the file.
func (t target) value(path, key string) (string, bool) {
	ranges := t.index.All(path)
	for i := len(ranges) - 1; i >= 0; i-- {
		if line, ok := findDirectChild(t.line, ranges[i], key); ok {
			return parser.ClassifyLine(t.line(line)).Value, true
		}
	}
	return "", false
}
