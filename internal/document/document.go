// Package document is the in-memory model of a Hyprland configuration file:
// a line buffer, the index of its nested sections, and the documents it
// sources. Edits go through AddEntry, which keeps every tracked section range
// pointing at its braces as lines are inserted.
package document

import (
	"fmt"

	"hyprconf/internal/parser"
	"hyprconf/internal/rewrite"
	"hyprconf/pkg/section"
)

// Document is a parsed configuration. It is not safe for concurrent use.
type Document struct {
	buf      *rewrite.Buffer
	index    *parser.Index
	sources  *Registry
	warnings []error
	opts     options
}

// Parse builds a Document from text. Unrecognised lines are kept verbatim.
// With a resolver, `source =` directives are followed and their files
// registered for lookups; failures become warnings.
func Parse(text string, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf := rewrite.NewBuffer(text)
	d := &Document{
		buf:     buf,
		index:   parser.IndexSections(buf.Lines()),
		sources: newRegistry(),
		opts:    o,
	}
	buf.OnInsert(propagator{index: d.index}.shift)

	if o.resolver != nil {
		d.resolve(buf.Lines(), 1)
	}
	return d
}

// String serializes the document with all edits applied.
func (d *Document) String() string {
	return d.buf.String()
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	return d.buf.Lines()
}

// Sections lists the tracked section paths in document order.
func (d *Document) Sections() []string {
	return d.index.Paths()
}

// Ranges returns every tracked occurrence of path.
func (d *Document) Ranges(path string) []section.Range {
	return d.index.All(path)
}

// HasSection reports whether path is a tracked section of the primary
// document.
func (d *Document) HasSection(path string) bool {
	return d.index.Has(path)
}

// Validate checks that every tracked range still addresses an opening line
// and a closing line.
func (d *Document) Validate() error {
	for _, p := range d.index.Paths() {
		for _, r := range d.index.All(p) {
			if r.Start < 0 || r.End >= d.buf.Len() || r.Start >= r.End {
				return fmt.Errorf("section %q: range %d-%d out of bounds", p, r.Start, r.End)
			}
			if k := parser.ClassifyLine(d.buf.Line(r.Start)).Kind; k != parser.KindOpen {
				return fmt.Errorf("section %q: start line %d is %s, not open", p, r.Start, k)
			}
			if k := parser.ClassifyLine(d.buf.Line(r.End)).Kind; k != parser.KindClose {
				return fmt.Errorf("section %q: end line %d is %s, not close", p, r.End, k)
			}
		}
	}
	return nil
}

// Warnings returns the problems recorded while resolving sources.
func (d *Document) Warnings() []error {
	out := make([]error, len(d.warnings))
	copy(out, d.warnings)
	return out
}

// SourcePaths lists the `source =` values of the primary document.
func (d *Document) SourcePaths() []string {
	var out []string
	for _, dir := range parser.SourceDirectives(d.buf.Lines()) {
		out = append(out, dir.Path)
	}
	return out
}

// RegisterSource adds caller-supplied contents for a sourced file. It reports
// false if path is already registered.
func (d *Document) RegisterSource(path, text string) bool {
	_, ok := d.sources.register(path, text)
	return ok
}

// Sources returns the registered sourced documents in registration order.
func (d *Document) Sources() []*Source {
	return d.sources.Sources()
}
