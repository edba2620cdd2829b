package document

import (
	"fmt"

	"hyprconf/internal/parser"
	"hyprconf/internal/rewrite"
)

// SourceFile is one file produced by resolving a `source =` directive.
type SourceFile struct {
	Path string
	Text string
}

// SourceResolver reads the file(s) a directive refers to. A glob may yield
// several files; a missing non-glob path is an error.
type SourceResolver interface {
	ResolveSource(path string) ([]SourceFile, error)
}

// SourceResolverFunc adapts a function to SourceResolver.
type SourceResolverFunc func(path string) ([]SourceFile, error)

// ResolveSource calls f.
func (f SourceResolverFunc) ResolveSource(path string) ([]SourceFile, error) {
	return f(path)
}

// Source is a read-only sourced document.
type Source struct {
	Path  string
	buf   *rewrite.Buffer
	index *parser.Index
}

// Lines returns the sourced file's lines.
func (s *Source) Lines() []string {
	return s.buf.Lines()
}

// Sections lists the sourced file's section paths.
func (s *Source) Sections() []string {
	return s.index.Paths()
}

// Registry holds sourced documents in registration order.
type Registry struct {
	sources []*Source
	seen    map[string]bool
}

func newRegistry() *Registry {
	return &Registry{seen: make(map[string]bool)}
}

// register parses text and appends it. It reports false when path was
// already registered.
func (r *Registry) register(path, text string) (*Source, bool) {
	if r.seen[path] {
		return nil, false
	}
	r.seen[path] = true
	buf := rewrite.NewBuffer(text)
	src := &Source{
		Path:  path,
		buf:   buf,
		index: parser.IndexSections(buf.Lines()),
	}
	r.sources = append(r.sources, src)
	return src, true
}

// Sources returns the registered documents.
func (r *Registry) Sources() []*Source {
	out := make([]*Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	return len(r.sources)
}

// resolve follows the directives found in lines, depth first.
func (d *Document) resolve(lines []string, depth int) {
	for _, dir := range parser.SourceDirectives(lines) {
		if depth > d.opts.maxDepth {
			d.warn(newError(KindSourceDepth, dir.Path, fmt.Errorf("limit %d", d.opts.maxDepth)))
			return
		}
		files, err := d.opts.resolver.ResolveSource(dir.Path)
		if err != nil {
			d.warn(newError(KindUnresolvedSource, dir.Path, err))
			continue
		}
		for _, f := range files {
			src, ok := d.sources.register(f.Path, f.Text)
			if !ok {
				d.opts.logger.Debug("source already registered", "path", f.Path)
				continue
			}
			d.opts.logger.Debug("registered source", "path", f.Path, "sections", len(src.index.Paths()))
			d.resolve(src.buf.Lines(), depth+1)
		}
	}
}

func (d *Document) warn(err *Error) {
	d.warnings = append(d.warnings, err)
	d.opts.logger.Warn("config source skipped", "kind", string(err.Kind), "path", err.Path, "error", err.Err)
}
