package parser

import (
	"sort"

	"hyprconf/pkg/section"
)

// Index maps full section paths to the line ranges of their blocks, in
// document order. A path can occur more than once when a block is repeated.
type Index struct {
	ranges map[string][]section.Range
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{ranges: make(map[string][]section.Range)}
}

// IndexSections scans lines once, tracking open blocks on a stack, and
// records every closed block under its full dotted path. Stray closing braces
// and blocks left open at the end are ignored.
func IndexSections(lines []string) *Index {
	type frame struct {
		name  string
		start int
	}

	idx := NewIndex()
	var stack []frame
	for i, raw := range lines {
		l := ClassifyLine(raw)
		switch l.Kind {
		case KindOpen:
			stack = append(stack, frame{name: l.Name, start: i})
		case KindClose:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			names := make([]string, 0, len(stack)+1)
			for _, f := range stack {
				names = append(names, f.name)
			}
			names = append(names, top.name)
			idx.Add(section.Join(names...), section.Range{Start: top.start, End: i})
		}
	}
	return idx
}

// Add records a range for path, keeping occurrences ordered by start line.
func (x *Index) Add(path string, r section.Range) {
	rs := append(x.ranges[path], r)
	sort.Slice(rs, func(i, j int) bool { return rs[i].Start < rs[j].Start })
	x.ranges[path] = rs
}

// Lookup returns the last occurrence of path.
func (x *Index) Lookup(path string) (section.Range, bool) {
	rs := x.ranges[path]
	if len(rs) == 0 {
		return section.Range{}, false
	}
	return rs[len(rs)-1], true
}

// All returns every occurrence of path in document order.
func (x *Index) All(path string) []section.Range {
	rs := x.ranges[path]
	out := make([]section.Range, len(rs))
	copy(out, rs)
	return out
}

// Has reports whether path is indexed.
func (x *Index) Has(path string) bool {
	return len(x.ranges[path]) > 0
}

// Paths returns the indexed paths sorted by the start of their first block.
func (x *Index) Paths() []string {
	paths := make([]string, 0, len(x.ranges))
	for p := range x.ranges {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool {
		a, b := x.ranges[paths[i]][0], x.ranges[paths[j]][0]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return paths[i] < paths[j]
	})
	return paths
}

// Len is the total number of tracked ranges.
func (x *Index) Len() int {
	n := 0
	for _, rs := range x.ranges {
		n += len(rs)
	}
	return n
}

// Update rewrites every tracked range through fn.
func (x *Index) Update(fn func(path string, r section.Range) section.Range) {
	for p, rs := range x.ranges {
		for i := range rs {
			rs[i] = fn(p, rs[i])
		}
	}
}
