package document

import (
	"errors"
	"fmt"
	"strings"

	"hyprconf/internal/parser"
	"hyprconf/pkg/section"
)

const indentUnit = "    "

// AddEntry inserts or replaces entry ("key = value") in the section at
// categoryPath, creating missing sections along the way. Calling it twice
// with the same arguments leaves the document unchanged the second time.
func (d *Document) AddEntry(categoryPath, entry string) error {
	segments, err := section.Split(categoryPath)
	if err != nil {
		return newError(KindInvalidPath, categoryPath, err)
	}
	e := section.ParseEntry(entry)
	if e.Key == "" {
		return newError(KindInvalidEntry, entry, errors.New("missing key"))
	}
	text := e.String()
	if strings.ContainsAny(text, "\r\n") {
		return newError(KindInvalidEntry, entry, errors.New("entry spans several lines"))
	}
	// The written line must read back as this entry, or a second call would
	// not find it.
	if l := parser.ClassifyLine(text); l.Kind != parser.KindEntry || l.Key != e.Key {
		return newError(KindInvalidEntry, entry, fmt.Errorf("line would read as %s", l.Kind))
	}

	// The top level behaves like a scope whose closing line is one past the
	// end of the document.
	insertAt := d.buf.Len()
	prefix := ""
	for i, seg := range segments {
		prefix = section.Join(prefix, seg)
		if r, ok := d.index.Lookup(prefix); ok {
			insertAt = r.End
			continue
		}

		last := i == len(segments)-1
		indent := strings.Repeat(indentUnit, i)
		block := []string{indent + seg + " {"}
		if last {
			block = append(block, strings.Repeat(indentUnit, i+1)+text)
		}
		block = append(block, indent+"}")

		if err := d.buf.InsertAt(insertAt, block...); err != nil {
			return err
		}
		r := section.Range{Start: insertAt, End: insertAt + len(block) - 1}
		d.index.Add(prefix, r)
		d.opts.logger.Debug("created section", "path", prefix, "start", r.Start, "end", r.End)
		if last {
			return nil
		}
		insertAt = r.End
	}

	if line, ok := d.findEntry(prefix, e.Key); ok {
		old := d.buf.Line(line)
		d.buf.Set(line, parser.Indent(old)+text+keptComment(old, text))
		return nil
	}

	indent := strings.Repeat(indentUnit, len(segments))
	return d.buf.InsertAt(insertAt, indent+text)
}

// findEntry searches the direct children of every occurrence of path, last
// occurrence first, for an entry named key.
func (d *Document) findEntry(path, key string) (int, bool) {
	ranges := d.index.All(path)
	for i := len(ranges) - 1; i >= 0; i-- {
		if line, ok := findDirectChild(d.buf.Line, ranges[i], key); ok {
			return line, true
		}
	}
	return 0, false
}

// findDirectChild scans the lines strictly inside r, skipping nested blocks.
func findDirectChild(line func(int) string, r section.Range, key string) (int, bool) {
	depth := 0
	for i := r.Start + 1; i < r.End; i++ {
		l := parser.ClassifyLine(line(i))
		switch l.Kind {
		case parser.KindOpen:
			depth++
		case parser.KindClose:
			if depth > 0 {
				depth--
			}
		case parser.KindEntry:
			if depth == 0 && l.Key == key {
				return i, true
			}
		}
	}
	return 0, false
}

// keptComment returns the trailing comment of old, with its separating space,
// unless the replacement text carries a comment of its own.
func keptComment(old, text string) string {
	if _, own := parser.StripComment(text); own != "" {
		return ""
	}
	if c := parser.ClassifyLine(old).Comment; c != "" {
		return " " + c
	}
	return ""
}
