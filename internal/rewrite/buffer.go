package rewrite

import (
	"fmt"
	"slices"
)

// Buffer implements LineBuffer over a slice of lines.
type Buffer struct {
	lines    []string
	newline  string
	trailing bool
	hooks    []InsertHook
}

// NewBuffer splits text into a Buffer.
func NewBuffer(text string) *Buffer {
	lines, newline, trailing := SplitLines(text)
	return &Buffer{
		lines:    lines,
		newline:  newline,
		trailing: trailing,
	}
}

// OnInsert registers a hook that runs after every InsertAt.
func (b *Buffer) OnInsert(h InsertHook) {
	b.hooks = append(b.hooks, h)
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns line i.
func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	return slices.Clone(b.lines)
}

// Set overwrites line i.
func (b *Buffer) Set(i int, line string) {
	b.lines[i] = line
}

// Append adds lines at the end. Hooks are notified as for InsertAt.
func (b *Buffer) Append(lines ...string) {
	b.insert(len(b.lines), lines)
}

// InsertAt inserts lines before the line at pos and notifies the hooks.
func (b *Buffer) InsertAt(pos int, lines ...string) error {
	if pos < 0 || pos > len(b.lines) {
		return fmt.Errorf("insert position %d out of range [0, %d]", pos, len(b.lines))
	}
	b.insert(pos, lines)
	return nil
}

// insert requires 0 <= pos <= len(b.lines).
func (b *Buffer) insert(pos int, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.lines = slices.Insert(b.lines, pos, lines...)
	for _, h := range b.hooks {
		h(pos, len(lines))
	}
}

// Newline returns the line terminator used by String.
func (b *Buffer) Newline() string {
	return b.newline
}

// String rebuilds the text.
func (b *Buffer) String() string {
	return JoinLines(b.lines, b.newline, b.trailing)
}

// Bytes is String as a byte slice.
func (b *Buffer) Bytes() []byte {
	return []byte(b.String())
}
