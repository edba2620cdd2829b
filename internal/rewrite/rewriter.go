package rewrite

// LineBuffer is an ordered, editable sequence of text lines.
type LineBuffer interface {
	// Len returns the number of lines.
	Len() int

	// Line returns line i without its terminator.
	Line(i int) string

	// Set overwrites line i in place. The line count does not change.
	Set(i int, line string)

	// Append adds lines after the last one.
	Append(lines ...string)

	// InsertAt inserts lines before the line currently at pos, shifting the
	// following lines down. pos == Len() appends.
	InsertAt(pos int, lines ...string) error

	// String rebuilds the text with the original newline convention.
	String() string
}

// InsertHook is notified after lines are inserted at pos.
type InsertHook func(pos, count int)
