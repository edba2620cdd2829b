package section

// Range is the line span of one section: Start is the line that opens the
// block with `{` and End is the line holding its closing `}`.
type Range struct {
	Start int
	End   int
}

// Contains reports whether line lies strictly between the section's braces.
func (r Range) Contains(line int) bool {
	return line > r.Start && line < r.End
}

// Encloses reports whether other is nested inside r.
func (r Range) Encloses(other Range) bool {
	return r.Start < other.Start && other.End < r.End
}

// Shift returns r adjusted for delta lines inserted before line pos.
// Each bound moves independently, so an insertion immediately before the
// closing brace grows the section while its start stays put.
func (r Range) Shift(pos, delta int) Range {
	if r.Start >= pos {
		r.Start += delta
	}
	if r.End >= pos {
		r.End += delta
	}
	return r
}
