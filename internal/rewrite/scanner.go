package rewrite

import "strings"

// Newline conventions recognised by SplitLines.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// SplitLines breaks text into lines without terminators. It reports the
// newline convention (CRLF only when every terminator is "\r\n") and whether
// the text ended with a terminator, so JoinLines can rebuild it exactly.
func SplitLines(text string) (lines []string, newline string, trailing bool) {
	newline = LF
	if text == "" {
		return nil, newline, false
	}
	if strings.HasSuffix(text, "\n") {
		trailing = true
		text = text[:len(text)-1]
	}
	lines = strings.Split(text, "\n")

	// Lines followed by a terminator are all but the last, plus the last one
	// when the text ended with a newline.
	terminated := len(lines) - 1
	if trailing {
		terminated = len(lines)
	}
	if terminated == 0 {
		return lines, newline, trailing
	}
	for _, l := range lines[:terminated] {
		if !strings.HasSuffix(l, "\r") {
			return lines, newline, trailing
		}
	}
	for i := 0; i < terminated; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines, CRLF, trailing
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string, newline string, trailing bool) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString(newline)
		}
		b.WriteString(l)
	}
	if trailing {
		b.WriteString(newline)
	}
	return b.String()
}
