package parser

import "strings"

// Kind classifies a configuration line.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindOpen  // "name {"
	KindClose // "}"
	KindEntry // "key = value"
	KindOther
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindEntry:
		return "entry"
	default:
		return "other"
	}
}

// Line is the classified form of one raw line.
type Line struct {
	Kind Kind

	// Name is the section name of a KindOpen line.
	Name string

	// Key and Value are set for KindEntry lines, both trimmed and without the
	// trailing comment.
	Key   string
	Value string

	// Comment is the trailing "#..." text, if any.
	Comment string
}

// ClassifyLine inspects a raw line. Comments start at the first '#' that is
// not doubled; "##" is Hyprland's escape for a literal '#'.
func ClassifyLine(raw string) Line {
	content, comment := StripComment(raw)
	trimmed := strings.TrimSpace(content)

	switch {
	case trimmed == "" && comment == "":
		return Line{Kind: KindBlank}
	case trimmed == "":
		return Line{Kind: KindComment, Comment: comment}
	case trimmed == "}":
		return Line{Kind: KindClose, Comment: comment}
	case strings.HasSuffix(trimmed, "{"):
		name := strings.TrimSpace(strings.TrimRight(trimmed, "{"))
		return Line{Kind: KindOpen, Name: name, Comment: comment}
	}

	if key, value, ok := strings.Cut(trimmed, "="); ok {
		return Line{
			Kind:    KindEntry,
			Key:     strings.TrimSpace(key),
			Value:   strings.TrimSpace(value),
			Comment: comment,
		}
	}
	return Line{Kind: KindOther, Comment: comment}
}

// StripComment splits raw into its content and trailing comment.
func StripComment(raw string) (content, comment string) {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '#' {
			continue
		}
		if i+1 < len(raw) && raw[i+1] == '#' {
			i++
			continue
		}
		return raw[:i], raw[i:]
	}
	return raw, ""
}

// IsEntryFor reports whether raw is an entry line for key.
func IsEntryFor(raw, key string) bool {
	l := ClassifyLine(raw)
	return l.Kind == KindEntry && l.Key == key
}

// Indent returns the leading whitespace of raw.
func Indent(raw string) string {
	return raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
}
