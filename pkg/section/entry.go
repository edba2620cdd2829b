package section

import "strings"

// Entry is a `key = value` pair as passed to an upsert.
type Entry struct {
	Key   string
	Value string

	raw string
}

// ParseEntry splits s at its first '='. Text without '=' is a bare key with
// an empty value.
func ParseEntry(s string) Entry {
	s = strings.TrimSpace(s)
	key, value, found := strings.Cut(s, "=")
	e := Entry{
		Key:   strings.TrimSpace(key),
		Value: strings.TrimSpace(value),
	}
	if found {
		e.raw = s
	}
	return e
}

// NewEntry builds an entry from a key and a value.
func NewEntry(key, value string) Entry {
	return Entry{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
}

// String renders the entry line without indentation. An entry parsed from
// text containing '=' keeps the caller's spelling; anything else is rendered
// as "key = value", or "key =" when the value is empty.
func (e Entry) String() string {
	if e.raw != "" {
		return e.raw
	}
	if e.Value == "" {
		return e.Key + " ="
	}
	return e.Key + " = " + e.Value
}
