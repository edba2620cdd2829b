package document

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a document error.
type Kind string

const (
	// KindInvalidPath marks a section path with an empty segment.
	KindInvalidPath Kind = "invalid path"
	// KindInvalidEntry marks an entry without a key, or text that would not
	// read back as a single entry line.
	KindInvalidEntry Kind = "invalid entry"
	// KindUnresolvedSource marks a `source = path` that could not be read.
	KindUnresolvedSource Kind = "unresolved source"
	// KindSourceDepth marks sources nested deeper than the configured limit.
	KindSourceDepth Kind = "source depth exceeded"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrInvalidPath      = errors.New("invalid section path")
	ErrInvalidEntry     = errors.New("invalid entry")
	ErrUnresolvedSource = errors.New("unresolved source")
	ErrSourceDepth      = errors.New("source depth exceeded")
)

var sentinels = map[Kind]error{
	KindInvalidPath:      ErrInvalidPath,
	KindInvalidEntry:     ErrInvalidEntry,
	KindUnresolvedSource: ErrUnresolvedSource,
	KindSourceDepth:      ErrSourceDepth,
}

// Error carries a Kind, the path or entry it concerns and the cause.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %q: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}
