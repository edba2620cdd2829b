package section

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the segments of a section path, e.g. "decoration.blur".
const Separator = "."

// ErrEmptySegment is returned by Split when a path has an empty segment.
var ErrEmptySegment = errors.New("empty path segment")

// Split breaks path into its segments. Every segment must contain something
// other than whitespace.
func Split(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%q: %w", path, ErrEmptySegment)
	}
	parts := strings.Split(path, Separator)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%q: segment %d: %w", path, i, ErrEmptySegment)
		}
		parts[i] = p
	}
	return parts, nil
}

// Join builds a path from segments, skipping empty ones.
func Join(segments ...string) string {
	nonEmpty := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, Separator)
}

// Depth is the number of segments in path.
func Depth(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, Separator) + 1
}
