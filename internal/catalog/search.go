package catalog

import (
	"github.com/sahilm/fuzzy"
)

// Match is a search hit, best first.
type Match struct {
	Option Option
	Score  int

	// Matched holds the byte offsets of the matched characters in the
	// searched text.
	Matched []int
}

// searchable exposes options to fuzzy as "category:name label".
type searchable []Option

func (s searchable) String(i int) string {
	o := s[i]
	return o.Category + ":" + o.Name + " " + o.Label
}

func (s searchable) Len() int { return len(s) }

// SearchText is the text Search matches pattern against.
func SearchText(o Option) string {
	return searchable{o}.String(0)
}

// Search fuzzy-matches pattern against every option's category, name and
// label. An empty pattern matches nothing.
func (c *Catalog) Search(pattern string) []Match {
	if pattern == "" {
		return nil
	}
	opts := searchable(c.Options())
	found := fuzzy.FindFrom(pattern, opts)
	out := make([]Match, 0, len(found))
	for _, m := range found {
		out = append(out, Match{
			Option:  opts[m.Index],
			Score:   m.Score,
			Matched: m.MatchedIndexes,
		})
	}
	return out
}
