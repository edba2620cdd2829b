package document

import (
	"hyprconf/internal/parser"
	"hyprconf/pkg/section"
)

// propagator keeps an index aligned with its buffer. It is installed as the
// buffer's insert hook so every insertion shifts all ranges before control
// returns to the caller.
type propagator struct {
	index *parser.Index
}

func (p propagator) shift(pos, delta int) {
	p.index.Update(func(_ string, r section.Range) section.Range {
		return r.Shift(pos, delta)
	})
}
