// Package catalog describes the Hyprland options the editor knows about:
// where each lives in the config, what kind of value it takes and how to
// present it.
package catalog

import (
	"strings"

	"hyprconf/pkg/section"
)

// Kind is the value type of an option.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
	Color
	Choice
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Color:
		return "color"
	case Choice:
		return "choice"
	default:
		return "string"
	}
}

// Option is one configurable value.
type Option struct {
	// Name is the key as Hyprland spells it inside the category, e.g.
	// "blur:size" or "col.active_border".
	Name        string
	Label       string
	Description string
	Kind        Kind
	Choices     []string

	// Category, Group, Section and Key are filled in by the catalogue.
	Category string
	Group    string
	Section  string
	Key      string
}

// ID is "category/name", unique across the catalogue.
func (o Option) ID() string {
	return o.Category + "/" + o.Name
}

// Group is a titled run of options within a category.
type Group struct {
	Title       string
	Description string
	Options     []Option
}

// Category is a top-level page of options.
type Category struct {
	Name        string
	Title       string
	Description string

	// Section is the config block the category's options live in. Empty
	// means the options name their own top-level blocks.
	Section string
	Groups  []Group
}

// Options returns the category's options in display order.
func (c Category) Options() []Option {
	var out []Option
	for _, g := range c.Groups {
		out = append(out, g.Options...)
	}
	return out
}

func boolean(name, label, desc string) Option { return Option{Name: name, Label: label, Description: desc, Kind: Bool} }
func integer(name, label, desc string) Option { return Option{Name: name, Label: label, Description: desc, Kind: Int} }
func float(name, label, desc string) Option   { return Option{Name: name, Label: label, Description: desc, Kind: Float} }
func text(name, label, desc string) Option    { return Option{Name: name, Label: label, Description: desc, Kind: String} }
func rgba(name, label, desc string) Option    { return Option{Name: name, Label: label, Description: desc, Kind: Color} }

func choice(name, label, desc string, choices ...string) Option {
	return Option{Name: name, Label: label, Description: desc, Kind: Choice, Choices: choices}
}

// Catalog is an immutable set of categories.
type Catalog struct {
	categories []Category
	byID       map[string]Option
	byPath     map[string]Option
}

// New builds a catalogue, resolving every option's section and key.
func New(categories []Category) *Catalog {
	c := &Catalog{
		byID:   make(map[string]Option),
		byPath: make(map[string]Option),
	}
	for _, cat := range categories {
		groups := make([]Group, len(cat.Groups))
		for gi, g := range cat.Groups {
			opts := make([]Option, len(g.Options))
			for oi, o := range g.Options {
				o.Category = cat.Name
				o.Group = g.Title
				o.Section, o.Key = Locate(cat.Section, o.Name)
				opts[oi] = o
				c.byID[o.ID()] = o
				c.byPath[o.Section+"\x00"+o.Key] = o
			}
			groups[gi] = Group{Title: g.Title, Description: g.Description, Options: opts}
		}
		cat.Groups = groups
		c.categories = append(c.categories, cat)
	}
	return c
}

// Default returns the built-in catalogue.
func Default() *Catalog {
	return New(builtin)
}

// Locate maps an option name inside a category block to the section path
// and key it is written under: "blur:size" in "decoration" is key "size" of
// section "decoration.blur".
func Locate(categorySection, name string) (path, key string) {
	parts := strings.Split(name, ":")
	key = parts[len(parts)-1]
	segs := append([]string{categorySection}, parts[:len(parts)-1]...)
	return section.Join(segs...), key
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category returns the category called name.
func (c *Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Options returns every option in display order.
func (c *Catalog) Options() []Option {
	var out []Option
	for _, cat := range c.categories {
		out = append(out, cat.Options()...)
	}
	return out
}

// Lookup finds an option by category and name.
func (c *Catalog) Lookup(category, name string) (Option, bool) {
	o, ok := c.byID[category+"/"+name]
	return o, ok
}

// Find finds the option written as key in the section at path.
func (c *Catalog) Find(path, key string) (Option, bool) {
	o, ok := c.byPath[path+"\x00"+key]
	return o, ok
}
