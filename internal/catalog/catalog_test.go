package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		section, name string
		wantPath      string
		wantKey       string
	}{
		{"general", "gaps_in", "general", "gaps_in"},
		{"general", "col.active_border", "general", "col.active_border"},
		{"decoration", "blur:size", "decoration.blur", "size"},
		{"group", "groupbar:col.active", "group.groupbar", "col.active"},
		{"", "dwindle:pseudotile", "dwindle", "pseudotile"},
	}
	for _, tt := range tests {
		path, key := Locate(tt.section, tt.name)
		assert.Equal(t, tt.wantPath, path, tt.name)
		assert.Equal(t, tt.wantKey, key, tt.name)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	var names []string
	for _, cat := range c.Categories() {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{
		"general", "decoration", "animations", "input", "gestures", "group", "misc",
		"binds", "xwayland", "opengl", "render", "cursor", "debug", "layouts",
	}, names)

	o, ok := c.Lookup("general", "layout")
	require.True(t, ok)
	assert.Equal(t, Choice, o.Kind)
	assert.Equal(t, []string{"dwindle", "master"}, o.Choices)
	assert.Equal(t, "general/layout", o.ID())

	o, ok = c.Find("decoration.blur", "size")
	require.True(t, ok)
	assert.Equal(t, "decoration", o.Category)
	assert.Equal(t, "blur:size", o.Name)
	assert.Equal(t, Int, o.Kind)

	o, ok = c.Find("general", "col.active_border")
	require.True(t, ok)
	assert.Equal(t, Color, o.Kind)

	_, ok = c.Lookup("general", "nope")
	assert.False(t, ok)

	seen := make(map[string]bool)
	for _, o := range c.Options() {
		assert.False(t, seen[o.ID()], "duplicate %s", o.ID())
		seen[o.ID()] = true
		assert.NotEmpty(t, o.Section, o.ID())
		assert.NotEmpty(t, o.Label, o.ID())
	}
}

func TestSearch(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Search(""))

	for pattern, want := range map[string]string{
		"natscroll": "input/touchpad:natural_scroll",
		"blursize":  "decoration/blur:size",
		"pseudotil": "layouts/dwindle:pseudotile",
	} {
		var ids []string
		for _, m := range c.Search(pattern) {
			ids = append(ids, m.Option.ID())
		}
		assert.Contains(t, ids, want, pattern)
	}
}

func TestMarkdownAndHTML(t *testing.T) {
	c := New([]Category{{
		Name:        "general",
		Title:       "General",
		Section:     "general",
		Description: "Configure general behavior.",
		Groups: []Group{{Title: "Gaps", Options: []Option{
			integer("gaps_in", "Gaps In", "gaps between windows"),
			choice("layout", "Layout", "which layout to use.", "dwindle", "master"),
		}}},
	}})

	md := c.Markdown(nil)
	assert.Contains(t, md, "## General")
	assert.Contains(t, md, "| `general:gaps_in` | int | gaps between windows |")
	assert.Contains(t, md, "dwindle \\| master")

	md = c.Markdown(func(o Option) (string, bool) {
		if o.Key == "gaps_in" {
			return "5", true
		}
		return "", false
	})
	assert.Contains(t, md, "| `general:gaps_in` | int | `5` | gaps between windows |")

	html, err := c.HTML(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>General</h2>")
	assert.Contains(t, html, "<table>")
	assert.True(t, strings.Contains(html, "<code>general:gaps_in</code>"))
}
