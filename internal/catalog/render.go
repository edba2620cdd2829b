package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ValueFunc reports the current value of an option, if set.
type ValueFunc func(o Option) (string, bool)

// Markdown renders the catalogue as one table per group. With values set, a
// Current column shows what the config holds.
func (c *Catalog) Markdown(values ValueFunc) string {
	var b strings.Builder
	b.WriteString("# Hyprland options\n")
	for _, cat := range c.categories {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", cat.Title, cat.Description)
		for _, g := range cat.Groups {
			fmt.Fprintf(&b, "\n### %s\n\n", g.Title)
			if g.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", g.Description)
			}
			if values != nil {
				b.WriteString("| Option | Type | Current | Description |\n|---|---|---|---|\n")
			} else {
				b.WriteString("| Option | Type | Description |\n|---|---|---|\n")
			}
			for _, o := range g.Options {
				typ := o.Kind.String()
				if o.Kind == Choice {
					typ = strings.Join(o.Choices, " \\| ")
				}
				fmt.Fprintf(&b, "| `%s:%s` | %s |", cat.Name, o.Name, typ)
				if values != nil {
					cur := ""
					if v, ok := values(o); ok {
						cur = "`" + v + "`"
					}
					fmt.Fprintf(&b, " %s |", escapeCell(cur))
				}
				fmt.Fprintf(&b, " %s |\n", escapeCell(o.Description))
			}
		}
	}
	return b.String()
}

// HTML converts the Markdown rendering to an HTML fragment.
func (c *Catalog) HTML(values ValueFunc) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(c.Markdown(values)), &buf); err != nil {
		return "", fmt.Errorf("rendering catalog: %w", err)
	}
	return buf.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
