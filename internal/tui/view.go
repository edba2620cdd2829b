package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"hyprconf/internal/catalog"
	"hyprconf/pkg/color"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	matchStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	frameStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	var body string
	switch m.ActiveView {
	case ViewQuitting:
		return "Bye!\n"
	case ViewOptions:
		body = optionsView(m)
	case ViewEdit:
		body = editView(m)
	case ViewSearch:
		body = searchView(m)
	default:
		body = frameStyle.Render(m.categories.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusLine(m))
}

func statusLine(m model) string {
	var parts []string
	if n := len(m.session.Changes()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unsaved", n))
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	} else if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, dimStyle.Render("ctrl+s save · / search · q quit"))
	return strings.Join(parts, "  ")
}

func optionsView(m model) string {
	set := 0
	for _, o := range m.rows {
		if _, ok := m.session.Value(o.Section, o.Key); ok {
			set++
		}
	}
	ratio := 0.0
	if len(m.rows) > 0 {
		ratio = float64(set) / float64(len(m.rows))
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())
	header := fmt.Sprintf("%s  %s %s",
		headerStyle.Render(m.category.Title),
		bar.ViewAs(ratio),
		dimStyle.Render(fmt.Sprintf("%d/%d set", set, len(m.rows))),
	)

	detail := ""
	if o, ok := m.selectedOption(); ok {
		detail = optionDetail(m, o)
	}
	help := dimStyle.Render("enter edit · space toggle · u revert · esc back")
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.options.View(), detail, help))
}

func optionDetail(m model, o catalog.Option) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(o.Category + ":" + o.Name))
	if o.Kind == catalog.Choice {
		b.WriteString(dimStyle.Render("  (" + strings.Join(o.Choices, ", ") + ")"))
	}
	if v, ok := m.session.Value(o.Section, o.Key); ok && o.Kind == catalog.Color {
		if sw := swatches(v); sw != "" {
			b.WriteString("  " + sw)
		}
	}
	b.WriteString("\n")
	b.WriteString(wrapText(o.Description, max(m.width-6, 20)))
	return b.String()
}

// swatches renders a colour block for each colour in a value such as
// "rgba(33CCFFEE) rgba(00FF99EE) 45deg".
func swatches(value string) string {
	var out []string
	for _, field := range strings.Fields(value) {
		c, ok := color.Parse(field)
		if !ok {
			continue
		}
		out = append(out, lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    "))
	}
	return strings.Join(out, " ")
}

func editView(m model) string {
	o := m.editing
	lines := []string{
		headerStyle.Render("Edit " + o.Category + ":" + o.Name),
		wrapText(o.Description, max(m.width-6, 20)),
		"",
		m.input.View(),
	}
	if o.Kind == catalog.Color {
		if sw := swatches(m.input.Value()); sw != "" {
			lines = append(lines, sw)
		}
	}
	hint := "enter apply · esc cancel"
	if o.Kind == catalog.Choice {
		hint = "tab next choice · " + hint
	}
	lines = append(lines, dimStyle.Render(hint))
	return frameStyle.Render(strings.Join(lines, "\n"))
}

func searchView(m model) string {
	lines := []string{m.search.View(), ""}
	for i, r := range m.results {
		text := highlight(catalog.SearchText(r.Option), r.Matched)
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		lines = append(lines, cursor+text)
	}
	if len(m.results) == 0 && m.search.Value() != "" {
		lines = append(lines, dimStyle.Render("no matches"))
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

// highlight styles the bytes of s at the matched offsets.
func highlight(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
