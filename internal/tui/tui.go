package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"hyprconf/internal/catalog"
	"hyprconf/internal/session"
	"hyprconf/internal/watcher"
)

// wrapText wraps input text to lines no longer than maxWidth display cells.
// It wraps on word boundaries to avoid breaking words when possible.
func wrapText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		width := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			if width > 0 && width+1+w > maxWidth {
				lines = append(lines, line.String())
				line.Reset()
				width = 0
			}
			if width > 0 {
				line.WriteByte(' ')
				width++
			}
			line.WriteString(word)
			width += w
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// Init starts listening for file and session events.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{sessionEventCmd(m.session)}
	if m.watcher != nil {
		cmds = append(cmds, watchFilesCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Run starts the editor on s. w may be nil to disable reloading on
// external changes.
func Run(s *session.Session, cat *catalog.Catalog, w *watcher.Watcher, opts Options) error {
	m := initialModel(s, cat, w, opts, 24)
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
