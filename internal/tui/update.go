package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"hyprconf/internal/catalog"
	"hyprconf/internal/core"
	"hyprconf/internal/session"
	"hyprconf/internal/watcher"
)

// Message types for Bubbletea update loop
type fileChangedMsg watcher.Event
type watchErrMsg struct{ err error }
type sessionMsg session.Event

const maxSearchResults = 12

// watchFilesCmd waits for the next change to the config or its sources.
func watchFilesCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			return fileChangedMsg(ev)
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err}
		}
	}
}

// sessionEventCmd waits for the next session event.
func sessionEventCmd(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		return sessionMsg(<-s.Events())
	}
}

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case fileChangedMsg:
		return handleFileChanged(m, msg)
	case watchErrMsg:
		m.err = msg.err
		return m, watchFilesCmd(m.watcher)
	case sessionMsg:
		m.status = session.Event(msg).String()
		return m, sessionEventCmd(m.session)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	return m, nil
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	k := msg.String()

	switch k {
	case "ctrl+c":
		return quit(m)
	case "ctrl+s":
		return save(m)
	}

	switch m.ActiveView {
	case ViewQuitting:
		return m, nil

	case ViewCategories:
		switch k {
		case "q":
			return quit(m)
		case "/":
			return startSearch(m)
		case "enter":
			if item, ok := m.categories.SelectedItem().(CategoryItem); ok {
				m = openCategory(m, item.Category)
				m.ActiveView = ViewOptions
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.categories, cmd = m.categories.Update(msg)
		return m, cmd

	case ViewOptions:
		switch k {
		case "q":
			return quit(m)
		case "esc", "backspace":
			m.categories.SetItems(m.categoryItems())
			m.ActiveView = ViewCategories
			return m, nil
		case "/":
			return startSearch(m)
		case "enter":
			if o, ok := m.selectedOption(); ok {
				return startEdit(m, o)
			}
			return m, nil
		case " ":
			if o, ok := m.selectedOption(); ok && o.Kind == catalog.Bool {
				cur, _ := m.session.Value(o.Section, o.Key)
				next := "true"
				if isTrue(cur) {
					next = "false"
				}
				return apply(m, o, next)
			}
			return m, nil
		case "u":
			if o, ok := m.selectedOption(); ok {
				reverted, err := m.session.Revert(o.Section, o.Key)
				m.err = err
				if reverted {
					m.status = "reverted " + o.Name
				}
				m.refreshRows()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.options, cmd = m.options.Update(msg)
		return m, cmd

	case ViewEdit:
		switch k {
		case "esc":
			m.input.Blur()
			m.ActiveView = ViewOptions
			return m, nil
		case "enter":
			m.input.Blur()
			m.ActiveView = ViewOptions
			return apply(m, m.editing, strings.TrimSpace(m.input.Value()))
		case "tab":
			if m.editing.Kind == catalog.Choice && len(m.editing.Choices) > 0 {
				m.input.SetValue(nextChoice(m.editing.Choices, m.input.Value()))
				m.input.CursorEnd()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case ViewSearch:
		switch k {
		case "esc":
			m.search.Blur()
			m.ActiveView = ViewCategories
			return m, nil
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}
			m.search.Blur()
			return jumpTo(m, m.results[m.selected].Option), nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.results = m.catalog.Search(m.search.Value())
		if len(m.results) > maxSearchResults {
			m.results = m.results[:maxSearchResults]
		}
		m.selected = 0
		return m, cmd
	}
	return m, nil
}

func quit(m model) (model, tea.Cmd) {
	if err := m.session.Suspend(); err != nil {
		m.err = err
	}
	m.ActiveView = ViewQuitting
	return m, tea.Quit
}

func save(m model) (model, tea.Cmd) {
	if !m.session.Dirty() {
		m.status = "nothing to save"
		return m, nil
	}
	res, err := m.session.Save(context.Background(), core.CommitOptions{Backup: m.opts.Backup, Reload: m.opts.Reload})
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.status = fmt.Sprintf("saved %d change(s)", res.Applied)
	if res.Backup != "" {
		m.status += ", backup " + filepath.Base(res.Backup)
	}
	m.refreshRows()
	return m, nil
}

func apply(m model, o catalog.Option, value string) (model, tea.Cmd) {
	if err := m.session.Set(o.Section, o.Key, value); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.status = fmt.Sprintf("%s = %s", o.Name, value)
	m.refreshRows()
	return m, nil
}

func startEdit(m model, o catalog.Option) (model, tea.Cmd) {
	cur, _ := m.session.Value(o.Section, o.Key)
	m.editing = o
	m.input.SetValue(cur)
	m.input.CursorEnd()
	m.input.Placeholder = o.Kind.String()
	if o.Kind == catalog.Choice {
		m.input.Placeholder = strings.Join(o.Choices, " | ")
	}
	m.ActiveView = ViewEdit
	cmd := m.input.Focus()
	return m, cmd
}

func startSearch(m model) (model, tea.Cmd) {
	m.search.SetValue("")
	m.results = nil
	m.selected = 0
	m.ActiveView = ViewSearch
	cmd := m.search.Focus()
	return m, cmd
}

// jumpTo shows o's category with o selected.
func jumpTo(m model, o catalog.Option) model {
	if cat, ok := m.catalog.Category(o.Category); ok {
		m = openCategory(m, cat)
		for i, r := range m.rows {
			if r.ID() == o.ID() {
				m.options.SetCursor(i)
			}
		}
	}
	m.ActiveView = ViewOptions
	return m
}

func openCategory(m model, cat catalog.Category) model {
	m.category = cat
	m.rows = cat.Options()
	m.options.SetColumns(columnsFor(m.rows, m.width))
	m.options.SetCursor(0)
	m.refreshRows()
	return m
}

// refreshRows re-reads the values shown in the option table.
func (m *model) refreshRows() {
	rows := make([]table.Row, len(m.rows))
	for i, o := range m.rows {
		rows[i] = table.Row{o.Label, m.displayValue(o), o.Kind.String()}
	}
	m.options.SetRows(rows)
}

func (m model) displayValue(o catalog.Option) string {
	v, ok := m.session.Value(o.Section, o.Key)
	if !ok {
		return "-"
	}
	if _, pending := m.session.Pending(o.Section, o.Key); pending {
		return "* " + v
	}
	return v
}

func (m model) selectedOption() (catalog.Option, bool) {
	i := m.options.Cursor()
	if i < 0 || i >= len(m.rows) {
		return catalog.Option{}, false
	}
	return m.rows[i], true
}

// columnsFor sizes the option table: labels get the width they need up to a
// third of the screen, the kind column is fixed, values take the rest.
func columnsFor(rows []catalog.Option, width int) []table.Column {
	labelWidth := runewidth.StringWidth("Option")
	for _, o := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(o.Label))
	}
	labelWidth = min(labelWidth, max(width/3, 10))
	kindWidth := 7
	valueWidth := max(width-labelWidth-kindWidth-8, 10)
	return []table.Column{
		{Title: "Option", Width: labelWidth},
		{Title: "Value", Width: valueWidth},
		{Title: "Type", Width: kindWidth},
	}
}

func handleFileChanged(m model, msg fileChangedMsg) (model, tea.Cmd) {
	if err := m.session.Reload(); err != nil {
		m.err = err
	} else {
		m.err = nil
		m.status = fmt.Sprintf("%s changed on disk, reloaded", filepath.Base(msg.Path))
	}
	m.refreshRows()
	m.categories.SetItems(m.categoryItems())
	return m, watchFilesCmd(m.watcher)
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.height = msg.Height
	m.width = msg.Width
	m.categories.SetSize(msg.Width-4, max(msg.Height-6, 5))
	m.options.SetHeight(max(msg.Height-14, 5))
	m.options.SetWidth(msg.Width)
	m.options.SetColumns(columnsFor(m.rows, msg.Width))
	m.input.Width = max(msg.Width-8, 10)
	m.search.Width = max(msg.Width-8, 10)
	return m, nil
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true
	}
	return false
}

func nextChoice(choices []string, cur string) string {
	for i, c := range choices {
		if c == cur {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}
