package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"hyprconf/internal/catalog"
	"hyprconf/internal/session"
	"hyprconf/internal/watcher"
)

// View is the screen currently shown.
type View int

const (
	ViewCategories View = iota
	ViewOptions
	ViewEdit
	ViewSearch
	ViewQuitting
)

// Options control saving from the TUI.
type Options struct {
	Backup bool
	Reload bool
}

// CategoryItem is a category in the list.
type CategoryItem struct {
	Category catalog.Category
	Set      int
	Total    int
}

func (c CategoryItem) Title() string { return c.Category.Title }
func (c CategoryItem) Description() string {
	return fmt.Sprintf("%d/%d set · %s", c.Set, c.Total, c.Category.Description)
}
func (c CategoryItem) FilterValue() string { return c.Category.Name + " " + c.Category.Title }

// model is the Bubbletea model for the TUI.
type model struct {
	ActiveView View

	session *session.Session
	catalog *catalog.Catalog
	watcher *watcher.Watcher
	opts    Options

	categories list.Model
	options    table.Model
	input      textinput.Model
	search     textinput.Model

	category catalog.Category
	rows     []catalog.Option
	editing  catalog.Option
	results  []catalog.Match
	selected int // index into results

	status string
	err    error

	height int
	width  int
}

// initialModel creates the initial TUI model.
func initialModel(s *session.Session, cat *catalog.Catalog, w *watcher.Watcher, opts Options, height int) model {
	defaultWidth := 80
	listHeight := max(height-6, 5)
	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = s.Path()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	t := table.New(
		table.WithColumns(columnsFor(nil, defaultWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(max(height-14, 5)),
	)

	input := textinput.New()
	input.Prompt = "= "
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search options"

	m := model{
		ActiveView: ViewCategories,
		session:    s,
		catalog:    cat,
		watcher:    w,
		opts:       opts,
		categories: l,
		options:    t,
		input:      input,
		search:     search,
		height:     height,
		width:      defaultWidth,
	}
	m.categories.SetItems(m.categoryItems())
	return m
}

func (m model) categoryItems() []list.Item {
	cats := m.catalog.Categories()
	items := make([]list.Item, len(cats))
	for i, c := range cats {
		item := CategoryItem{Category: c}
		for _, o := range c.Options() {
			item.Total++
			if _, ok := m.session.Value(o.Section, o.Key); ok {
				item.Set++
			}
		}
		items[i] = item
	}
	return items
}
