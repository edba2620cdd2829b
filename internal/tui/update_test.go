package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hyprconf/internal/catalog"
	"hyprconf/internal/clock"
	"hyprconf/internal/core"
	"hyprconf/internal/loader"
	"hyprconf/internal/session"
)

const configPath = "/c/hyprland.conf"

func newTestModel(t *testing.T, config string) (model, *loader.MemFS) {
	t.Helper()
	mem := loader.NewMemFS(map[string]string{configPath: config})
	clk := clock.NewMock(time.Date(2024, 7, 4, 8, 0, 0, 0, time.UTC))
	l := loader.New(loader.WithFS(mem), loader.WithClock(clk))
	editor := core.NewEditor(l, core.WithClock(clk), core.WithStore(core.NewInMemoryChangeStore()))
	s, err := session.Open(editor, configPath)
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	return initialModel(s, catalog.Default(), nil, Options{}, 40), mem
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		m, _ = Update(m, key(k))
	}
	return m
}

func TestEditChoiceAndSave(t *testing.T) {
	m, mem := newTestModel(t, "general {\n    gaps_in = 5\n}\n")

	m = press(m, "enter")
	if m.ActiveView != ViewOptions {
		t.Fatalf("view = %v, want options", m.ActiveView)
	}
	if m.category.Name != "general" {
		t.Fatalf("category = %q, want general", m.category.Name)
	}
	o, ok := m.selectedOption()
	if !ok || o.Name != "layout" {
		t.Fatalf("selected = %+v, want layout", o)
	}

	m = press(m, "enter")
	if m.ActiveView != ViewEdit {
		t.Fatalf("view = %v, want edit", m.ActiveView)
	}
	m = press(m, "tab")
	if got := m.input.Value(); got != "dwindle" {
		t.Errorf("tab on empty input = %q, want dwindle", got)
	}
	m = press(m, "tab", "enter")

	if m.ActiveView != ViewOptions {
		t.Errorf("view after apply = %v, want options", m.ActiveView)
	}
	if v, _ := m.session.Value("general", "layout"); v != "master" {
		t.Errorf("layout = %q, want master", v)
	}
	if !m.session.Dirty() {
		t.Error("session should be dirty")
	}

	m = press(m, "ctrl+s")
	if m.err != nil {
		t.Fatalf("save: %v", m.err)
	}
	data, _ := mem.ReadFile(configPath)
	want := "general {\n    gaps_in = 5\n    layout = master\n}\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
	if m.session.Dirty() {
		t.Error("session still dirty after save")
	}
}

func TestEscCancelsEdit(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = press(m, "enter", "enter", "master", "esc")
	if m.ActiveView != ViewOptions {
		t.Fatalf("view = %v, want options", m.ActiveView)
	}
	if _, ok := m.session.Value("general", "layout"); ok {
		t.Error("cancelled edit was applied")
	}
}

func TestToggleBoolAndRevert(t *testing.T) {
	m, _ := newTestModel(t, "general {\n    resize_on_border = true\n}\n")
	o, ok := m.catalog.Lookup("general", "resize_on_border")
	if !ok {
		t.Fatal("resize_on_border missing from catalog")
	}
	m = jumpTo(m, o)
	if sel, _ := m.selectedOption(); sel.ID() != o.ID() {
		t.Fatalf("selected %q, want %q", sel.ID(), o.ID())
	}

	m = press(m, " ")
	if v, _ := m.session.Value("general", "resize_on_border"); v != "false" {
		t.Errorf("after toggle = %q, want false", v)
	}
	m = press(m, " ")
	if v, _ := m.session.Value("general", "resize_on_border"); v != "true" {
		t.Errorf("after second toggle = %q, want true", v)
	}

	m = press(m, "u")
	if m.session.Dirty() {
		t.Error("revert left pending changes")
	}
	if v, _ := m.session.Value("general", "resize_on_border"); v != "true" {
		t.Errorf("after revert = %q, want true", v)
	}
}

func TestSpaceIgnoresNonBool(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = press(m, "enter", " ")
	if m.session.Dirty() {
		t.Error("space on a choice option changed it")
	}
}

func TestSearchJumpsToOption(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = press(m, "/")
	if m.ActiveView != ViewSearch {
		t.Fatalf("view = %v, want search", m.ActiveView)
	}
	m = press(m, "blur:passes")
	if len(m.results) == 0 {
		t.Fatal("no search results")
	}
	for i, r := range m.results {
		if r.Option.ID() == "decoration/blur:passes" {
			m.selected = i
		}
	}
	m = press(m, "enter")

	if m.ActiveView != ViewOptions {
		t.Fatalf("view = %v, want options", m.ActiveView)
	}
	if m.category.Name != "decoration" {
		t.Errorf("category = %q, want decoration", m.category.Name)
	}
	o, _ := m.selectedOption()
	if o.Section != "decoration.blur" || o.Key != "passes" {
		t.Errorf("selected %s %s, want decoration.blur passes", o.Section, o.Key)
	}
}

func TestFileChangedReloads(t *testing.T) {
	m, mem := newTestModel(t, "general {\n    gaps_in = 5\n}\n")
	m = press(m, "enter")
	if err := mem.WriteFile(configPath, []byte("general {\n    gaps_in = 9\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, _ = handleFileChanged(m, fileChangedMsg{Path: configPath})
	if v, _ := m.session.Value("general", "gaps_in"); v != "9" {
		t.Errorf("gaps_in = %q, want 9", v)
	}
	if !strings.Contains(m.status, "hyprland.conf") {
		t.Errorf("status = %q", m.status)
	}
}

func TestQuitSuspends(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = press(m, "enter", "enter", "master", "enter")
	m, cmd := Update(m, key("q"))
	if m.ActiveView != ViewQuitting {
		t.Errorf("view = %v, want quitting", m.ActiveView)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	pending, ok := m.session.Pending("general", "layout")
	if !ok || pending != "master" {
		t.Errorf("pending = %q, %v", pending, ok)
	}
	if ModelView(m) != "Bye!\n" {
		t.Errorf("quitting view = %q", ModelView(m))
	}
}

func TestModelViewRendersEachScreen(t *testing.T) {
	m, _ := newTestModel(t, "general {\n    col.active_border = rgba(33ccffee)\n}\n")
	if v := ModelView(m); !strings.Contains(v, "General") {
		t.Errorf("categories view missing General:\n%s", v)
	}
	m = press(m, "enter")
	if v := ModelView(m); !strings.Contains(v, "Layout") {
		t.Errorf("options view missing Layout:\n%s", v)
	}
	m = press(m, "enter")
	if v := ModelView(m); !strings.Contains(v, "Edit general:layout") {
		t.Errorf("edit view missing header:\n%s", v)
	}
}
