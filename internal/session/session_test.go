package session

import (
	"context"
	"testing"
	"time"

	"hyprconf/internal/clock"
	"hyprconf/internal/core"
	"hyprconf/internal/loader"
)

const config = "general {\n    gaps_in = 5\n}\n"

func setup(t *testing.T) (*core.Editor, *loader.MemFS) {
	t.Helper()
	mem := loader.NewMemFS(map[string]string{"/c/hyprland.conf": config})
	clk := clock.NewMock(time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC))
	l := loader.New(loader.WithFS(mem), loader.WithClock(clk))
	return core.NewEditor(l, core.WithClock(clk), core.WithStore(core.NewInMemoryChangeStore())), mem
}

func nextEvent(t *testing.T, s *Session) Event {
	t.Helper()
	select {
	case ev := <-s.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("no session event")
	}
	return -1
}

func TestSession_SetIsVisibleImmediately(t *testing.T) {
	editor, mem := setup(t)
	s, err := Open(editor, "/c/hyprland.conf")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.Set("general", "gaps_in", "12"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("decoration.blur", "size", "4"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if ev := nextEvent(t, s); ev != EventChanged {
		t.Errorf("event = %v, want changed", ev)
	}

	if v, _ := s.Value("general", "gaps_in"); v != "12" {
		t.Errorf("gaps_in = %q, want 12", v)
	}
	if v, _ := s.Value("decoration.blur", "size"); v != "4" {
		t.Errorf("blur size = %q, want 4", v)
	}
	if !s.Dirty() || len(s.Changes()) != 2 {
		t.Errorf("Dirty=%v changes=%d", s.Dirty(), len(s.Changes()))
	}

	data, _ := mem.ReadFile("/c/hyprland.conf")
	if string(data) != config {
		t.Errorf("file written before Save:\n%s", data)
	}
}

func TestSession_Revert(t *testing.T) {
	editor, _ := setup(t)
	s, err := Open(editor, "/c/hyprland.conf")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = s.Set("general", "gaps_in", "12")
	_ = s.Set("general", "border_size", "3")

	ok, err := s.Revert("general", "gaps_in")
	if err != nil || !ok {
		t.Fatalf("Revert = %v, %v", ok, err)
	}
	if v, _ := s.Value("general", "gaps_in"); v != "5" {
		t.Errorf("gaps_in after revert = %q, want 5", v)
	}
	if v, _ := s.Value("general", "border_size"); v != "3" {
		t.Errorf("border_size lost on revert: %q", v)
	}
	if ok, _ := s.Revert("general", "gaps_in"); ok {
		t.Error("second Revert reported a change")
	}
}

func TestSession_Save(t *testing.T) {
	editor, mem := setup(t)
	s, err := Open(editor, "/c/hyprland.conf")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = s.Set("general", "gaps_in", "8")

	res, err := s.Save(context.Background(), core.CommitOptions{Backup: true})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if res.Backup == "" {
		t.Error("no backup written")
	}
	if s.Dirty() {
		t.Error("session still dirty after Save")
	}
	data, _ := mem.ReadFile("/c/hyprland.conf")
	if want := "general {\n    gaps_in = 8\n}\n"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestSession_SuspendAndResume(t *testing.T) {
	editor, mem := setup(t)
	s, err := Open(editor, "/c/hyprland.conf")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = s.Set("misc", "vfr", "true")
	if err := s.Suspend(); err != nil {
		t.Fatalf("Suspend failed: %v", err)
	}

	// The file changes on disk while the session is suspended.
	_ = mem.WriteFile("/c/hyprland.conf", []byte("general {\n    gaps_in = 6\n}\n"), 0o644)

	resumed, err := Open(editor, "/c/hyprland.conf")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if v, _ := resumed.Value("misc", "vfr"); v != "true" {
		t.Errorf("pending change not resumed: %q", v)
	}
	if v, _ := resumed.Value("general", "gaps_in"); v != "6" {
		t.Errorf("external edit lost: %q", v)
	}
}

func TestSession_Reload(t *testing.T) {
	editor, mem := setup(t)
	s, err := Open(editor, "/c/hyprland.conf")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = s.Set("general", "border_size", "2")
	<-s.Events()

	_ = mem.WriteFile("/c/hyprland.conf", []byte("general {\n    gaps_in = 9\n}\n"), 0o644)
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if ev := nextEvent(t, s); ev != EventReloaded {
		t.Errorf("event = %v, want reloaded", ev)
	}
	if v, _ := s.Value("general", "gaps_in"); v != "9" {
		t.Errorf("gaps_in = %q, want 9", v)
	}
	if v, _ := s.Value("general", "border_size"); v != "2" {
		t.Errorf("pending border_size lost: %q", v)
	}
}
