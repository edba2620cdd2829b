package state

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func sampleSet() *ChangeSet {
	t0 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewChangeSet("/home/u/.config/hypr/hyprland.conf", t0)
	s.Set("general", "gaps_in", "10", t0.Add(time.Minute))
	s.Set("decoration.blur", "size", "5", t0.Add(2*time.Minute))
	s.Set("general", "col.active_border", "rgba(33CCFFEE)", t0.Add(3*time.Minute))
	return s
}

func TestChangeSet_SetUpdatesInPlace(t *testing.T) {
	s := sampleSet()
	at := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
	s.Set("general", "gaps_in", "20", at)

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.Changes[0].Value != "20" || !s.Changes[0].At.Equal(at) {
		t.Errorf("first change = %+v, want gaps_in=20 at %v", s.Changes[0], at)
	}
	if !s.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt = %v, want %v", s.UpdatedAt, at)
	}
	if v, ok := s.Get("decoration.blur", "size"); !ok || v != "5" {
		t.Errorf("Get = %q, %v", v, ok)
	}
}

func TestChangeSet_Remove(t *testing.T) {
	s := sampleSet()
	if !s.Remove("decoration.blur", "size", time.Now()) {
		t.Fatal("Remove reported missing change")
	}
	if s.Remove("decoration.blur", "size", time.Now()) {
		t.Error("second Remove reported success")
	}
	if _, ok := s.Get("decoration.blur", "size"); ok {
		t.Error("removed change still present")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}

	s.Clear(time.Now())
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}

func TestChange_Entry(t *testing.T) {
	tests := []struct {
		c    Change
		want string
	}{
		{Change{Key: "gaps_in", Value: "5"}, "gaps_in = 5"},
		{Change{Key: "follow_mouse"}, "follow_mouse ="},
	}
	for _, tt := range tests {
		if got := tt.c.Entry(); got != tt.want {
			t.Errorf("Entry() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"changes.json": JSON,
		"changes.yaml": YAML,
		"changes.YML":  YAML,
		"changes":      JSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestChangeSet_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"changes.json", "changes.yaml"} {
		t.Run(name, func(t *testing.T) {
			s := sampleSet()
			path := filepath.Join(dir, name)
			if err := s.SaveToFile(path); err != nil {
				t.Fatalf("SaveToFile failed: %v", err)
			}
			loaded, err := LoadFromFile(path)
			if err != nil {
				t.Fatalf("LoadFromFile failed: %v", err)
			}
			if !reflect.DeepEqual(s, loaded) {
				t.Errorf("loaded change set differs.\nGot:  %+v\nWant: %+v", loaded, s)
			}
		})
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Unmarshal([]byte("{not json"), JSON); err == nil {
		t.Error("expected decode error")
	}
}
