package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprconf/internal/clock"
	"hyprconf/internal/document"
)

func TestExpandHome(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"~", "/home/u"},
		{"~/.config/hypr/a.conf", "/home/u/.config/hypr/a.conf"},
		{"~user/x", "~user/x"},
		{"/etc/x", "/etc/x"},
		{"rel/x", "rel/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in, "/home/u"); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenResolvesSources(t *testing.T) {
	mem := NewMemFS(map[string]string{
		"/home/u/.config/hypr/hyprland.conf": "source = ~/.config/hypr/colors.conf\nsource = conf.d/*.conf\nsource = missing.conf\n",
		"/home/u/.config/hypr/colors.conf":   "general {\n    col.active_border = rgba(FF0000FF)\n}\n",
		"/home/u/.config/hypr/conf.d/a.conf": "misc {\n    vfr = true\n}\n",
		"/home/u/.config/hypr/conf.d/b.conf": "misc {\n    vrr = 1\n}\n",
	})
	l := New(WithFS(mem), WithHome("/home/u"))

	doc, err := l.Open("~/.config/hypr/hyprland.conf")
	require.NoError(t, err)

	var paths []string
	for _, s := range doc.Sources() {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{
		"/home/u/.config/hypr/colors.conf",
		"/home/u/.config/hypr/conf.d/a.conf",
		"/home/u/.config/hypr/conf.d/b.conf",
	}, paths)
	assert.Equal(t, "rgba(FF0000FF)", doc.Get("general", "col.active_border"))
	assert.Equal(t, "1", doc.Get("misc", "vrr"))

	require.Len(t, doc.Warnings(), 1)
	assert.ErrorIs(t, doc.Warnings()[0], document.ErrUnresolvedSource)
	assert.ErrorIs(t, doc.Warnings()[0], fs.ErrNotExist)

	watch := l.WatchPaths("~/.config/hypr/hyprland.conf", doc)
	assert.Len(t, watch, 4)
	assert.Equal(t, "/home/u/.config/hypr/hyprland.conf", watch[0])
}

func TestGlobWithoutMatches(t *testing.T) {
	mem := NewMemFS(map[string]string{"/c/hyprland.conf": "source = /c/none/*.conf\n"})
	doc, err := New(WithFS(mem)).Open("/c/hyprland.conf")
	require.NoError(t, err)
	require.Len(t, doc.Warnings(), 1)
	assert.True(t, errors.Is(doc.Warnings()[0], ErrNoMatches))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := New(WithFS(NewMemFS(nil))).Open("/nope.conf")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteWithBackup(t *testing.T) {
	mem := NewMemFS(map[string]string{"/c/hyprland.conf": "old\n"})
	clk := clock.NewMock(time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC))
	l := New(WithFS(mem), WithClock(clk))

	backup, err := l.Write("/c/hyprland.conf", "new\n", true)
	require.NoError(t, err)
	assert.Equal(t, "/c/hyprland.conf.bak.20240309-140507", backup)

	got, _ := mem.ReadFile(backup)
	assert.Equal(t, "old\n", string(got))
	got, _ = mem.ReadFile("/c/hyprland.conf")
	assert.Equal(t, "new\n", string(got))

	backup, err = l.Write("/c/fresh.conf", "x\n", true)
	require.NoError(t, err)
	assert.Empty(t, backup, "nothing to back up")
}

func TestOSFSWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyprland.conf")
	require.NoError(t, os.WriteFile(path, []byte("general {\n}\n"), 0o600))

	l := New()
	backup, err := l.Write(path, "general {\n    gaps_in = 2\n}\n", false)
	require.NoError(t, err)
	assert.Empty(t, backup)

	text, err := l.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "general {\n    gaps_in = 2\n}\n", text)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}
