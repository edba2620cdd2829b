package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprconf/internal/catalog"
	"hyprconf/internal/clock"
	"hyprconf/internal/loader"
)

const config = `source = colors.conf

general {
    gaps_in = 5
    layout = dwindle
}
`

type fakeReloader struct {
	calls int
	err   error
}

func (f *fakeReloader) Reload(context.Context) error {
	f.calls++
	return f.err
}

func newTestEditor(t *testing.T, opts ...EditorOption) (*Editor, *loader.MemFS) {
	t.Helper()
	mem := loader.NewMemFS(map[string]string{
		"/c/hyprland.conf": config,
		"/c/colors.conf":   "general {\n    col.active_border = rgba(33CCFFEE)\n}\n",
	})
	clk := clock.NewMock(time.Date(2024, 7, 4, 8, 0, 0, 0, time.UTC))
	l := loader.New(loader.WithFS(mem), loader.WithClock(clk))
	return NewEditor(l, append([]EditorOption{WithClock(clk)}, opts...)...), mem
}

func read(t *testing.T, mem *loader.MemFS, path string) string {
	t.Helper()
	data, err := mem.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCommit(t *testing.T) {
	reloader := &fakeReloader{}
	store := NewInMemoryChangeStore()
	e, mem := newTestEditor(t, WithReloader(reloader), WithStore(store))

	set := e.NewChangeSet("/c/hyprland.conf")
	set.Set("general", "gaps_in", "10", e.Clock().Now())
	set.Set("decoration.blur", "size", "5", e.Clock().Now())
	require.NoError(t, store.Save(set))

	// An edit made on disk after the set was recorded survives the commit.
	require.NoError(t, mem.WriteFile("/c/hyprland.conf", []byte(config+"\nbind = SUPER, Q, exec, kitty\n"), 0o644))

	res, err := e.Commit(context.Background(), set, CommitOptions{Backup: true, Reload: true})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, res.Applied)
	assert.Equal(t, "/c/hyprland.conf.bak.20240704-080000", res.Backup)
	assert.Equal(t, 1, reloader.calls)

	want := `source = colors.conf

general {
    gaps_in = 10
    layout = dwindle
}

bind = SUPER, Q, exec, kitty
decoration {
    blur {
        size = 5
    }
}
`
	assert.Equal(t, want, read(t, mem, "/c/hyprland.conf"))
	assert.Equal(t, config+"\nbind = SUPER, Q, exec, kitty\n", read(t, mem, res.Backup))

	pending, err := store.Load("/c/hyprland.conf")
	require.NoError(t, err)
	assert.Nil(t, pending, "pending changes kept after commit")
}

func TestCommitDryRun(t *testing.T) {
	e, mem := newTestEditor(t)
	set := e.NewChangeSet("/c/hyprland.conf")
	set.Set("general", "layout", "master", e.Clock().Now())

	res, err := e.Commit(context.Background(), set, CommitOptions{DryRun: true, Backup: true})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "layout = master")
	assert.Empty(t, res.Backup)
	assert.Equal(t, config, read(t, mem, "/c/hyprland.conf"))
}

func TestCommitUnchanged(t *testing.T) {
	e, mem := newTestEditor(t)
	set := e.NewChangeSet("/c/hyprland.conf")
	set.Set("general", "gaps_in", "5", e.Clock().Now())

	res, err := e.Commit(context.Background(), set, CommitOptions{Backup: true})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, res.Backup)
	assert.Len(t, mem.Paths(), 2)
}

func TestCommitErrors(t *testing.T) {
	e, _ := newTestEditor(t)

	set := e.NewChangeSet("/c/missing.conf")
	_, err := e.Commit(context.Background(), set, CommitOptions{})
	assert.Error(t, err)

	set = e.NewChangeSet("/c/hyprland.conf")
	set.Set("general", "gaps_in", "1", e.Clock().Now())
	_, err = e.Commit(context.Background(), set, CommitOptions{Reload: true})
	assert.Error(t, err, "reload without reloader")

	boom := errors.New("hyprctl: connection refused")
	e, _ = newTestEditor(t, WithReloader(&fakeReloader{err: boom}))
	set = e.NewChangeSet("/c/hyprland.conf")
	set.Set("general", "gaps_in", "2", e.Clock().Now())
	_, err = e.Commit(context.Background(), set, CommitOptions{Reload: true})
	assert.ErrorIs(t, err, boom)
}

func TestExport(t *testing.T) {
	e, _ := newTestEditor(t)
	doc, err := e.Open("/c/hyprland.conf")
	require.NoError(t, err)

	set := e.Export(doc, catalog.Default(), "/c/hyprland.conf")
	got := make(map[string]string)
	for _, c := range set.Changes {
		got[c.Section+":"+c.Key] = c.Value
	}
	assert.Equal(t, map[string]string{
		"general:gaps_in":           "5",
		"general:layout":            "dwindle",
		"general:col.active_border": "rgba(33CCFFEE)",
	}, got)
}

func TestPending(t *testing.T) {
	store := NewInMemoryChangeStore()
	e, _ := newTestEditor(t, WithStore(store))

	set, err := e.Pending("/c/hyprland.conf")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())

	set.Set("misc", "vfr", "true", e.Clock().Now())
	require.NoError(t, store.Save(set))

	again, err := e.Pending("/c/hyprland.conf")
	require.NoError(t, err)
	assert.Equal(t, set.ID, again.ID)
}
