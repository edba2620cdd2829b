// Package core ties the document model to the file system: it opens a
// config with its sources, replays change sets onto it and writes the
// result back.
package core

import (
	"context"
	"fmt"
	"log/slog"

	"hyprconf/internal/catalog"
	"hyprconf/internal/clock"
	"hyprconf/internal/document"
	"hyprconf/internal/loader"
	"hyprconf/internal/state"
)

// Reloader asks the running compositor to re-read its config.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Editor applies change sets to config files.
type Editor struct {
	loader   *loader.Loader
	store    ChangeStore
	reloader Reloader
	clock    clock.Clock
	logger   *slog.Logger
	parse    []document.Option
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithStore keeps pending changes in store.
func WithStore(store ChangeStore) EditorOption {
	return func(e *Editor) { e.store = store }
}

// WithReloader lets Commit reload the compositor.
func WithReloader(r Reloader) EditorOption {
	return func(e *Editor) { e.reloader = r }
}

// WithClock sets the clock used for change timestamps.
func WithClock(c clock.Clock) EditorOption {
	return func(e *Editor) { e.clock = c }
}

// WithLogger sets the editor's logger.
func WithLogger(l *slog.Logger) EditorOption {
	return func(e *Editor) { e.logger = l }
}

// WithParseOptions passes opts to document.Parse when opening configs.
func WithParseOptions(opts ...document.Option) EditorOption {
	return func(e *Editor) { e.parse = append(e.parse, opts...) }
}

func NewEditor(l *loader.Loader, opts ...EditorOption) *Editor {
	e := &Editor{loader: l}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = NewInMemoryChangeStore()
	}
	e.clock = clock.Or(e.clock)
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// Store returns the pending change store.
func (e *Editor) Store() ChangeStore {
	return e.store
}

// Clock returns the editor's clock.
func (e *Editor) Clock() clock.Clock {
	return e.clock
}

// Open reads and parses path with its sources.
func (e *Editor) Open(path string) (*document.Document, error) {
	doc, err := e.loader.Open(path, e.parse...)
	if err != nil {
		return nil, err
	}
	for _, w := range doc.Warnings() {
		e.logger.Warn("source not loaded", "config", path, "error", w)
	}
	return doc, nil
}

// NewChangeSet starts an empty change set for path.
func (e *Editor) NewChangeSet(path string) *state.ChangeSet {
	return state.NewChangeSet(path, e.clock.Now())
}

// Pending returns the stored change set for path, or a new empty one.
func (e *Editor) Pending(path string) (*state.ChangeSet, error) {
	set, err := e.store.Load(path)
	if err != nil {
		return nil, err
	}
	if set == nil {
		set = e.NewChangeSet(path)
	}
	return set, nil
}

// Apply replays every change of set onto doc in order.
func Apply(doc *document.Document, set *state.ChangeSet) error {
	for _, c := range set.Changes {
		if err := doc.AddEntry(c.Section, c.Entry()); err != nil {
			return fmt.Errorf("applying %s %s: %w", c.Section, c.Key, err)
		}
	}
	return nil
}

// CommitOptions control Commit.
type CommitOptions struct {
	// DryRun computes the new text without writing it.
	DryRun bool
	Backup bool
	Reload bool
}

// CommitResult describes a commit.
type CommitResult struct {
	Text    string
	Changed bool
	Backup  string
	Applied int
}

// Commit re-reads set.ConfigPath, so edits made on disk since it was opened
// are kept, replays the changes and writes the file. The stored pending
// changes for the config are dropped afterwards.
func (e *Editor) Commit(ctx context.Context, set *state.ChangeSet, opts CommitOptions) (CommitResult, error) {
	original, err := e.loader.Read(set.ConfigPath)
	if err != nil {
		return CommitResult{}, err
	}
	doc := document.Parse(original)
	if err := Apply(doc, set); err != nil {
		return CommitResult{}, err
	}

	res := CommitResult{
		Text:    doc.String(),
		Applied: set.Len(),
	}
	res.Changed = res.Text != original
	if opts.DryRun {
		return res, nil
	}

	if res.Changed {
		res.Backup, err = e.loader.Write(set.ConfigPath, res.Text, opts.Backup)
		if err != nil {
			return res, err
		}
		e.logger.Info("config written", "path", set.ConfigPath, "changes", set.Len(), "backup", res.Backup)
	}
	if err := e.store.Delete(set.ConfigPath); err != nil {
		return res, err
	}

	if opts.Reload {
		if e.reloader == nil {
			return res, fmt.Errorf("reload requested but no reloader configured")
		}
		if err := e.reloader.Reload(ctx); err != nil {
			return res, fmt.Errorf("reloading hyprland: %w", err)
		}
	}
	return res, nil
}

// Export records the current value of every catalogue option set in doc.
func (e *Editor) Export(doc *document.Document, cat *catalog.Catalog, path string) *state.ChangeSet {
	now := e.clock.Now()
	set := state.NewChangeSet(path, now)
	for _, o := range cat.Options() {
		if v, ok := doc.Value(o.Section, o.Key); ok {
			set.Set(o.Section, o.Key, v, now)
		}
	}
	return set
}
