// Package watcher reports changes to a config file and the files it
// sources. It watches the parent directories, since editors often replace
// a file by renaming a new one over it, and coalesces bursts of events.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hyprconf/internal/clock"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported.
const DefaultDebounce = 150 * time.Millisecond

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("watcher closed")

// Op is the kind of change seen.
type Op int

const (
	OpWrite Op = iota
	OpCreate
	OpRemove
	OpRename
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "write"
	}
}

func opFor(op fsnotify.Op) Op {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	case op.Has(fsnotify.Create):
		return OpCreate
	}
	return OpWrite
}

// Event is a debounced change to a watched file.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher watches a set of files.
type Watcher struct {
	fsw      *fsnotify.Watcher
	clock    clock.Clock
	debounce time.Duration

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]bool
	pending map[string]Event
	closed  bool

	events chan Event
	errors chan error
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before an event is emitted.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithClock sets the clock driving the debounce.
func WithClock(c clock.Clock) Option {
	return func(w *Watcher) { w.clock = c }
}

// New starts a watcher with nothing watched yet.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: DefaultDebounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		pending:  make(map[string]Event),
		events:   make(chan Event, 16),
		errors:   make(chan error, 4),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.clock = clock.Or(w.clock)

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch adds files. Their directories must exist; the files need not.
func (w *Watcher) Watch(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		dir := filepath.Dir(abs)
		if !w.dirs[dir] {
			if err := w.fsw.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			w.dirs[dir] = true
		}
		w.files[abs] = true
	}
	return nil
}

// Files lists the watched files.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Events returns the channel of debounced changes.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stopCh)
	err := w.fsw.Close()
	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	interval := w.debounce / 2
	if interval <= 0 {
		interval = w.debounce
	}
	ticker := w.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.record(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-ticker.C():
			for _, ev := range w.due() {
				select {
				case w.events <- ev:
				case <-w.stopCh:
					return
				}
			}
		}
	}
}

// record notes an fsnotify event for a watched file.
func (w *Watcher) record(ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod {
		return
	}
	path := filepath.Clean(ev.Name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[path] {
		return
	}
	w.pending[path] = Event{Path: path, Op: opFor(ev.Op), Time: w.clock.Now()}
}

// due removes and returns the pending events that have been quiet for the
// debounce period, oldest first.
func (w *Watcher) due() []Event {
	now := w.clock.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []Event
	for path, ev := range w.pending {
		if now.Sub(ev.Time) >= w.debounce {
			out = append(out, ev)
			delete(w.pending, path)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Time.Equal(out[j].Time) {
			return out[i].Time.Before(out[j].Time)
		}
		return out[i].Path < out[j].Path
	})
	return out
}
