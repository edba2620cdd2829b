// Package session is an editing session over one config file: pending
// changes are applied to the in-memory document as they are made, so every
// read sees them, and are written out together on Save.
package session

import (
	"context"
	"sync"

	"hyprconf/internal/core"
	"hyprconf/internal/document"
	"hyprconf/internal/state"
)

// Event is emitted on the session's event channel.
type Event int

const (
	EventChanged Event = iota
	EventReverted
	EventSaved
	EventReloaded
)

func (e Event) String() string {
	switch e {
	case EventChanged:
		return "changed"
	case EventReverted:
		return "reverted"
	case EventSaved:
		return "saved"
	case EventReloaded:
		return "reloaded"
	}
	return "unknown"
}

// Session owns a document and its pending change set.
type Session struct {
	mu      sync.Mutex
	editor  *core.Editor
	path    string
	doc     *document.Document
	changes *state.ChangeSet
	eventCh chan Event
}

// Open reads path and resumes any pending changes stored for it.
func Open(editor *core.Editor, path string) (*Session, error) {
	changes, err := editor.Pending(path)
	if err != nil {
		return nil, err
	}
	s := &Session{
		editor:  editor,
		path:    path,
		changes: changes,
		eventCh: make(chan Event, 10),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load re-reads the file and replays the pending changes onto it.
func (s *Session) load() error {
	doc, err := s.editor.Open(s.path)
	if err != nil {
		return err
	}
	if err := core.Apply(doc, s.changes); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

func (s *Session) emit(e Event) {
	select {
	case s.eventCh <- e:
	default:
	}
}

// Path is the config file being edited.
func (s *Session) Path() string {
	return s.path
}

// Document returns the document with pending changes applied.
func (s *Session) Document() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Value reads key from the section at path, pending changes included.
func (s *Session) Value(path, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Value(path, key)
}

// Set records a change and applies it to the document immediately.
func (s *Session) Set(path, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := state.Change{Section: path, Key: key, Value: value}
	if err := s.doc.AddEntry(path, c.Entry()); err != nil {
		return err
	}
	s.changes.Set(path, key, value, s.editor.Clock().Now())
	s.emit(EventChanged)
	return nil
}

// Pending returns the pending value for (path, key).
func (s *Session) Pending(path, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes.Get(path, key)
}

// Revert drops the pending change for (path, key) and rebuilds the document
// from disk with the remaining changes.
func (s *Session) Revert(path, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.changes.Remove(path, key, s.editor.Clock().Now()) {
		return false, nil
	}
	if err := s.load(); err != nil {
		return true, err
	}
	s.emit(EventReverted)
	return true, nil
}

// Dirty reports whether there are unsaved changes.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes.Len() > 0
}

// Changes returns a copy of the pending changes in the order made.
func (s *Session) Changes() []state.Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]state.Change(nil), s.changes.Changes...)
}

// Save commits the pending changes and starts a fresh change set.
func (s *Session) Save(ctx context.Context, opts core.CommitOptions) (core.CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.editor.Commit(ctx, s.changes, opts)
	if err != nil {
		return res, err
	}
	if opts.DryRun {
		return res, nil
	}
	s.changes = s.editor.NewChangeSet(s.path)
	if err := s.load(); err != nil {
		return res, err
	}
	s.emit(EventSaved)
	return res, nil
}

// Reload re-reads the file after an external change, keeping pending edits.
func (s *Session) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return err
	}
	s.emit(EventReloaded)
	return nil
}

// Suspend stores unsaved changes so a later Open resumes them.
func (s *Session) Suspend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.changes.Len() == 0 {
		return s.editor.Store().Delete(s.path)
	}
	return s.editor.Store().Save(s.changes)
}

// Events returns the channel of session events.
func (s *Session) Events() <-chan Event {
	return s.eventCh
}
