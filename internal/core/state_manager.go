package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"hyprconf/internal/state"
)

// ChangeStore persists the pending change set of a config between sessions.
type ChangeStore interface {
	// Load returns the pending changes for configPath, or nil if none.
	Load(configPath string) (*state.ChangeSet, error)
	Save(set *state.ChangeSet) error
	Delete(configPath string) error
}

// FileChangeStore keeps one pending change set in a file. The encoding
// follows the file extension.
type FileChangeStore struct {
	File string
}

func NewFileChangeStore(file string) *FileChangeStore {
	return &FileChangeStore{File: file}
}

func (s *FileChangeStore) Load(configPath string) (*state.ChangeSet, error) {
	set, err := state.LoadFromFile(s.File)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading pending changes: %w", err)
	}
	if set.ConfigPath != configPath {
		return nil, nil
	}
	return set, nil
}

func (s *FileChangeStore) Save(set *state.ChangeSet) error {
	if err := os.MkdirAll(filepath.Dir(s.File), 0o750); err != nil {
		return fmt.Errorf("saving pending changes: %w", err)
	}
	if err := set.SaveToFile(s.File); err != nil {
		return fmt.Errorf("saving pending changes: %w", err)
	}
	return nil
}

// Delete removes the file if it holds changes for configPath.
func (s *FileChangeStore) Delete(configPath string) error {
	set, err := s.Load(configPath)
	if err != nil || set == nil {
		return err
	}
	if err := os.Remove(s.File); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// InMemoryChangeStore implements ChangeStore without disk I/O.
type InMemoryChangeStore struct {
	mu   sync.Mutex
	sets map[string]state.ChangeSet
}

func NewInMemoryChangeStore() *InMemoryChangeStore {
	return &InMemoryChangeStore{sets: make(map[string]state.ChangeSet)}
}

func (s *InMemoryChangeStore) Load(configPath string) (*state.ChangeSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[configPath]
	if !ok {
		return nil, nil
	}
	set.Changes = append([]state.Change(nil), set.Changes...)
	return &set, nil
}

func (s *InMemoryChangeStore) Save(set *state.ChangeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cpy := *set
	cpy.Changes = append([]state.Change(nil), set.Changes...)
	s.sets[set.ConfigPath] = cpy
	return nil
}

func (s *InMemoryChangeStore) Delete(configPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, configPath)
	return nil
}
