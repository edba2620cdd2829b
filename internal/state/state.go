// Package state holds pending configuration edits as a change set that can
// be saved between sessions and replayed onto a config file.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Change is a single pending assignment of Value to Key in the section at
// Section.
type Change struct {
	Section string    `json:"section" yaml:"section"`
	Key     string    `json:"key" yaml:"key"`
	Value   string    `json:"value" yaml:"value"`
	At      time.Time `json:"at" yaml:"at"`
}

// Entry renders the change as a config line without indentation.
func (c Change) Entry() string {
	if c.Value == "" {
		return c.Key + " ="
	}
	return c.Key + " = " + c.Value
}

// ChangeSet is an ordered set of changes for one config file, holding at most
// one change per (section, key).
type ChangeSet struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	ConfigPath string    `json:"config_path" yaml:"config_path"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"updated_at"`
	Changes    []Change  `json:"changes" yaml:"changes"`
}

// NewChangeSet returns an empty change set for configPath.
func NewChangeSet(configPath string, now time.Time) *ChangeSet {
	return &ChangeSet{
		ID:         uuid.New(),
		ConfigPath: configPath,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Set records value for (section, key). A repeated key updates the existing
// change in place and keeps its position.
func (s *ChangeSet) Set(section, key, value string, at time.Time) {
	s.UpdatedAt = at
	for i := range s.Changes {
		if s.Changes[i].Section == section && s.Changes[i].Key == key {
			s.Changes[i].Value = value
			s.Changes[i].At = at
			return
		}
	}
	s.Changes = append(s.Changes, Change{Section: section, Key: key, Value: value, At: at})
}

// Get returns the pending value for (section, key).
func (s *ChangeSet) Get(section, key string) (string, bool) {
	for _, c := range s.Changes {
		if c.Section == section && c.Key == key {
			return c.Value, true
		}
	}
	return "", false
}

// Remove drops the change for (section, key) and reports whether one existed.
func (s *ChangeSet) Remove(section, key string, at time.Time) bool {
	for i, c := range s.Changes {
		if c.Section == section && c.Key == key {
			s.Changes = append(s.Changes[:i], s.Changes[i+1:]...)
			s.UpdatedAt = at
			return true
		}
	}
	return false
}

// Len is the number of pending changes.
func (s *ChangeSet) Len() int {
	return len(s.Changes)
}

// Clear drops every change.
func (s *ChangeSet) Clear(at time.Time) {
	s.Changes = nil
	s.UpdatedAt = at
}

// Format is a change set file encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFor picks the encoding from the file extension: ".yaml" and ".yml"
// are YAML, anything else JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Marshal encodes s.
func (s *ChangeSet) Marshal(f Format) ([]byte, error) {
	if f == YAML {
		return yaml.Marshal(s)
	}
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes a change set.
func Unmarshal(data []byte, f Format) (*ChangeSet, error) {
	var s ChangeSet
	var err error
	if f == YAML {
		err = yaml.Unmarshal(data, &s)
	} else {
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding change set: %w", err)
	}
	return &s, nil
}

// SaveToFile writes s to path in the format its extension selects.
func (s *ChangeSet) SaveToFile(path string) error {
	data, err := s.Marshal(FormatFor(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFromFile reads a change set written by SaveToFile.
func LoadFromFile(path string) (*ChangeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, FormatFor(path))
}
