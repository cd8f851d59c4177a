// Package record persists the finished profile as a single indented JSON
// document under a fixed path.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kalambet/voxform/internal/profile"
)

const (
	// DefaultDir is the output directory relative to the run location.
	DefaultDir = "profiles"
	// DefaultFilename is the record filename unless overridden by config.
	DefaultFilename = "user_profile.json"
)

// Store writes and reads the flat profile record. There is exactly one
// record per store; Save overwrites without versioning.
type Store struct {
	dir      string
	filename string
}

// NewStore creates a Store rooted at dir. Empty arguments fall back to the
// defaults.
func NewStore(dir, filename string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	if filename == "" {
		filename = DefaultFilename
	}
	return &Store{dir: dir, filename: filename}
}

// Path returns the full record path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// Save writes the record, creating the directory if needed, and returns
// the path written. Any existing record at the path is replaced.
func (s *Store) Save(p *profile.Profile) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}
	data = append(data, '\n')

	path := s.Path()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing profile: %w", err)
	}
	return path, nil
}

// Load reads the persisted record back. Callers can use os.IsNotExist on
// the unwrapped error to distinguish "never created" from real I/O faults.
func (s *Store) Load() (*profile.Profile, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}
