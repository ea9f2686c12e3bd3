// Package store persists sidebar state as pretty-printed JSON documents in
// a per-user data directory. Missing or corrupt documents load as the zero
// value; corruption is never fatal.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store is a key -> JSON document store rooted at a directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created on first Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute path of the named document.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads the named document into v. A missing or unparseable document
// leaves v untouched and returns false; the caller keeps its default.
func (s *Store) Load(name string, v any) bool {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// Save writes v as the named document, pretty-printed.
func (s *Store) Save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode document")
	}
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
