// Package cache persists API results as JSON files so repeated lookups
// can skip the network.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Store writes and reads JSON documents under a single cache folder.
// Names may contain slashes; nested folders are created on demand.
type Store struct {
	dir string
}

// New resolves the cache folder, expanding "~" and environment
// variables in the given path.
func New(dir string) (*Store, error) {
	expanded, err := homedir.Expand(os.ExpandEnv(strings.TrimSpace(dir)))
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir %q: %w", dir, err)
	}
	return &Store{dir: strings.TrimRight(expanded, "/")}, nil
}

// Path returns the full file path for a cache entry name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Dump stores v under name, creating parent folders as needed.
func (s *Store) Dump(name string, v any) error {
	full := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create cache folder for %q: %w", name, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", name, err)
	}
	if err := os.WriteFile(full, b, 0o644); err != nil {
		return fmt.Errorf("write cache entry %q: %w", name, err)
	}
	return nil
}

// Load reads the entry stored under name into v. A missing file means
// "no cached value" and reports found=false without an error.
func (s *Store) Load(name string, v any) (found bool, err error) {
	b, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read cache entry %q: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("decode cache entry %q: %w", name, err)
	}
	return true, nil
}
