// Package config loads the optional defaults file (~/.akaget.yaml).
// Flags always override what is found here.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "~/.akaget.yaml"

// File carries the fallback values for the global CLI flags.
type File struct {
	Edgerc   string `yaml:"edgerc"`
	Section  string `yaml:"section"`
	Account  string `yaml:"account"`
	CacheDir string `yaml:"cache_dir"`
}

// Load reads the defaults file at path. A missing file is not an error;
// it simply yields an empty File so flag defaults apply.
func Load(path string) (*File, error) {
	expanded, err := homedir.Expand(os.ExpandEnv(strings.TrimSpace(path)))
	if err != nil {
		return nil, fmt.Errorf("resolve config path %q: %w", path, err)
	}
	b, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config %q: %w", expanded, err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", expanded, err)
	}
	f.Edgerc = strings.TrimSpace(f.Edgerc)
	f.Section = strings.TrimSpace(f.Section)
	f.Account = strings.TrimSpace(f.Account)
	f.CacheDir = strings.TrimSpace(f.CacheDir)
	return &f, nil
}

// Fallback returns v when set, otherwise def.
func Fallback(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
