package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsEmptyDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *f != (File{}) {
		t.Fatalf("expected empty defaults, got %+v", f)
	}
}

func TestLoad_ParsesAndTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akaget.yaml")
	raw := "edgerc: ~/.edgerc-staging\nsection: \" papi \"\naccount: 1-ABC123\ncache_dir: ~/.akaget-cache\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Edgerc != "~/.edgerc-staging" {
		t.Fatalf("edgerc got %q", f.Edgerc)
	}
	if f.Section != "papi" {
		t.Fatalf("section not trimmed: %q", f.Section)
	}
	if f.Account != "1-ABC123" || f.CacheDir != "~/.akaget-cache" {
		t.Fatalf("defaults got %+v", f)
	}
}

func TestLoad_MalformedYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akaget.yaml")
	if err := os.WriteFile(path, []byte("edgerc: [unterminated"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback("", "def"); got != "def" {
		t.Fatalf("empty value should fall back, got %q", got)
	}
	if got := Fallback("  set  ", "def"); got != "set" {
		t.Fatalf("set value should win trimmed, got %q", got)
	}
}
