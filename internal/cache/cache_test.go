package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDumpLoad_RoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := map[string]any{"propertyId": "prp_1", "propertyVersion": float64(2)}
	if err := store.Dump("property/www.example.com", in); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	var out map[string]any
	found, err := store.Load("property/www.example.com", &out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("entry not found after Dump")
	}
	if out["propertyId"] != "prp_1" || out["propertyVersion"] != float64(2) {
		t.Fatalf("loaded entry got %v", out)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out map[string]any
	found, err := store.Load("property/never-stored", &out)
	if err != nil {
		t.Fatalf("Load of missing entry: %v", err)
	}
	if found {
		t.Fatalf("missing entry reported as found")
	}
}

func TestLoad_CorruptEntryIsAnError(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	var out map[string]any
	if _, err := store.Load("bad", &out); err == nil {
		t.Fatalf("expected error for corrupt cache entry")
	}
}

func TestNew_ExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AKAGET_TEST_CACHE", dir)
	store, err := New("$AKAGET_TEST_CACHE/sub")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := store.Path("x"), filepath.Join(dir, "sub", "x.json"); got != want {
		t.Fatalf("path got %q, want %q", got, want)
	}
}
