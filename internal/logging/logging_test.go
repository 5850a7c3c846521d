package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsDisabled(t *testing.T) {
	logger, closer, err := New("")
	if err != nil {
		t.Fatalf("New(\"\"): %v", err)
	}
	if closer != nil {
		t.Fatalf("disabled logger should have no closer")
	}
	// Writing through a disabled logger must be a no-op, not a panic.
	logger.Debug().Str("k", "v").Msg("dropped")
}

func TestNew_WritesDebugLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closer, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug().Str("url", "https://example.com").Msg("api path")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "api path") || !strings.Contains(string(b), "https://example.com") {
		t.Fatalf("log content got %q", string(b))
	}
}
