// Package logging builds the logger handle that is passed to components.
// There is no global logger; callers own what they create here.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a debug-level logger writing to the file at path, plus a
// closer for the underlying file. An empty path disables logging and
// returns a no-op logger with a nil closer.
func New(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open debug log %q: %w", path, err)
	}
	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, f, nil
}
