// Package quotefile reads quote files and appends rendered quotes to them.
package quotefile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chriszhang3/quotes/internal/quote"
)

// ErrNoOutput is returned when a write is requested without a destination.
var ErrNoOutput = errors.New("no output file specified")

// Read loads the whole file into memory.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Append writes quotes to the end of path, creating it if needed. Existing
// content is never overwritten.
func Append(path string, quotes []quote.Quote) (err error) {
	if path == "" {
		return ErrNoOutput
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	for _, line := range quote.SerializeForWrite(quotes) {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	slog.Debug("appended quotes", "path", path, "quotes", len(quotes))
	return nil
}
