// Package jsonfile provides a RecordSource that reads a JSON export of
// the admin service's records from disk and can watch it for changes.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mdsolution/vitrine/internal/adapters/driven/recordjson"
	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.RecordSource  = (*Source)(nil)
	_ driven.RecordWatcher = (*Source)(nil)
)

// DefaultDebounce batches the bursts of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Source reads records from a JSON file in the admin wire format.
// The file is re-read on every Fetch.
type Source struct {
	path     string
	debounce time.Duration
}

// NewSource creates a source for the file at path.
func NewSource(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonfile: path is required: %w", domain.ErrSourceNotConfigured)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %w", err)
	}
	return &Source{path: abs, debounce: DefaultDebounce}, nil
}

// Path returns the absolute file path.
func (s *Source) Path() string {
	return s.path
}

// Fetch reads and decodes the file.
func (s *Source) Fetch(ctx context.Context) ([]domain.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer f.Close()

	records, err := recordjson.DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: %s: %w", s.path, err)
	}
	return records, nil
}

// Watch calls onChange after the file is written, created, renamed or
// removed. It watches the parent directory so that editors replacing the
// file atomically are still seen. Watch blocks until ctx is cancelled.
func (s *Source) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("jsonfile: creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("jsonfile: watching %s: %w", dir, err)
	}
	logger.Debug("jsonfile: watching %s", s.path)

	timer := time.NewTimer(s.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("jsonfile: %s", event)
			timer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("jsonfile: watcher error: %v", err)

		case <-timer.C:
			onChange()
		}
	}
}
