// Package watcher reloads the installation store when it changes on disk.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
//
// The parent directory is watched instead of the file itself, so editors and
// atomic renames that replace the file are still seen.
type Watcher struct {
	window time.Duration
	logger ports.Logger
}

// NewWatcher creates a new file watcher.
func NewWatcher(window time.Duration, logger ports.Logger) *Watcher {
	return &Watcher{window: window, logger: logger}
}

// Watch blocks until ctx is done, calling onChange each time the content of path changes.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	target := filepath.Clean(path)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsWatcher.Close() }()

	if err := fsWatcher.Add(filepath.Dir(target)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(target))
	}

	var mu sync.Mutex
	last := digestFile(target)
	debouncer := NewDebouncer(w.window, func() {
		mu.Lock()
		current := digestFile(target)
		changed := current != last
		last = current
		mu.Unlock()

		if changed && ctx.Err() == nil {
			onChange()
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				debouncer.Trigger()
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(zerr.With(zerr.Wrap(err, "file watcher error"), "path", target))
		}
	}
}

// digest identifies the content of a file. A missing file has its own digest.
type digest struct {
	sum     uint64
	present bool
}

func digestFile(path string) digest {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		// Unreadable files count as missing until they can be read again.
		return digest{}
	}
	return digest{sum: xxhash.Sum64(data), present: true}
}
