package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
)

// DefaultDebounce collapses the burst of events an editor produces on save.
const DefaultDebounce = 200 * time.Millisecond

// errNoPath is returned when there is no file to watch.
var errNoPath = errors.New("content path must be provided to watch it")

// Watch reloads the content file whenever it changes and passes every valid
// revision to onChange. Invalid revisions are logged and skipped. Watch blocks
// until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*domain.Content)) error {
	return watch(ctx, path, DefaultDebounce, onChange)
}

func watch(ctx context.Context, path string, debounce time.Duration, onChange func(*domain.Content)) error {
	if path == "" {
		return errNoPath
	}

	ctx = logger.WithName(ctx, "content-watcher")

	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory: editors often replace the file instead of writing it.
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	logger.InfoKV(ctx, "Watching content file", "path", path)

	timer := time.NewTimer(debounce)
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

			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}

			timer.Reset(debounce)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.WarnKV(ctx, "Content watcher error", "error", werr)
		case <-timer.C:
			c, lerr := Load(ctx, path)
			if lerr != nil {
				logger.WarnKV(ctx, "Content reload skipped", "path", path, "error", lerr)

				continue
			}

			logger.InfoKV(ctx, "Content reloaded", "path", path, "projects", len(c.Projects))
			onChange(c)
		}
	}
}
