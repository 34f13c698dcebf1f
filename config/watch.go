package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// Watch sends on the returned channel whenever the file at path is written, created, renamed or removed,
// until ctx is done.
//
// The parent directory is watched, so replacing the file is seen too.
// Bursts of events are coalesced: the channel holds at most one pending signal.
func Watch(ctx context.Context, path string, logger logr.Logger) (<-chan struct{}, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to add watch on dir %s: %w", dir, err)
	}

	changed := make(chan struct{}, 1)
	go func() {
		defer close(changed)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				logger.V(2).Info("fsnotify event", "name", event.Name, "op", event.Op.String())
				absEvent, _ := filepath.Abs(event.Name)
				if absEvent != absPath || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				logger.V(1).Info("config file changed", "path", absPath, "op", event.Op.String())
				select {
				case changed <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error(err, "config file watch error")
			}
		}
	}()
	return changed, nil
}
