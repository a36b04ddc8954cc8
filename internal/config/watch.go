package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever one of paths is written or created
// and passes the result to fn. Directories are watched rather than files
// so editors that replace the file on save are picked up. Watch returns
// once the watcher is running; it stops when ctx is done.
func Watch(ctx context.Context, paths []string, fn func(*Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		// Directories that do not exist yet are skipped.
		if err := w.Add(dir); err == nil {
			dirs[dir] = true
		}
	}
	if len(dirs) == 0 {
		w.Close()
		return fmt.Errorf("watch config: no existing directory among %v", paths)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil || !targets[abs] || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				fn(LoadFrom(paths...))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fn(nil, fmt.Errorf("watch config: %w", err))
			}
		}
	}()
	return nil
}
