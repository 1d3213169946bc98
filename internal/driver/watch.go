package driver

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch lints once, then relints whenever a Go file changes. handle is
// called with every result, including the initial one. Edits are debounced
// and mapped through the import graph, so an edit relints the changed
// package and its transitive importers; edits in directories the last load
// did not cover trigger a full run.
func (d *Driver) Watch(ctx context.Context, handle func(*Result)) error {
	result, err := d.Run(ctx)
	if err != nil {
		return err
	}
	handle(result)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	d.watchDirs(watcher)

	var (
		pendMu  sync.Mutex
		pending = map[string]bool{}
	)
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".go" {
				continue
			}

			pendMu.Lock()
			pending[filepath.Dir(event.Name)] = true
			pendMu.Unlock()

			// Debounce: editors fire several events per save.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				pendMu.Lock()
				changed := pending
				pending = map[string]bool{}
				pendMu.Unlock()

				res, err := d.rerun(ctx, changed)
				if err != nil {
					d.logger.Error("relint failed", "error", err)
					return
				}
				d.watchDirs(watcher)
				handle(res)
			})

		case err := <-watcher.Errors:
			d.logger.Error("watcher error", "error", err)
		}
	}
}

// rerun relints the packages affected by edits under the changed directories.
func (d *Driver) rerun(ctx context.Context, changed map[string]bool) (*Result, error) {
	d.mu.Lock()
	var paths []string
	full := false
	for dir := range changed {
		path, ok := d.dirs[dir]
		if !ok {
			full = true
			break
		}
		paths = append(paths, path)
	}
	var patterns []string
	if !full && d.graph != nil {
		patterns = d.graph.Affected(paths...)
	}
	d.mu.Unlock()

	if full || len(patterns) == 0 {
		d.logger.Debug("change outside known packages, relinting everything")
		return d.run(ctx, d.opts.Patterns)
	}
	d.logger.Debug("incremental relint", "changed", paths, "affected", len(patterns))
	return d.run(ctx, patterns)
}

// watchDirs registers every package source directory from the last load.
// Directories added on earlier loads stay watched, so a later edit in a
// package outside the current subset still produces an event.
func (d *Driver) watchDirs(watcher *fsnotify.Watcher) {
	d.mu.Lock()
	dirs := make([]string, 0, len(d.dirs))
	for dir := range d.dirs {
		dirs = append(dirs, dir)
	}
	d.mu.Unlock()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			d.logger.Error("cannot watch directory", "dir", dir, "error", err)
		}
	}
}
