// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long Watch waits after the last change
// to a config file before reloading it, so that the several
// events of one save result in one reload.
var WatchDelay = 100 * time.Millisecond

// Watch watches the given config file and all of its includes, and calls
// fn with the newly opened config every time one of them changes. Configs
// that fail to open are logged and skipped, keeping the last good one.
// The directories of the files are watched rather than the files, so that
// editors that save by renaming are seen. Watch blocks until the context
// is done.
func Watch(ctx context.Context, file string, fn func(cfg *Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	file = filepath.Clean(file)
	if err := w.Add(filepath.Dir(file)); err != nil {
		return err
	}
	files := map[string]bool{}
	dirs := map[string]bool{filepath.Dir(file): true}
	watchFiles := func(incs []string) {
		clear(files)
		for _, f := range append([]string{file}, incs...) {
			f = filepath.Clean(f)
			files[f] = true
			dir := filepath.Dir(f)
			if dirs[dir] {
				continue
			}
			if err := w.Add(dir); err != nil {
				slog.Warn("config: cannot watch directory", "dir", dir, "err", err)
				continue
			}
			dirs[dir] = true
		}
	}
	var incs []string
	if cfg, err := Open(file); err == nil {
		incs = cfg.Includes
	}
	watchFiles(incs)

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("config: file changed", "file", ev.Name, "op", ev.Op.String())
			reload = time.After(WatchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config: watcher error", "err", err)
		case <-reload:
			reload = nil
			cfg, err := Open(file)
			if err != nil {
				slog.Error("config: reload failed, keeping previous config", "file", file, "err", err)
				continue
			}
			watchFiles(cfg.Includes)
			slog.Info("config: reloaded", "file", file)
			fn(cfg)
		}
	}
}
