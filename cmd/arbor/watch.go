package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gekko3d/arbor"
)

// watchParams calls regenerate every time path is written or replaced,
// until ctx is cancelled. The directory is watched rather than the file so
// editors that save by rename keep triggering events.
func watchParams(ctx context.Context, path string, logger arbor.Logger, regenerate func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	logger.Infof("watching %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debugf("%s: %s", event.Op, event.Name)
			if err := regenerate(); err != nil {
				// A half-saved file is common while editing; keep watching.
				logger.Warnf("regenerate: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watcher: %v", err)
		}
	}
}
