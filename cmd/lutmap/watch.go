package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// watchLoop runs once immediately, then re-runs on every change to target
// until the context is canceled. Failed runs are logged, not fatal, so a
// half-saved file does not kill the session.
func watchLoop(ctx context.Context, target string, run func() error) error {
	if err := run(); err != nil {
		log.WithError(err).Error("initial run failed")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors replace files on save, which detaches a
	// watch held on the file itself.
	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Clean(target)
	log.WithField("path", name).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.WithField("op", ev.Op.String()).Debug("input changed")
			if err := run(); err != nil {
				log.WithError(err).Error("remap failed")
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(werr).Warn("watcher error")
		}
	}
}
