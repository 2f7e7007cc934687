// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// called with the re-read rate settings after every change
type rateSetter func(limit float64, burst int) error

type configurationWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	apply    rateSetter
}

func newConfigurationWatcher(log *logger.L, targetFile string, apply rateSetter) (*configurationWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filePath)
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &configurationWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		apply:    apply,
	}, nil
}

// Run - background process, returns on shutdown or when the file disappears
func (w *configurationWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if fileRemoved(event) {
				w.log.Errorf("file %s removed, stop", w.filePath)
				break loop
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue loop
			}

			if fileChanged(event) {
				w.reload()
			}
		}
	}

	w.log.Info("stopped")
}

func (w *configurationWatcher) reload() {
	limit, burst, err := getRateLimit(w.filePath)
	if nil != err {
		w.log.Errorf("reload: %q  error: %s", w.filePath, err)
		return
	}
	if err := w.apply(limit, burst); nil != err {
		w.log.Errorf("rate limit: %g  burst: %d  error: %s", limit, burst, err)
	}
}

func fileRemoved(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write
}
