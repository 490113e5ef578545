// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	watcherLoggerPrefix = "file-watcher"

	replaceGrace = 500 * time.Millisecond
	replacePoll  = 25 * time.Millisecond
)

// signals a re-run when the scenario file is rewritten
//
// the directory is watched rather than the file so that editors which
// save by renaming a temporary file are still seen, a removal or rename
// of the file only counts as removal if no replacement appears
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(fileName string, log *logger.L) (*fileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - begin delivering events
func (w *fileWatcher) Start() error {
	dir, _ := filepath.Split(w.filePath)
	if err := w.watcher.Add(dir); nil != err {
		w.log.Errorf("watcher add: %q  error: %s", dir, err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the watcher, the event loop exits
func (w *fileWatcher) Stop() {
	_ = w.watcher.Close()
}

func (w *fileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			switch {
			case fileRemoved(event):
				if w.replaced() {
					w.log.Debugf("file: %q replaced", w.filePath)
					sendEvent(w.change)
					continue
				}
				w.log.Warnf("file: %q removed", w.filePath)
				sendEvent(w.remove)
				return
			case fileChanged(event):
				sendEvent(w.change)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// true if the file exists again within replaceGrace of being removed
// or renamed away, as when an editor keeps the old file as a backup
func (w *fileWatcher) replaced() bool {
	deadline := time.Now().Add(replaceGrace)
	for {
		if _, err := os.Stat(w.filePath); nil == err {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(replacePoll)
	}
}

// a pending event already covers this one
func sendEvent(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func fileRemoved(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
