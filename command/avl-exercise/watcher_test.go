// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const eventTimeout = 5 * time.Second

func TestFileWatcher(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "watched.conf")
	require.NoError(t, os.WriteFile(fileName, []byte("return {}"), 0600), "create")

	w, err := newFileWatcher(fileName, logger.New(category))
	require.NoError(t, err, "new watcher")
	require.NoError(t, w.Start(), "start")
	defer w.Stop()

	// other files in the directory are ignored
	other := filepath.Join(filepath.Dir(fileName), "other.conf")
	require.NoError(t, os.WriteFile(other, []byte("return {}"), 0600), "write other")
	select {
	case <-w.change:
		t.Fatal("change event for another file")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(fileName, []byte("return { seed = 1 }"), 0600), "rewrite")
	select {
	case <-w.change:
	case <-time.After(eventTimeout):
		t.Fatal("no change event")
	}

	require.NoError(t, os.Remove(fileName), "remove")
	select {
	case <-w.remove:
	case <-time.After(eventTimeout):
		t.Fatal("no remove event")
	}
}

func TestFileWatcherRenameOnSave(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "watched.conf")
	require.NoError(t, os.WriteFile(fileName, []byte("return {}"), 0600), "create")

	w, err := newFileWatcher(fileName, logger.New(category))
	require.NoError(t, err, "new watcher")
	require.NoError(t, w.Start(), "start")
	defer w.Stop()

	// keep the old file as a backup then write the new one
	require.NoError(t, os.Rename(fileName, fileName+"~"), "rename to backup")
	require.NoError(t, os.WriteFile(fileName, []byte("return { seed = 2 }"), 0600), "write new")

	select {
	case <-w.change:
	case <-w.remove:
		t.Fatal("replaced file reported as removed")
	case <-time.After(eventTimeout):
		t.Fatal("no change event")
	}

	select {
	case <-w.remove:
		t.Fatal("replaced file reported as removed")
	case <-time.After(2 * replaceGrace):
	}
}

func TestNewFileWatcherRequiresLogger(t *testing.T) {
	w, err := newFileWatcher("any.conf", nil)
	assert.Nil(t, w, "watcher")
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "error")
}

func TestSendEventDoesNotBlock(t *testing.T) {
	ch := make(chan struct{}, 1)
	sendEvent(ch)
	sendEvent(ch)
	assert.Equal(t, 1, len(ch), "pending events")
}

func TestEventClassification(t *testing.T) {
	cases := []struct {
		op      fsnotify.Op
		changed bool
		removed bool
	}{
		{fsnotify.Write, true, false},
		{fsnotify.Create, true, false},
		{fsnotify.Remove, false, true},
		{fsnotify.Rename, false, true},
		{fsnotify.Chmod, false, false},
	}
	for _, c := range cases {
		event := fsnotify.Event{Name: "x", Op: c.op}
		assert.Equal(t, c.changed, fileChanged(event), "changed: %v", c.op)
		assert.Equal(t, c.removed, fileRemoved(event), "removed: %v", c.op)
	}
}
