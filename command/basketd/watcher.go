// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/basket"
	"github.com/bitmark-inc/basketd/configuration"
)

const (
	watcherLoggerPrefix = "watcher"
)

// configuration file watcher
//
// the basket is fixed once the database exists, so an edit that
// changes it is reported and ignored; any other edit needs a restart
type watcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	fileName  string
	basket    *basket.Basket
	variables map[string]string
	changes   chan<- bool // true if the basket was altered
}

func newWatcher(log *logger.L, fileName string, b *basket.Basket, variables map[string]string, changes chan<- bool) (*watcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	// watch the directory so that editors replacing the file are seen
	if err := w.Add(filepath.Dir(fileName)); nil != err {
		log.Errorf("watcher add error: %s", err)
		_ = w.Close()
		return nil, err
	}

	return &watcher{
		log:       log,
		watcher:   w,
		fileName:  fileName,
		basket:    b,
		variables: variables,
		changes:   changes,
	}, nil
}

// Run - background process
func (w *watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %q", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.fileName {
				continue loop
			}
			if !isChange(event) {
				continue loop
			}
			log.Infof("file event: %v", event)
			if altered, ok := w.check(); ok {
				w.notify(altered)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	_ = w.watcher.Close()
	log.Info("stopped")
}

// check - altered is true if the file now describes a different
// basket; ok is false while the file cannot be parsed, as happens
// part way through a write
func (w *watcher) check() (altered bool, ok bool) {
	options := &Configuration{}
	err := configuration.ParseConfigurationFile(w.fileName, options, w.variables)
	if nil != err {
		w.log.Errorf("configuration: %q  error: %s", w.fileName, err)
		return false, false
	}

	b, err := options.basket()
	if nil != err || !w.basket.Equal(b) {
		w.log.Criticalf("basket in: %q was changed; the change is ignored", w.fileName)
		return true, true
	}

	w.log.Warnf("configuration: %q changed; restart to apply", w.fileName)
	return false, true
}

func (w *watcher) notify(altered bool) {
	if nil == w.changes {
		return
	}
	select {
	case w.changes <- altered:
	default:
		w.log.Info("change channel full, discard event")
	}
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
