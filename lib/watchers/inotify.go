//go:build !darwin
// +build !darwin

package watchers

import (
	"github.com/fsnotify/fsnotify"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
)

func init() {
	RegisterWatcherFactory(newInotifyWatcher)
}

type inotifyWatcher struct {
	w    *fsnotify.Watcher
	ch   chan *FSEvent
	done chan struct{}
}

func newInotifyWatcher() (FSWatcher, error) {
	watcher := &inotifyWatcher{
		ch:   make(chan *FSEvent),
		done: make(chan struct{}),
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	watcher.w = w

	go watcher.watch()
	return watcher, nil
}

func (w *inotifyWatcher) watch() {
	defer log.PanicHandler()
	defer close(w.ch)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			var op FSOperation
			switch {
			case ev.Has(fsnotify.Create):
				op = FSCreate
			case ev.Has(fsnotify.Write):
				op = FSWrite
			case ev.Has(fsnotify.Remove):
				op = FSRemove
			case ev.Has(fsnotify.Rename):
				op = FSRename
			default:
				continue
			}
			select {
			case w.ch <- &FSEvent{Operation: op, Path: ev.Name}:
			case <-w.done:
				return
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Warnf("inotify: %v", err)
		}
	}
}

func (w *inotifyWatcher) Configure(root string) error {
	return w.w.Add(root)
}

func (w *inotifyWatcher) Events() chan *FSEvent {
	return w.ch
}

func (w *inotifyWatcher) Add(p string) error {
	return w.w.Add(p)
}

func (w *inotifyWatcher) Remove(p string) error {
	return w.w.Remove(p)
}

func (w *inotifyWatcher) Close() error {
	close(w.done)
	return w.w.Close()
}
