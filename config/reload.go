package config

import (
	"path/filepath"

	"github.com/pkg/errors"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/watchers"
)

// Watcher reloads the configuration file whenever it is written.
type Watcher struct {
	fs   watchers.FSWatcher
	path string
	stop chan struct{}
	done chan struct{}
}

// Watch calls onReload from a background goroutine with the freshly parsed
// configuration, or the parse error, each time path is written or
// recreated. The parent directory is watched so that editors replacing the
// file are noticed.
func Watch(path string, onReload func(*LazyConfig, error)) (*Watcher, error) {
	fs, err := watchers.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watcher")
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := fs.Configure(dir); err != nil {
		fs.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}
	w := &Watcher{
		fs:   fs,
		path: path,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) run(onReload func(*LazyConfig, error)) {
	defer log.PanicHandler()
	defer close(w.done)

	name := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.fs.Events():
			if !ok {
				return
			}
			// some backends report resolved paths, only the name is
			// reliable inside the watched directory
			if filepath.Base(event.Path) != name {
				continue
			}
			if event.Operation != watchers.FSWrite &&
				event.Operation != watchers.FSCreate {
				continue
			}
			log.Debugf("reloading %s after %s", w.path, event.Operation)
			onReload(LoadConfigFromFile(w.path))
		case <-w.stop:
			return
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	close(w.stop)
	<-w.done
	return w.fs.Close()
}
