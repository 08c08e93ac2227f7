package pactdoc

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sourcegraph/log"
)

// Watch watches the directory containing path and invokes onChange with the
// freshly reloaded Document each time path's mtime changes, letting a
// long-running provider-verification session pick up a re-published pact
// file without restarting. The returned io.Closer stops the watch.
func Watch(path string, logger log.Logger, onChange func(*Document)) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating watcher")
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watching directory of %s", path)
	}

	done := make(chan struct{})
	go func() {
		var last time.Time
		for {
			select {
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				fi, err := os.Stat(path)
				if err != nil || fi.ModTime() == last {
					continue
				}
				last = fi.ModTime()
				doc, err := Load(path)
				if err != nil {
					logger.Warn("reload of watched pact document failed", log.String("path", path), log.Error(err))
					continue
				}
				onChange(doc)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", log.Error(err))
			}
		}
	}()

	return &watchCloser{watcher: watcher, done: done}, nil
}

type watchCloser struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func (c *watchCloser) Close() error {
	close(c.done)
	return c.watcher.Close()
}
