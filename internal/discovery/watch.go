package discovery

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/jakoblorz/go-envmodules/internal/logging"
)

// Watcher signals when modules appear in or disappear from a root.
// Bursts of events collapse into a single pending signal.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	logger  *log.Logger
	changes chan struct{}
	stopCh  chan struct{}
	stop    sync.Once
}

// Watch starts watching root. Only entries directly under root matter;
// edits inside a module directory are not reported.
func Watch(root string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	w := &Watcher{
		watcher: watcher,
		root:    filepath.Clean(root),
		logger:  logger,
		changes: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
	go w.loop()

	logger.Info("watching modules root", "root", root)
	return w, nil
}

// Changes delivers a value after the set of entries under root changed.
// It is closed by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Dir(filepath.Clean(event.Name)) != w.root {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("modules root changed", "event", event.Op.String(), "entry", filepath.Base(event.Name))

			select {
			case w.changes <- struct{}{}:
			default:
				// a signal is already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("modules root watcher error", "err", err)

		case <-w.stopCh:
			return
		}
	}
}
