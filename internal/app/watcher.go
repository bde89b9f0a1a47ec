package app

import (
	"fmt"
	"path/filepath"
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/fsnotify/fsnotify"
)

// ConfigChangedMsg is sent when the config file was written or replaced.
type ConfigChangedMsg struct{ Path string }

// ConfigWatcher watches the config file for changes. The directory is
// watched rather than the file, since editors often save by renaming a
// temporary file over the original.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	filtered chan fsnotify.Event
	done     chan struct{}
	stop     sync.Once
}

// NewConfigWatcher starts watching path.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}
	log.Info("config watcher started", "path", path)

	w := &ConfigWatcher{
		watcher:  watcher,
		path:     filepath.Clean(path),
		filtered: make(chan fsnotify.Event, 1),
		done:     make(chan struct{}),
	}
	go w.filterEvents()
	return w, nil
}

// Events returns the channel of config file events.
func (w *ConfigWatcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Close stops the watcher. Calls after the first are no-ops.
func (w *ConfigWatcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		if cerr := w.watcher.Close(); cerr != nil {
			err = fmt.Errorf("closing fsnotify watcher: %w", cerr)
		}
	})
	return err
}

func (w *ConfigWatcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldForward(event) {
				continue
			}
			log.Debug("config change detected", "path", event.Name, "op", event.Op.String())

			// A pending event already triggers a reload.
			select {
			case w.filtered <- event:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", "err", err)
		}
	}
}

// shouldForward reports whether event concerns the config file.
func (w *ConfigWatcher) shouldForward(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// WaitForConfigChange returns a command that delivers the next change as a
// ConfigChangedMsg. It must be re-issued after every message.
func WaitForConfigChange(w *ConfigWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Path: event.Name}
	}
}
