package internal

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of filesystem event
type EventType int

const (
	EventCreate EventType = iota
	EventModify
	EventDelete
)

// WatchEvent represents a filesystem event on a fixture file
type WatchEvent struct {
	Type EventType
	Path string
}

// Watcher wraps fsnotify with image file filtering, for re-verifying a
// fixture directory whenever its contents change.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan *WatchEvent
	errors  chan error
	done    chan bool
	exts    []string
}

// NewWatcher creates a filesystem watcher for the given fixture directory.
func NewWatcher(dir string, imageExts []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsWatcher,
		events:  make(chan *WatchEvent, 100),
		errors:  make(chan error, 10),
		done:    make(chan bool, 1),
		exts:    imageExts,
	}

	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	go w.processEvents()

	return w, nil
}

// processEvents filters raw fsnotify events down to image file changes
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.isImageFile(event.Name) {
				continue
			}

			watchEvent := &WatchEvent{Path: event.Name}

			if event.Op&fsnotify.Create == fsnotify.Create {
				watchEvent.Type = EventCreate
			} else if event.Op&fsnotify.Write == fsnotify.Write {
				watchEvent.Type = EventModify
			} else if event.Op&fsnotify.Remove == fsnotify.Remove {
				watchEvent.Type = EventDelete
			} else {
				continue
			}

			select {
			case w.events <- watchEvent:
			default:
				// Event channel is full, drop event
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				// Error channel is full, drop error
			}

		case <-w.done:
			return
		}
	}
}

// Events returns the channel of filtered watch events
func (w *Watcher) Events() <-chan *WatchEvent {
	return w.events
}

// Errors returns the channel of watcher errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and cleans up resources
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.exts {
		if ext == e {
			return true
		}
	}
	return false
}
